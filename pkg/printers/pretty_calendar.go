package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/dategrid"
)

const width = len(" 11  12  13  14  15  16  17 ") // an example week

// Month prints the six-week grid. Days with events carry a dot, holidays
// are red and the selected day is inverted.
func (pp *PrettyPrint) Month(days []app.Day, selected time.Time) {
	if len(days) == 0 {
		return
	}
	out := pp.out()

	var anchor time.Time
	for _, d := range days {
		if d.IsCurrentMonth {
			anchor = d.Date
			break
		}
	}

	tf := color.New(color.FgWhite, color.Bold)
	m := anchor.Format("January 2006")
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)

	hf := color.New(color.Faint)
	_, _ = hf.Fprintln(out, " Su  Mo  Tu  We  Th  Fr  Sa")

	for _, week := range dategrid.Weeks(days) {
		for _, d := range week {
			_, _ = pp.dayStyle(d, selected).Fprintf(out, "%3d", d.Date.Day())
			marker := " "
			if len(d.Events) > 0 {
				marker = "•"
			}
			_, _ = fmt.Fprint(out, marker)
		}
		_, _ = fmt.Fprint(out, "\n")
	}
	_, _ = fmt.Fprint(out, "\n")

	pp.annotations(days)
}

func (pp *PrettyPrint) dayStyle(d app.Day, selected time.Time) *color.Color {
	attrs := []color.Attribute{}
	switch {
	case !d.IsCurrentMonth:
		attrs = append(attrs, color.Faint)
	case d.Holiday != "":
		attrs = append(attrs, color.FgRed)
	case d.IsWeekend:
		attrs = append(attrs, color.FgCyan)
	}
	if d.IsToday {
		attrs = append(attrs, color.Bold, color.Underline)
	}
	if dategrid.IsSameDay(d.Date, selected) {
		attrs = append(attrs, color.ReverseVideo)
	}
	return color.New(attrs...)
}

// annotations lists holidays that fall in the current month.
func (pp *PrettyPrint) annotations(days []app.Day) {
	hf := color.New(color.FgRed, color.Italic)
	printed := false
	for _, d := range days {
		if !d.IsCurrentMonth || d.Holiday == "" {
			continue
		}
		_, _ = hf.Fprintf(pp.out(), "%2d %s\n", d.Date.Day(), d.Holiday)
		printed = true
	}
	if printed {
		pp.NewLine()
	}
}

// Agenda prints each day with its events; used for week and day views.
func (pp *PrettyPrint) Agenda(days []app.Day) {
	for _, d := range days {
		pp.DayHeading(d)
		pp.Events(d.Events...)
	}
}

// DayHeading prints the date with its holiday and weather annotations.
func (pp *PrettyPrint) DayHeading(d app.Day) {
	t := color.New(color.Bold, color.Underline)
	if d.IsToday {
		t.Add(color.FgHiWhite)
	}
	_, _ = t.Fprint(pp.out(), dategrid.FormatDisplayDate(d.Date))

	extra := color.New(color.Faint)
	if d.Holiday != "" {
		_, _ = color.New(color.FgRed).Fprintf(pp.out(), "  %s", d.Holiday)
	}
	if d.Weather != nil {
		_, _ = extra.Fprintf(pp.out(), "  %s %d°C", d.Weather.Symbol(), d.Weather.Temperature)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}
