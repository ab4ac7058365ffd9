package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
)

// descriptionWidth wraps event descriptions in day listings.
const descriptionWidth = 48

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
	// Profile controls event color swatches.
	Profile termenv.Profile
}

// New returns a printer for out, dropping swatch colors when out is not a
// terminal.
func New(out io.Writer) *PrettyPrint {
	if out == nil {
		out = color.Output
	}
	pp := &PrettyPrint{Out: out, Profile: termenv.Ascii}
	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		pp.Profile = termenv.EnvColorProfile()
	}
	if out == color.Output && !color.NoColor {
		pp.Profile = termenv.EnvColorProfile()
	}
	return pp
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " event")
	default:
		_, _ = c.Fprintln(pp.out(), " events")
	}
}

// Events lists events as a table: optional id, time, color swatch with
// title, and wrapped description.
func (pp *PrettyPrint) Events(events ...event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tm := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range events {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(e.ID))
		}
		row = append(row,
			tm.Sprint(e.TimeRange()),
			pp.Swatch(e.Color)+" "+e.Title,
		)
		if e.Description != "" {
			row = append(row, wordwrap.String(e.Description, descriptionWidth))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Event prints a single event with every field.
func (pp *PrettyPrint) Event(e event.Event) {
	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("ID"), e.ID)
	tbl.AddRow(b.Sprint("Title"), pp.Swatch(e.Color)+" "+e.Title)
	tbl.AddRow(b.Sprint("When"), dategrid.FormatDisplayDate(e.Start.Time)+" "+e.TimeRange())
	tbl.AddRow(b.Sprint("Start"), e.Start.String())
	tbl.AddRow(b.Sprint("End"), e.End.String())
	if e.Description != "" {
		tbl.AddRow(b.Sprint("Notes"), wordwrap.String(e.Description, descriptionWidth))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Swatch renders a two-cell block in hex with a readable marker on top.
func (pp *PrettyPrint) Swatch(hex string) string {
	if hex == "" {
		hex = event.DefaultColor
	}
	if pp.Profile == termenv.Ascii {
		return "■"
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "■"
	}
	return termenv.String("● ").
		Foreground(pp.Profile.Color(ContrastText(c))).
		Background(pp.Profile.Color(c.Hex())).
		String()
}

// ContrastText picks black or white text for background c.
func ContrastText(c colorful.Color) string {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// Palette prints every selectable color.
func (pp *PrettyPrint) Palette() {
	var b strings.Builder
	for i, hex := range event.Palette {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(pp.Swatch(hex) + " " + hex)
	}
	_, _ = fmt.Fprintln(pp.out(), b.String())
}
