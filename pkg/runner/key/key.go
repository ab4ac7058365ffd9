// Package key provides CLI helpers to display the calendar legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/monthcal/pkg/lookup"
	"tableflip.dev/monthcal/pkg/printers"
)

// Key prints what the grid markers, weather symbols and colors mean.
type Key struct {
	Out io.Writer
}

type legend struct {
	Symbol  string
	Meaning string
}

var markers = []legend{
	{Symbol: color.New(color.Bold, color.Underline).Sprint("12"), Meaning: "today"},
	{Symbol: color.New(color.ReverseVideo).Sprint("12"), Meaning: "selected day"},
	{Symbol: "12•", Meaning: "day with events"},
	{Symbol: color.New(color.FgCyan).Sprint("12"), Meaning: "weekend"},
	{Symbol: color.New(color.FgRed).Sprint("12"), Meaning: "holiday"},
	{Symbol: color.New(color.Faint).Sprint("12"), Meaning: "outside the month"},
}

var conditions = []lookup.Condition{lookup.Clear, lookup.Cloudy, lookup.Rain, lookup.Snow, lookup.Storm, lookup.Wind}

// Do renders the legend.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")

	k.Key(out, "   Grid", markers)
	_, _ = fmt.Fprintln(out, "")

	weather := make([]legend, 0, len(conditions))
	for _, c := range conditions {
		weather = append(weather, legend{Symbol: lookup.Weather{Condition: c}.Symbol(), Meaning: string(c)})
	}
	k.Key(out, "Weather", weather)
	_, _ = fmt.Fprintln(out, "")

	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(out, "Colors")
	printers.New(out).Palette()
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders one legend table under heading.
func (k *Key) Key(out io.Writer, heading string, rows []legend) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(heading), bold.Sprint("Meaning"))
	for _, v := range rows {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
