package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/timeutil"
)

const layoutClock = "15:04"

// EventOptions are the editable event fields. Empty values leave the draft
// unchanged.
type EventOptions struct {
	Title       string
	Description string
	Color       string
	Start       string
	End         string
	For         string
	AllDay      bool
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer notes for the event.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		fmt.Sprintf("Hex color, one of %s.", strings.Join(event.Palette, ", ")))
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Start time of day, example: --start=14:30.`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`End time of day, example: --end=15:00.`)
	cmd.Flags().StringVar(&o.For, "for", "",
		`Duration instead of an end time, example: --for=1h30m.`)
	cmd.Flags().BoolVar(&o.AllDay, "all-day", false,
		"Mark the event as lasting all day.")
}

// Apply writes the flags onto d, placing times on day. A zero day keeps
// the day d already starts on.
func (o *EventOptions) Apply(d *event.Draft, day time.Time) error {
	if o.End != "" && o.For != "" {
		return fmt.Errorf("--end and --for are mutually exclusive")
	}
	if o.Title != "" {
		d.Title = o.Title
	}
	if o.Description != "" {
		d.Description = o.Description
	}
	if o.Color != "" {
		d.Color = o.Color
	}
	if o.AllDay {
		d.IsAllDay = true
	}

	length := d.End.Sub(d.Start.Time)
	if !day.IsZero() {
		s := d.Start.Local()
		shift := day.Sub(dategrid.StartOfDay(s))
		d.Start = event.At(d.Start.Add(shift))
		d.End = event.At(d.End.Add(shift))
	}

	if o.Start != "" {
		t, err := atClock(d.Start.Time, o.Start)
		if err != nil {
			return err
		}
		d.Start = event.At(t)
		d.End = event.At(t.Add(length))
	}
	if o.End != "" {
		t, err := atClock(d.Start.Time, o.End)
		if err != nil {
			return err
		}
		d.End = event.At(t)
	}
	if o.For != "" {
		dur, err := timeutil.ParseDuration(o.For)
		if err != nil {
			return err
		}
		d.End = event.At(d.Start.Add(dur))
	}
	return nil
}

func atClock(day time.Time, clock string) (time.Time, error) {
	c, err := time.Parse(layoutClock, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized time %q, expected HH:MM", clock)
	}
	l := day.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), c.Hour(), c.Minute(), 0, 0, time.Local), nil
}
