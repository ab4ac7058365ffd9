// Package log prints the calendar in its month, week or day layout.
package log

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/printers"
	"tableflip.dev/monthcal/pkg/state"
)

type Log struct {
	Calendar *app.Controller
	// View overrides the saved view mode when set.
	View state.ViewMode
	// On shows a different day without moving the saved selection.
	On     *time.Time
	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *Log) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not show calendar, no calendar loaded")
	}

	view := n.View
	if view == "" {
		view = n.Calendar.View()
	}
	selected := n.Calendar.SelectedDate()
	if n.On != nil {
		selected = dategrid.StartOfDay(*n.On)
	}

	days := n.days(view, selected)

	pp := printers.New(n.Out)
	pp.ShowID = n.ShowID
	if n.JSON {
		return pp.JSON(days)
	}

	switch view {
	case state.ViewMonth:
		pp.NewLine()
		pp.Month(days, selected)
		for _, d := range days {
			if dategrid.IsSameDay(d.Date, selected) {
				pp.DayHeading(d)
				pp.Events(d.Events...)
			}
		}
	default:
		pp.NewLine()
		pp.Agenda(days)
	}
	return nil
}

func (n *Log) days(view state.ViewMode, selected time.Time) []app.Day {
	switch view {
	case state.ViewWeek:
		// Six grid weeks always cover every week touching the month.
		week := dategrid.WeekOf(selected)
		month := n.Calendar.MonthOf(selected)
		out := make([]app.Day, 0, len(week))
		for _, d := range month {
			for _, w := range week {
				if dategrid.IsSameDay(d.Date, w) {
					out = append(out, d)
				}
			}
		}
		return out
	case state.ViewDay:
		for _, d := range n.Calendar.MonthOf(selected) {
			if dategrid.IsSameDay(d.Date, selected) {
				return []app.Day{d}
			}
		}
		return nil
	default:
		return n.Calendar.MonthOf(selected)
	}
}
