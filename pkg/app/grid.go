package app

import (
	"time"

	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/state"
)

// Month returns the 42 cells of the selected month.
func (c *Controller) Month() []Day {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.days(dategrid.Cells(c.selected, c.Today()))
}

// MonthOf returns the 42 cells of anchor's month without moving the cursor.
func (c *Controller) MonthOf(anchor time.Time) []Day {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.days(dategrid.Cells(anchor, c.Today()))
}

// Week returns the seven cells of the selected week.
func (c *Controller) Week() []Day {
	c.mu.Lock()
	defer c.mu.Unlock()
	month := dategrid.FirstOfMonth(c.selected).Month()
	today := c.Today()
	week := dategrid.WeekOf(c.selected)
	cells := make([]dategrid.Cell, len(week))
	for i, d := range week {
		cells[i] = dategrid.Cell{
			Date:           d,
			IsCurrentMonth: d.Month() == month,
			IsToday:        dategrid.IsSameDay(d, today),
			IsWeekend:      dategrid.IsWeekend(d),
		}
	}
	return c.days(cells)
}

// SelectedDay returns the cell for the selected date.
func (c *Controller) SelectedDay() Day {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := dategrid.StartOfDay(c.selected)
	return c.days([]dategrid.Cell{{
		Date:           d,
		IsCurrentMonth: true,
		IsToday:        dategrid.IsSameDay(d, c.Today()),
		IsWeekend:      dategrid.IsWeekend(d),
	}})[0]
}

// Visible returns the cells for the current view mode.
func (c *Controller) Visible() []Day {
	switch c.View() {
	case state.ViewWeek:
		return c.Week()
	case state.ViewDay:
		return []Day{c.SelectedDay()}
	default:
		return c.Month()
	}
}

// days annotates cells. Callers hold c.mu.
func (c *Controller) days(cells []dategrid.Cell) []Day {
	out := make([]Day, len(cells))
	for i, cell := range cells {
		d := Day{Cell: cell, Events: c.events.EventsOnDay(cell.Date)}
		if c.holidays != nil {
			if name, ok := c.holidays.Holiday(cell.Date); ok {
				d.Holiday = name
			}
		}
		if c.weather != nil {
			if w, ok := c.weather.Weather(cell.Date); ok {
				w := w
				d.Weather = &w
			}
		}
		out[i] = d
	}
	return out
}
