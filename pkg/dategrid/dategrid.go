// Package dategrid computes the days shown on a month calendar and the
// day-level predicates used to place events on them.
package dategrid

import "time"

// GridDays is the number of cells in a month grid: six full weeks.
const GridDays = 42

// Cell is one displayed day of a month grid.
type Cell struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
	IsToday        bool      `json:"isToday"`
	IsWeekend      bool      `json:"isWeekend"`
}

// dayStart returns the first local instant of the given day. Out of range
// days and months normalize as in time.Date. Where a DST transition skips
// midnight the day starts at the first wall-clock hour that exists.
func dayStart(year int, month time.Month, day int) time.Time {
	n := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	y, m, d := n.Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	for h := 1; h <= 3 && !sameDate(t, y, m, d); h++ {
		t = time.Date(y, m, d, h, 0, 0, 0, time.Local)
	}
	return t
}

func sameDate(t time.Time, year int, month time.Month, day int) bool {
	y, m, d := t.Date()
	return y == year && m == month && d == day
}

// StartOfDay truncates d to the start of its local day, which is midnight
// except on days where DST skips it.
func StartOfDay(d time.Time) time.Time {
	y, m, day := d.Local().Date()
	return dayStart(y, m, day)
}

// FirstOfMonth returns the start of the first day of d's month.
func FirstOfMonth(d time.Time) time.Time {
	y, m, _ := d.Local().Date()
	return dayStart(y, m, 1)
}

// AddMonths returns the first day of the month n months away from d.
func AddMonths(d time.Time, n int) time.Time {
	y, m, _ := d.Local().Date()
	return dayStart(y, m+time.Month(n), 1)
}

// AddDays returns the start of the day n calendar days away from d.
func AddDays(d time.Time, n int) time.Time {
	y, m, day := d.Local().Date()
	return dayStart(y, m, day+n)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInMonth returns every day of the month in ascending order.
func DaysInMonth(year int, month time.Month) []time.Time {
	n := DaysIn(year, month)
	days := make([]time.Time, 0, n)
	for i := 1; i <= n; i++ {
		days = append(days, dayStart(year, month, i))
	}
	return days
}

// CalendarGrid returns the 42 days displayed for anchor's month. The grid
// starts on the Sunday on or before the 1st and always spans six weeks, so
// months that fit in five weeks get an extra trailing week.
func CalendarGrid(anchor time.Time) []time.Time {
	first := FirstOfMonth(anchor)
	y, m, _ := first.Date()
	lead := int(first.Weekday())

	// Days are built from calendar fields rather than by adding 24h
	// steps to midnight, which drifts across DST transitions.
	grid := make([]time.Time, GridDays)
	for i := range grid {
		grid[i] = dayStart(y, m, 1-lead+i)
	}
	return grid
}

// Cells decorates the grid for anchor with month, today and weekend flags.
func Cells(anchor, today time.Time) []Cell {
	month := FirstOfMonth(anchor).Month()
	grid := CalendarGrid(anchor)
	cells := make([]Cell, len(grid))
	for i, d := range grid {
		cells[i] = Cell{
			Date:           d,
			IsCurrentMonth: d.Month() == month,
			IsToday:        IsSameDay(d, today),
			IsWeekend:      IsWeekend(d),
		}
	}
	return cells
}

// Weeks splits a grid into rows of seven.
func Weeks[T any](grid []T) [][]T {
	rows := make([][]T, 0, (len(grid)+6)/7)
	for i := 0; i < len(grid); i += 7 {
		end := i + 7
		if end > len(grid) {
			end = len(grid)
		}
		rows = append(rows, grid[i:end])
	}
	return rows
}

// WeekOf returns the seven days of the Sunday-started week containing d.
func WeekOf(d time.Time) []time.Time {
	l := d.Local()
	y, m, day := l.Date()
	sunday := day - int(l.Weekday())
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = dayStart(y, m, sunday+i)
	}
	return week
}

// IsSameDay reports whether a and b fall on the same local calendar day.
func IsSameDay(a, b time.Time) bool {
	la, lb := a.Local(), b.Local()
	return la.Year() == lb.Year() && la.Month() == lb.Month() && la.Day() == lb.Day()
}

// IsWeekend reports whether d is a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Local().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// FormatDisplayDate renders d like "Wed, Feb 14, 2024".
func FormatDisplayDate(d time.Time) string {
	return d.Local().Format("Mon, Jan 2, 2006")
}
