package lookup

import (
	"sync"
	"time"
)

// Holidays knows the fixed-date holidays plus Easter Sunday for any year.
type Holidays struct {
	mu    sync.Mutex
	years map[int]map[string]string
}

// NewHolidays returns an empty, lazily filled holiday table.
func NewHolidays() *Holidays {
	return &Holidays{years: make(map[int]map[string]string)}
}

func (h *Holidays) Holiday(date time.Time) (string, bool) {
	year := date.Local().Year()

	h.mu.Lock()
	table, ok := h.years[year]
	if !ok {
		table = holidaysFor(year)
		h.years[year] = table
	}
	h.mu.Unlock()

	name, ok := table[dateKey(date)]
	return name, ok
}

func holidaysFor(year int) map[string]string {
	holidays := map[string]string{
		formatDate(year, time.January, 1):   "New Year's Day",
		formatDate(year, time.July, 4):      "Independence Day",
		formatDate(year, time.December, 25): "Christmas Day",
		formatDate(year, time.December, 31): "New Year's Eve",
	}
	holidays[easter(year).Format("2006-01-02")] = "Easter Sunday"
	return holidays
}

// easter computes Easter Sunday with the Meeus/Jones/Butcher algorithm.
func easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	// Noon keeps the date stable when formatted.
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
}

func formatDate(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Format("2006-01-02")
}
