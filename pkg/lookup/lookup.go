// Package lookup provides the read-only annotations shown on calendar days.
package lookup

import "time"

// HolidayLookup names the holiday on a date, if any.
type HolidayLookup interface {
	Holiday(date time.Time) (string, bool)
}

// WeatherLookup returns the forecast for a date, if any.
type WeatherLookup interface {
	Weather(date time.Time) (Weather, bool)
}

func dateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
