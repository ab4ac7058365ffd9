package ui

import (
	"time"

	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
)

// StaticDemo is a month of sample events around now.
func StaticDemo(now time.Time) []event.Draft {
	today := dategrid.StartOfDay(now)
	at := func(days, hour, minute int, length time.Duration) (event.Timestamp, event.Timestamp) {
		start := today.AddDate(0, 0, days).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		return event.At(start), event.At(start.Add(length))
	}

	d := make([]event.Draft, 0, 8)
	add := func(title, color string, days, hour, minute int, length time.Duration) {
		start, end := at(days, hour, minute, length)
		d = append(d, event.Draft{Title: title, Start: start, End: end, Color: color})
	}

	add("Standup", event.Palette[0], 0, 9, 30, 15*time.Minute)
	add("Lunch with Sam", event.Palette[2], 0, 12, 0, time.Hour)
	add("Dentist", event.Palette[1], 2, 15, 0, 45*time.Minute)
	add("Planning", event.Palette[3], 5, 10, 0, 2*time.Hour)
	add("Book club", event.Palette[4], -3, 19, 0, 90*time.Minute)
	add("Flight home", event.Palette[5], 11, 7, 15, 3*time.Hour)

	start, end := at(7, 0, 0, 24*time.Hour)
	d = append(d, event.Draft{
		Title:       "Offsite",
		Description: "Whole team, bring a laptop.",
		Start:       start,
		End:         end,
		Color:       event.Palette[6],
		IsAllDay:    true,
	})
	return d
}
