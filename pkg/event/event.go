// Package event defines the calendar event model.
package event

import (
	"time"
)

// DefaultColor is used when an event carries no color.
const DefaultColor = "#3b82f6"

// Palette lists the colors offered when creating events.
var Palette = []string{
	"#3b82f6",
	"#ef4444",
	"#22c55e",
	"#f59e0b",
	"#6366f1",
	"#ec4899",
	"#8b5cf6",
	"#14b8a6",
}

// Event is a time-boxed calendar entry.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       Timestamp `json:"start"`
	End         Timestamp `json:"end"`
	Color       string    `json:"color"`
	IsAllDay    bool      `json:"isAllDay"`
}

// Draft is the input for creating an event. It has no id.
type Draft struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	Start       Timestamp `json:"start" validate:"required"`
	End         Timestamp `json:"end" validate:"required"`
	Color       string    `json:"color,omitempty"`
	IsAllDay    bool      `json:"isAllDay,omitempty"`
}

// NewDraft returns a draft on day running 09:00 to 10:00 local time.
func NewDraft(day time.Time) Draft {
	l := day.Local()
	start := time.Date(l.Year(), l.Month(), l.Day(), 9, 0, 0, 0, time.Local)
	return Draft{
		Start: At(start),
		End:   At(start.Add(time.Hour)),
		Color: DefaultColor,
	}
}

// Build turns a draft into an event with the given id.
func (d Draft) Build(id string) Event {
	color := d.Color
	if color == "" {
		color = DefaultColor
	}
	return Event{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Start:       d.Start,
		End:         d.End,
		Color:       color,
		IsAllDay:    d.IsAllDay,
	}
}

// Draft returns the editable fields of e.
func (e Event) Draft() Draft {
	return Draft{
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		Color:       e.Color,
		IsAllDay:    e.IsAllDay,
	}
}

// Duration is End minus Start.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start.Time)
}

// TimeRange renders the local start and end, or "All day".
func (e Event) TimeRange() string {
	if e.IsAllDay {
		return "All day"
	}
	return e.Start.Local().Format("15:04") + "-" + e.End.Local().Format("15:04")
}
