// Package state encodes the calendar's persisted value.
package state

import (
	"encoding/json"
	"fmt"
	"strings"

	"tableflip.dev/monthcal/pkg/event"
)

// Key is the persistence key the calendar state lives under.
const Key = "calendar-state"

// ViewMode selects how the calendar is presented.
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

// ViewModes lists every mode in cycling order.
var ViewModes = []ViewMode{ViewMonth, ViewWeek, ViewDay}

// ParseViewMode maps text to a mode, case-insensitively.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewMonth:
		return ViewMonth, nil
	case ViewWeek:
		return ViewWeek, nil
	case ViewDay:
		return ViewDay, nil
	}
	return ViewMonth, fmt.Errorf("state: unknown view %q (expected month, week or day)", s)
}

// Next returns the mode after v, wrapping around.
func (v ViewMode) Next() ViewMode {
	for i, m := range ViewModes {
		if m == v {
			return ViewModes[(i+1)%len(ViewModes)]
		}
	}
	return ViewMonth
}

func (v *ViewMode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	mode, err := ParseViewMode(s)
	if err != nil {
		mode = ViewMonth
	}
	*v = mode
	return nil
}

// Snapshot is everything the calendar persists.
type Snapshot struct {
	Events       []event.Event   `json:"events"`
	SelectedDate event.Timestamp `json:"selectedDate"`
	View         ViewMode        `json:"view"`
}

// Encode serializes s as JSON.
func Encode(s Snapshot) ([]byte, error) {
	if s.Events == nil {
		s.Events = []event.Event{}
	}
	if s.View == "" {
		s.View = ViewMonth
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("state: encode: %w", err)
	}
	return b, nil
}

// Decode parses a value written by Encode.
func Decode(b []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("state: decode: %w", err)
	}
	if s.View == "" {
		s.View = ViewMonth
	}
	if s.Events == nil {
		s.Events = []event.Event{}
	}
	return s, nil
}
