package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// ISOLayout is the wire format for timestamps: UTC with milliseconds.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseTime parses RFC 3339 text, with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is an absolute instant that serializes as ISO-8601 text.
type Timestamp struct {
	time.Time
}

// At wraps t.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

// String renders the instant in ISOLayout.
func (t Timestamp) String() string {
	return FormatTime(t.Time)
}

// FormatTime renders v as UTC ISO-8601 with milliseconds.
func FormatTime(v time.Time) string {
	return v.UTC().Format(ISOLayout)
}
