// Package export renders the event collection into files.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/monthcal/pkg/event"
)

// Format names an export encoding.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	ICS  Format = "ics"
	PDF  Format = "pdf"
)

// Formats lists every supported format.
var Formats = []Format{JSON, CSV, ICS, PDF}

// ParseFormat maps text (or a file extension) to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("export: unknown format %q (expected json, csv, ics or pdf)", s)
}

// Filename is the default file name for f.
func (f Format) Filename() string {
	return "calendar-events." + string(f)
}

// Options tunes formats that need more than the event list.
type Options struct {
	// Month is the month drawn by PDF exports.
	Month time.Time
	// Now stamps ICS output.
	Now time.Time
}

// Write renders events to w in format f.
func Write(w io.Writer, f Format, events []event.Event, opts Options) error {
	switch f {
	case JSON:
		return WriteJSON(w, events)
	case CSV:
		return WriteCSV(w, events)
	case ICS:
		return WriteICS(w, events, opts.Now)
	case PDF:
		return WritePDF(w, opts.Month, events)
	}
	return fmt.Errorf("export: unknown format %q", f)
}
