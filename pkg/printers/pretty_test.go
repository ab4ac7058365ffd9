package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/lookup"
)

func init() {
	color.NoColor = true
}

func marchDays() []app.Day {
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	cells := dategrid.Cells(today, today)
	days := make([]app.Day, len(cells))
	for i, c := range cells {
		days[i] = app.Day{Cell: c}
		if c.IsCurrentMonth && c.Date.Day() == 12 {
			days[i].Events = []event.Event{{
				ID:    "e1",
				Title: "Dentist",
				Start: event.At(time.Date(2024, time.March, 12, 9, 0, 0, 0, time.Local)),
				End:   event.At(time.Date(2024, time.March, 12, 10, 0, 0, 0, time.Local)),
				Color: "#ef4444",
			}}
		}
		if c.IsCurrentMonth && c.Date.Day() == 31 {
			days[i].Holiday = "Easter Sunday"
			days[i].Weather = &lookup.Weather{Condition: lookup.Rain, Temperature: 12}
		}
	}
	return days
}

func TestMonthGrid(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	pp.Month(marchDays(), time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local))

	out := buf.String()
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "March 2024") {
		t.Fatalf("expected month title, got %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "Su  Mo  Tu  We  Th  Fr  Sa" {
		t.Fatalf("unexpected weekday header %q", lines[1])
	}
	// Six week rows follow the header.
	if !strings.HasPrefix(lines[2], " 25  26  27  28  29   1   2") {
		t.Fatalf("unexpected first week %q", lines[2])
	}
	if !strings.Contains(lines[4], "12•") {
		t.Fatalf("expected event marker on the 12th, got %q", lines[4])
	}
	if !strings.Contains(lines[7], "  6 ") {
		t.Fatalf("expected padding week ending Apr 6, got %q", lines[7])
	}
	if !strings.Contains(out, "31 Easter Sunday") {
		t.Fatalf("expected holiday annotation in %s", out)
	}
}

func TestAgenda(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	pp.ShowID = true
	days := marchDays()
	var picked []app.Day
	for _, d := range days {
		if d.IsCurrentMonth && (d.Date.Day() == 12 || d.Date.Day() == 31) {
			picked = append(picked, d)
		}
	}
	pp.Agenda(picked)
	out := buf.String()
	for _, want := range []string{"Tue, Mar 12, 2024", "e1", "09:00-10:00", "Dentist", "Sun, Mar 31, 2024", "Easter Sunday", "☂ 12°C", "none"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestSwatchAscii(t *testing.T) {
	pp := New(&bytes.Buffer{})
	if got := pp.Swatch("#ef4444"); got != "■" {
		t.Fatalf("expected plain swatch off terminal, got %q", got)
	}
}

func TestContrastText(t *testing.T) {
	light, _ := colorful.Hex("#f59e0b")
	dark, _ := colorful.Hex("#6366f1")
	if ContrastText(light) != "#000000" {
		t.Fatalf("expected dark text on amber")
	}
	if ContrastText(dark) != "#ffffff" {
		t.Fatalf("expected light text on indigo")
	}
}
