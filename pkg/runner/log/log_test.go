package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/state"
	"tableflip.dev/monthcal/pkg/store"
	"tableflip.dev/monthcal/pkg/timeutil"
)

func init() {
	color.NoColor = true
}

func newCalendar(t *testing.T) *app.Controller {
	t.Helper()
	now := time.Date(2024, time.March, 12, 8, 0, 0, 0, time.Local)
	c, err := app.New(store.NewMemory(), app.Options{Clock: &timeutil.MockClock{FixedNow: now}})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	d := event.NewDraft(now)
	d.Title = "Dentist"
	if _, err := c.AddEvent(d); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	return c
}

func TestLogMonth(t *testing.T) {
	var buf bytes.Buffer
	l := Log{Calendar: newCalendar(t), Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"March 2024", " 12•", "Tue, Mar 12, 2024", "Dentist"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestLogViews(t *testing.T) {
	c := newCalendar(t)
	l := Log{Calendar: c}

	for view, want := range map[state.ViewMode]int{
		state.ViewMonth: 42,
		state.ViewWeek:  7,
		state.ViewDay:   1,
	} {
		if got := len(l.days(view, c.SelectedDate())); got != want {
			t.Errorf("%s: expected %d days, got %d", view, want, got)
		}
	}

	// The week of Mar 31 reaches into April.
	week := l.days(state.ViewWeek, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local))
	if len(week) != 7 || week[6].Date.Month() != time.April {
		t.Fatalf("unexpected week %+v", week)
	}
}

func TestLogJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Log{Calendar: newCalendar(t), View: state.ViewDay, JSON: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var days []app.Day
	if err := json.Unmarshal(buf.Bytes(), &days); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if len(days) != 1 || len(days[0].Events) != 1 || days[0].Events[0].Title != "Dentist" {
		t.Fatalf("unexpected days %+v", days)
	}
}

func TestLogOnDoesNotMoveSelection(t *testing.T) {
	var buf bytes.Buffer
	c := newCalendar(t)
	on := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local)
	l := Log{Calendar: c, On: &on, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "June 2024") {
		t.Fatalf("expected June:\n%s", buf.String())
	}
	if c.SelectedDate().Month() != time.March {
		t.Fatalf("selection moved to %v", c.SelectedDate())
	}
}
