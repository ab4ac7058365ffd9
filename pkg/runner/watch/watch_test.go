package watch

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/store"
	"tableflip.dev/monthcal/pkg/timeutil"
)

func init() {
	color.NoColor = true
}

// feed is an in-memory store whose change stream the test drives.
type feed struct {
	*store.Memory
	ch chan store.Change
}

func (f *feed) Watch(context.Context) (<-chan store.Change, error) {
	return f.ch, nil
}

var now = time.Date(2024, time.March, 12, 8, 0, 0, 0, time.Local)

func newCalendar(t *testing.T, p store.Persistence) *app.Controller {
	t.Helper()
	c, err := app.New(p, app.Options{Clock: &timeutil.MockClock{FixedNow: now}})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return c
}

func TestWatchReloadsOnUnkeyedChange(t *testing.T) {
	p := &feed{Memory: store.NewMemory(), ch: make(chan store.Change)}
	var buf bytes.Buffer
	w := Watch{Calendar: newCalendar(t, p), Persistence: p, Out: &buf}

	done := make(chan error, 1)
	go func() { done <- w.Do(context.Background()) }()

	d := event.NewDraft(now)
	d.Title = "Written elsewhere"
	if _, err := newCalendar(t, p).AddEvent(d); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	p.ch <- store.Change{Key: "unrelated"}
	p.ch <- store.Change{}
	close(p.ch)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not stop after the feed closed")
	}

	out := buf.String()
	if n := strings.Count(out, "March 2024"); n != 2 {
		t.Fatalf("expected the month printed twice, got %d:\n%s", n, out)
	}
	if !strings.Contains(out, "Written elsewhere") {
		t.Fatalf("expected reloaded event in:\n%s", out)
	}
}

func TestWatchRequiresCalendar(t *testing.T) {
	w := Watch{}
	if err := w.Do(context.Background()); err == nil {
		t.Fatalf("expected error without a calendar")
	}
}
