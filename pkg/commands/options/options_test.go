package options

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/state"
	"tableflip.dev/monthcal/pkg/store"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2024, time.December, 5, 15, 0, 0, 0, time.Local)
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2024-3-9", want: time.Date(2024, time.March, 9, 0, 0, 0, 0, time.Local)},
		{in: "2025-01-20", want: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.Local)},
		{in: "12/24", want: time.Date(2024, time.December, 24, 0, 0, 0, 0, time.Local)},
		{in: "1/3", want: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.Local)},
		{in: "12/5", want: time.Date(2024, time.December, 5, 0, 0, 0, 0, time.Local)},
		{in: "today", want: time.Date(2024, time.December, 5, 0, 0, 0, 0, time.Local)},
		{in: "Tomorrow", want: time.Date(2024, time.December, 6, 0, 0, 0, 0, time.Local)},
		{in: "yesterday", want: time.Date(2024, time.December, 4, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in, now)
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseDate("next tuesday", now); err == nil {
		t.Fatalf("expected error for free text")
	}
}

func TestGetOnEmpty(t *testing.T) {
	o := &OnOptions{}
	_, ok, err := o.GetOn(time.Now())
	if err != nil || ok {
		t.Fatalf("expected no date, got ok=%v err=%v", ok, err)
	}
}

func TestEventOptionsApply(t *testing.T) {
	day := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.Local)

	t.Run("defaults", func(t *testing.T) {
		d := event.NewDraft(day)
		o := &EventOptions{Title: "Standup"}
		if err := o.Apply(&d, time.Time{}); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if d.Title != "Standup" || d.Start.Local().Hour() != 9 || d.End.Local().Hour() != 10 {
			t.Fatalf("unexpected draft %+v", d)
		}
	})

	t.Run("start keeps length", func(t *testing.T) {
		d := event.NewDraft(day)
		o := &EventOptions{Start: "14:30"}
		if err := o.Apply(&d, time.Time{}); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if d.Start.Local().Hour() != 14 || d.Start.Local().Minute() != 30 || d.End.Sub(d.Start.Time) != time.Hour {
			t.Fatalf("unexpected times %v - %v", d.Start, d.End)
		}
	})

	t.Run("for", func(t *testing.T) {
		d := event.NewDraft(day)
		o := &EventOptions{Start: "08:00", For: "1h30m"}
		if err := o.Apply(&d, time.Time{}); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if d.End.Sub(d.Start.Time) != 90*time.Minute {
			t.Fatalf("expected 90 minutes, got %v", d.End.Sub(d.Start.Time))
		}
	})

	t.Run("new day", func(t *testing.T) {
		d := event.NewDraft(day)
		o := &EventOptions{End: "11:00"}
		target := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.Local)
		if err := o.Apply(&d, target); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if d.Start.Local().Day() != 20 || d.Start.Local().Hour() != 9 || d.End.Local().Hour() != 11 {
			t.Fatalf("unexpected times %v - %v", d.Start, d.End)
		}
	})

	t.Run("end and for", func(t *testing.T) {
		d := event.NewDraft(day)
		o := &EventOptions{End: "11:00", For: "1h"}
		if err := o.Apply(&d, time.Time{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad time", func(t *testing.T) {
		d := event.NewDraft(day)
		o := &EventOptions{Start: "noon"}
		if err := o.Apply(&d, time.Time{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestEphemeralFlag(t *testing.T) {
	o := &CalendarOptions{}
	cmd := &cobra.Command{Use: "test"}
	AddCalendarArgs(cmd, o)
	if err := cmd.PersistentFlags().Parse([]string{"--ephemeral"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !o.Ephemeral {
		t.Fatalf("expected --ephemeral to be set")
	}
}

func TestOpenEphemeralLeavesDiskAlone(t *testing.T) {
	t.Setenv(store.ConfigPathEnv, t.TempDir())
	dir := t.TempDir()

	o := &CalendarOptions{Path: dir, Ephemeral: true, NoWeather: true}
	c, p, err := o.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := p.(*store.Memory); !ok {
		t.Fatalf("expected in-memory persistence, got %T", p)
	}

	d := event.NewDraft(time.Date(2024, time.March, 12, 0, 0, 0, 0, time.Local))
	d.Title = "Scratch"
	if _, err := c.AddEvent(d); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if _, err := p.Load(state.Key); err != nil {
		t.Fatalf("expected state in memory: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected nothing written to %s, found %d entries", dir, len(entries))
	}
}
