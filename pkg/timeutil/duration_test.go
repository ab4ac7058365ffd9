package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1h", time.Hour},
		{"90m", 90 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"2d", 48 * time.Hour},
		{"-1d", -24 * time.Hour},
		{"+1w2d", 9 * 24 * time.Hour},
		{" 3 hours ", 3 * time.Hour},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseDurationErrors(t *testing.T) {
	if _, err := ParseDuration(""); !errors.Is(err, ErrEmptyDuration) {
		t.Fatalf("expected ErrEmptyDuration, got %v", err)
	}
	for _, in := range []string{"abc", "5y", "0h", "1h x"} {
		if _, err := ParseDuration(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m"},
		{90 * time.Minute, "1h30m"},
		{-48 * time.Hour, "-2d"},
		{8*24*time.Hour + time.Hour, "1w1d1h"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("%v: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestMockClock(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	c := &MockClock{FixedNow: now}
	if !c.Now().Equal(now) {
		t.Fatalf("unexpected now %v", c.Now())
	}
	c.SetNow(now.Add(time.Hour))
	if !c.Now().Equal(now.Add(time.Hour)) {
		t.Fatalf("SetNow did not move clock")
	}
}
