package lookup

import (
	"testing"
	"time"
)

func TestHolidays(t *testing.T) {
	h := NewHolidays()
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, time.December, 25, 15, 0, 0, 0, time.Local), "Christmas Day"},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local), "New Year's Eve"},
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), "New Year's Day"},
		{time.Date(2024, time.July, 4, 0, 0, 0, 0, time.Local), "Independence Day"},
		{time.Date(2031, time.July, 4, 0, 0, 0, 0, time.Local), "Independence Day"},
		{time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local), "Easter Sunday"},
		{time.Date(2025, time.April, 20, 0, 0, 0, 0, time.Local), "Easter Sunday"},
	}
	for _, tt := range tests {
		got, ok := h.Holiday(tt.date)
		if !ok || got != tt.want {
			t.Fatalf("%s: expected %q, got %q (%v)", tt.date.Format("2006-01-02"), tt.want, got, ok)
		}
	}
	if name, ok := h.Holiday(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)); ok {
		t.Fatalf("expected no holiday, got %q", name)
	}
}

func TestForecastIsStableAndBounded(t *testing.T) {
	f := Forecast{Seed: "test"}
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	seen := map[Condition]bool{}
	for i := 0; i < 366; i++ {
		d := day.AddDate(0, 0, i)
		w, ok := f.Weather(d)
		if !ok {
			t.Fatalf("expected forecast for %v", d)
		}
		if w.Temperature < 10 || w.Temperature > 39 {
			t.Fatalf("temperature out of range: %d", w.Temperature)
		}
		again, _ := f.Weather(d.Add(13 * time.Hour))
		if again != w {
			t.Fatalf("forecast not stable within a day: %+v vs %+v", w, again)
		}
		if w.Symbol() == "?" {
			t.Fatalf("unknown condition %q", w.Condition)
		}
		seen[w.Condition] = true
	}
	if len(seen) < 3 {
		t.Fatalf("expected varied conditions, saw %v", seen)
	}
}
