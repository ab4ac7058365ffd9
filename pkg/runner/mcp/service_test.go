package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/lookup"
	"tableflip.dev/monthcal/pkg/store"
	"tableflip.dev/monthcal/pkg/timeutil"
)

var testNow = time.Date(2024, time.March, 12, 8, 0, 0, 0, time.Local)

func newTestService(t *testing.T) *Service {
	t.Helper()
	counter := 0
	c, err := app.New(store.NewMemory(), app.Options{
		Clock:    &timeutil.MockClock{FixedNow: testNow},
		Holidays: lookup.NewHolidays(),
		NewID: func() string {
			counter++
			return "mcp-" + strconv.Itoa(counter)
		},
	})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return NewService(c)
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func TestServiceCreateEventDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.CreateEvent(ctx, CreateEventOptions{Title: "Standup"})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if dto.ID != "mcp-1" {
		t.Fatalf("expected generated id, got %s", dto.ID)
	}
	if dto.Day != "2024-03-12" || dto.TimeRange != "09:00-10:00" {
		t.Fatalf("expected 09:00-10:00 on the selected day, got %s %s", dto.Day, dto.TimeRange)
	}
	if dto.Color != event.DefaultColor {
		t.Fatalf("expected default color, got %s", dto.Color)
	}
}

func TestServiceCreateEventExplicit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	start := time.Date(2024, time.March, 20, 14, 0, 0, 0, time.Local)
	dto, err := svc.CreateEvent(ctx, CreateEventOptions{
		Title: "Review",
		Start: &start,
		Color: "#ef4444",
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if dto.Day != "2024-03-20" || dto.TimeRange != "14:00-15:00" {
		t.Fatalf("expected one hour from 14:00 on the 20th, got %s %s", dto.Day, dto.TimeRange)
	}

	allDay, err := svc.CreateEvent(ctx, CreateEventOptions{Title: "Offsite", Day: day(2024, time.March, 22), IsAllDay: true})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if allDay.TimeRange != "All day" || allDay.EndUnix-allDay.StartUnix != int64(24*time.Hour/time.Second) {
		t.Fatalf("expected an all day event, got %+v", allDay)
	}
}

func TestServiceCreateEventRequiresTitle(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CreateEvent(context.Background(), CreateEventOptions{Title: "  "})
	var verr *event.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceUpdateEvent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	dto, err := svc.CreateEvent(ctx, CreateEventOptions{Title: "Draft", Description: "keep me"})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	title := "Final"
	updated, err := svc.UpdateEvent(ctx, UpdateEventOptions{ID: dto.ID, Title: &title})
	if err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}
	if updated.Title != "Final" || updated.Description != "keep me" || updated.Start != dto.Start {
		t.Fatalf("expected only the title to change, got %+v", updated)
	}

	if _, err := svc.UpdateEvent(ctx, UpdateEventOptions{ID: "missing", Title: &title}); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceMoveEvent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	dto, err := svc.CreateEvent(ctx, CreateEventOptions{Title: "Standup"})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	moved, err := svc.MoveEvent(ctx, MoveEventOptions{ID: dto.ID, Day: day(2024, time.March, 15)})
	if err != nil {
		t.Fatalf("MoveEvent failed: %v", err)
	}
	if moved.Day != "2024-03-15" || moved.TimeRange != "09:00-10:00" {
		t.Fatalf("expected same slot on the 15th, got %s %s", moved.Day, moved.TimeRange)
	}

	moved, err = svc.MoveEvent(ctx, MoveEventOptions{ID: dto.ID, Offset: "-1w"})
	if err != nil {
		t.Fatalf("MoveEvent failed: %v", err)
	}
	if moved.Day != "2024-03-08" {
		t.Fatalf("expected a week earlier, got %s", moved.Day)
	}

	if _, err := svc.MoveEvent(ctx, MoveEventOptions{ID: dto.ID}); err == nil {
		t.Fatalf("expected error without target")
	}
	if _, err := svc.MoveEvent(ctx, MoveEventOptions{ID: dto.ID, Day: day(2024, time.March, 1), Offset: "1d"}); err == nil {
		t.Fatalf("expected error with both targets")
	}
}

func TestServiceListEventsRange(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	for _, d := range []*time.Time{day(2024, time.March, 20), day(2024, time.March, 5), day(2024, time.April, 2)} {
		if _, err := svc.CreateEvent(ctx, CreateEventOptions{Title: d.Format("Jan 2"), Day: d}); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}

	all, err := svc.ListEvents(ctx, nil, nil)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(all) != 3 || all[0].Title != "Mar 5" || all[2].Title != "Apr 2" {
		t.Fatalf("expected start order, got %+v", all)
	}

	march, err := svc.ListEvents(ctx, day(2024, time.March, 1), day(2024, time.March, 31))
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(march) != 2 {
		t.Fatalf("expected two March events, got %+v", march)
	}
}

func TestServiceNavigation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	st, err := svc.Navigate(ctx, "next")
	if err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if st.Selected != "2024-04-01" || st.Month != "April 2024" {
		t.Fatalf("unexpected state %+v", st)
	}
	if _, err := svc.Navigate(ctx, "sideways"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}

	st, err = svc.SelectDay(ctx, *day(2024, time.December, 25))
	if err != nil {
		t.Fatalf("SelectDay failed: %v", err)
	}
	if st.Selected != "2024-12-25" {
		t.Fatalf("unexpected state %+v", st)
	}

	st, err = svc.SetView(ctx, "week")
	if err != nil {
		t.Fatalf("SetView failed: %v", err)
	}
	if st.View != "week" {
		t.Fatalf("unexpected view %s", st.View)
	}
	if _, err := svc.SetView(ctx, "year"); err == nil {
		t.Fatalf("expected error for unknown view")
	}
}

func TestServiceMonthGridAndDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	if _, err := svc.CreateEvent(ctx, CreateEventOptions{Title: "Standup"}); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	grid, err := svc.MonthGrid(ctx, nil)
	if err != nil {
		t.Fatalf("MonthGrid failed: %v", err)
	}
	if len(grid.Days) != 42 {
		t.Fatalf("expected 42 days, got %d", len(grid.Days))
	}
	if grid.Days[0].Date != "2024-02-25" || grid.Days[0].IsCurrentMonth {
		t.Fatalf("expected grid to start on Feb 25, got %+v", grid.Days[0])
	}
	selected := 0
	for _, d := range grid.Days {
		if d.IsSelected {
			selected++
			if d.Date != "2024-03-12" || !d.IsToday || len(d.Events) != 1 {
				t.Fatalf("unexpected selected day %+v", d)
			}
		}
	}
	if selected != 1 {
		t.Fatalf("expected one selected day, got %d", selected)
	}

	easter, err := svc.Day(ctx, *day(2024, time.March, 31))
	if err != nil {
		t.Fatalf("Day failed: %v", err)
	}
	if easter.Holiday == "" || easter.Events == nil {
		t.Fatalf("expected holiday and empty event list, got %+v", easter)
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-03-09")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if d.Day() != 9 || d.Location() != time.Local {
		t.Fatalf("expected local March 9, got %v", d)
	}
	if _, err := ParseDay("2024-03-09T10:00:00Z"); err != nil {
		t.Fatalf("expected RFC3339 to parse: %v", err)
	}
	if _, err := ParseDay("March 9"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTemplateArg(t *testing.T) {
	args := map[string]any{
		"a": "one",
		"b": []string{"two"},
		"c": []any{"three"},
		"d": 4,
	}
	for name, want := range map[string]string{"a": "one", "b": "two", "c": "three", "d": "", "e": ""} {
		if got := templateArg(args, name); got != want {
			t.Fatalf("templateArg(%s) = %q, want %q", name, got, want)
		}
	}
}

func TestServerListsTools(t *testing.T) {
	srv := newServer(newTestService(t), "monthcal", "test")
	resp := srv.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, name := range []string{"list_events", "events_on_day", "create_event", "update_event", "delete_event", "move_event", "navigate", "select_day", "month_grid"} {
		if !strings.Contains(string(b), `"`+name+`"`) {
			t.Fatalf("expected tool %s in %s", name, b)
		}
	}
}
