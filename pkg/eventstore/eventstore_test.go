package eventstore

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/monthcal/pkg/event"
)

type recordingSink struct {
	writes [][]event.Event
	fail   error
}

func (r *recordingSink) Persist(events []event.Event) error {
	if r.fail != nil {
		return r.fail
	}
	r.writes = append(r.writes, events)
	return nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func draftAt(title string, start time.Time) event.Draft {
	return event.Draft{Title: title, Start: event.At(start), End: event.At(start.Add(time.Hour))}
}

func newTestStore(sink Sink) *Store {
	return New(Options{Sink: sink, NewID: sequentialIDs(), Log: quietLogger()})
}

var march10 = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)

func TestAddAssignsDistinctIDs(t *testing.T) {
	s := New(Options{Log: quietLogger()})
	a, err := s.Add(draftAt("A", march10))
	if err != nil {
		t.Fatalf("add A: %v", err)
	}
	b, err := s.Add(draftAt("B", march10))
	if err != nil {
		t.Fatalf("add B: %v", err)
	}
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}
	day := s.EventsOnDay(march10)
	if len(day) != 2 || day[0].ID != a.ID || day[1].ID != b.ID {
		t.Fatalf("expected both events in insertion order, got %+v", day)
	}
}

func TestAddRetriesOnIDCollision(t *testing.T) {
	ids := []string{"dup", "dup", "fresh"}
	s := New(Options{Log: quietLogger(), NewID: func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}})
	if _, err := s.Add(draftAt("A", march10)); err != nil {
		t.Fatalf("add: %v", err)
	}
	e, err := s.Add(draftAt("B", march10))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.ID != "fresh" {
		t.Fatalf("expected collision to be skipped, got %q", e.ID)
	}
}

func TestAddValidation(t *testing.T) {
	sink := &recordingSink{}
	s := newTestStore(sink)
	_, err := s.Add(event.Draft{Start: event.At(march10), End: event.At(march10)})
	var verr *event.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if s.Len() != 0 || len(sink.writes) != 0 {
		t.Fatalf("expected collection untouched")
	}
}

func TestAddPersistsAndDefaultsColor(t *testing.T) {
	sink := &recordingSink{}
	s := newTestStore(sink)
	e, err := s.Add(draftAt("A", march10))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.Color != event.DefaultColor {
		t.Fatalf("expected default color, got %q", e.Color)
	}
	if len(sink.writes) != 1 || len(sink.writes[0]) != 1 || sink.writes[0][0].ID != e.ID {
		t.Fatalf("expected one write with the new event, got %+v", sink.writes)
	}
}

func TestUpdateReplacesWholeEvent(t *testing.T) {
	s := newTestStore(nil)
	e, _ := s.Add(event.Draft{Title: "A", Description: "keep?", Start: event.At(march10), End: event.At(march10.Add(time.Hour)), Color: "#ef4444"})

	replacement := event.Event{ID: e.ID, Title: "B", Start: e.Start, End: e.End}
	got, err := s.Update(replacement)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Description != "" || got.Title != "B" {
		t.Fatalf("expected full replacement, got %+v", got)
	}
	stored, _ := s.Get(e.ID)
	if stored.Description != "" || stored.Color != event.DefaultColor {
		t.Fatalf("expected stored replacement, got %+v", stored)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	sink := &recordingSink{}
	s := newTestStore(sink)
	s.Add(draftAt("A", march10))
	before := s.All()

	_, err := s.Update(event.Event{ID: "nope", Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "nope" {
		t.Fatalf("expected NotFoundError for nope, got %v", err)
	}
	if !reflect.DeepEqual(before, s.All()) {
		t.Fatalf("collection changed")
	}
	if len(sink.writes) != 1 {
		t.Fatalf("expected no write for failed update")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	s := newTestStore(sink)
	a, _ := s.Add(draftAt("A", march10))
	b, _ := s.Add(draftAt("B", march10))

	if err := s.Delete("missing"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	if s.Len() != 2 || len(sink.writes) != 2 {
		t.Fatalf("expected unknown delete to be a no-op")
	}

	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	all := s.All()
	if len(all) != 1 || all[0].ID != b.ID {
		t.Fatalf("unexpected remaining events %+v", all)
	}
}

func TestEventsOnDayUsesStartOnly(t *testing.T) {
	s := newTestStore(nil)
	overnight, _ := s.Add(event.Draft{
		Title: "Overnight",
		Start: event.At(time.Date(2024, time.March, 10, 22, 0, 0, 0, time.Local)),
		End:   event.At(time.Date(2024, time.March, 11, 2, 0, 0, 0, time.Local)),
	})
	s.Add(draftAt("Next day", time.Date(2024, time.March, 11, 8, 0, 0, 0, time.Local)))

	on10 := s.EventsOnDay(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local))
	if len(on10) != 1 || on10[0].ID != overnight.ID {
		t.Fatalf("unexpected events on the 10th: %+v", on10)
	}
	on11 := s.EventsOnDay(time.Date(2024, time.March, 11, 23, 0, 0, 0, time.Local))
	if len(on11) != 1 || on11[0].Title != "Next day" {
		t.Fatalf("expected overnight event attributed to start day only, got %+v", on11)
	}
	if got := s.EventsOnDay(time.Date(2024, time.March, 12, 0, 0, 0, 0, time.Local)); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := newTestStore(nil)
	s.Add(draftAt("A", march10))
	all := s.All()
	all[0].Title = "mutated"
	if got := s.All()[0].Title; got != "A" {
		t.Fatalf("All leaked internal storage, title now %q", got)
	}
}

func TestPersistFailureRevertsByDefault(t *testing.T) {
	sink := &recordingSink{}
	s := newTestStore(sink)
	a, _ := s.Add(draftAt("A", march10))
	before := s.All()

	sink.fail = errors.New("disk full")

	_, err := s.Add(draftAt("B", march10))
	var perr *PersistenceError
	if !errors.As(err, &perr) || perr.Op != "add" || !errors.Is(err, sink.fail) {
		t.Fatalf("expected PersistenceError wrapping disk full, got %v", err)
	}
	if !reflect.DeepEqual(before, s.All()) {
		t.Fatalf("add not reverted: %+v", s.All())
	}

	changed := a
	changed.Title = "changed"
	if _, err := s.Update(changed); err == nil {
		t.Fatal("expected update to fail")
	}
	if got, _ := s.Get(a.ID); got.Title != "A" {
		t.Fatalf("update not reverted: %+v", got)
	}

	if err := s.Delete(a.ID); err == nil {
		t.Fatal("expected delete to fail")
	}
	if _, ok := s.Get(a.ID); !ok {
		t.Fatal("delete not reverted")
	}
}

func TestPersistFailureOptimisticKeepsChange(t *testing.T) {
	sink := &recordingSink{fail: errors.New("read-only")}
	s := New(Options{Sink: sink, Optimistic: true, NewID: sequentialIDs(), Log: quietLogger()})
	e, err := s.Add(draftAt("A", march10))
	if err != nil {
		t.Fatalf("optimistic add should not fail: %v", err)
	}
	if _, ok := s.Get(e.ID); !ok {
		t.Fatal("expected event kept in memory")
	}
}

func TestReplaceDoesNotPersist(t *testing.T) {
	sink := &recordingSink{}
	s := newTestStore(sink)
	s.Replace([]event.Event{{ID: "x", Title: "X", Start: event.At(march10), End: event.At(march10)}})
	if s.Len() != 1 || len(sink.writes) != 0 {
		t.Fatalf("unexpected state after replace: len=%d writes=%d", s.Len(), len(sink.writes))
	}
	if _, err := s.Update(event.Event{ID: "x", Title: "Y"}); err != nil {
		t.Fatalf("update loaded event: %v", err)
	}
}
