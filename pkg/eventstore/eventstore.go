// Package eventstore owns the calendar's event collection.
//
// A Store is not safe for concurrent use; callers serialize access (the app
// Controller does).
package eventstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
)

// ErrNotFound matches NotFoundError with errors.Is.
var ErrNotFound = errors.New("eventstore: event not found")

// NotFoundError is returned when an update names an unknown id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("eventstore: event %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PersistenceError wraps a failed write of the collection.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("eventstore: persist after %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Sink receives the full collection after every mutation.
type Sink interface {
	Persist(events []event.Event) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(events []event.Event) error

func (f SinkFunc) Persist(events []event.Event) error { return f(events) }

// Options configures a Store.
type Options struct {
	// Sink is written after each mutation. Nil disables persistence.
	Sink Sink
	// Optimistic keeps a mutation whose write failed and only logs the
	// failure. By default the mutation is reverted and the error returned.
	Optimistic bool
	// NewID generates event ids. Defaults to random UUIDs.
	NewID func() string
	Log   logrus.FieldLogger
}

// Store holds events in insertion order.
type Store struct {
	events     []event.Event
	sink       Sink
	optimistic bool
	newID      func() string
	log        logrus.FieldLogger
}

// New returns an empty Store.
func New(opts Options) *Store {
	s := &Store{
		events:     []event.Event{},
		sink:       opts.Sink,
		optimistic: opts.Optimistic,
		newID:      opts.NewID,
		log:        opts.Log,
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	return s
}

// Replace swaps in a collection loaded from elsewhere without persisting it.
func (s *Store) Replace(events []event.Event) {
	s.events = append([]event.Event{}, events...)
}

// Add validates draft, assigns a fresh id and appends it.
func (s *Store) Add(draft event.Draft) (event.Event, error) {
	if err := event.Validate(draft); err != nil {
		return event.Event{}, err
	}
	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}
	e := draft.Build(id)

	prev := s.events
	s.events = append(append(make([]event.Event, 0, len(prev)+1), prev...), e)
	if err := s.persist("add", prev); err != nil {
		return event.Event{}, err
	}
	return e, nil
}

// Update replaces the stored event with e.ID by e.
func (s *Store) Update(e event.Event) (event.Event, error) {
	i := s.indexOf(e.ID)
	if i < 0 {
		return event.Event{}, &NotFoundError{ID: e.ID}
	}
	if e.Color == "" {
		e.Color = event.DefaultColor
	}

	prev := s.events
	next := append([]event.Event{}, prev...)
	next[i] = e
	s.events = next
	if err := s.persist("update", prev); err != nil {
		return event.Event{}, err
	}
	return e, nil
}

// Delete removes the event with id. Unknown ids are ignored.
func (s *Store) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	prev := s.events
	next := make([]event.Event, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)
	s.events = next
	return s.persist("delete", prev)
}

// Get returns the event with id.
func (s *Store) Get(id string) (event.Event, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.events[i], true
	}
	return event.Event{}, false
}

// EventsOnDay returns the events starting on day's calendar date. End times
// are not considered.
func (s *Store) EventsOnDay(day time.Time) []event.Event {
	out := []event.Event{}
	for _, e := range s.events {
		if dategrid.IsSameDay(e.Start.Time, day) {
			out = append(out, e)
		}
	}
	return out
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []event.Event {
	return append([]event.Event{}, s.events...)
}

// Len is the number of stored events.
func (s *Store) Len() int {
	return len(s.events)
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

// persist writes the collection, reverting to prev on failure unless the
// store is optimistic.
func (s *Store) persist(op string, prev []event.Event) error {
	if s.sink == nil {
		return nil
	}
	err := s.sink.Persist(s.All())
	if err == nil {
		return nil
	}
	if s.optimistic {
		s.log.WithError(err).WithField("op", op).Warn("eventstore: persist failed, keeping in-memory change")
		return nil
	}
	s.log.WithError(err).WithField("op", op).Error("eventstore: persist failed, change reverted")
	s.events = prev
	return &PersistenceError{Op: op, Err: err}
}
