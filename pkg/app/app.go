// Package app composes the calendar: the view cursor, the event store and
// drag rescheduling. CLIs, the TUI and the MCP server share it.
package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/eventstore"
	"tableflip.dev/monthcal/pkg/lookup"
	"tableflip.dev/monthcal/pkg/reschedule"
	"tableflip.dev/monthcal/pkg/state"
	"tableflip.dev/monthcal/pkg/store"
	"tableflip.dev/monthcal/pkg/timeutil"
)

// Direction moves the month cursor.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// Options configures a Controller.
type Options struct {
	Clock      timeutil.Clock
	Holidays   lookup.HolidayLookup
	Weather    lookup.WeatherLookup
	Optimistic bool
	NewID      func() string
	Log        logrus.FieldLogger
}

// Day is one grid cell with everything shown on it.
type Day struct {
	dategrid.Cell
	Events  []event.Event   `json:"events"`
	Holiday string          `json:"holiday,omitempty"`
	Weather *lookup.Weather `json:"weather,omitempty"`
}

// Controller is safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	persistence store.Persistence
	events      *eventstore.Store
	clock       timeutil.Clock
	holidays    lookup.HolidayLookup
	weather     lookup.WeatherLookup
	optimistic  bool
	log         logrus.FieldLogger

	selected time.Time
	view     state.ViewMode
}

// New loads the saved calendar state from p. A nil p keeps everything in
// memory.
func New(p store.Persistence, opts Options) (*Controller, error) {
	c := &Controller{
		persistence: p,
		clock:       opts.Clock,
		holidays:    opts.Holidays,
		weather:     opts.Weather,
		optimistic:  opts.Optimistic,
		log:         opts.Log,
		view:        state.ViewMonth,
	}
	if c.clock == nil {
		c.clock = timeutil.SystemClock{}
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	c.log = c.log.WithField("component", "app")
	c.events = eventstore.New(eventstore.Options{
		Sink:       eventstore.SinkFunc(c.persistEvents),
		Optimistic: opts.Optimistic,
		NewID:      opts.NewID,
		Log:        c.log,
	})
	c.selected = dategrid.StartOfDay(c.clock.Now())

	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) load() error {
	if c.persistence == nil {
		return nil
	}
	b, err := c.persistence.Load(state.Key)
	if errors.Is(err, store.ErrNotFound) {
		c.log.Debug("app: no saved state, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("app: load state: %w", err)
	}
	snap, err := state.Decode(b)
	if err != nil {
		return fmt.Errorf("app: load state: %w", err)
	}
	c.events.Replace(snap.Events)
	if !snap.SelectedDate.IsZero() {
		c.selected = snap.SelectedDate.Local()
	}
	c.view = snap.View
	return nil
}

// Reload re-reads the saved state, picking up changes made elsewhere.
func (c *Controller) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Debug("app: reloading state")
	return c.load()
}

// persistEvents is the event store's sink. Callers hold c.mu.
func (c *Controller) persistEvents(events []event.Event) error {
	return c.save(events, c.selected, c.view)
}

func (c *Controller) save(events []event.Event, selected time.Time, view state.ViewMode) error {
	if c.persistence == nil {
		return nil
	}
	b, err := state.Encode(state.Snapshot{
		Events:       events,
		SelectedDate: event.At(selected),
		View:         view,
	})
	if err != nil {
		return err
	}
	return c.persistence.Save(state.Key, b)
}

// setViewState moves the cursor or view and persists it, reverting on a
// failed write unless optimistic.
func (c *Controller) setViewState(selected time.Time, view state.ViewMode) error {
	prevSelected, prevView := c.selected, c.view
	c.selected, c.view = selected, view
	err := c.save(c.events.All(), selected, view)
	if err == nil {
		return nil
	}
	if c.optimistic {
		c.log.WithError(err).WithField("op", "view change").Warn("app: persist failed, keeping in-memory change")
		return nil
	}
	c.log.WithError(err).WithField("op", "view change").Error("app: persist failed, change reverted")
	c.selected, c.view = prevSelected, prevView
	return &eventstore.PersistenceError{Op: "view change", Err: err}
}

// Today is local midnight of the clock's current day.
func (c *Controller) Today() time.Time {
	return dategrid.StartOfDay(c.clock.Now())
}

// SelectedDate is the day currently focused.
func (c *Controller) SelectedDate() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// View is the current presentation mode.
func (c *Controller) View() state.ViewMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Navigate moves the selection to the first day of the adjacent month.
func (c *Controller) Navigate(dir Direction) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	step := 1
	if dir == Previous {
		step = -1
	}
	return c.setViewState(dategrid.AddMonths(c.selected, step), c.view)
}

// SelectDay focuses date exactly.
func (c *Controller) SelectDay(date time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setViewState(date, c.view)
}

// SetView switches between month, week and day presentation.
func (c *Controller) SetView(mode state.ViewMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := state.ParseViewMode(string(mode)); err != nil {
		return err
	}
	return c.setViewState(c.selected, mode)
}

// AddEvent stores a new event built from draft.
func (c *Controller) AddEvent(draft event.Draft) (event.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, err := c.events.Add(draft)
	if err == nil {
		c.log.WithField("event_id", e.ID).Debug("app: event added")
	}
	return e, err
}

// UpdateEvent replaces the event with e.ID.
func (c *Controller) UpdateEvent(e event.Event) (event.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.Update(e)
}

// DeleteEvent removes the event with id; unknown ids are ignored.
func (c *Controller) DeleteEvent(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.Delete(id)
}

// Event looks up an event by id.
func (c *Controller) Event(id string) (event.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.Get(id)
}

// Events returns every event in insertion order.
func (c *Controller) Events() []event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.All()
}

// EventsOnDay returns the events starting on date.
func (c *Controller) EventsOnDay(date time.Time) []event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.EventsOnDay(date)
}

// OnDrop reschedules dragged from source to target and stores the result.
func (c *Controller) OnDrop(dragged event.Event, source, target time.Time) (event.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.Update(reschedule.Reschedule(dragged, source, target))
}

// Transfer builds the drag payload for the event with id, sourced from the
// day it starts on.
func (c *Controller) Transfer(id string) ([]byte, error) {
	e, ok := c.Event(id)
	if !ok {
		return nil, &eventstore.NotFoundError{ID: id}
	}
	return reschedule.NewTransfer(e, dategrid.StartOfDay(e.Start.Time)).Encode()
}

// Drop applies a serialized drag payload onto target. Malformed payloads and
// unknown events are logged and ignored; moved reports whether anything
// changed.
func (c *Controller) Drop(payload []byte, target time.Time) (e event.Event, moved bool, err error) {
	r := reschedule.ParseTransfer(payload)
	if !r.OK() {
		c.log.WithError(r.Err).Warn("app: error dropping event")
		return event.Event{}, false, nil
	}
	dragged, ok := c.Event(r.Transfer.EventID)
	if !ok {
		c.log.WithField("event_id", r.Transfer.EventID).Warn("app: dropped event no longer exists")
		return event.Event{}, false, nil
	}
	e, err = c.OnDrop(dragged, r.Transfer.SourceDate, target)
	if err != nil {
		return event.Event{}, false, err
	}
	return e, true, nil
}

// Move drops the event with id onto the target day, keeping its time of day.
func (c *Controller) Move(id string, target time.Time) (event.Event, error) {
	e, ok := c.Event(id)
	if !ok {
		return event.Event{}, &eventstore.NotFoundError{ID: id}
	}
	return c.OnDrop(e, dategrid.StartOfDay(e.Start.Time), dategrid.StartOfDay(target))
}

// MoveBy shifts the event with id by delta.
func (c *Controller) MoveBy(id string, delta time.Duration) (event.Event, error) {
	e, ok := c.Event(id)
	if !ok {
		return event.Event{}, &eventstore.NotFoundError{ID: id}
	}
	return c.OnDrop(e, e.Start.Time, e.Start.Add(delta))
}
