// Package mcp provides the Model Context Protocol server integration for monthcal.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/eventstore"
	"tableflip.dev/monthcal/pkg/lookup"
	"tableflip.dev/monthcal/pkg/state"
	"tableflip.dev/monthcal/pkg/timeutil"
)

const layoutDay = "2006-01-02"

// Service adapts the calendar controller to MCP tools and resources.
type Service struct {
	Calendar *app.Controller
}

// ErrEventNotFound is returned when an event id is unknown.
var ErrEventNotFound = eventstore.ErrNotFound

// CreateEventOptions captures the parameters used to create a new event.
type CreateEventOptions struct {
	Title       string
	Description string
	// Day places a default 09:00 to 10:00 slot when Start is nil.
	Day      *time.Time
	Start    *time.Time
	End      *time.Time
	Color    string
	IsAllDay bool
}

// UpdateEventOptions changes the non-nil fields of an event.
type UpdateEventOptions struct {
	ID          string
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	Color       *string
	IsAllDay    *bool
}

// MoveEventOptions moves an event to Day, or by Offset such as "2d".
type MoveEventOptions struct {
	ID     string
	Day    *time.Time
	Offset string
}

// EventDTO is a transport-friendly projection of an event.
type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Day         string `json:"day"`
	TimeRange   string `json:"timeRange"`
	Color       string `json:"color"`
	IsAllDay    bool   `json:"isAllDay"`
	StartUnix   int64  `json:"startUnix"`
	EndUnix     int64  `json:"endUnix"`
}

// DayDTO is one calendar cell with its events and annotations.
type DayDTO struct {
	Date           string          `json:"date"`
	Display        string          `json:"display"`
	IsCurrentMonth bool            `json:"isCurrentMonth"`
	IsToday        bool            `json:"isToday"`
	IsWeekend      bool            `json:"isWeekend"`
	IsSelected     bool            `json:"isSelected"`
	Holiday        string          `json:"holiday,omitempty"`
	Weather        *lookup.Weather `json:"weather,omitempty"`
	Events         []EventDTO      `json:"events"`
}

// MonthDTO is the 42-cell grid of a month.
type MonthDTO struct {
	Month    string   `json:"month"`
	Selected string   `json:"selected"`
	View     string   `json:"view"`
	Days     []DayDTO `json:"days"`
}

// ViewStateDTO is the cursor after navigation.
type ViewStateDTO struct {
	Selected string `json:"selected"`
	Month    string `json:"month"`
	View     string `json:"view"`
}

// NewService builds a service wrapper around the calendar.
func NewService(c *app.Controller) *Service {
	return &Service{Calendar: c}
}

func (s *Service) ready() error {
	if s.Calendar == nil {
		return errors.New("calendar is not configured")
	}
	return nil
}

// ListEvents returns events starting within [from, to], both optional, in
// start order.
func (s *Service) ListEvents(ctx context.Context, from, to *time.Time) ([]EventDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	all := s.Calendar.Events()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start.Before(all[j].Start.Time)
	})

	out := make([]EventDTO, 0, len(all))
	for _, e := range all {
		day := dategrid.StartOfDay(e.Start.Time)
		if from != nil && day.Before(dategrid.StartOfDay(*from)) {
			continue
		}
		if to != nil && day.After(dategrid.StartOfDay(*to)) {
			continue
		}
		out = append(out, toEventDTO(e))
	}
	return out, nil
}

// EventByID returns one event.
func (s *Service) EventByID(ctx context.Context, id string) (*EventDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	e, ok := s.Calendar.Event(strings.TrimSpace(id))
	if !ok {
		return nil, &eventstore.NotFoundError{ID: id}
	}
	dto := toEventDTO(e)
	return &dto, nil
}

// Day returns a single day with its events and annotations.
func (s *Service) Day(ctx context.Context, date time.Time) (*DayDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	selected := s.Calendar.SelectedDate()
	for _, d := range s.Calendar.MonthOf(date) {
		if dategrid.IsSameDay(d.Date, date) {
			dto := toDayDTO(d, selected)
			return &dto, nil
		}
	}
	return nil, fmt.Errorf("day %s is outside its own month grid", date.Format(layoutDay))
}

// CreateEvent stores a new event.
func (s *Service) CreateEvent(ctx context.Context, opts CreateEventOptions) (*EventDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	day := s.Calendar.SelectedDate()
	if opts.Day != nil {
		day = *opts.Day
	}
	d := event.NewDraft(day)
	d.Title = opts.Title
	d.Description = opts.Description
	d.IsAllDay = opts.IsAllDay
	if opts.Color != "" {
		d.Color = opts.Color
	}
	if opts.IsAllDay {
		start := dategrid.StartOfDay(day)
		d.Start = event.At(start)
		d.End = event.At(dategrid.AddDays(start, 1))
	}
	if opts.Start != nil {
		length := d.End.Sub(d.Start.Time)
		d.Start = event.At(*opts.Start)
		d.End = event.At(opts.Start.Add(length))
	}
	if opts.End != nil {
		d.End = event.At(*opts.End)
	}

	e, err := s.Calendar.AddEvent(d)
	if err != nil {
		return nil, err
	}
	dto := toEventDTO(e)
	return &dto, nil
}

// UpdateEvent applies the set fields of opts.
func (s *Service) UpdateEvent(ctx context.Context, opts UpdateEventOptions) (*EventDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	e, ok := s.Calendar.Event(opts.ID)
	if !ok {
		return nil, &eventstore.NotFoundError{ID: opts.ID}
	}

	d := e.Draft()
	if opts.Title != nil {
		d.Title = *opts.Title
	}
	if opts.Description != nil {
		d.Description = *opts.Description
	}
	if opts.Color != nil {
		d.Color = *opts.Color
	}
	if opts.IsAllDay != nil {
		d.IsAllDay = *opts.IsAllDay
	}
	if opts.Start != nil {
		d.Start = event.At(*opts.Start)
	}
	if opts.End != nil {
		d.End = event.At(*opts.End)
	}
	if err := event.Validate(d); err != nil {
		return nil, err
	}

	updated, err := s.Calendar.UpdateEvent(d.Build(e.ID))
	if err != nil {
		return nil, err
	}
	dto := toEventDTO(updated)
	return &dto, nil
}

// DeleteEvent removes an event. Unknown ids are not an error.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.Calendar.DeleteEvent(strings.TrimSpace(id))
}

// MoveEvent reschedules an event, keeping its duration.
func (s *Service) MoveEvent(ctx context.Context, opts MoveEventOptions) (*EventDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var (
		e   event.Event
		err error
	)
	switch {
	case opts.Day != nil && opts.Offset != "":
		return nil, errors.New("day and offset are mutually exclusive")
	case opts.Day != nil:
		e, err = s.Calendar.Move(opts.ID, *opts.Day)
	case opts.Offset != "":
		delta, perr := timeutil.ParseDuration(opts.Offset)
		if perr != nil {
			return nil, perr
		}
		e, err = s.Calendar.MoveBy(opts.ID, delta)
	default:
		return nil, errors.New("one of day or offset is required")
	}
	if err != nil {
		return nil, err
	}
	dto := toEventDTO(e)
	return &dto, nil
}

// Navigate moves to the first day of the previous or next month.
func (s *Service) Navigate(ctx context.Context, direction string) (*ViewStateDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var dir app.Direction
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "next", "forward", "+1":
		dir = app.Next
	case "prev", "previous", "back", "-1":
		dir = app.Previous
	default:
		return nil, fmt.Errorf("unknown direction %q (expected next or previous)", direction)
	}
	if err := s.Calendar.Navigate(dir); err != nil {
		return nil, err
	}
	return s.viewState(), nil
}

// SelectDay focuses date.
func (s *Service) SelectDay(ctx context.Context, date time.Time) (*ViewStateDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := s.Calendar.SelectDay(date); err != nil {
		return nil, err
	}
	return s.viewState(), nil
}

// SetView switches the presentation mode.
func (s *Service) SetView(ctx context.Context, view string) (*ViewStateDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	mode, err := state.ParseViewMode(view)
	if err != nil {
		return nil, err
	}
	if err := s.Calendar.SetView(mode); err != nil {
		return nil, err
	}
	return s.viewState(), nil
}

// MonthGrid returns the grid of anchor's month, or the selected month when
// anchor is nil.
func (s *Service) MonthGrid(ctx context.Context, anchor *time.Time) (*MonthDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	selected := s.Calendar.SelectedDate()
	month := selected
	if anchor != nil {
		month = *anchor
	}
	days := s.Calendar.MonthOf(month)
	out := &MonthDTO{
		Month:    month.Format("January 2006"),
		Selected: selected.Format(layoutDay),
		View:     string(s.Calendar.View()),
		Days:     make([]DayDTO, 0, len(days)),
	}
	for _, d := range days {
		out.Days = append(out.Days, toDayDTO(d, selected))
	}
	return out, nil
}

func (s *Service) viewState() *ViewStateDTO {
	selected := s.Calendar.SelectedDate()
	return &ViewStateDTO{
		Selected: selected.Format(layoutDay),
		Month:    selected.Format("January 2006"),
		View:     string(s.Calendar.View()),
	}
}

func toEventDTO(e event.Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start.String(),
		End:         e.End.String(),
		Day:         e.Start.Local().Format(layoutDay),
		TimeRange:   e.TimeRange(),
		Color:       e.Color,
		IsAllDay:    e.IsAllDay,
		StartUnix:   e.Start.Unix(),
		EndUnix:     e.End.Unix(),
	}
}

func toDayDTO(d app.Day, selected time.Time) DayDTO {
	events := make([]EventDTO, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, toEventDTO(e))
	}
	return DayDTO{
		Date:           d.Date.Format(layoutDay),
		Display:        dategrid.FormatDisplayDate(d.Date),
		IsCurrentMonth: d.IsCurrentMonth,
		IsToday:        d.IsToday,
		IsWeekend:      d.IsWeekend,
		IsSelected:     dategrid.IsSameDay(d.Date, selected),
		Holiday:        d.Holiday,
		Weather:        d.Weather,
		Events:         events,
	}
}

// ParseDay reads YYYY-MM-DD as a local day, or any RFC 3339 timestamp.
func ParseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}
	if t, err := time.ParseInLocation(layoutDay, value, time.Local); err == nil {
		return t, nil
	}
	t, err := event.ParseTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC3339)", value)
	}
	return t, nil
}
