package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/monthcal/pkg/event"
)

const (
	productID = "-//tableflip.dev//monthcal//EN"
	uidDomain = "@monthcal"
	propColor = ical.ComponentProperty("COLOR")
)

// WriteICS writes events as an iCalendar VCALENDAR with one VEVENT each.
func WriteICS(w io.Writer, events []event.Event, now time.Time) error {
	if now.IsZero() {
		now = time.Now()
	}
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		ve := cal.AddEvent(e.ID + uidDomain)
		ve.SetDtStampTime(now)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.IsAllDay {
			ve.SetAllDayStartAt(e.Start.Local())
			end := e.End.Local()
			if !end.After(e.Start.Local()) {
				end = e.Start.Local().AddDate(0, 0, 1)
			}
			ve.SetAllDayEndAt(end)
		} else {
			ve.SetStartAt(e.Start.Time)
			ve.SetEndAt(e.End.Time)
		}
		if e.Color != "" {
			ve.SetProperty(propColor, e.Color)
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// ImportICS reads VEVENTs from r as drafts. Events without a start are
// skipped; a missing end becomes one hour after the start.
func ImportICS(r io.Reader) ([]event.Draft, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("export: parse ics: %w", err)
	}

	drafts := make([]event.Draft, 0)
	for _, ve := range cal.Events() {
		d, ok := draftFromVEvent(ve)
		if !ok {
			continue
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

func draftFromVEvent(ve *ical.VEvent) (event.Draft, bool) {
	var d event.Draft
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		d.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		d.Description = p.Value
	}
	if p := ve.GetProperty(propColor); p != nil {
		d.Color = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return d, false
	}
	d.IsAllDay = !strings.Contains(dtStart.Value, "T")
	if vs, ok := dtStart.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		d.IsAllDay = true
	}

	var start, end time.Time
	var serr, eerr error
	if d.IsAllDay {
		start, serr = ve.GetAllDayStartAt()
		end, eerr = ve.GetAllDayEndAt()
	} else {
		start, serr = ve.GetStartAt()
		end, eerr = ve.GetEndAt()
	}
	if serr != nil || start.IsZero() {
		return d, false
	}
	if eerr != nil || end.IsZero() {
		end = start.Add(time.Hour)
	}
	d.Start = event.At(start)
	d.End = event.At(end)
	if d.Color == "" {
		d.Color = event.DefaultColor
	}
	return d, true
}
