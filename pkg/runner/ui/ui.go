package ui

import (
	"context"
	"errors"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/lookup"
	"tableflip.dev/monthcal/pkg/store"
	teaui "tableflip.dev/monthcal/pkg/tui/app"
)

type UI struct {
	Calendar    *app.Controller
	Persistence store.Persistence
	// Demo fills an in-memory calendar with sample events instead.
	Demo bool
}

func (d *UI) Do(ctx context.Context) error {
	if d.Demo {
		p := store.NewMemory()
		cal, err := app.New(p, app.Options{
			Holidays: lookup.NewHolidays(),
			Weather:  lookup.Forecast{Seed: "demo"},
		})
		if err != nil {
			return err
		}
		for _, draft := range StaticDemo(cal.Today()) {
			if _, err := cal.AddEvent(draft); err != nil {
				return err
			}
		}
		d.Calendar, d.Persistence = cal, p
	}
	if d.Calendar == nil {
		return errors.New("can not start ui, no calendar loaded")
	}
	return teaui.Run(d.Calendar, d.Persistence)
}
