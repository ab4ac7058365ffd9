package edit

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/commands/options"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/eventstore"
	"tableflip.dev/monthcal/pkg/printers"
)

// Edit rewrites the fields of an existing event.
type Edit struct {
	Calendar *app.Controller
	ID       string
	Changes  options.EventOptions
	// On moves the event to another day, keeping its times.
	On     *time.Time
	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not edit, no calendar loaded")
	}
	e, ok := n.Calendar.Event(n.ID)
	if !ok {
		return &eventstore.NotFoundError{ID: n.ID}
	}

	d := e.Draft()
	var day time.Time
	if n.On != nil {
		day = *n.On
	}
	if err := n.Changes.Apply(&d, day); err != nil {
		return err
	}
	if err := event.Validate(d); err != nil {
		return err
	}

	updated, err := n.Calendar.UpdateEvent(d.Build(e.ID))
	if err != nil {
		return err
	}

	pp := printers.New(n.Out)
	pp.ShowID = n.ShowID
	if n.JSON {
		return pp.JSON(updated)
	}
	pp.Event(updated)
	return nil
}
