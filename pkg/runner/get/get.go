package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/eventstore"
	"tableflip.dev/monthcal/pkg/printers"
)

// Get prints one event in full, or every event when ID is empty.
type Get struct {
	Calendar *app.Controller
	ID       string
	ShowID   bool
	JSON     bool
	Out      io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not get, no calendar loaded")
	}

	pp := printers.New(n.Out)
	pp.ShowID = n.ShowID

	if n.ID != "" {
		e, ok := n.Calendar.Event(n.ID)
		if !ok {
			return &eventstore.NotFoundError{ID: n.ID}
		}
		if n.JSON {
			return pp.JSON(e)
		}
		pp.Event(e)
		return nil
	}

	all := n.Calendar.Events()
	if n.JSON {
		return pp.JSON(all)
	}
	pp.TitleWithCount("All events", len(all))
	pp.Events(all...)
	return nil
}
