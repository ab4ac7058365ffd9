package move

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/printers"
)

// Move reschedules an event onto another day (To) or by a relative
// offset (By). Exactly one of them is set.
type Move struct {
	Calendar *app.Controller
	ID       string
	To       *time.Time
	By       time.Duration
	ShowID   bool
	JSON     bool
	Out      io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not move, no calendar loaded")
	}
	if (n.To == nil) == (n.By == 0) {
		return errors.New("move needs exactly one of a target day or an offset")
	}

	var (
		e   event.Event
		err error
	)
	if n.To != nil {
		e, err = n.Calendar.Move(n.ID, *n.To)
	} else {
		e, err = n.Calendar.MoveBy(n.ID, n.By)
	}
	if err != nil {
		return err
	}

	pp := printers.New(n.Out)
	pp.ShowID = n.ShowID
	if n.JSON {
		return pp.JSON(e)
	}
	pp.Event(e)
	return nil
}
