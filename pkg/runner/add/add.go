package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/printers"
)

type Add struct {
	Calendar *app.Controller
	Draft    event.Draft
	ShowID   bool
	JSON     bool
	Out      io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not add, no calendar loaded")
	}

	e, err := n.Calendar.AddEvent(n.Draft)
	if err != nil {
		return err
	}

	pp := printers.New(n.Out)
	pp.ShowID = n.ShowID
	if n.JSON {
		return pp.JSON(e)
	}
	day := e.Start.Local()
	all := n.Calendar.EventsOnDay(day)
	pp.TitleWithCount(day.Format("Mon, Jan 2, 2006"), len(all))
	pp.Events(all...)
	return nil
}
