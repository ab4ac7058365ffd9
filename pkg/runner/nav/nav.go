// Package nav moves the saved calendar cursor.
package nav

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/runner/log"
	"tableflip.dev/monthcal/pkg/state"
)

// Nav applies at most one of Step, Select or View, then prints the
// calendar from the new position.
type Nav struct {
	Calendar *app.Controller
	Step     app.Direction
	Select   *time.Time
	View     state.ViewMode
	Quiet    bool
	JSON     bool
	Out      io.Writer
}

func (n *Nav) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not navigate, no calendar loaded")
	}

	var err error
	switch {
	case n.Step != 0:
		err = n.Calendar.Navigate(n.Step)
	case n.Select != nil:
		err = n.Calendar.SelectDay(*n.Select)
	case n.View != "":
		err = n.Calendar.SetView(n.View)
	}
	if err != nil {
		return err
	}
	if n.Quiet {
		return nil
	}

	l := log.Log{
		Calendar: n.Calendar,
		JSON:     n.JSON,
		Out:      n.Out,
	}
	return l.Do(ctx)
}
