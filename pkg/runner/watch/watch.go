// Package watch reprints the calendar whenever its saved state changes.
package watch

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/runner/log"
	"tableflip.dev/monthcal/pkg/state"
	"tableflip.dev/monthcal/pkg/store"
)

type Watch struct {
	Calendar    *app.Controller
	Persistence store.Persistence
	ShowID      bool
	Out         io.Writer
	Log         logrus.FieldLogger
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Calendar == nil || n.Persistence == nil {
		return errors.New("can not watch, no calendar loaded")
	}
	lg := n.Log
	if lg == nil {
		lg = logrus.StandardLogger()
	}

	ch, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	show := log.Log{Calendar: n.Calendar, ShowID: n.ShowID, Out: n.Out}
	if err := show.Do(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-ch:
			if !ok {
				return nil
			}
			if !c.Touches(state.Key) {
				continue
			}
			if err := n.Calendar.Reload(); err != nil {
				lg.WithError(err).Warn("watch: reload failed")
				continue
			}
			if err := show.Do(ctx); err != nil {
				return err
			}
		}
	}
}
