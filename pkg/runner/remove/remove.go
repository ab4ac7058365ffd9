package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/monthcal/pkg/app"
)

// Remove deletes events by id. Ids that are already gone are reported but
// not treated as errors.
type Remove struct {
	Calendar *app.Controller
	IDs      []string
	Out      io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not delete, no calendar loaded")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	faint := color.New(color.Faint)
	for _, id := range n.IDs {
		e, ok := n.Calendar.Event(id)
		if err := n.Calendar.DeleteEvent(id); err != nil {
			return err
		}
		if !ok {
			_, _ = faint.Fprintf(out, "%s already deleted\n", id)
			continue
		}
		_, _ = fmt.Fprintf(out, "deleted %s %s\n", id, e.Title)
	}
	return nil
}
