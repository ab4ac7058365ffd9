// Package export writes the calendar to files and reads ICS files into it.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/monthcal/pkg/app"
	calexport "tableflip.dev/monthcal/pkg/export"
)

type Export struct {
	Calendar *app.Controller
	Format   calexport.Format
	// Path is the output file; "-" writes to Out. Empty uses the format's
	// default filename.
	Path string
	Out  io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not export, no calendar loaded")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	opts := calexport.Options{
		Month: n.Calendar.SelectedDate(),
		Now:   n.Calendar.Today(),
	}
	events := n.Calendar.Events()

	if n.Path == "-" {
		return calexport.Write(out, n.Format, events, opts)
	}

	path := n.Path
	if path == "" {
		path = n.Format.Filename()
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := calexport.Write(f, n.Format, events, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "wrote %d events to %s\n", len(events), path)
	return nil
}

// Import adds every event of an ICS file as a new event.
type Import struct {
	Calendar *app.Controller
	Path     string
	In       io.Reader
	Out      io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not import, no calendar loaded")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	in := n.In
	if n.Path != "" && n.Path != "-" {
		f, err := os.Open(n.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		return errors.New("nothing to import from")
	}

	drafts, err := calexport.ImportICS(in)
	if err != nil {
		return err
	}
	for _, d := range drafts {
		if _, err := n.Calendar.AddEvent(d); err != nil {
			return fmt.Errorf("import %q: %w", d.Title, err)
		}
	}
	_, _ = fmt.Fprintf(out, "imported %d events\n", len(drafts))
	return nil
}
