package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Calendar    *app.Controller
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if file := store.ConfigFile(n.Config); file != "" {
		_, _ = fmt.Fprintln(out, "Config.file:", file)
	} else {
		_, _ = fmt.Fprintln(out, "Config.file: none, using defaults")
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.optimistic:", n.Config.Optimistic())
	_, _ = fmt.Fprintln(out, "Config.holidays:", n.Config.Holidays())
	_, _ = fmt.Fprintln(out, "Config.weather:", n.Config.Weather())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	_, _ = fmt.Fprintf(out, "Keys:\n")
	found := 0
	for _, k := range n.Persistence.Keys(ctx) {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "nothing saved yet")
	}

	if n.Calendar != nil {
		_, _ = fmt.Fprintf(out, "Events: %d\n", len(n.Calendar.Events()))
		_, _ = fmt.Fprintf(out, "Selected: %s (%s view)\n",
			n.Calendar.SelectedDate().Format("Mon, Jan 2, 2006"), n.Calendar.View())
	}
	return nil
}
