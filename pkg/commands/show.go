package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthcal/pkg/commands/options"
	"tableflip.dev/monthcal/pkg/runner/log"
	"tableflip.dev/monthcal/pkg/state"
)

func addShow(topLevel *cobra.Command) {
	for _, view := range []struct {
		mode    state.ViewMode
		short   string
		example string
	}{
		{state.ViewMonth, "Show the month grid and the selected day", `
monthcal month
monthcal month --on=2024-12-1
`},
		{state.ViewWeek, "Show the week of the selected day", `
monthcal week
monthcal week --on=tomorrow
`},
		{state.ViewDay, "Show the events of the selected day", `
monthcal day
monthcal day --on=3/14 --show-id
`},
	} {
		addShowView(topLevel, view.mode, view.short, view.example)
	}
}

func addShowView(topLevel *cobra.Command, mode state.ViewMode, short, example string) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     string(mode),
		Short:   short,
		Example: example,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, _, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}

			s := log.Log{
				Calendar: c,
				View:     mode,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
			}
			if day, ok, err := on.GetOn(time.Now()); err != nil {
				return oo.HandleError(err)
			} else if ok {
				s.On = &day
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
