package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthcal/pkg/commands/options"
	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event to the selected day",
		Long: base.Wrap80("Add an event. Without a time it takes 09:00 to 10:00 " +
			"on the selected day, or on the day given with --on."),
		Example: `
monthcal add Dentist
monthcal add Team lunch --on=tomorrow --start=12:30 --for=1h30m
monthcal add Offsite --on=2024-4-2 --all-day --color=#22c55e
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			eo.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, _, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}

			day := c.SelectedDate()
			if d, ok, err := on.GetOn(c.Today()); err != nil {
				return oo.HandleError(err)
			} else if ok {
				day = d
			}
			draft := event.NewDraft(day)
			if err := eo.Apply(&draft, time.Time{}); err != nil {
				return oo.HandleError(err)
			}
			if eo.AllDay && eo.Start == "" {
				start := dategrid.StartOfDay(day)
				draft.Start = event.At(start)
				draft.End = event.At(dategrid.AddDays(start, 1))
			}

			s := add.Add{
				Calendar: c,
				Draft:    draft,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
