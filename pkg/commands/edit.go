package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthcal/pkg/commands/options"
	"tableflip.dev/monthcal/pkg/runner/edit"
	"tableflip.dev/monthcal/pkg/runner/remove"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the fields of an event",
		Example: `
monthcal edit <id> --title="Dentist (moved)"
monthcal edit <id> --start=15:00 --end=16:30
monthcal edit <id> --on=2024-3-20
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one event id")
			}
			io.ID = args[0]
			return nil
		},
		ValidArgsFunction: eventCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, _, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}
			s := edit.Edit{
				Calendar: c,
				ID:       io.ID,
				Changes:  *eo,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
			}
			if day, ok, err := on.GetOn(c.Today()); err != nil {
				return oo.HandleError(err)
			} else if ok {
				s.On = &day
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&eo.Title, "title", "", "New title.")
	options.AddEventArgs(cmd, eo)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete events",
		Example: `
monthcal delete <id>
monthcal rm <id> <id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one event id")
			}
			return nil
		},
		ValidArgsFunction: eventCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, _, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}
			s := remove.Remove{
				Calendar: c,
				IDs:      args,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
