package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthcal/pkg/commands/options"
	"tableflip.dev/monthcal/pkg/runner/move"
	"tableflip.dev/monthcal/pkg/timeutil"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var to, by string

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Reschedule an event, keeping its time of day and length",
		Example: `
monthcal move <id> --to=tomorrow
monthcal move <id> --to=3/28
monthcal move <id> --by=-1w
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one event id")
			}
			if (to == "") == (by == "") {
				return errors.New("requires exactly one of --to or --by")
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

			s := move.Move{
				Calendar: c,
				ID:       io.ID,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
			}
			if to != "" {
				day, err := options.ParseDate(to, c.Today())
				if err != nil {
					return oo.HandleError(err)
				}
				s.To = &day
			} else {
				if s.By, err = timeutil.ParseDuration(by); err != nil {
					return oo.HandleError(err)
				}
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&to, "to", "",
		`Day to move to, example: --to=2024-3-28, --to=3/28 or --to=tomorrow.`)
	cmd.Flags().StringVar(&by, "by", "",
		`Offset to move by, example: --by=2d, --by=-1w or --by=90m.`)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
