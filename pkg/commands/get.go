package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthcal/pkg/commands/options"
	"tableflip.dev/monthcal/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single event",
		Example: `
monthcal get 6f1c0b8e-1d52-4a43-a0f5-1ad3a0c1f9b1
monthcal get 6f1c0b8e-1d52-4a43-a0f5-1ad3a0c1f9b1 --json
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
			s := get.Get{
				Calendar: c,
				ID:       io.ID,
				ShowID:   true,
				JSON:     oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
