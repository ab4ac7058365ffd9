package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/monthcal/pkg/runner/info"
	"tableflip.dev/monthcal/pkg/runner/key"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the calendar and where it is stored.",
		Example: `
monthcal info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := co.Config()
			if err != nil {
				return oo.HandleError(err)
			}
			c, p, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
				Calendar:    c,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the grid markers, weather symbols and colors",
		Example: `
monthcal key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			err := k.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
