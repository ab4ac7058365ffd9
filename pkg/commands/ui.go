package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/monthcal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	var demo bool

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
monthcal ui
monthcal ui --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			i := ui.UI{Demo: demo}
			if !demo {
				c, p, err := co.Open()
				if err != nil {
					return err
				}
				i.Calendar, i.Persistence = c, p
			}
			return i.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Start with sample events in a calendar that is not saved.")
	topLevel.AddCommand(cmd)
}
