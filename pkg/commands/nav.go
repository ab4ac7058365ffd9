package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/commands/options"
	"tableflip.dev/monthcal/pkg/runner/nav"
	"tableflip.dev/monthcal/pkg/state"
)

func addNav(topLevel *cobra.Command) {
	addStep(topLevel, "next", app.Next, "Select the first day of the next month")
	addStep(topLevel, "prev", app.Previous, "Select the first day of the previous month")
	addSelect(topLevel)
	addView(topLevel)
}

func navCmd(cmd *cobra.Command, quiet *bool) {
	cmd.Flags().BoolVarP(quiet, "quiet", "q", false, "Do not print the calendar afterwards.")
	base.AddOutputArg(cmd, oo)
}

func runNav(cmd *cobra.Command, s nav.Nav) error {
	cmd.SilenceUsage = true
	err := s.Do(context.Background())
	return oo.HandleError(err)
}

func addStep(topLevel *cobra.Command, use string, dir app.Direction, short string) {
	var quiet bool
	aliases := []string{}
	if dir == app.Previous {
		aliases = append(aliases, "previous")
	}

	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}
			return runNav(cmd, nav.Nav{Calendar: c, Step: dir, Quiet: quiet, JSON: oo.JSON})
		},
	}

	navCmd(cmd, &quiet)
	topLevel.AddCommand(cmd)
}

func addSelect(topLevel *cobra.Command) {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "select <date>",
		Short: "Select a day",
		Example: `
monthcal select today
monthcal select 2024-12-25
monthcal select 3/14
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}
			day, err := options.ParseDate(args[0], c.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			return runNav(cmd, nav.Nav{Calendar: c, Select: &day, Quiet: quiet, JSON: oo.JSON})
		},
	}

	navCmd(cmd, &quiet)
	topLevel.AddCommand(cmd)
}

func addView(topLevel *cobra.Command) {
	var quiet bool
	modes := []string{string(state.ViewMonth), string(state.ViewWeek), string(state.ViewDay)}

	cmd := &cobra.Command{
		Use:       "view <" + strings.Join(modes, "|") + ">",
		Short:     "Set the saved view mode",
		ValidArgs: modes,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a view mode")
			}
			_, err := state.ParseViewMode(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}
			mode, _ := state.ParseViewMode(args[0])
			return runNav(cmd, nav.Nav{Calendar: c, View: mode, Quiet: quiet, JSON: oo.JSON})
		},
	}

	navCmd(cmd, &quiet)
	topLevel.AddCommand(cmd)
}
