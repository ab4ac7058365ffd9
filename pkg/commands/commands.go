package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/monthcal/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	co = &options.CalendarOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "monthcal",
		Short: base.Wrap80("A month calendar on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddCalendarArgs(cmd, co)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addMove(topLevel)
	addNav(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
