package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/monthcal/pkg/export"
	runexport "tableflip.dev/monthcal/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var format, out string

	formats := make([]string, 0, len(export.Formats))
	for _, f := range export.Formats {
		formats = append(formats, string(f))
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every event as json, csv, ics or pdf",
		Example: `
monthcal export
monthcal export --format=ics --out=-
monthcal export --out=march.pdf
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if format == "" {
				format = string(export.JSON)
				if ext := filepath.Ext(out); ext != "" {
					format = ext
				}
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return oo.HandleError(err)
			}
			c, _, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}
			s := runexport.Export{
				Calendar: c,
				Format:   f,
				Path:     out,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "",
		"Export format, one of "+strings.Join(formats, ", ")+". Defaults to the --out extension, or json.")
	cmd.Flags().StringVarP(&out, "out", "o", "",
		`File to write, "-" for stdout. Defaults to calendar-events.<format>.`)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file.ics>",
		Short: "Add the events of an iCalendar file",
		Example: `
monthcal import holidays.ics
curl -s https://example.com/team.ics | monthcal import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, _, err := co.Open()
			if err != nil {
				return oo.HandleError(err)
			}
			s := runexport.Import{
				Calendar: c,
				Path:     args[0],
				In:       os.Stdin,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
