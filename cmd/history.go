package cmd

import (
	"fmt"

	"github.com/bnema/skycircle/internal/adapters/export"
	"github.com/bnema/skycircle/internal/adapters/render/ranking"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect stored analysis runs",
	}

	cmd.AddCommand(newHistoryListCmd(app), newHistoryShowCmd(app))

	return cmd
}

func newHistoryListCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored analysis runs, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := app.analysis.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			rendered, err := ranking.RenderRuns(runs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list (0 lists all)")

	return cmd
}

func newHistoryShowCmd(app *app) *cobra.Command {
	var format string
	var limit int

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show the ranking of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedFormat, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			run, err := app.analysis.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeRun(cmd.OutOrStdout(), "", parsedFormat, run, ranking.RenderOptions{Limit: limit}, app)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatTable), "Output format (table|json|yaml|csv)")
	cmd.Flags().IntVar(&limit, "limit", 50, "Rows to show in table output (0 shows all)")

	return cmd
}
