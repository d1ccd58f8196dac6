package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/skycircle/internal/adapters/export"
	"github.com/bnema/skycircle/internal/adapters/render/ranking"
	"github.com/bnema/skycircle/internal/application"
	"github.com/bnema/skycircle/internal/config"
	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newAnalyzeCmd(app *app) *cobra.Command {
	var period string
	var format string
	var output string
	var limit int
	var noHistory bool
	weights := app.cfg.Weights

	cmd := &cobra.Command{
		Use:   "analyze HANDLE",
		Short: "Rank the accounts HANDLE interacts with most",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedPeriod, err := domain.ParsePeriod(period)
			if err != nil {
				return err
			}
			parsedFormat, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := config.ValidateWeights(weights); err != nil {
				return err
			}

			var result application.AnalysisResult
			err = runWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Starting analysis...", func(ctx context.Context, progress ports.ProgressObserver) error {
				var analyzeErr error
				result, analyzeErr = app.analysis.Analyze(ctx, application.AnalyzeCommand{
					Handle:      args[0],
					Period:      parsedPeriod,
					Weights:     weights,
					SaveHistory: !noHistory,
				}, progress)
				return analyzeErr
			})
			if err != nil {
				return err
			}

			return writeRun(cmd.OutOrStdout(), output, parsedFormat, result.Run, ranking.RenderOptions{Limit: limit}, app)
		},
	}

	cmd.Flags().StringVar(&period, "period", string(domain.Period30Days), "Time window (7d|30d|90d|1y|all)")
	cmd.Flags().StringVar(&format, "format", string(export.FormatTable), "Output format (table|json|yaml|csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().IntVar(&limit, "limit", 50, "Rows to show in table output (0 shows all)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not store this run in the local history")
	addWeightFlags(cmd.Flags(), &weights)

	return cmd
}

func addWeightFlags(flags *pflag.FlagSet, weights *domain.ScoringWeights) {
	flags.Float64Var(&weights.Likes, "weight-likes", weights.Likes, "Score per like")
	flags.Float64Var(&weights.Replies, "weight-replies", weights.Replies, "Score per reply")
	flags.Float64Var(&weights.Reposts, "weight-reposts", weights.Reposts, "Score per repost")
	flags.Float64Var(&weights.Mentions, "weight-mentions", weights.Mentions, "Score per mention")
	flags.Float64Var(&weights.Quotes, "weight-quotes", weights.Quotes, "Score per quote")
}

// writeRun prints run to stdout, or to path when one is given.
func writeRun(stdout io.Writer, path string, format export.Format, run domain.AnalysisRun, opts ranking.RenderOptions, app *app) (err error) {
	out := stdout
	if path != "" {
		file, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("create output file: %w", createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("close output file: %w", closeErr))
			}
		}()
		out = file
	}

	if format != export.FormatTable {
		return export.Write(out, format, run)
	}

	rendered, err := app.rankingRenderer(run, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}
