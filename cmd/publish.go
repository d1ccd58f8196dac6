package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/skycircle/internal/application"
	"github.com/bnema/skycircle/internal/config"
	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
	"github.com/spf13/cobra"
)

func newPublishCmd(app *app) *cobra.Command {
	var name string
	var description string
	var runID string
	var handle string
	var period string
	var top int
	var exclude []string
	weights := app.cfg.Weights

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish top-ranked accounts as a starter pack",
		Long:  "publish creates a curate list, adds the selected accounts to it and publishes a starter pack pointing at the list. Members come from a stored run (--run) or a fresh analysis (--handle).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (runID == "") == (handle == "") {
				return errors.New("exactly one of --run or --handle is required")
			}
			parsedPeriod, err := domain.ParsePeriod(period)
			if err != nil {
				return err
			}
			if err := config.ValidateWeights(weights); err != nil {
				return err
			}

			service, err := app.publishService(cmd.Context())
			if err != nil {
				return err
			}

			var pack domain.StarterPack
			err = runWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Preparing starter pack...", func(ctx context.Context, progress ports.ProgressObserver) error {
				var publishErr error
				pack, publishErr = service.Publish(ctx, application.PublishCommand{
					Name:        name,
					Description: description,
					RunID:       runID,
					Handle:      handle,
					Period:      parsedPeriod,
					Weights:     weights,
					Top:         top,
					Exclude:     exclude,
				}, progress)
				return publishErr
			})
			if pack.URL != "" {
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "Published %q with %d members\n", pack.Name, pack.Members)
				if pack.Skipped > 0 {
					_, _ = fmt.Fprintf(out, "%d accounts could not be added\n", pack.Skipped)
				}
				_, _ = fmt.Fprintln(out, pack.URL)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Starter pack name (defaults to \"<user>'s interlocutors\")")
	cmd.Flags().StringVar(&description, "description", "", "Starter pack description")
	cmd.Flags().StringVar(&runID, "run", "", "Stored analysis run to take members from")
	cmd.Flags().StringVar(&handle, "handle", "", "Analyze this handle and take members from the result")
	cmd.Flags().StringVar(&period, "period", string(domain.Period30Days), "Time window for --handle (7d|30d|90d|1y|all)")
	cmd.Flags().IntVar(&top, "top", application.MaxPackMembers, "Number of top-ranked accounts to add")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "DIDs or handles to leave out")
	addWeightFlags(cmd.Flags(), &weights)

	return cmd
}
