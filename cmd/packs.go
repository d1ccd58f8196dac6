package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/skycircle/internal/adapters/render/ranking"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newPacksCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packs",
		Short: "Inspect published starter packs",
	}

	cmd.AddCommand(newPacksListCmd(app), newPacksShowCmd(app))

	return cmd
}

func newPacksListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List starter packs published from this machine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			packs, err := app.packs.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list starter packs: %w", err)
			}

			rendered, err := ranking.RenderPacks(packs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newPacksShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show AT-URI",
		Short: "Show a starter pack as the network reports it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.publishService(cmd.Context())
			if err != nil {
				return err
			}

			view, err := service.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n", view.Name)
			if view.Description != "" {
				_, _ = fmt.Fprintf(out, "%s\n", view.Description)
			}
			_, _ = fmt.Fprintf(out, "by @%s (%s)\n", view.CreatorHandle, view.CreatorDID)
			_, _ = fmt.Fprintf(out, "members: %d, joined: %d\n", view.ListItemCount, view.JoinedAllTime)
			if len(view.SampleHandles) > 0 {
				_, _ = fmt.Fprintf(out, "sample: @%s\n", strings.Join(view.SampleHandles, ", @"))
			}
			if !view.IndexedAt.IsZero() {
				_, _ = fmt.Fprintf(out, "indexed %s\n", humanize.Time(view.IndexedAt))
			}
			return nil
		},
	}
}
