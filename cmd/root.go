package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "skycircle",
		Short:         "Rank the Bluesky accounts you interact with most",
		Long:          "skycircle downloads your Bluesky repository, ranks the accounts you like, reply to, repost, quote and mention, and can publish the top of that list as a starter pack.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newAnalyzeCmd(app),
		newPublishCmd(app),
		newPacksCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
