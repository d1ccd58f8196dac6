package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/skycircle/internal/application"
	"github.com/bnema/skycircle/internal/domain"
	"github.com/spf13/cobra"
)

const appPasswordEnv = "SKYCIRCLE_APP_PASSWORD"

func newLoginCmd(app *app) *cobra.Command {
	var identifier string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a handle and an app password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = envOrDefault(appPasswordEnv, "")
			}
			session, err := app.auth.Login(cmd.Context(), application.LoginCommand{
				Identifier: identifier,
				Password:   password,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as @%s (%s)\n", session.Handle, session.DID)
			return nil
		},
	}

	cmd.Flags().StringVar(&identifier, "identifier", "", "Handle or email of the account")
	cmd.Flags().StringVar(&password, "password", "", "App password (or set "+appPasswordEnv+")")
	_ = cmd.MarkFlagRequired("identifier")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.auth.Current(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrNotLoggedIn) {
					return fmt.Errorf("%w: run skycircle login", err)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "@%s (%s)\n", session.Handle, session.DID)
			return nil
		},
	}
}
