package cli

import (
	"fmt"
	"time"

	"github.com/MKhiriev/hashtrack/internal/cli/render"
	"github.com/MKhiriev/hashtrack/internal/client"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/spf13/cobra"
)

func newStatusCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the user of the current session",
		Args:  exactArgs(0, "status takes no arguments"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.run(cmd, func(app *client.App, printer render.Printer) error {
				user, err := app.Services.SessionService.Status(cmd.Context())
				if err != nil {
					return err
				}
				return printer.User(user)
			})
		},
	}
}

func newLoginCommand(s *rootState) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create a session for the CLI",
		Long: `Create a session for the CLI.

The email and password are prompted for unless given as flags. The password
is read without echo when stdin is a terminal.`,
		Args: exactArgs(0, "login takes no arguments"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.run(cmd, func(app *client.App, printer render.Printer) error {
				prompt := newPrompter(s.streams.In, s.streams.Err)

				var err error
				user, secret := email, password
				if user == "" {
					if user, err = prompt.Line("Email: "); err != nil {
						return err
					}
				}
				if secret == "" {
					if secret, err = prompt.Secret("Password: "); err != nil {
						return err
					}
				}

				session, err := app.Services.SessionService.Login(cmd.Context(), user, secret)
				if err != nil {
					return err
				}
				if err = app.Tokens.Save(session.Token); err != nil {
					return fmt.Errorf("save token: %w", err)
				}

				if session.ExpiresAt != nil {
					logger.FromContext(cmd.Context()).Info().
						Time("expires_at", session.ExpiresAt.In(time.UTC)).
						Msg("session stored")
				}

				return printer.Message("Login succeeded!")
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted for when empty)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted for when empty)")

	return cmd
}

func newLogoutCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete the current session",
		Args:  exactArgs(0, "logout takes no arguments"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.run(cmd, func(app *client.App, printer render.Printer) error {
				if err := app.Services.SessionService.Logout(); err != nil {
					return err
				}
				return printer.Message("Logged out.")
			})
		},
	}
}
