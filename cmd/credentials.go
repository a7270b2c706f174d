package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/chatline/internal/application"
	"github.com/bnema/chatline/internal/domain"
	"github.com/spf13/cobra"
)

type credentialFlags struct {
	username string
	password string
}

func (f *credentialFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.username, "username", "", "Account username")
	cmd.Flags().StringVar(&f.password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
}

func newRegisterCmd(app *app) *cobra.Command {
	var flags credentialFlags

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the chat server",
		Long:  "Create an account on the chat server. Registration does not log in; run `chatline login` afterwards.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.credentials.Restore(cmd.Context())

			err := runExchangeSpinner(cmd.Context(), cmd.ErrOrStderr(), "Registering...", func(ctx context.Context) error {
				_, err := app.credentials.Register(ctx, application.RegisterCommand{
					Username: flags.username,
					Password: flags.password,
				})
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s. Run `chatline login` to sign in.\n", flags.username)
			return err
		},
	}
	flags.bind(cmd)

	return cmd
}

func newLoginCmd(app *app) *cobra.Command {
	var flags credentialFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the issued token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.credentials.Restore(cmd.Context())

			var resp domain.LoginResponse
			err := runExchangeSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging in...", func(ctx context.Context) error {
				var err error
				resp, err = app.credentials.Login(ctx, application.LoginCommand{
					Username: flags.username,
					Password: flags.password,
				})
				return err
			})
			if err != nil {
				return err
			}

			if err := app.credentials.SaveProfile(cmd.Context(), resp.User); err != nil {
				app.logger.Warn().Err(err).Msg("profile cache not updated")
			}

			name := resp.User.Username
			if name == "" {
				name = flags.username
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", name)
			return err
		},
	}
	flags.bind(cmd)

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token and cached profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}

func newTokenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the stored bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, ok := app.credentials.GetToken(cmd.Context())
			if !ok {
				return errors.New("no stored token: run `chatline login`")
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
}
