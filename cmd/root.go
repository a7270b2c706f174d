package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chatline",
		Short:         "chatline: authenticated terminal client for a chat backend",
		Long:          "chatline logs in to a chat backend, keeps the issued token in local secret storage, and streams the authenticated real-time channel to the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(errWriter{cmd: rootCmd})
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newTokenCmd(app),
		newRouteCmd(app),
		newChatCmd(app),
	)

	return rootCmd
}
