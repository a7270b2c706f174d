package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/chatline/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stored credential and session settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.credentials.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("load status: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}

			rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{
				Now:     app.now(),
				Server:  app.cfg.Server.BaseURL,
				Channel: app.cfg.Server.WSURL,
				Backend: app.cfg.Storage.Backend,
			})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output status as JSON")

	return cmd
}
