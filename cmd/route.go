package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRouteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route <path>",
		Short: "Show where the navigation guard sends a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decision, err := app.navigator.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if decision.Admitted() {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "admit %s\n", decision.Route.Path)
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "redirect %s -> %s\n", decision.Route.Path, decision.RedirectTo)
			return err
		},
	}
}
