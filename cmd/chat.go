package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/chatline/internal/adapters/channel"
	statusadapter "github.com/bnema/chatline/internal/adapters/render/status"
	"github.com/bnema/chatline/internal/domain"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the authenticated channel and print inbound messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			decision, err := app.navigator.Resolve(ctx, domain.RouteChat)
			if err != nil {
				return err
			}
			if !decision.Admitted() {
				return fmt.Errorf("%w: run `chatline login`", domain.ErrNotAuthenticated)
			}

			token, ok := app.credentials.GetToken(ctx)
			if !ok {
				return fmt.Errorf("%w: run `chatline login`", domain.ErrNotAuthenticated)
			}

			opts := app.channel
			if cmd.Flags().Changed("capacity") {
				opts.Capacity = capacity
			}
			opts.Observer = printObserver(cmd.OutOrStdout(), app)

			session := channel.NewSession(channel.NewDialer(opts))
			defer func() { _ = session.Close() }()

			handle, err := session.Connect(ctx, token)
			if err != nil {
				return fmt.Errorf("connect channel: %w", err)
			}

			select {
			case <-handle.Done():
				return handle.Err()
			case <-ctx.Done():
				return nil
			}
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 0, "Message log capacity (0 keeps every message)")

	return cmd
}

func printObserver(out io.Writer, app *app) channel.Observer {
	var mu sync.Mutex

	return channel.Observer{
		OnOpen: func(h *channel.Handle) {
			app.logger.Debug().Str("channel", h.ID()).Msg("streaming messages")
		},
		OnMessage: func(_ *channel.Handle, payload string) {
			mu.Lock()
			defer mu.Unlock()
			_, _ = fmt.Fprintln(out, statusadapter.MessageLine(payload, app.now()))
		},
	}
}
