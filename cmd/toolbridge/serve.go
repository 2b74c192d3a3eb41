package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"toolbridge/internal/channel"
	"toolbridge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the invocation endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := resolveSecrets(cfg); err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return fmt.Errorf("open invocation log: %w", err)
		}
		defer st.Close()

		ag, _, err := buildAgent(st)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg.Server.Host, cfg.Server.Port, ag, st)
		srv.Start()

		// Optional extra surfaces next to HTTP.
		chanMgr := channel.NewManager()
		if tg := cfg.Channels.Telegram; tg != nil && tg.Token != "" {
			chanMgr.Register(channel.NewTelegramChannel(channel.TelegramConfig{
				Token:      tg.Token,
				AllowedIDs: tg.AllowedIDs,
			}))
		}
		if err := chanMgr.StartAll(ctx); err != nil {
			return err
		}
		routeChannels(ctx, chanMgr, ag)

		<-ctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		chanMgr.StopAll(shutdownCtx)
		return srv.Stop(shutdownCtx)
	},
}

// routeChannels sends every inbound channel message through one agent
// invocation and replies with the result. Errors become error-text replies,
// mirroring the HTTP surface.
func routeChannels(ctx context.Context, mgr *channel.Manager, ag server.Invoker) {
	for name, running := range mgr.List() {
		if !running {
			continue
		}
		ch, ok := mgr.Get(name)
		if !ok {
			continue
		}
		ch.OnMessage(func(msg channel.InboundMessage) {
			result, err := ag.Invoke(ctx, msg.ChannelName+":"+msg.ChatID, msg.Text)
			if err != nil {
				result = "Error: " + err.Error()
			}
			if err := ch.Send(ctx, channel.OutboundMessage{ChatID: msg.ChatID, Text: result}); err != nil {
				slog.Error("failed to send reply", "channel", msg.ChannelName, "error", err)
			}
		})
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
