package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"toolbridge/internal/channel"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the agent from the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := resolveSecrets(cfg); err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ag, _, err := buildAgent(st)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		mgr := channel.NewManager()
		mgr.Register(channel.NewConsoleChannel())
		if err := mgr.StartAll(ctx); err != nil {
			return err
		}
		routeChannels(ctx, mgr, ag)

		<-ctx.Done()
		mgr.StopAll(cmd.Context())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
