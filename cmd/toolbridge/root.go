package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toolbridge/internal/config"
	"toolbridge/internal/logger"
)

var (
	cfgLoader *config.Loader
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "toolbridge",
	Short: "An LLM agent wired to deterministic utility tools",
	Long: `toolbridge binds a chat model to a small set of deterministic utility
tools (timestamps, randomness, hashing, date arithmetic, UUIDs) so the model
can delegate computations it cannot perform itself.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfgLoader, err = config.NewLoader()
		if err != nil {
			return fmt.Errorf("config loader: %w", err)
		}
		cfg, err = cfgLoader.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger.Setup(cfg.LogLevel)
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
