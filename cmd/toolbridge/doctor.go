package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the configured LLM provider is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := resolveSecrets(cfg); err != nil {
			return err
		}

		ag, _, err := buildAgent(nil)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := ag.TestConnection(ctx); err != nil {
			return fmt.Errorf("provider check failed: %w", err)
		}
		fmt.Println("provider reachable")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
