package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toolbridge/internal/client"
)

var demoURL string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Drive a running endpoint with prompts that prove tools execute",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(demoURL)
		if err := c.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("endpoint not reachable at %s: %w", demoURL, err)
		}
		return client.NewDemoRunner(c, os.Stdout).Run(cmd.Context())
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoURL, "url", "http://localhost:8080", "base URL of the invocation endpoint")
	rootCmd.AddCommand(demoCmd)
}
