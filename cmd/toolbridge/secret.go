package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"toolbridge/internal/security"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage API keys in the OS keyring",
	Long: fmt.Sprintf(`Store secrets outside the config file. Set the corresponding config
field to %q and the value is resolved from the keyring at startup.

Known secret names: %s, %s, %s.`,
		keyringPlaceholder, secretNameLLMKey, secretNameFallbackKey, secretNameTelegramToken),
}

var secretSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Store a secret (value read from stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(os.Stderr, "Value for %s: ", args[0])
		reader := bufio.NewReader(os.Stdin)
		value, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("empty value")
		}

		ks, err := security.NewKeyStore(nil)
		if err != nil {
			return err
		}
		if err := ks.Set(args[0], value); err != nil {
			return err
		}
		fmt.Printf("stored %s (%s)\n", args[0], security.MaskKey(value))
		return nil
	},
}

var secretDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ks, err := security.NewKeyStore(nil)
		if err != nil {
			return err
		}
		return ks.Delete(args[0])
	},
}

func init() {
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretDeleteCmd)
	rootCmd.AddCommand(secretCmd)
}
