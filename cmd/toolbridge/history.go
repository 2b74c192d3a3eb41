package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent invocations from the local log",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("no invocations recorded yet")
			return nil
		}

		for _, rec := range records {
			tools := "-"
			if len(rec.ToolsUsed) > 0 {
				tools = strings.Join(rec.ToolsUsed, ", ")
			}
			fmt.Printf("[%s] session=%s tools=%s (%s)\n  > %s\n  < %s\n",
				rec.CreatedAt.Format("2006-01-02 15:04:05"),
				rec.SessionID, tools, rec.Duration,
				rec.Prompt, rec.Result,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of records to show")
	rootCmd.AddCommand(historyCmd)
}
