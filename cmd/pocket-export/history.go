// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pocket-export/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past export runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().String("history-db", "", "SQLite run ledger path (default: ~/.config/pocket-export/history.db)")
	historyCmd.Flags().Int("limit", 10, "number of runs to show (0 shows all)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, _ := cmd.Flags().GetString("history-db")
	if dbPath == "" {
		dbPath = viper.GetString("history_db")
	}
	if dbPath == "" {
		dbPath = defaultHistoryDB()
	}
	if dbPath == "" {
		return fmt.Errorf("no history database configured")
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(ctx, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No export runs recorded yet.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(out, "%s  %-8s  %4d exported  %3d skipped  %s\n",
			r.ExportedAt.Local().Format(time.DateTime), r.Browser,
			r.ItemsExported, r.ItemsSkipped, r.BookmarksPath)
	}
	return nil
}
