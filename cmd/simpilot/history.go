package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joss/simpilot/internal/audit"
)

func listEntries(ctx context.Context, session string, limit int) ([]*audit.Entry, error) {
	if session != "" {
		return store.BySession(ctx, session, limit)
	}
	return store.Recent(ctx, limit)
}

func historyCmd() *cobra.Command {
	var session string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show execution history",
		Long: `Display recent instruction executions from the history database.

Examples:
  simpilot history                   # Last 20 executions
  simpilot history --limit 50
  simpilot history --session <id>    # One session only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if store == nil {
				return errors.New("history database unavailable (is --no-history set?)")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			entries, err := listEntries(ctx, session, limit)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}
			fmt.Print(rend.History(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Filter by session ID")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")

	cmd.AddCommand(historyPurgeCmd())
	return cmd
}

func historyPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete all recorded history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if store == nil {
				return errors.New("history database unavailable (is --no-history set?)")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Purge(ctx); err != nil {
				return fmt.Errorf("purge: %w", err)
			}
			fmt.Println("history cleared")
			return nil
		},
	}
}
