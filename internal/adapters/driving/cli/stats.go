package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-id]",
	Short: "Show a session's index statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()

	stats, err := sessionService.Stats(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	cmd.Printf("Index statistics for session %s:\n\n", args[0])
	cmd.Printf("  Entries:    %d\n", stats.Entries)
	cmd.Printf("  Dimensions: %d\n", stats.Dimensions)
	if stats.BuiltAt.IsZero() {
		cmd.Println("  Built:      never")
	} else {
		cmd.Printf("  Built:      %s\n", stats.BuiltAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
