package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage study sessions",
	Long:  `Create, list, rename, or delete study sessions.`,
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new session",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSessionCreate,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionRenameCmd = &cobra.Command{
	Use:   "rename [session-id] [new-name]",
	Short: "Rename a session",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSessionRename,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete [session-id]",
	Short: "Delete a session and all its documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

func init() {
	sessionCmd.AddCommand(sessionCreateCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionRenameCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionCreate(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	name := strings.Join(args, " ")
	ctx := context.Background()

	session, err := sessionService.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	cmd.Printf("Created session %q\n", session.Name)
	cmd.Printf("  ID: %s\n", session.ID)
	return nil
}

func runSessionList(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()

	sessions, err := sessionService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		cmd.Println("No sessions yet. Create one with: lectern session create <name>")
		return nil
	}

	cmd.Println("Sessions:")
	cmd.Println()
	for i := range sessions {
		cmd.Printf("  %s\n", sessions[i].ID)
		cmd.Printf("    Name:      %s\n", sessions[i].Name)
		cmd.Printf("    Documents: %d\n", len(sessions[i].Documents))
		cmd.Printf("    Created:   %s\n", sessions[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d sessions\n", len(sessions))
	return nil
}

func runSessionRename(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	sessionID := args[0]
	name := strings.Join(args[1:], " ")
	ctx := context.Background()

	if err := sessionService.Rename(ctx, sessionID, name); err != nil {
		return fmt.Errorf("failed to rename session: %w", err)
	}

	cmd.Printf("Renamed session %s to %q\n", sessionID, name)
	return nil
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	sessionID := args[0]
	ctx := context.Background()

	if err := sessionService.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	cmd.Printf("Deleted session %s\n", sessionID)
	return nil
}
