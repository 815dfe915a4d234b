package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage a session's documents",
	Long:  `List or remove the documents uploaded to a session.`,
}

var docsListCmd = &cobra.Command{
	Use:   "list [session-id]",
	Short: "List a session's documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsList,
}

var docsRemoveCmd = &cobra.Command{
	Use:   "remove [session-id] [ordinal]",
	Short: "Remove a document by ordinal",
	Long: `Removes the document at the given ordinal, renumbers the remaining
documents, and rebuilds the session's index without the removed content.`,
	Args: cobra.ExactArgs(2),
	RunE: runDocsRemove,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsRemoveCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	sessionID := args[0]
	ctx := context.Background()

	session, err := sessionService.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if len(session.Documents) == 0 {
		cmd.Printf("Session %q has no documents yet.\n", session.Name)
		return nil
	}

	cmd.Printf("Documents in session %q:\n\n", session.Name)
	for i := range session.Documents {
		doc := &session.Documents[i]
		cmd.Printf("  [%d] %s\n", doc.Ordinal, doc.Filename)
		cmd.Printf("      Kind:  %s\n", doc.Kind)
		cmd.Printf("      Text:  %d characters\n", len(doc.Text))
		cmd.Printf("      Added: %s\n", doc.AddedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(session.Documents))
	return nil
}

func runDocsRemove(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	sessionID := args[0]
	ordinal, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("ordinal must be a number: %q", args[1])
	}

	ctx := context.Background()

	session, err := sessionService.RemoveDocument(ctx, sessionID, ordinal)
	if err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}

	cmd.Printf("Removed document %d from session %q\n", ordinal, session.Name)
	cmd.Printf("  Remaining documents: %d\n", len(session.Documents))
	return nil
}
