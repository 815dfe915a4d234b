package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [session-id] [file]",
	Short: "Upload course material into a session",
	Long: `Reads a file, extracts its text (transcribing audio uploads), and adds
it to the session's index.

Supported formats: txt, md, csv, pdf, docx, pptx, and common audio
containers (mp3, wav, m4a, ogg, webm, flac).`,
	Args: cobra.ExactArgs(2),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	sessionID := args[0]
	path := args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	filename := filepath.Base(path)
	upload := &domain.Upload{
		Filename: filename,
		MIMEType: domain.DetectMIME(filename),
		Content:  content,
	}

	ctx := context.Background()

	session, err := sessionService.AddDocument(ctx, sessionID, upload)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	record := session.Documents[len(session.Documents)-1]
	cmd.Printf("Uploaded %s to session %q\n", filename, session.Name)
	cmd.Printf("  Ordinal: %d\n", record.Ordinal)
	cmd.Printf("  Kind:    %s\n", record.Kind)
	cmd.Printf("  Text:    %d characters\n", len(record.Text))
	return nil
}
