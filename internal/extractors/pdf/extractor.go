// Package pdf extracts text from PDF documents by delegating to the
// external pdftotext tool (poppler-utils).
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/helektron-labs/lectern/internal/core/domain"
	"github.com/helektron-labs/lectern/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// DefaultBinary is the pdftotext executable looked up on PATH.
const DefaultBinary = "pdftotext"

// Extractor handles PDF documents via pdftotext.
type Extractor struct {
	binary string
}

// New creates a new PDF extractor using pdftotext from PATH.
func New() *Extractor {
	return &Extractor{binary: DefaultBinary}
}

// NewWithBinary creates a PDF extractor using the given executable.
func NewWithBinary(binary string) *Extractor {
	return &Extractor{binary: binary}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50 // Format-specific extractor
}

// Extract writes the upload to a temporary file and runs pdftotext,
// reading the text from stdout. Cancellation kills the subprocess.
func (e *Extractor) Extract(ctx context.Context, upload *domain.Upload) (string, error) {
	if upload == nil {
		return "", domain.ErrInvalidInput
	}

	dir, err := os.MkdirTemp("", "lectern-pdf-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "upload.pdf")
	if err := os.WriteFile(path, upload.Content, 0o600); err != nil {
		return "", fmt.Errorf("write temp pdf: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, "-layout", "-enc", "UTF-8", path, "-")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("%s: %w: %s", e.binary, err, detail)
		}
		return "", fmt.Errorf("%s: %w", e.binary, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
