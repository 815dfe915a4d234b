package pdf

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

// fakeBinary writes a shell script standing in for pdftotext.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "pdftotext")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestExtractor_Extract(t *testing.T) {
	binary := fakeBinary(t, `echo "extracted pdf text"`)

	e := NewWithBinary(binary)
	text, err := e.Extract(context.Background(), &domain.Upload{
		Filename: "paper.pdf",
		Content:  []byte("%PDF-1.4 fake"),
	})
	require.NoError(t, err)
	assert.Equal(t, "extracted pdf text", text)
}

func TestExtractor_Extract_ToolFailure(t *testing.T) {
	binary := fakeBinary(t, `echo "syntax error" >&2; exit 1`)

	e := NewWithBinary(binary)
	_, err := e.Extract(context.Background(), &domain.Upload{
		Filename: "paper.pdf",
		Content:  []byte("%PDF-1.4 fake"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
}

func TestExtractor_Extract_MissingBinary(t *testing.T) {
	e := NewWithBinary(filepath.Join(t.TempDir(), "nonexistent"))

	_, err := e.Extract(context.Background(), &domain.Upload{
		Filename: "paper.pdf",
		Content:  []byte("%PDF-1.4 fake"),
	})
	assert.Error(t, err)
}

func TestExtractor_Extract_NilUpload(t *testing.T) {
	e := New()

	_, err := e.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
