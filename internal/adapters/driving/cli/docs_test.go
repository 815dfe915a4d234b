package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_HasSubcommands(t *testing.T) {
	commands := docsCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "remove")
}

func TestDocsListCmd_ShowsDocuments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("docs", "list", "sess-1")

	require.NoError(t, err)
	assert.Contains(t, out, "[0] laws.txt")
	assert.Contains(t, out, "Total: 1 documents")
}

func TestDocsListCmd_UnknownSession(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("docs", "list", "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get session")
}

func TestDocsRemoveCmd_RejectsNonNumericOrdinal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("docs", "remove", "sess-1", "first")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordinal must be a number")
}

func TestDocsRemoveCmd_Removes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("docs", "remove", "sess-1", "0")

	require.NoError(t, err)
	assert.Contains(t, out, "Removed document 0")
	assert.Contains(t, out, "Remaining documents: 0")
}

func TestDocsRemoveCmd_OutOfRange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("docs", "remove", "sess-1", "5")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove document")
}

func TestUploadCmd_RequiresTwoArgs(t *testing.T) {
	_, err := executeCommand("upload", "sess-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestUploadCmd_UploadsFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("the second law of thermodynamics"), 0o600))

	out, err := executeCommand("upload", "sess-1", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Uploaded notes.txt")
	assert.Contains(t, out, "Ordinal: 1")
	assert.Contains(t, out, "Kind:    document")
}

func TestUploadCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("upload", "sess-1", "/nonexistent/notes.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestStatsCmd_ShowsStats(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("stats", "sess-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Entries:    3")
	assert.Contains(t, out, "Dimensions: 8")
}
