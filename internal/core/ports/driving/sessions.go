package driving

import (
	"context"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

// SessionManager manages sessions and their documents.
// Structural mutations on a session are serialized; operations on distinct
// sessions proceed concurrently.
type SessionManager interface {
	// Create creates a new named session and returns it.
	Create(ctx context.Context, name string) (*domain.Session, error)

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// List returns all sessions.
	List(ctx context.Context) ([]domain.Session, error)

	// Rename changes a session's display name.
	Rename(ctx context.Context, id, name string) error

	// Delete removes a session, cascading to its documents and index.
	Delete(ctx context.Context, id string) error

	// AddDocument extracts text from the upload (transcribing audio),
	// indexes it, and appends a document record. Returns the updated
	// session for rendering.
	AddDocument(ctx context.Context, sessionID string, upload *domain.Upload) (*domain.Session, error)

	// RemoveDocument deletes the document at the given ordinal, renumbers
	// the remaining documents, and rebuilds the index. Returns the updated
	// session for rendering.
	RemoveDocument(ctx context.Context, sessionID string, ordinal int) (*domain.Session, error)

	// Stats returns the session's vector index statistics.
	Stats(ctx context.Context, sessionID string) (domain.IndexStats, error)
}
