package driven

import (
	"context"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

// SessionStore persists sessions and their document records.
// The store is the source of truth: it retains extracted text per document
// so the vector index can always be rebuilt from stored state.
//
// Save must flush the complete session record durably before returning.
// A partially written session must never be observable after a crash;
// implementations achieve this with a transaction (SQLite) or
// write-new-then-rename (flat file).
type SessionStore interface {
	// Save stores or fully replaces a session and its document list.
	Save(ctx context.Context, session *domain.Session) error

	// Get retrieves a session by ID. Returns domain.ErrNotFound if the
	// session does not exist.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// List returns all sessions with their documents loaded.
	List(ctx context.Context) ([]domain.Session, error)

	// Delete removes a session and all its document records.
	Delete(ctx context.Context, id string) error
}
