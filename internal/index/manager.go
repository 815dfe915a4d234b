package index

import (
	"sync"

	"github.com/helektron-labs/lectern/internal/chunker"
	"github.com/helektron-labs/lectern/internal/core/ports/driven"
)

// Manager owns one vector index per session. Indexes are created lazily
// and dropped when their session is deleted. The indexes are derived
// caches: they are never persisted and are rebuilt from the session store
// after a restart.
type Manager struct {
	embedder driven.EmbeddingService
	splitter *chunker.Splitter

	mu      sync.Mutex
	indexes map[string]*Index
}

// NewManager creates an index manager.
func NewManager(embedder driven.EmbeddingService, splitter *chunker.Splitter) *Manager {
	return &Manager{
		embedder: embedder,
		splitter: splitter,
		indexes:  make(map[string]*Index),
	}
}

// ForSession returns the session's index, creating an empty one if needed.
func (m *Manager) ForSession(sessionID string) *Index {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.indexes[sessionID]
	if !ok {
		idx = New(sessionID, m.embedder, m.splitter)
		m.indexes[sessionID] = idx
	}
	return idx
}

// Drop discards the session's index, if any.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.indexes, sessionID)
}
