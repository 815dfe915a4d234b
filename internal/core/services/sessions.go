package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/helektron-labs/lectern/internal/core/domain"
	"github.com/helektron-labs/lectern/internal/core/ports/driven"
	"github.com/helektron-labs/lectern/internal/core/ports/driving"
	"github.com/helektron-labs/lectern/internal/index"
	"github.com/helektron-labs/lectern/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionManager = (*SessionService)(nil)

// DefaultMaxUploadBytes caps upload size. Lecture PDFs and slide decks fit
// comfortably; anything larger is almost certainly a mistake.
const DefaultMaxUploadBytes = 25 << 20

// SessionService manages sessions and their documents. The session store
// is the source of truth; per-session vector indexes are derived caches
// rebuilt from stored text on demand.
//
// Structural mutations on a session (add/remove document, rename, delete)
// are serialized by a per-session mutex. Distinct sessions proceed
// concurrently.
type SessionService struct {
	store       driven.SessionStore
	indexes     *index.Manager
	extractors  driven.ExtractorRegistry
	transcriber driven.Transcriber

	maxUploadBytes int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSessionService creates a new session service.
// The transcriber parameter is optional (can be nil); audio uploads fail
// with a validation error when no transcriber is configured.
func NewSessionService(
	store driven.SessionStore,
	indexes *index.Manager,
	extractors driven.ExtractorRegistry,
	transcriber driven.Transcriber,
) *SessionService {
	return &SessionService{
		store:          store,
		indexes:        indexes,
		extractors:     extractors,
		transcriber:    transcriber,
		maxUploadBytes: DefaultMaxUploadBytes,
		locks:          make(map[string]*sync.Mutex),
	}
}

// SetMaxUploadBytes overrides the upload size cap.
func (s *SessionService) SetMaxUploadBytes(n int) {
	if n > 0 {
		s.maxUploadBytes = n
	}
}

// Create creates a new named session and persists it.
func (s *SessionService) Create(ctx context.Context, name string) (*domain.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: session name must not be empty", domain.ErrInvalidInput)
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	logger.Info("Created session %s (%q)", session.ID, session.Name)
	return session.Clone(), nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.store.Get(ctx, id)
}

// List returns all sessions.
func (s *SessionService) List(ctx context.Context) ([]domain.Session, error) {
	return s.store.List(ctx)
}

// Rename changes a session's display name.
func (s *SessionService) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: session name must not be empty", domain.ErrInvalidInput)
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	session.Name = name
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete removes a session, cascading to its documents and vector index.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.indexes.Drop(id)
	s.dropLock(id)

	logger.Info("Deleted session %s", id)
	return nil
}

// AddDocument extracts text from the upload (transcribing audio through
// the speech-to-text service), inserts the chunks into the session's
// index, appends a document record, and persists the session. The index
// insert happens before the store write: an embedding failure leaves both
// session and index untouched, and a store failure rolls the index back.
func (s *SessionService) AddDocument(
	ctx context.Context, sessionID string, upload *domain.Upload,
) (*domain.Session, error) {
	if upload == nil || len(upload.Content) == 0 {
		return nil, fmt.Errorf("%w: empty upload", domain.ErrInvalidInput)
	}
	if len(upload.Content) > s.maxUploadBytes {
		return nil, fmt.Errorf("%w: upload %q is %d bytes, cap is %d",
			domain.ErrInvalidInput, upload.Filename, len(upload.Content), s.maxUploadBytes)
	}

	mimeType := upload.MIMEType
	if mimeType == "" {
		mimeType = domain.DetectMIME(upload.Filename)
	}
	if mimeType == "" {
		return nil, fmt.Errorf("%w: unsupported file type %q", domain.ErrInvalidInput, upload.Filename)
	}

	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := s.indexes.ForSession(sessionID)
	if err := s.primeLocked(ctx, session, idx); err != nil {
		return nil, err
	}

	logger.Section("Upload")
	logger.Debug("Session %s: %q (%s, %d bytes)", sessionID, upload.Filename, mimeType, len(upload.Content))

	text, kind, err := s.extractText(ctx, upload, mimeType)
	if err != nil {
		return nil, err
	}

	record := domain.DocumentRecord{
		ID:       uuid.NewString(),
		Filename: upload.Filename,
		Kind:     kind,
		Text:     text,
		Ordinal:  len(session.Documents),
		AddedAt:  time.Now(),
	}

	if err := idx.Insert(ctx, &record); err != nil {
		return nil, err
	}

	session.Documents = append(session.Documents, record)
	if kind == domain.KindTranscript {
		// The latest transcript replaces the session's transcript field;
		// history lives in the document list.
		session.Transcript = text
	}
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session); err != nil {
		// The index committed but the store did not. Rebuild from the
		// stored document list so the index never leads the store.
		session.RemoveDocument(record.Ordinal)
		if rberr := idx.Rebuild(ctx, session.Documents); rberr != nil {
			logger.Warn("Session %s: index rollback failed: %v", sessionID, rberr)
		}
		return nil, fmt.Errorf("save session: %w", err)
	}

	logger.Info("Session %s: added %q as document %d", sessionID, record.Filename, record.Ordinal)
	return session.Clone(), nil
}

// RemoveDocument deletes the document at the given ordinal, renumbers the
// remaining documents, and rebuilds the index from the surviving list.
// The rebuild runs first: if it fails, session and index are unchanged.
func (s *SessionService) RemoveDocument(
	ctx context.Context, sessionID string, ordinal int,
) (*domain.Session, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	removed, ok := session.DocumentByOrdinal(ordinal)
	if !ok {
		return nil, fmt.Errorf("%w: document %d in session %s", domain.ErrNotFound, ordinal, sessionID)
	}
	filename := removed.Filename

	remaining := make([]domain.DocumentRecord, 0, len(session.Documents)-1)
	for i := range session.Documents {
		if i != ordinal {
			remaining = append(remaining, session.Documents[i])
		}
	}
	for i := range remaining {
		remaining[i].Ordinal = i
	}

	idx := s.indexes.ForSession(sessionID)
	if err := idx.Rebuild(ctx, remaining); err != nil {
		return nil, err
	}

	previous := session.Documents
	session.Documents = remaining
	session.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, session); err != nil {
		session.Documents = previous
		if rberr := idx.Rebuild(ctx, previous); rberr != nil {
			logger.Warn("Session %s: index rollback failed: %v", sessionID, rberr)
		}
		return nil, fmt.Errorf("save session: %w", err)
	}

	logger.Info("Session %s: removed document %d (%q), %d remain",
		sessionID, ordinal, filename, len(remaining))
	return session.Clone(), nil
}

// Stats returns the session's vector index statistics, priming the index
// from stored documents after a restart.
func (s *SessionService) Stats(ctx context.Context, sessionID string) (domain.IndexStats, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.IndexStats{}, err
	}

	idx := s.indexes.ForSession(sessionID)
	if err := s.primeLocked(ctx, session, idx); err != nil {
		return domain.IndexStats{}, err
	}

	return idx.Stats(), nil
}

// searchChunks retrieves the top-k chunks for a query, priming the index
// first. The session lock is held only for priming; the search itself runs
// against the index's immutable snapshot.
func (s *SessionService) searchChunks(
	ctx context.Context, sessionID, query string, k int,
) ([]domain.ScoredChunk, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		lock.Unlock()
		return nil, err
	}

	idx := s.indexes.ForSession(sessionID)
	if err := s.primeLocked(ctx, session, idx); err != nil {
		lock.Unlock()
		return nil, err
	}
	lock.Unlock()

	return idx.Search(ctx, query, k)
}

// extractText routes the upload to the transcriber or the matching
// extractor and returns the text with its source kind.
func (s *SessionService) extractText(
	ctx context.Context, upload *domain.Upload, mimeType string,
) (string, domain.SourceKind, error) {
	if domain.IsAudioMIME(mimeType) {
		if s.transcriber == nil {
			return "", "", fmt.Errorf("%w: audio uploads require a configured transcriber", domain.ErrInvalidInput)
		}
		text, err := s.transcriber.Transcribe(ctx, upload.Content, domain.AudioFormat(upload.Filename))
		if err != nil {
			return "", "", fmt.Errorf("%w: %q: %v", domain.ErrTranscription, upload.Filename, err)
		}
		return text, domain.KindTranscript, nil
	}

	extractor, ok := s.extractors.Resolve(mimeType)
	if !ok {
		return "", "", fmt.Errorf("%w: no extractor for %s", domain.ErrInvalidInput, mimeType)
	}

	text, err := extractor.Extract(ctx, upload)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q: %v", domain.ErrExtraction, upload.Filename, err)
	}
	return text, domain.KindForMIME(mimeType), nil
}

// primeLocked rebuilds a never-built index from the session's stored
// documents. Caller must hold the session lock. After a restart the
// in-memory index is empty while the store still has documents; the first
// operation that needs the index pays the rebuild cost.
func (s *SessionService) primeLocked(ctx context.Context, session *domain.Session, idx *index.Index) error {
	if len(session.Documents) == 0 {
		return nil
	}
	if !idx.Stats().BuiltAt.IsZero() {
		return nil
	}

	logger.Debug("Session %s: priming index from %d stored documents", session.ID, len(session.Documents))
	return idx.Rebuild(ctx, session.Documents)
}

// lockFor returns the mutex serializing structural mutations on a session.
func (s *SessionService) lockFor(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// dropLock discards the mutex for a deleted session.
func (s *SessionService) dropLock(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, sessionID)
}
