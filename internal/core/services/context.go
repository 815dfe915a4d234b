package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/helektron-labs/lectern/internal/core/domain"
	"github.com/helektron-labs/lectern/internal/logger"
)

// DefaultRetrievalK is the default number of chunks retrieved to ground
// a generation call.
const DefaultRetrievalK = 6

// Study tasks recognised by the context service. Each maps to a fixed
// representative retrieval query rather than embedding the full prompt.
const (
	TaskSummary   = "summary"
	TaskKeyTerms  = "key_terms"
	TaskQuestions = "questions"
	TaskResources = "resources"
)

// taskQueries holds the representative retrieval query per study task.
var taskQueries = map[string]string{
	TaskSummary:   "summarize the key concepts and main ideas",
	TaskKeyTerms:  "important terms, definitions, and vocabulary",
	TaskQuestions: "core concepts, facts, and relationships worth testing",
	TaskResources: "main topics and subject areas covered",
}

// ContextService assembles grounded context for generation calls: it
// retrieves the most relevant chunks from a session's index and
// concatenates them with source attribution.
type ContextService struct {
	sessions *SessionService
	k        int
}

// NewContextService creates a new context service.
func NewContextService(sessions *SessionService) *ContextService {
	return &ContextService{
		sessions: sessions,
		k:        DefaultRetrievalK,
	}
}

// SetRetrievalK overrides the number of chunks retrieved per task.
func (s *ContextService) SetRetrievalK(k int) {
	if k > 0 {
		s.k = k
	}
}

// BuildContext retrieves the top-K chunks for the task's representative
// query and assembles them into an attributed context block. Fails with
// domain.ErrInsufficientContext when the session has no documents, so the
// generation provider is never called without grounding.
func (s *ContextService) BuildContext(
	ctx context.Context, sessionID, task string,
) (*domain.GroundedContext, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Documents) == 0 {
		return nil, fmt.Errorf("%w: session %s has no documents", domain.ErrInsufficientContext, sessionID)
	}

	query, ok := taskQueries[task]
	if !ok {
		query = task
	}

	logger.Section("Context Retrieval")
	logger.Debug("Session %s: task %q, query %q, k=%d", sessionID, task, query, s.k)

	chunks, err := s.sessions.searchChunks(ctx, sessionID, query, s.k)
	if err != nil {
		return nil, err
	}

	logger.Debug("Retrieved %d chunks", len(chunks))

	return &domain.GroundedContext{
		Task:    task,
		Context: assembleContext(chunks),
		Chunks:  chunks,
	}, nil
}

// assembleContext concatenates chunk texts under per-source attribution
// headers, in retrieval order.
func assembleContext(chunks []domain.ScoredChunk) string {
	var b strings.Builder
	for i, sc := range chunks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "--- %s (%s) ---\n", sc.Chunk.Filename, sc.Chunk.Kind)
		b.WriteString(sc.Chunk.Text)
	}
	return b.String()
}
