package driving

import (
	"context"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

// StudyGenerator produces study aids grounded in a session's material.
// Each method fails with domain.ErrInsufficientContext when the session
// has no documents, and with domain.ErrGeneration when the provider call
// fails. Malformed provider output degrades to a partial result with
// warnings, never a hard failure.
type StudyGenerator interface {
	// Summarise generates a structured study summary.
	Summarise(ctx context.Context, sessionID string) (*domain.SummaryResult, error)

	// KeyTerms extracts key terms with definitions.
	KeyTerms(ctx context.Context, sessionID string) (*domain.KeyTermsResult, error)

	// Questions generates practice questions.
	Questions(ctx context.Context, sessionID string) (*domain.QuestionsResult, error)

	// Resources recommends external study resources.
	Resources(ctx context.Context, sessionID string) (*domain.ResourcesResult, error)
}
