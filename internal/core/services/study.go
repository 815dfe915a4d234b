package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/helektron-labs/lectern/internal/core/domain"
	"github.com/helektron-labs/lectern/internal/core/ports/driven"
	"github.com/helektron-labs/lectern/internal/core/ports/driving"
	"github.com/helektron-labs/lectern/internal/logger"
)

// Ensure StudyService implements the interface.
var _ driving.StudyGenerator = (*StudyService)(nil)

// Default generation options. Study aids want mostly-factual output with a
// little variety in phrasing.
const (
	defaultMaxTokens   = 1500
	defaultTemperature = 0.3
)

// StudyService produces the four study aids. Each entry point builds
// grounded context, interpolates it into the task's prompt template, calls
// the generation provider, and parses the raw text tolerantly: malformed
// list items are skipped into warnings, never a hard failure.
type StudyService struct {
	context   *ContextService
	generator driven.GenerationService
	prompts   driven.PromptStore

	opts driven.GenerateOptions
}

// NewStudyService creates a new study service.
func NewStudyService(
	contextService *ContextService,
	generator driven.GenerationService,
	prompts driven.PromptStore,
) *StudyService {
	return &StudyService{
		context:   contextService,
		generator: generator,
		prompts:   prompts,
		opts: driven.GenerateOptions{
			MaxTokens:   defaultMaxTokens,
			Temperature: defaultTemperature,
		},
	}
}

// SetGenerateOptions overrides the provider call options.
func (s *StudyService) SetGenerateOptions(opts driven.GenerateOptions) {
	s.opts = opts
}

// Summarise generates a structured study summary.
func (s *StudyService) Summarise(ctx context.Context, sessionID string) (*domain.SummaryResult, error) {
	raw, err := s.generate(ctx, sessionID, TaskSummary, driven.PromptSummary)
	if err != nil {
		return nil, err
	}

	result := &domain.SummaryResult{Text: strings.TrimSpace(raw)}
	if result.Text == "" {
		result.Warnings = append(result.Warnings, "provider returned an empty summary")
	}
	return result, nil
}

// KeyTerms extracts key terms with definitions.
func (s *StudyService) KeyTerms(ctx context.Context, sessionID string) (*domain.KeyTermsResult, error) {
	raw, err := s.generate(ctx, sessionID, TaskKeyTerms, driven.PromptKeyTerms)
	if err != nil {
		return nil, err
	}

	terms, warnings := parseKeyTerms(raw)
	logWarnings(sessionID, TaskKeyTerms, warnings)
	return &domain.KeyTermsResult{Terms: terms, Warnings: warnings}, nil
}

// Questions generates practice questions.
func (s *StudyService) Questions(ctx context.Context, sessionID string) (*domain.QuestionsResult, error) {
	raw, err := s.generate(ctx, sessionID, TaskQuestions, driven.PromptQuestions)
	if err != nil {
		return nil, err
	}

	questions, warnings := parseQuestions(raw)
	logWarnings(sessionID, TaskQuestions, warnings)
	return &domain.QuestionsResult{Questions: questions, Warnings: warnings}, nil
}

// Resources recommends external study resources.
func (s *StudyService) Resources(ctx context.Context, sessionID string) (*domain.ResourcesResult, error) {
	raw, err := s.generate(ctx, sessionID, TaskResources, driven.PromptResources)
	if err != nil {
		return nil, err
	}

	resources, warnings := parseResources(raw)
	logWarnings(sessionID, TaskResources, warnings)
	return &domain.ResourcesResult{Resources: resources, Warnings: warnings}, nil
}

// generate runs the shared pipeline: grounded context, prompt template,
// provider call.
func (s *StudyService) generate(ctx context.Context, sessionID, task, promptName string) (string, error) {
	grounded, err := s.context.BuildContext(ctx, sessionID, task)
	if err != nil {
		return "", err
	}

	template, err := s.prompts.Load(promptName)
	if err != nil {
		return "", fmt.Errorf("%w: load prompt %q: %v", domain.ErrConfiguration, promptName, err)
	}

	prompt := fmt.Sprintf(template, grounded.Context)

	logger.Section("Generation")
	logger.Debug("Session %s: task %q, prompt %d chars, model %s",
		sessionID, task, len(prompt), s.generator.ModelName())

	raw, err := s.generator.Generate(ctx, prompt, s.opts)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrGeneration, task, err)
	}

	logger.Debug("Session %s: task %q, response %d chars", sessionID, task, len(raw))
	return raw, nil
}

func logWarnings(sessionID, task string, warnings []string) {
	for _, w := range warnings {
		logger.Warn("Session %s: %s: %s", sessionID, task, w)
	}
}
