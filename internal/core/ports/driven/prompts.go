package driven

// PromptStore provides access to the study-aid prompt templates.
// Implementations may load prompts from user-editable files with embedded
// defaults as fallback.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used by the study service.
// Each template expects a single %s placeholder for the grounded material.
const (
	// PromptSummary produces a structured study summary.
	PromptSummary = "summary"

	// PromptKeyTerms extracts key terms with short definitions.
	PromptKeyTerms = "key_terms"

	// PromptQuestions creates practice questions without answers.
	PromptQuestions = "questions"

	// PromptResources recommends external study resources.
	PromptResources = "resources"
)
