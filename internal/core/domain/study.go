package domain

// GroundedContext is the assembled input for a generation call: retrieved
// chunk texts with source attribution plus the task instruction.
type GroundedContext struct {
	// Task is the instruction the context was retrieved for.
	Task string

	// Context is the concatenated chunk texts with attribution headers,
	// ready to interpolate into a prompt template.
	Context string

	// Chunks are the retrieval hits the context was assembled from.
	Chunks []ScoredChunk
}

// KeyTerm is a term with its short definition.
type KeyTerm struct {
	Term       string
	Definition string
}

// Question is a single practice question.
type Question struct {
	// Prompt is the question text.
	Prompt string

	// Category groups questions (e.g. "Conceptual", "Application").
	// Empty when the provider did not group its output.
	Category string
}

// Resource describes a recommended external study resource.
type Resource struct {
	Title  string
	Type   string
	Source string
	Reason string
}

// SummaryResult is the output of the summary generator.
type SummaryResult struct {
	Text     string
	Warnings []string
}

// KeyTermsResult is the output of the key-terms generator.
// Warnings list items that could not be parsed; the result is still usable.
type KeyTermsResult struct {
	Terms    []KeyTerm
	Warnings []string
}

// QuestionsResult is the output of the practice-question generator.
type QuestionsResult struct {
	Questions []Question
	Warnings  []string
}

// ResourcesResult is the output of the resource-suggestion generator.
type ResourcesResult struct {
	Resources []Resource
	Warnings  []string
}
