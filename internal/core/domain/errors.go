package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested session or document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input: an unsupported
	// file type, an oversized upload, or a malformed identifier.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtraction indicates text extraction from an uploaded file failed.
	ErrExtraction = errors.New("text extraction failed")

	// ErrTranscription indicates the speech-to-text service failed.
	ErrTranscription = errors.New("transcription failed")

	// ErrEmbedding indicates the embedding provider was unreachable or
	// returned vectors of an unexpected dimension. Index mutations that
	// hit this error leave the previous index state untouched.
	ErrEmbedding = errors.New("embedding failed")

	// ErrGeneration indicates the generation provider call itself failed
	// (network error, timeout, provider-side error).
	ErrGeneration = errors.New("generation failed")

	// ErrInsufficientContext indicates a generation request was made
	// against a session with no documents. The generation provider must
	// not be called in this case.
	ErrInsufficientContext = errors.New("no material uploaded")

	// ErrConfiguration indicates a programmer error in component
	// configuration, fatal at construction time.
	ErrConfiguration = errors.New("invalid configuration")
)
