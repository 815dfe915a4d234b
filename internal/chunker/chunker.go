// Package chunker splits extracted text into overlapping fixed-size
// segments suitable for embedding.
package chunker

import (
	"fmt"
	"strings"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

// DefaultChunkSize is the default number of word tokens per chunk.
const DefaultChunkSize = 200

// DefaultOverlap is the default number of word tokens repeated at each
// chunk boundary to preserve context across splits.
const DefaultOverlap = 40

// Splitter splits text into overlapping fixed-size chunks.
// Token counts are approximated by whitespace-separated words.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in word tokens.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		s.chunkSize = size
	}
}

// WithOverlap sets the overlap between chunks in word tokens.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		s.overlap = overlap
	}
}

// New creates a splitter with the given options.
// Returns domain.ErrConfiguration if the chunk size is not positive, the
// overlap is negative, or the overlap is not strictly less than the chunk
// size.
func New(opts ...Option) (*Splitter, error) {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrConfiguration, s.chunkSize)
	}
	if s.overlap < 0 {
		return nil, fmt.Errorf("%w: overlap must not be negative, got %d", domain.ErrConfiguration, s.overlap)
	}
	if s.overlap >= s.chunkSize {
		return nil, fmt.Errorf("%w: overlap %d must be less than chunk size %d", domain.ErrConfiguration, s.overlap, s.chunkSize)
	}

	return s, nil
}

// ChunkSize returns the configured chunk size in word tokens.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Overlap returns the configured overlap in word tokens.
func (s *Splitter) Overlap() int {
	return s.overlap
}

// Split divides text into chunks of at most chunkSize tokens, with the
// last overlap tokens of each chunk repeated at the start of the next.
// Deterministic for identical input. Empty or whitespace-only text yields
// no chunks; text shorter than the chunk size yields a single chunk.
func (s *Splitter) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if len(words) <= s.chunkSize {
		return []string{strings.Join(words, " ")}
	}

	step := s.chunkSize - s.overlap
	estimated := (len(words) / step) + 1
	chunks := make([]string, 0, estimated)

	for start := 0; start < len(words); start += step {
		end := start + s.chunkSize
		if end > len(words) {
			end = len(words)
		}

		chunks = append(chunks, strings.Join(words[start:end], " "))

		if end == len(words) {
			break
		}
	}

	return chunks
}
