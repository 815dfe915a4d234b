package extractors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

type stubExtractor struct {
	mimes    []string
	priority int
	label    string
}

func (s stubExtractor) SupportedMIMETypes() []string { return s.mimes }
func (s stubExtractor) Priority() int                { return s.priority }
func (s stubExtractor) Extract(_ context.Context, _ *domain.Upload) (string, error) {
	return s.label, nil
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry(
		stubExtractor{mimes: []string{"text/plain"}, priority: 5, label: "fallback"},
		stubExtractor{mimes: []string{"application/pdf"}, priority: 50, label: "pdf"},
	)

	e, ok := r.Resolve("application/pdf")
	require.True(t, ok)
	text, _ := e.Extract(context.Background(), nil)
	assert.Equal(t, "pdf", text)

	_, ok = r.Resolve("video/mp4")
	assert.False(t, ok)
}

func TestRegistry_PriorityWins(t *testing.T) {
	low := stubExtractor{mimes: []string{"text/plain"}, priority: 5, label: "low"}
	high := stubExtractor{mimes: []string{"text/plain"}, priority: 50, label: "high"}

	// Registration order must not matter.
	for _, r := range []*Registry{NewRegistry(low, high), NewRegistry(high, low)} {
		e, ok := r.Resolve("text/plain")
		require.True(t, ok)
		text, _ := e.Extract(context.Background(), nil)
		assert.Equal(t, "high", text)
	}
}

func TestDefault_CoversUploadTypes(t *testing.T) {
	r := Default()

	for _, mimeType := range []string{
		"text/plain",
		"text/markdown",
		"application/pdf",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	} {
		_, ok := r.Resolve(mimeType)
		assert.True(t, ok, "no extractor for %s", mimeType)
	}
}
