package extractors

import (
	"github.com/helektron-labs/lectern/internal/core/ports/driven"
	"github.com/helektron-labs/lectern/internal/extractors/docx"
	"github.com/helektron-labs/lectern/internal/extractors/pdf"
	"github.com/helektron-labs/lectern/internal/extractors/plaintext"
	"github.com/helektron-labs/lectern/internal/extractors/pptx"
	"github.com/helektron-labs/lectern/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry routes MIME types to extractors. When several extractors claim
// the same type, the highest priority wins.
type Registry struct {
	byMIME map[string]driven.Extractor
}

// NewRegistry creates a registry holding the given extractors.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{byMIME: make(map[string]driven.Extractor)}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Default returns a registry with all built-in extractors.
func Default() *Registry {
	return NewRegistry(
		plaintext.New(),
		docx.New(),
		pptx.New(),
		pdf.New(),
	)
}

// Register adds an extractor for its supported MIME types.
// A higher-priority extractor displaces a lower-priority one.
func (r *Registry) Register(e driven.Extractor) {
	for _, mimeType := range e.SupportedMIMETypes() {
		current, ok := r.byMIME[mimeType]
		if ok && current.Priority() >= e.Priority() {
			continue
		}
		if ok {
			logger.Debug("Extractor registry: higher-priority extractor takes %s", mimeType)
		}
		r.byMIME[mimeType] = e
	}
}

// Resolve returns the extractor for a MIME type.
func (r *Registry) Resolve(mimeType string) (driven.Extractor, bool) {
	e, ok := r.byMIME[mimeType]
	return e, ok
}
