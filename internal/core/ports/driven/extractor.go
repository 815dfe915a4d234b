package driven

import (
	"context"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

// Extractor converts an uploaded file into plain text.
// Each extractor handles specific MIME types (e.g. PDF, PPTX).
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific extractors should return 50-89.
	// Fallback extractors should return 1-9.
	Priority() int

	// Extract returns the plain text content of the upload.
	Extract(ctx context.Context, upload *domain.Upload) (string, error)
}

// ExtractorRegistry resolves the extractor for a MIME type.
// When multiple extractors claim a type, the highest priority wins.
type ExtractorRegistry interface {
	// Resolve returns the extractor for the MIME type, or false if no
	// registered extractor handles it.
	Resolve(mimeType string) (Extractor, bool)
}
