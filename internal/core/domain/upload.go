package domain

// Upload represents opaque bytes received from the caller before text
// extraction or transcription.
type Upload struct {
	// Filename is the original filename, used for kind detection and
	// source attribution.
	Filename string

	// MIMEType is the detected content type (e.g. "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
