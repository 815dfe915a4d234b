package domain

import "time"

// SourceKind identifies how a document record's text was produced.
type SourceKind string

const (
	// KindDocument is text extracted from a document upload (txt, pdf, docx).
	KindDocument SourceKind = "document"

	// KindSlides is text extracted from a slide deck (pptx).
	KindSlides SourceKind = "slides"

	// KindTranscript is text produced by the speech-to-text service from
	// an audio upload or live recording.
	KindTranscript SourceKind = "audio-transcript"
)

// Valid reports whether the kind is one of the known source kinds.
func (k SourceKind) Valid() bool {
	switch k {
	case KindDocument, KindSlides, KindTranscript:
		return true
	}
	return false
}

// DocumentRecord is one uploaded piece of material within a session.
// It retains the extracted text so the vector index can always be rebuilt
// from the session store alone.
type DocumentRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// Filename is the original upload filename.
	Filename string

	// Kind identifies how the text was produced.
	Kind SourceKind

	// Text is the full extracted text.
	Text string

	// Ordinal is the position in the session's document list.
	// Ordinals are dense: 0..len-1.
	Ordinal int

	// AddedAt is when the document was added to the session.
	AddedAt time.Time
}

// Session is a user's working set of uploaded materials.
// The session store is the source of truth; the vector index is a derived
// cache rebuilt from Documents on demand.
type Session struct {
	// ID is the unique identifier for the session.
	ID string

	// Name is the human-readable display name.
	Name string

	// Documents is the ordered list of uploaded materials.
	Documents []DocumentRecord

	// Transcript is the most recent completed speech-to-text result.
	// Overwritten by each new recording; history lives in Documents.
	Transcript string

	// CreatedAt is when the session was created.
	CreatedAt time.Time

	// UpdatedAt is when the session was last mutated.
	UpdatedAt time.Time
}

// DocumentByOrdinal returns the document at the given ordinal.
func (s *Session) DocumentByOrdinal(ordinal int) (*DocumentRecord, bool) {
	if ordinal < 0 || ordinal >= len(s.Documents) {
		return nil, false
	}
	return &s.Documents[ordinal], true
}

// RemoveDocument deletes the document at the given ordinal and renumbers
// the remaining documents to keep ordinals dense. Returns false if the
// ordinal is out of range.
func (s *Session) RemoveDocument(ordinal int) bool {
	if ordinal < 0 || ordinal >= len(s.Documents) {
		return false
	}
	s.Documents = append(s.Documents[:ordinal], s.Documents[ordinal+1:]...)
	s.Renumber()
	return true
}

// Renumber assigns dense ordinals 0..len-1 in list order.
func (s *Session) Renumber() {
	for i := range s.Documents {
		s.Documents[i].Ordinal = i
	}
}

// Clone returns a deep copy of the session.
// Stores hand out clones so callers cannot mutate shared state.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Documents = make([]DocumentRecord, len(s.Documents))
	copy(clone.Documents, s.Documents)
	return &clone
}
