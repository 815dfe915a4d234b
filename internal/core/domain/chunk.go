package domain

import "time"

// Chunk is a bounded span of document text, the unit of embedding and
// retrieval. Chunks are derived from DocumentRecords and never persisted
// independently of the vector index.
type Chunk struct {
	// SessionID links to the owning session.
	SessionID string

	// DocumentID links to the source DocumentRecord.
	DocumentID string

	// Filename is the source document's filename, for attribution.
	Filename string

	// Kind is the source document's kind.
	Kind SourceKind

	// Seq is the chunk's sequence number within its document.
	Seq int

	// Text is the chunk content.
	Text string
}

// ScoredChunk is a retrieval hit: a chunk plus its similarity score.
type ScoredChunk struct {
	Chunk Chunk

	// Score is the cosine similarity against the query (higher is better).
	Score float64
}

// IndexStats describes the current state of a session's vector index.
type IndexStats struct {
	// Entries is the number of indexed chunks.
	Entries int

	// Dimensions is the embedding vector size, 0 until the first insert.
	Dimensions int

	// BuiltAt is when the index was last built or rebuilt.
	BuiltAt time.Time
}
