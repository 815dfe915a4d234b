// Package index provides the per-session vector index: brute-force cosine
// similarity over normalized embeddings, with atomic whole-index rebuild
// as the consistency strategy after document removal.
package index

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/helektron-labs/lectern/internal/chunker"
	"github.com/helektron-labs/lectern/internal/core/domain"
	"github.com/helektron-labs/lectern/internal/core/ports/driven"
	"github.com/helektron-labs/lectern/internal/logger"
)

// entry pairs a chunk with its normalized embedding.
type entry struct {
	chunk  domain.Chunk
	vector []float32
}

// snapshot is one immutable generation of the index. Mutations build a new
// snapshot and swap the pointer, so readers see either the old or the new
// index, never a partial one.
type snapshot struct {
	entries    []entry
	dimensions int
	builtAt    time.Time
}

// Index is the searchable store of chunk embeddings for one session.
// Entries always trace to a currently-existing document record: removals
// rebuild the whole index from the authoritative document list rather than
// pruning individual vectors.
type Index struct {
	sessionID string
	embedder  driven.EmbeddingService
	splitter  *chunker.Splitter

	mu   sync.RWMutex
	snap *snapshot
}

// New creates an empty index for a session.
func New(sessionID string, embedder driven.EmbeddingService, splitter *chunker.Splitter) *Index {
	return &Index{
		sessionID: sessionID,
		embedder:  embedder,
		splitter:  splitter,
		snap:      &snapshot{},
	}
}

// Insert chunks the document's text, embeds the chunks in one batch, and
// appends the entries. The insert is atomic per document: on any embedding
// failure no entries are committed. An empty document inserts nothing.
func (idx *Index) Insert(ctx context.Context, doc *domain.DocumentRecord) error {
	entries, err := idx.embedDocument(ctx, doc, idx.dimensions())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	cur := idx.snap
	next := &snapshot{
		entries:    make([]entry, 0, len(cur.entries)+len(entries)),
		dimensions: len(entries[0].vector),
		builtAt:    time.Now(),
	}
	if cur.builtAt.IsZero() {
		// First insert pins the dimension.
		logger.Debug("Index %s: dimension pinned at %d", idx.sessionID, next.dimensions)
	}
	next.entries = append(next.entries, cur.entries...)
	next.entries = append(next.entries, entries...)
	idx.snap = next

	logger.Debug("Index %s: inserted %d chunks for %q (%d total)",
		idx.sessionID, len(entries), doc.Filename, len(next.entries))
	return nil
}

// Search embeds the query and returns the k entries with the highest
// cosine similarity, ties broken by insertion order (earlier wins).
// An empty index returns no results and no error. k must be at least 1.
func (idx *Index) Search(ctx context.Context, query string, k int) ([]domain.ScoredChunk, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", domain.ErrInvalidInput, k)
	}

	idx.mu.RLock()
	snap := idx.snap
	idx.mu.RUnlock()

	if len(snap.entries) == 0 {
		return nil, nil
	}

	qvec, err := idx.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query embedding: %v", domain.ErrEmbedding, err)
	}
	if len(qvec) != snap.dimensions {
		return nil, fmt.Errorf("%w: query dimension %d does not match index dimension %d",
			domain.ErrEmbedding, len(qvec), snap.dimensions)
	}
	normalize(qvec)

	// Vectors are stored normalized, so cosine similarity is a dot product.
	scored := make([]domain.ScoredChunk, len(snap.entries))
	for i, e := range snap.entries {
		scored[i] = domain.ScoredChunk{
			Chunk: e.chunk,
			Score: dot(qvec, e.vector),
		}
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

// Rebuild discards all entries and reinserts from the given document list,
// in order. The new index is built aside and swapped in only on full
// success: an embedding failure leaves the previous index untouched.
func (idx *Index) Rebuild(ctx context.Context, docs []domain.DocumentRecord) error {
	next := &snapshot{builtAt: time.Now()}

	for i := range docs {
		entries, err := idx.embedDocument(ctx, &docs[i], next.dimensions)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			next.dimensions = len(entries[0].vector)
		}
		next.entries = append(next.entries, entries...)
	}

	idx.mu.Lock()
	idx.snap = next
	idx.mu.Unlock()

	logger.Debug("Index %s: rebuilt with %d entries from %d documents",
		idx.sessionID, len(next.entries), len(docs))
	return nil
}

// Stats returns the current entry count, dimension, and build timestamp.
func (idx *Index) Stats() domain.IndexStats {
	idx.mu.RLock()
	snap := idx.snap
	idx.mu.RUnlock()

	return domain.IndexStats{
		Entries:    len(snap.entries),
		Dimensions: snap.dimensions,
		BuiltAt:    snap.builtAt,
	}
}

// embedDocument chunks and embeds one document's text. wantDims of 0 means
// the dimension is not yet pinned.
func (idx *Index) embedDocument(ctx context.Context, doc *domain.DocumentRecord, wantDims int) ([]entry, error) {
	texts := idx.splitter.Split(doc.Text)
	if len(texts) == 0 {
		return nil, nil
	}

	vectors, err := idx.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: embed %q: %v", domain.ErrEmbedding, doc.Filename, err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: embed %q: got %d vectors for %d chunks",
			domain.ErrEmbedding, doc.Filename, len(vectors), len(texts))
	}

	entries := make([]entry, len(texts))
	for i, vec := range vectors {
		if len(vec) == 0 {
			return nil, fmt.Errorf("%w: embed %q: empty vector for chunk %d",
				domain.ErrEmbedding, doc.Filename, i)
		}
		if wantDims != 0 && len(vec) != wantDims {
			return nil, fmt.Errorf("%w: embed %q: dimension %d does not match index dimension %d",
				domain.ErrEmbedding, doc.Filename, len(vec), wantDims)
		}
		wantDims = len(vec)

		normalize(vec)
		entries[i] = entry{
			chunk: domain.Chunk{
				SessionID:  idx.sessionID,
				DocumentID: doc.ID,
				Filename:   doc.Filename,
				Kind:       doc.Kind,
				Seq:        i,
				Text:       texts[i],
			},
			vector: vec,
		}
	}

	return entries, nil
}

// dimensions returns the pinned dimension, or 0 before the first insert.
func (idx *Index) dimensions() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.snap.dimensions
}

// normalize scales the vector to unit length in place.
// Zero vectors are left unchanged.
func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}

// dot computes the dot product of two equal-length vectors.
func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
