package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceKind_Valid(t *testing.T) {
	tests := []struct {
		name string
		kind SourceKind
		want bool
	}{
		{"document", KindDocument, true},
		{"slides", KindSlides, true},
		{"transcript", KindTranscript, true},
		{"empty", SourceKind(""), false},
		{"unknown", SourceKind("video"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Valid())
		})
	}
}

func sessionWithDocs(n int) *Session {
	s := &Session{ID: "sess-1", Name: "Test"}
	for i := 0; i < n; i++ {
		s.Documents = append(s.Documents, DocumentRecord{
			ID:      string(rune('a' + i)),
			Ordinal: i,
		})
	}
	return s
}

func TestSession_DocumentByOrdinal(t *testing.T) {
	s := sessionWithDocs(3)

	doc, ok := s.DocumentByOrdinal(1)
	require.True(t, ok)
	assert.Equal(t, "b", doc.ID)

	_, ok = s.DocumentByOrdinal(-1)
	assert.False(t, ok)

	_, ok = s.DocumentByOrdinal(3)
	assert.False(t, ok)
}

func TestSession_RemoveDocument(t *testing.T) {
	t.Run("middle removal renumbers densely", func(t *testing.T) {
		s := sessionWithDocs(4)

		ok := s.RemoveDocument(1)
		require.True(t, ok)

		require.Len(t, s.Documents, 3)
		assert.Equal(t, []string{"a", "c", "d"}, docIDs(s))
		for i, doc := range s.Documents {
			assert.Equal(t, i, doc.Ordinal)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		s := sessionWithDocs(2)
		assert.False(t, s.RemoveDocument(2))
		assert.False(t, s.RemoveDocument(-1))
		assert.Len(t, s.Documents, 2)
	})

	t.Run("last document", func(t *testing.T) {
		s := sessionWithDocs(1)
		require.True(t, s.RemoveDocument(0))
		assert.Empty(t, s.Documents)
	})
}

func TestSession_Clone(t *testing.T) {
	s := sessionWithDocs(2)

	clone := s.Clone()
	clone.Name = "changed"
	clone.Documents[0].Filename = "changed.txt"

	assert.Equal(t, "Test", s.Name)
	assert.Empty(t, s.Documents[0].Filename)
}

func docIDs(s *Session) []string {
	ids := make([]string, len(s.Documents))
	for i, d := range s.Documents {
		ids[i] = d.ID
	}
	return ids
}
