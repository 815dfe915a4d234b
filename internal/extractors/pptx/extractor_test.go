package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helektron-labs/lectern/internal/core/domain"
)

func buildPptx(t *testing.T, slides map[int]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for n, xml := range slides {
		f, err := w.Create(fmt.Sprintf("ppt/slides/slide%d.xml", n))
		require.NoError(t, err)
		_, err = f.Write([]byte(xml))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func slideXML(texts ...string) string {
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0"?><p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><p:cSld><p:spTree>`)
	for _, text := range texts {
		fmt.Fprintf(&b, `<p:sp><p:txBody><a:p><a:r><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`, text)
	}
	b.WriteString(`</p:spTree></p:cSld></p:sld>`)
	return b.String()
}

func TestExtractor_Extract_DeckOrder(t *testing.T) {
	// Slide 10 must sort after slide 2, not lexically between 1 and 2.
	content := buildPptx(t, map[int]string{
		1:  slideXML("Intro"),
		2:  slideXML("Methods", "and data"),
		10: slideXML("Conclusions"),
	})

	e := New()
	text, err := e.Extract(context.Background(), &domain.Upload{
		Filename: "deck.pptx",
		Content:  content,
	})
	require.NoError(t, err)
	assert.Equal(t, "Intro\n\nMethods and data\n\nConclusions", text)
}

func TestExtractor_Extract_EmptySlidesSkipped(t *testing.T) {
	content := buildPptx(t, map[int]string{
		1: slideXML("Only slide with text"),
		2: slideXML(),
	})

	e := New()
	text, err := e.Extract(context.Background(), &domain.Upload{
		Filename: "deck.pptx",
		Content:  content,
	})
	require.NoError(t, err)
	assert.Equal(t, "Only slide with text", text)
}

func TestExtractor_Extract_NoSlides(t *testing.T) {
	content := buildPptx(t, map[int]string{})

	e := New()
	text, err := e.Extract(context.Background(), &domain.Upload{
		Filename: "deck.pptx",
		Content:  content,
	})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractor_Extract_NotAZip(t *testing.T) {
	e := New()

	_, err := e.Extract(context.Background(), &domain.Upload{
		Filename: "deck.pptx",
		Content:  []byte("not a zip"),
	})
	assert.Error(t, err)
}
