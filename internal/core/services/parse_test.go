package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyTerms(t *testing.T) {
	t.Run("plain lines", func(t *testing.T) {
		terms, warnings := parseKeyTerms("Osmosis: movement of water across a membrane\nDiffusion: spread of particles")
		require.Len(t, terms, 2)
		assert.Equal(t, "Osmosis", terms[0].Term)
		assert.Equal(t, "movement of water across a membrane", terms[0].Definition)
		assert.Empty(t, warnings)
	})

	t.Run("bullets and numbering", func(t *testing.T) {
		terms, warnings := parseKeyTerms("- Osmosis: water movement\n1. Diffusion: particle spread\n* Tonicity: solute balance")
		require.Len(t, terms, 3)
		assert.Equal(t, "Diffusion", terms[1].Term)
		assert.Empty(t, warnings)
	})

	t.Run("markdown bold term", func(t *testing.T) {
		terms, _ := parseKeyTerms("**Osmosis**: water movement")
		require.Len(t, terms, 1)
		assert.Equal(t, "Osmosis", terms[0].Term)
	})

	t.Run("malformed lines become warnings", func(t *testing.T) {
		terms, warnings := parseKeyTerms("Osmosis: water movement\nno separator here\nDiffusion: particle spread")
		assert.Len(t, terms, 2)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "no separator here")
	})

	t.Run("empty definition is malformed", func(t *testing.T) {
		terms, warnings := parseKeyTerms("Osmosis:   \nDiffusion: particle spread")
		assert.Len(t, terms, 1)
		assert.Len(t, warnings, 1)
	})

	t.Run("headers are ignored", func(t *testing.T) {
		terms, warnings := parseKeyTerms("## Key Terms\nOsmosis: water movement")
		assert.Len(t, terms, 1)
		assert.Empty(t, warnings)
	})

	t.Run("empty input", func(t *testing.T) {
		terms, warnings := parseKeyTerms("")
		assert.Empty(t, terms)
		assert.Empty(t, warnings)
	})
}

func TestParseQuestions(t *testing.T) {
	t.Run("categorised", func(t *testing.T) {
		raw := "Conceptual:\n1. Why is the sky blue?\n2. What causes tides?\nApplication:\n3. Estimate the moon's orbital period."
		questions, warnings := parseQuestions(raw)
		require.Len(t, questions, 3)
		assert.Equal(t, "Conceptual", questions[0].Category)
		assert.Equal(t, "Why is the sky blue?", questions[0].Prompt)
		assert.Equal(t, "Application", questions[2].Category)
		assert.Empty(t, warnings)
	})

	t.Run("uncategorised", func(t *testing.T) {
		questions, _ := parseQuestions("- What is photosynthesis?\n- Where does it occur?")
		require.Len(t, questions, 2)
		assert.Empty(t, questions[0].Category)
	})

	t.Run("bare bullet becomes warning", func(t *testing.T) {
		questions, warnings := parseQuestions("1. A real question?\n- \n2. Another question?")
		assert.Len(t, questions, 2)
		assert.Len(t, warnings, 1)
	})
}

func TestParseResources(t *testing.T) {
	t.Run("full lines", func(t *testing.T) {
		raw := "Linear Algebra Done Right | book | Axler | clear proofs\n3Blue1Brown | video series | YouTube | visual intuition"
		resources, warnings := parseResources(raw)
		require.Len(t, resources, 2)
		assert.Equal(t, "Linear Algebra Done Right", resources[0].Title)
		assert.Equal(t, "book", resources[0].Type)
		assert.Equal(t, "Axler", resources[0].Source)
		assert.Equal(t, "clear proofs", resources[0].Reason)
		assert.Empty(t, warnings)
	})

	t.Run("reason is optional", func(t *testing.T) {
		resources, warnings := parseResources("Khan Academy | website | khanacademy.org")
		require.Len(t, resources, 1)
		assert.Empty(t, resources[0].Reason)
		assert.Empty(t, warnings)
	})

	t.Run("too few fields is malformed", func(t *testing.T) {
		resources, warnings := parseResources("Khan Academy | website\nWolfram | website | wolfram.com")
		assert.Len(t, resources, 1)
		assert.Len(t, warnings, 1)
	})

	t.Run("numbered list", func(t *testing.T) {
		resources, _ := parseResources("1. Paul's Notes | website | tutorial.math.lamar.edu | worked examples")
		require.Len(t, resources, 1)
		assert.Equal(t, "Paul's Notes", resources[0].Title)
	})
}

func TestStripListPrefix(t *testing.T) {
	cases := map[string]string{
		"- item":     "item",
		"* item":     "item",
		"• item":     "item",
		"1. item":    "item",
		"12) item":   "item",
		"item":       "item",
		"2023 stays": "2023 stays",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripListPrefix(in), "input %q", in)
	}
}
