package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helektron-labs/lectern/internal/core/ports/driven"
)

func TestGenerationService_Generate(t *testing.T) {
	var got chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"choices":[{"message":{"content":"a study summary"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	s, err := NewGenerationService(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := s.Generate(context.Background(), "summarise this", driven.GenerateOptions{
		MaxTokens:   500,
		Temperature: 0.3,
	})
	require.NoError(t, err)
	assert.Equal(t, "a study summary", text)

	assert.Equal(t, DefaultModel, got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, 500, got.MaxTokens)
	assert.InDelta(t, 0.3, got.Temperature, 1e-9)
}

func TestGenerationService_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key","type":"auth"}}`)
	}))
	defer server.Close()

	s, err := NewGenerationService(Config{APIKey: "bad", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = s.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestGenerationService_Generate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	s, err := NewGenerationService(Config{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = s.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	assert.Error(t, err)
}

func TestNewGenerationService_RequiresAPIKey(t *testing.T) {
	_, err := NewGenerationService(Config{})
	assert.Error(t, err)
}
