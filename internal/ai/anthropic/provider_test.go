package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dentalai_backend/internal/ai"
	"dentalai_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(baseURL string) *Provider {
	cfg := &config.Config{}
	cfg.AI.Anthropic.BaseURL = baseURL
	cfg.AI.Anthropic.APIKey = "test-key"
	cfg.AI.Anthropic.Model = "claude-3-5-sonnet-20241022"
	cfg.AI.RequestTimeoutSec = 5
	cfg.AI.MaxTokens = 256
	return New(cfg)
}

func TestDraftNote(t *testing.T) {
	var gotBody messagesRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"Assessment: caries."}]}`))
	}))
	defer server.Close()

	p := newTestProvider(server.URL)

	result, err := p.DraftNote(context.Background(), ai.DraftRequest{Transcript: "deep cavity on 19"})
	require.NoError(t, err)

	assert.NotEmpty(t, gotBody.System)
	require.Len(t, gotBody.Messages, 1)
	assert.Contains(t, gotBody.Messages[0].Content, "deep cavity")

	assert.Equal(t, "anthropic", result.Provider)
	assert.Equal(t, "Assessment: caries.", result.Text)
}

func TestDraftNote_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"max_tokens required"}}`))
	}))
	defer server.Close()

	p := newTestProvider(server.URL)

	_, err := p.DraftNote(context.Background(), ai.DraftRequest{Transcript: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens required")
}

func TestTranscribe_Unsupported(t *testing.T) {
	p := newTestProvider("http://unused")

	_, err := p.Transcribe(context.Background(), ai.TranscribeRequest{})
	assert.ErrorIs(t, err, ai.ErrTranscriptionUnsupported)
}
