package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dentalai_backend/internal/ai"
	"dentalai_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(baseURL string) *Provider {
	cfg := &config.Config{}
	cfg.AI.OpenAI.BaseURL = baseURL
	cfg.AI.OpenAI.APIKey = "test-key"
	cfg.AI.OpenAI.Model = "gpt-4o"
	cfg.AI.OpenAI.TranscriptionModel = "whisper-1"
	cfg.AI.RequestTimeoutSec = 5
	cfg.AI.MaxTokens = 256
	return New(cfg)
}

func TestDraftNote(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Subjective: test.\nPlan: test."}}]}`))
	}))
	defer server.Close()

	p := newTestProvider(server.URL)

	result, err := p.DraftNote(context.Background(), ai.DraftRequest{
		Transcript:     "patient complains of tooth pain",
		ChiefComplaint: "tooth pain",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Contains(t, gotBody.Messages[1].Content, "tooth pain")

	assert.Equal(t, "openai", result.Provider)
	assert.Contains(t, result.Text, "Subjective")
}

func TestDraftNote_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	p := newTestProvider(server.URL)

	_, err := p.DraftNote(context.Background(), ai.DraftRequest{Transcript: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestTranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "visit.mp3", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"patient reports sensitivity to cold"}`))
	}))
	defer server.Close()

	p := newTestProvider(server.URL)

	text, err := p.Transcribe(context.Background(), ai.TranscribeRequest{
		Audio:       strings.NewReader("fake audio bytes"),
		FileName:    "visit.mp3",
		ContentType: "audio/mpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "patient reports sensitivity to cold", text)
}
