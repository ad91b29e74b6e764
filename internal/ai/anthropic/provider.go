// Package anthropic implements ai.Provider against the Anthropic
// messages API. Anthropic has no speech endpoint, so transcription is
// unsupported.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dentalai_backend/internal/ai"
	"dentalai_backend/internal/config"
	"dentalai_backend/internal/logger"
)

const apiVersion = "2023-06-01"

type Provider struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
}

// New constructs a Provider from the application config.
func New(cfg *config.Config) *Provider {
	timeout := time.Duration(cfg.AI.RequestTimeoutSec) * time.Second
	return &Provider{
		client:    &http.Client{Timeout: timeout},
		baseURL:   cfg.AI.Anthropic.BaseURL,
		apiKey:    cfg.AI.Anthropic.APIKey,
		model:     cfg.AI.Anthropic.Model,
		maxTokens: cfg.AI.MaxTokens,
	}
}

func (p *Provider) Name() string { return "anthropic" }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// DraftNote sends the transcript through the messages endpoint.
func (p *Provider) DraftNote(ctx context.Context, req ai.DraftRequest) (*ai.DraftResult, error) {
	start := time.Now()

	body := messagesRequest{
		Model:  p.model,
		System: ai.SystemPrompt(),
		Messages: []message{
			{Role: "user", Content: ai.BuildUserPrompt(req)},
		},
		MaxTokens: p.maxTokens,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := p.client.Do(httpReq)
	logger.AILog(p.Name(), "draft_note", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed messagesResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("anthropic: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("anthropic: %s (%s)", parsed.Error.Message, parsed.Error.Type)
		}
		return nil, fmt.Errorf("anthropic: messages returned %s", resp.Status)
	}

	var text string
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return nil, fmt.Errorf("anthropic: no text content in response")
	}

	return &ai.DraftResult{
		Text:     text,
		Provider: p.Name(),
		Model:    p.model,
	}, nil
}

// Transcribe always fails; route audio to a provider with a speech
// endpoint instead.
func (p *Provider) Transcribe(ctx context.Context, req ai.TranscribeRequest) (string, error) {
	return "", ai.ErrTranscriptionUnsupported
}
