// Package openai implements ai.Provider against the OpenAI HTTP API:
// chat completions for note drafting, audio transcriptions for
// dictation.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"dentalai_backend/internal/ai"
	"dentalai_backend/internal/config"
	"dentalai_backend/internal/logger"
)

type Provider struct {
	client             *http.Client
	baseURL            string
	apiKey             string
	model              string
	transcriptionModel string
	maxTokens          int
}

// New constructs a Provider from the application config.
func New(cfg *config.Config) *Provider {
	timeout := time.Duration(cfg.AI.RequestTimeoutSec) * time.Second
	return &Provider{
		client:             &http.Client{Timeout: timeout},
		baseURL:            cfg.AI.OpenAI.BaseURL,
		apiKey:             cfg.AI.OpenAI.APIKey,
		model:              cfg.AI.OpenAI.Model,
		transcriptionModel: cfg.AI.OpenAI.TranscriptionModel,
		maxTokens:          cfg.AI.MaxTokens,
	}
}

func (p *Provider) Name() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type transcriptionResponse struct {
	Text  string    `json:"text"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// DraftNote sends the transcript through the chat completions endpoint.
func (p *Provider) DraftNote(ctx context.Context, req ai.DraftRequest) (*ai.DraftResult, error) {
	start := time.Now()

	body := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: ai.SystemPrompt()},
			{Role: "user", Content: ai.BuildUserPrompt(req)},
		},
		MaxTokens: p.maxTokens,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

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

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("openai: %s (%s)", parsed.Error.Message, parsed.Error.Type)
		}
		return nil, fmt.Errorf("openai: chat completions returned %s", resp.Status)
	}

	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty choices in response")
	}

	return &ai.DraftResult{
		Text:     parsed.Choices[0].Message.Content,
		Provider: p.Name(),
		Model:    p.model,
	}, nil
}

// Transcribe uploads dictation audio to the transcriptions endpoint.
func (p *Provider) Transcribe(ctx context.Context, req ai.TranscribeRequest) (string, error) {
	start := time.Now()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", req.FileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, req.Audio); err != nil {
		return "", err
	}
	if err := writer.WriteField("model", p.transcriptionModel); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	logger.AILog(p.Name(), "transcribe", time.Since(start), err)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed transcriptionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("openai: decode transcription response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("openai: %s (%s)", parsed.Error.Message, parsed.Error.Type)
		}
		return "", fmt.Errorf("openai: transcriptions returned %s", resp.Status)
	}

	return parsed.Text, nil
}
