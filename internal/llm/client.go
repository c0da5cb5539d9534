// Package llm provides a minimal client for OpenAI-compatible chat
// completion endpoints (Groq by default). Failures surface as
// apperrors.ErrExternalServiceUnavailable so callers can fall back to their
// local rule tables without inspecting transport details.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"syscall-optimizer-backend/internal/apperrors"
	"syscall-optimizer-backend/internal/config"
	"syscall-optimizer-backend/pkg/logger"
)

// Completer produces a short completion from a system and user prompt.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// NewClient builds a client from config. The request timeout is bounded by
// cfg.Timeout; a slow completion service never blocks a request beyond it.
func NewClient(cfg config.GroqConfig) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat completion request and returns the trimmed text of
// the first choice. Any transport, status, or decoding problem is reported
// as ErrExternalServiceUnavailable.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.Enabled() {
		return "", apperrors.ErrExternalServiceUnavailable
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", apperrors.ErrExternalServiceUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", apperrors.ErrExternalServiceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("completion request failed")
		return "", fmt.Errorf("%w: %v", apperrors.ErrExternalServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		log := logger.Get()
		log.Warn().Int("status", resp.StatusCode).Msg("completion request rejected")
		return "", fmt.Errorf("%w: status %d", apperrors.ErrExternalServiceUnavailable, resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", apperrors.ErrExternalServiceUnavailable, err)
	}

	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", apperrors.ErrExternalServiceUnavailable)
	}

	text := strings.Join(strings.Fields(decoded.Choices[0].Message.Content), " ")
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", apperrors.ErrExternalServiceUnavailable)
	}

	return text, nil
}
