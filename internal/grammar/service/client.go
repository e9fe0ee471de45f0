// Package service provides the HTTP client for the grammar-correction
// collaborator, an OpenAI-compatible chat completions backend.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/allisson/posts/internal/errors"
)

// Corrector sends free text to the collaborator and returns the corrected
// version. One request, one textual result; no retries, no streaming.
type Corrector interface {
	Correct(ctx context.Context, text string) (string, error)
}

// chatCompletionRequest is the subset of the chat completions payload we send.
type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the subset of the backend response we read.
type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// client performs HTTP requests against an OpenAI-compatible chat completions
// backend.
type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a new Corrector. The API key is required; the client
// fails at construction rather than on first use.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) (Corrector, error) {
	if apiKey == "" {
		return nil, apperrors.New("grammar api key is required")
	}

	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}, nil
}

// Correct sends the text with a single correction instruction and returns
// the first choice's content, trimmed. Every failure mode, including an
// empty result, surfaces as a collaborator error.
func (c *client) Correct(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Correct the following sentence for grammar and return only the corrected sentence:\n\n%q",
		text,
	)

	body, err := json.Marshal(chatCompletionRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCollaborator, err.Error())
	}

	url := c.baseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCollaborator, err.Error())
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCollaborator, err.Error())
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return "", apperrors.Wrap(
			apperrors.ErrCollaborator,
			fmt.Sprintf("backend returned status %d", httpResp.StatusCode),
		)
	}

	var chatResp chatCompletionResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&chatResp); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCollaborator, err.Error())
	}

	if len(chatResp.Choices) == 0 {
		return "", apperrors.Wrap(apperrors.ErrCollaborator, "backend returned no choices")
	}

	corrected := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if corrected == "" {
		return "", apperrors.Wrap(apperrors.ErrCollaborator, "backend returned empty content")
	}

	return corrected, nil
}
