package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// This file provides the text-generation client. The wire format is the
// OpenRouter chat-completions API: POST {model, messages, temperature,
// stream:false} -> {choices: [{message: {content}}]}.

const chatTemperature = 0.7

// ChatService performs a single non-streaming chat completion. It returns
// the decoded response together with the HTTP status code so the caller can
// run its fallback loop on rate-limit without re-reading the body.
type ChatService interface {
	Complete(ctx context.Context, model string, messages []ChatMessage) (ChatCompletion, int, error)
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type ChatCompletion struct {
	Choices []ChatChoice `json:"choices"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

// FirstContent returns the first choice's message content, or "" when the
// response carries no choices (rate-limit payloads, provider errors).
func (c ChatCompletion) FirstContent() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Message.Content
}

// OpenRouterChatService is a ChatService backed by the OpenRouter
// chat-completions endpoint.
type OpenRouterChatService struct {
	completionsURL string
	apiKey         string
	httpClient     *http.Client
}

func NewOpenRouterChatService(completionsURL, apiKey string, httpClient *http.Client) *OpenRouterChatService {
	return &OpenRouterChatService{
		completionsURL: completionsURL,
		apiKey:         apiKey,
		httpClient:     httpClient,
	}
}

// Complete sends one completion request. The body is decoded regardless of
// the HTTP status: a rate-limited or failed attempt still yields a (mostly
// empty) ChatCompletion, matching the provider's JSON error envelopes.
func (s *OpenRouterChatService) Complete(ctx context.Context, model string, messages []ChatMessage) (ChatCompletion, int, error) {
	payload := ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: chatTemperature,
		Stream:      false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ChatCompletion{}, 0, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.completionsURL, bytes.NewReader(body))
	if err != nil {
		return ChatCompletion{}, 0, fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Title", "My Weather App")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ChatCompletion{}, 0, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	var completion ChatCompletion
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return ChatCompletion{}, resp.StatusCode, fmt.Errorf("failed to decode completion response: %w", err)
	}

	return completion, resp.StatusCode, nil
}
