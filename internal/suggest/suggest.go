// Package suggest drafts flashcards for a topic using an OpenAI-compatible
// chat completion API. Drafts are meant to be reviewed and edited before
// import, not trusted blindly.
package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

// ErrNoAPIKey is returned by NewFromEnv when OPENAI_API_KEY is unset.
var ErrNoAPIKey = errors.New("OPENAI_API_KEY is not set")

// Draft is one suggested flashcard.
type Draft struct {
	Front string `json:"front"`
	Back  string `json:"back"`
	Note  string `json:"note,omitempty"`
}

type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service drafts cards via a chat completion backend.
type Service struct {
	client completer
	model  string
}

// New builds a Service with an explicit API key and optional base URL, which
// also covers OpenRouter and other OpenAI-compatible endpoints.
func New(apiKey, baseURL, model string) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Service{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

// NewFromEnv reads OPENAI_API_KEY, and optionally OPENAI_BASE_URL and
// OPENAI_MODEL.
func NewFromEnv() (*Service, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, ErrNoAPIKey
	}
	return New(key, os.Getenv("OPENAI_BASE_URL"), os.Getenv("OPENAI_MODEL"))
}

const systemPrompt = `You write flashcards for spaced-repetition study.
Answer with a JSON object of the form {"cards": [{"front": ..., "back": ..., "note": ...}]}.
Fronts are short prompts, backs are concise answers, notes are optional context.
Do not include markdown fences or any text outside the JSON object.`

type draftsPayload struct {
	Cards []Draft `json:"cards"`
}

// Drafts asks for n cards about topic.
func (s *Service) Drafts(ctx context.Context, topic string, n int) ([]Draft, error) {
	if n < 1 {
		n = 1
	}
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Write %d flashcards about: %s", n, topic)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in completion response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	var payload draftsPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("parse drafts: %w", err)
	}

	drafts := payload.Cards[:0]
	for _, d := range payload.Cards {
		if strings.TrimSpace(d.Front) == "" || strings.TrimSpace(d.Back) == "" {
			continue
		}
		drafts = append(drafts, d)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("model returned no usable cards")
	}
	return drafts, nil
}
