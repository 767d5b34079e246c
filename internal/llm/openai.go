package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o"

// OpenAIBackend talks to the OpenAI Chat Completions API, or to any
// API-compatible endpoint (OpenRouter, vLLM) via a custom base URL.
type OpenAIBackend struct {
	client *openai.Client
	model  string
	name   string
}

// NewOpenAIBackend creates a backend for the given key and model.
// baseURL may be empty for the official endpoint.
func NewOpenAIBackend(apiKey, baseURL, model string) *OpenAIBackend {
	cfg := openai.DefaultConfig(apiKey)
	name := "openai"
	if baseURL != "" {
		cfg.BaseURL = baseURL
		name = "openai-compatible"
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIBackend{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		name:   name,
	}
}

func (b *OpenAIBackend) Name() string {
	return b.name
}

func (b *OpenAIBackend) Complete(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       b.model,
		Temperature: 0.2,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	// A response with no choices is "nothing to say", not a failure.
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
