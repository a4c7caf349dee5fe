package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/SHRA1M/Rag-chatbot/internal/config"
	"github.com/SHRA1M/Rag-chatbot/internal/models"
)

// ModelClient is the transport to a chat-completion backend. Stream sends
// the turns to the named model, forwards each text delta to onDelta as it
// arrives, and returns the complete raw answer. Failures are opaque to the
// orchestrator: network, auth, rate-limit and malformed responses all just
// mean "call failed".
type ModelClient interface {
	Stream(ctx context.Context, model string, turns []models.Turn, onDelta func(delta string) error) (string, error)
}

type openAIClient struct {
	llm         *openai.LLM
	temperature float64
}

// NewClient builds the model transport against the configured
// OpenAI-compatible endpoint. It returns nil (and no error) when no API key
// is present: the process must still start, with generation disabled.
func NewClient(cfg *config.LLMConfig) (ModelClient, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("init model client: %w", err)
	}
	return &openAIClient{llm: llm, temperature: cfg.Temperature}, nil
}

func (c *openAIClient) Stream(ctx context.Context, model string, turns []models.Turn, onDelta func(string) error) (string, error) {
	messages := make([]llms.MessageContent, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, llms.TextParts(roleOf(t.Role), t.Content))
	}

	var full strings.Builder
	resp, err := c.llm.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(c.temperature),
		llms.WithStreamingFunc(func(ctx context.Context, delta []byte) error {
			full.Write(delta)
			return onDelta(string(delta))
		}),
	)
	if err != nil {
		return "", err
	}
	if full.Len() > 0 {
		return full.String(), nil
	}
	// Some endpoints ignore streaming and answer in one piece.
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Content, nil
}

func roleOf(role string) llms.ChatMessageType {
	switch role {
	case models.RoleSystem:
		return llms.ChatMessageTypeSystem
	case models.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
