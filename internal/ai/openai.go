package ai

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// chatCompleter is the minimal subset of openai.Client the generator uses;
// it is easy to fake in tests.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIConfig struct {
	APIKey       string
	BaseURL      string
	Model        string
	ReplyTimeout time.Duration
}

// OpenAIGenerator is the alternate provider for hosts pointing at an
// OpenAI-compatible endpoint.
type OpenAIGenerator struct {
	client chatCompleter
	cfg    OpenAIConfig
}

func NewOpenAIGenerator(cfg OpenAIConfig) *OpenAIGenerator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIGenerator{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	runCtx := ctx
	cancel := func() {}
	if g.cfg.ReplyTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, g.cfg.ReplyTimeout)
	}
	defer cancel()

	resp, err := g.client.CreateChatCompletion(runCtx, openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
