package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	vai "github.com/vango-go/vai-lite/sdk"
)

// VaiConfig controls the default provider. The SDK reads its credential
// from the environment when the client is constructed.
type VaiConfig struct {
	Model        string
	ReplyTimeout time.Duration
}

// VaiGenerator runs single-shot completions through the vai-lite SDK,
// accumulating the streamed deltas into one finished string.
type VaiGenerator struct {
	client *vai.Client
	cfg    VaiConfig
}

func NewVaiGenerator(cfg VaiConfig) (*VaiGenerator, error) {
	if !IsAllowedModel(cfg.Model) {
		return nil, fmt.Errorf("unsupported model %q", cfg.Model)
	}
	return &VaiGenerator{client: vai.NewClient(), cfg: cfg}, nil
}

func (g *VaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := &vai.MessageRequest{
		Model: ResolveModel(g.cfg.Model),
		Messages: []vai.Message{
			{Role: "user", Content: []vai.ContentBlock{vai.Text(prompt)}},
		},
	}

	runCtx := ctx
	cancel := func() {}
	if g.cfg.ReplyTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, g.cfg.ReplyTimeout)
	}
	defer cancel()

	stream, err := g.client.Messages.RunStream(runCtx, req)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var completion strings.Builder
	_, processErr := stream.Process(vai.StreamCallbacks{
		OnTextDelta: func(delta string) {
			completion.WriteString(delta)
		},
	})
	if processErr != nil {
		return "", processErr
	}
	if err := stream.Err(); err != nil {
		return "", err
	}

	text := completion.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
