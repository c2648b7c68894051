package ai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type fakeCompleter struct {
	resp openai.ChatCompletionResponse
	err  error

	gotReq openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func TestOpenAIGenerateReturnsCompletion(t *testing.T) {
	fake := &fakeCompleter{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "Rest and hydrate."}},
			},
		},
	}
	generator := &OpenAIGenerator{client: fake, cfg: OpenAIConfig{Model: "gpt-4o-mini"}}

	got, err := generator.Generate(context.Background(), "I have a mild headache.")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Rest and hydrate." {
		t.Fatalf("Generate() = %q, want %q", got, "Rest and hydrate.")
	}
	if fake.gotReq.Model != "gpt-4o-mini" {
		t.Fatalf("request model = %q, want %q", fake.gotReq.Model, "gpt-4o-mini")
	}
	if len(fake.gotReq.Messages) != 1 || fake.gotReq.Messages[0].Content != "I have a mild headache." {
		t.Fatalf("request messages = %v, want single user prompt", fake.gotReq.Messages)
	}
}

func TestOpenAIGeneratePropagatesError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("quota exceeded")}
	generator := &OpenAIGenerator{client: fake, cfg: OpenAIConfig{Model: "gpt-4o-mini"}}

	_, err := generator.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatalf("Generate() expected error")
	}
}

func TestOpenAIGenerateEmptyChoices(t *testing.T) {
	fake := &fakeCompleter{resp: openai.ChatCompletionResponse{}}
	generator := &OpenAIGenerator{client: fake, cfg: OpenAIConfig{Model: "gpt-4o-mini"}}

	_, err := generator.Generate(context.Background(), "hello")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("Generate() error = %v, want ErrEmptyCompletion", err)
	}
}

func TestOpenAIGenerateBlankContent(t *testing.T) {
	fake := &fakeCompleter{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "   "}},
			},
		},
	}
	generator := &OpenAIGenerator{client: fake, cfg: OpenAIConfig{Model: "gpt-4o-mini"}}

	_, err := generator.Generate(context.Background(), "hello")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("Generate() error = %v, want ErrEmptyCompletion", err)
	}
}
