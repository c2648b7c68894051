package ai

import (
	"context"
	"errors"
)

// Generator is the single-shot completion contract the assistant depends
// on: one prompt in, one finished text out. Any conforming provider may be
// substituted, including test fakes.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyCompletion is returned when a provider settles without producing
// any text. Callers treat it like any other call failure.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
