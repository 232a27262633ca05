// Package genai wraps the external generative text service. Everything the
// application layer sees is the TextGenerator interface; callers must be able
// to run without it.
package genai

import "context"

// TextGenerator issues one free-form completion per prompt. Any error is
// treated uniformly by callers: they fall back to local generation.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
