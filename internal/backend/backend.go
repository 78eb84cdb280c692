// Package backend abstracts the text-generation service behind one
// capability, so a locally served model and a hosted completion API are
// interchangeable at configuration time.
package backend

import (
	"context"
	"errors"
	"fmt"

	"docquiz/internal/config"
	"docquiz/internal/prompt"
)

// ErrEmptyOutput is returned when the backend answered with no usable text.
var ErrEmptyOutput = errors.New("backend returned empty output")

// InputBudget describes how much source text one generation call may carry.
type InputBudget struct {
	// MaxChunkChars bounds a single chunk, in characters.
	MaxChunkChars int
	// SingleChunk collapses the whole document to one truncated prefix
	// instead of scanning chunk by chunk.
	SingleChunk bool
}

// Generator turns an instruction payload into one or more raw completions.
// Implementations must be safe for concurrent use by independent requests.
type Generator interface {
	Generate(ctx context.Context, p prompt.Payload, maxTokens int) ([]string, error)
	InputBudget() InputBudget
	Name() string
}

// New selects the configured generation backend.
func New(cfg *config.BackendConfig, gen *config.GenerationConfig) (Generator, error) {
	switch cfg.Kind {
	case "local":
		return newOllama(&cfg.Local, gen.ChunkSize)
	case "hosted":
		return newOpenAI(&cfg.Hosted, gen.HostedInputLimit)
	}
	return nil, fmt.Errorf("unknown backend kind: %q", cfg.Kind)
}
