package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"docquiz/internal/config"
	"docquiz/internal/prompt"
)

// candidateCount asks the local model for multiple completions per call;
// all of them feed the parser until the requested question count is met.
const candidateCount = 2

// ollamaBackend runs generation against a locally served sequence model.
// Decoding is greedy (temperature 0) with a repetition penalty, so output
// is stable for fixed weights and input. The model itself is owned by the
// ollama server process, which serializes inference, so one client handle
// can serve concurrent requests.
type ollamaBackend struct {
	llm       *ollama.LLM
	chunkSize int
}

func newOllama(cfg *config.LLMConfig, chunkSize int) (*ollamaBackend, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.BaseURL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing local model: %w", err)
	}
	return &ollamaBackend{llm: llm, chunkSize: chunkSize}, nil
}

func (b *ollamaBackend) Name() string { return "local" }

func (b *ollamaBackend) InputBudget() InputBudget {
	return InputBudget{MaxChunkChars: b.chunkSize}
}

func (b *ollamaBackend) Generate(ctx context.Context, p prompt.Payload, maxTokens int) ([]string, error) {
	if p.Empty() {
		return nil, ErrEmptyOutput
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, p.System),
		llms.TextParts(llms.ChatMessageTypeHuman, p.User),
	}

	resp, err := b.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(maxTokens),
		llms.WithTemperature(0),
		llms.WithRepetitionPenalty(1.3),
		llms.WithCandidateCount(candidateCount),
	)
	if err != nil {
		return nil, fmt.Errorf("local model generation: %w", err)
	}

	var outputs []string
	for _, choice := range resp.Choices {
		if strings.TrimSpace(choice.Content) != "" {
			outputs = append(outputs, choice.Content)
		}
	}
	if len(outputs) == 0 {
		return nil, ErrEmptyOutput
	}
	return outputs, nil
}
