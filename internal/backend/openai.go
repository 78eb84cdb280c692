package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"docquiz/internal/config"
	"docquiz/internal/prompt"
)

// openaiBackend calls a hosted OpenAI-compatible completion service.
// The service manages its own context window, so the whole document is
// sent as one truncated chunk.
type openaiBackend struct {
	llm        *openai.LLM
	inputLimit int
}

func newOpenAI(cfg *config.LLMConfig, inputLimit int) (*openaiBackend, error) {
	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing hosted backend: %w", err)
	}
	return &openaiBackend{llm: llm, inputLimit: inputLimit}, nil
}

func (b *openaiBackend) Name() string { return "hosted" }

func (b *openaiBackend) InputBudget() InputBudget {
	return InputBudget{MaxChunkChars: b.inputLimit, SingleChunk: true}
}

func (b *openaiBackend) Generate(ctx context.Context, p prompt.Payload, maxTokens int) ([]string, error) {
	if p.Empty() {
		return nil, ErrEmptyOutput
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, p.System),
		llms.TextParts(llms.ChatMessageTypeHuman, p.User),
	}

	resp, err := b.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(maxTokens),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return nil, fmt.Errorf("hosted generation: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return nil, ErrEmptyOutput
	}
	return []string{resp.Choices[0].Content}, nil
}
