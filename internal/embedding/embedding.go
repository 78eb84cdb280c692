// Package embedding wraps the langchaingo embedder used by the question index.
package embedding

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"

	"docquiz/internal/config"
)

// NewOllamaEmbedder builds an embedder against a local ollama endpoint.
func NewOllamaEmbedder(cfg *config.LLMConfig) (*embeddings.EmbedderImpl, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.BaseURL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing embedding model: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}
	return embedder, nil
}

// EmbedText embeds a single piece of text.
func EmbedText(ctx context.Context, embedder *embeddings.EmbedderImpl, text string) ([]float32, error) {
	return embedder.EmbedQuery(ctx, text)
}
