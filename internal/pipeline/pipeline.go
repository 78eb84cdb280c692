// Package pipeline sequences chunking, prompt building, backend generation
// and output parsing into one document-to-questions pass.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"docquiz/internal/backend"
	"docquiz/internal/chunker"
	"docquiz/internal/format"
	"docquiz/internal/models"
	"docquiz/internal/prompt"
)

var (
	// ErrEmptyDocument means no extractable text was supplied.
	ErrEmptyDocument = errors.New("document has no extractable text")
	// ErrGenerationExhausted means every chunk failed or produced nothing parseable.
	ErrGenerationExhausted = errors.New("generation produced no valid questions")
	// ErrBackendUnavailable means the generation backend never initialized.
	ErrBackendUnavailable = errors.New("generation backend unavailable")
)

type Pipeline struct {
	gen             backend.Generator
	maxOutputTokens int
}

func New(gen backend.Generator, maxOutputTokens int) *Pipeline {
	return &Pipeline{gen: gen, maxOutputTokens: maxOutputTokens}
}

// Generate runs the full pass over one document. Chunks are processed in
// index order; a chunk whose generation or parsing fails is logged and
// skipped. The scan stops as soon as enough questions have accumulated and
// never revisits earlier chunks. The returned set holds at most count
// questions, fewer if the backend under-produced.
func (p *Pipeline) Generate(ctx context.Context, doc models.SourceDocument, qt models.QuestionType, count int, language string) (*models.QuestionSet, error) {
	if p.gen == nil {
		return nil, ErrBackendUnavailable
	}
	if strings.TrimSpace(doc.Text) == "" {
		return nil, ErrEmptyDocument
	}

	budget := p.gen.InputBudget()
	var chunks []models.TextChunk
	if budget.SingleChunk {
		chunks = []models.TextChunk{{Index: 0, Content: chunker.Truncate(doc.Text, budget.MaxChunkChars)}}
	} else {
		chunks = chunker.Chunk(doc.Text, budget.MaxChunkChars)
	}

	var questions []models.Question
	for _, chunk := range chunks {
		if len(questions) >= count {
			break
		}

		payload := prompt.Build(models.GenerationRequest{
			Type:     qt,
			Count:    count - len(questions),
			Chunk:    chunk,
			Language: language,
		})
		if payload.Empty() {
			continue
		}

		outputs, err := p.gen.Generate(ctx, payload, p.maxOutputTokens)
		if err != nil {
			log.Warn().Err(err).
				Int("chunk", chunk.Index).
				Str("backend", p.gen.Name()).
				Msg("Chunk generation failed, skipping")
			continue
		}

		for _, raw := range outputs {
			questions = append(questions, format.Parse(raw, qt)...)
		}
	}

	if len(questions) == 0 {
		return nil, ErrGenerationExhausted
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	return &models.QuestionSet{
		Type:      qt,
		Language:  language,
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}, nil
}
