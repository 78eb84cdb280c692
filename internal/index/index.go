// Package index keeps an embedding per generated question so past output
// is searchable by similarity.
package index

import (
	"context"
	"fmt"
	"runtime"

	"github.com/philippgille/chromem-go"
	"github.com/tmc/langchaingo/embeddings"

	"docquiz/internal/config"
	"docquiz/internal/embedding"
	"docquiz/internal/models"
)

const compress = false

// QuestionIndex encapsulates the chromem collection and its embedder.
type QuestionIndex struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   *embeddings.EmbedderImpl
}

// Result is one similar question from the index.
type Result struct {
	Question   string  `json:"question"`
	RecordID   string  `json:"record_id"`
	Filename   string  `json:"filename"`
	Type       string  `json:"type"`
	Similarity float32 `json:"similarity"`
}

func New(cfg *config.IndexConfig) (*QuestionIndex, error) {
	embedder, err := embedding.NewOllamaEmbedder(&cfg.Embed)
	if err != nil {
		return nil, err
	}
	return NewWithEmbedder(cfg, embedder)
}

// NewWithEmbedder builds the index around an existing embedder.
func NewWithEmbedder(cfg *config.IndexConfig, embedder *embeddings.EmbedderImpl) (*QuestionIndex, error) {
	db, err := chromem.NewPersistentDB(cfg.Path, compress)
	if err != nil {
		return nil, fmt.Errorf("opening question index: %w", err)
	}
	collection, err := db.GetOrCreateCollection(cfg.Collection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	return &QuestionIndex{db: db, collection: collection, embedder: embedder}, nil
}

// AddQuestionSet embeds each question prompt and stores it tagged with the
// owning history record.
func (ix *QuestionIndex) AddQuestionSet(ctx context.Context, recordID, filename, userID string, set *models.QuestionSet) error {
	var docs []chromem.Document
	for i, q := range set.Questions {
		emb, err := embedding.EmbedText(ctx, ix.embedder, q.Prompt)
		if err != nil {
			return fmt.Errorf("embedding question: %w", err)
		}
		docs = append(docs, chromem.Document{
			ID:      fmt.Sprintf("%s-%d", recordID, i),
			Content: q.Prompt,
			Metadata: map[string]string{
				"record_id": recordID,
				"filename":  filename,
				"user_id":   userID,
				"type":      string(set.Type),
			},
			Embedding: emb,
		})
	}
	if len(docs) == 0 {
		return nil
	}
	return ix.collection.AddDocuments(ctx, docs, runtime.NumCPU())
}

// Search returns up to k of the user's indexed questions most similar to
// the query.
func (ix *QuestionIndex) Search(ctx context.Context, query, userID string, k int) ([]Result, error) {
	if count := ix.collection.Count(); k > count {
		k = count
	}
	if k <= 0 {
		return nil, nil
	}

	emb, err := embedding.EmbedText(ctx, ix.embedder, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	found, err := ix.collection.QueryWithOptions(ctx, chromem.QueryOptions{
		QueryEmbedding: emb,
		NResults:       k,
		Where:          map[string]string{"user_id": userID},
	})
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	results := make([]Result, 0, len(found))
	for _, r := range found {
		results = append(results, Result{
			Question:   r.Content,
			RecordID:   r.Metadata["record_id"],
			Filename:   r.Metadata["filename"],
			Type:       r.Metadata["type"],
			Similarity: r.Similarity,
		})
	}
	return results, nil
}
