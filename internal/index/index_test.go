package index

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/embeddings"

	"docquiz/internal/config"
	"docquiz/internal/models"
)

// fakeEmbeddingClient derives a deterministic unit vector from the text, so
// the index can be exercised without a model server.
type fakeEmbeddingClient struct{}

func (fakeEmbeddingClient) CreateEmbedding(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		var seed float64
		for _, r := range text {
			seed += float64(r)
		}
		out[i] = []float32{float32(math.Cos(seed)), float32(math.Sin(seed)), 0}
	}
	return out, nil
}

func newTestIndex(t *testing.T) *QuestionIndex {
	t.Helper()
	embedder, err := embeddings.NewEmbedder(fakeEmbeddingClient{})
	require.NoError(t, err)

	cfg := &config.IndexConfig{Path: t.TempDir(), Collection: "questions"}
	ix, err := NewWithEmbedder(cfg, embedder)
	require.NoError(t, err)
	return ix
}

func flashcardSet(prompts ...string) *models.QuestionSet {
	set := &models.QuestionSet{Type: models.Flashcard, Language: "ar"}
	for _, p := range prompts {
		set.Questions = append(set.Questions, models.Question{
			Type:   models.Flashcard,
			Prompt: p,
			Answer: "الإجابة",
		})
	}
	return set
}

func TestSearchIsScopedToUser(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, ix.AddQuestionSet(ctx, "rec-a", "climate.pdf", "user-a",
		flashcardSet("ما هو تغير المناخ؟", "ما سبب الاحتباس الحراري؟")))
	require.NoError(t, ix.AddQuestionSet(ctx, "rec-b", "history.pdf", "user-b",
		flashcardSet("متى قامت الثورة الصناعية؟")))

	// user-a owns fewer questions than the requested limit
	results, err := ix.Search(ctx, "المناخ", "user-a", 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "rec-a", r.RecordID)
		assert.Equal(t, "climate.pdf", r.Filename)
		assert.Equal(t, string(models.Flashcard), r.Type)
		assert.NotEmpty(t, r.Question)
	}

	results, err = ix.Search(ctx, "الثورة", "user-b", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "متى قامت الثورة الصناعية؟", results[0].Question)

	results, err = ix.Search(ctx, "المناخ", "user-c", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEmptyIndex(t *testing.T) {
	ix := newTestIndex(t)

	results, err := ix.Search(context.Background(), "أي شيء", "user-a", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAddQuestionSetWithoutQuestions(t *testing.T) {
	ix := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, ix.AddQuestionSet(ctx, "rec-empty", "empty.pdf", "user-a", flashcardSet()))

	results, err := ix.Search(ctx, "أي شيء", "user-a", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
