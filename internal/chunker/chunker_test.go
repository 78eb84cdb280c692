package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkReconstructsOriginalText(t *testing.T) {
	texts := []string{
		"short",
		strings.Repeat("التغير المناخي هو ارتفاع درجات الحرارة على سطح الأرض. ", 40),
		strings.Repeat("Climate change is a long-term shift in temperatures and weather patterns. ", 30),
		"نص بلا فواصلنهائياًطويلجداً" + strings.Repeat("كلمة", 200),
	}
	for _, text := range texts {
		chunks := Chunk(text, 512)
		require.NotEmpty(t, chunks)

		var rebuilt strings.Builder
		for i, c := range chunks {
			assert.Equal(t, i, c.Index)
			assert.LessOrEqual(t, len([]rune(c.Content)), 512)
			assert.True(t, utf8.ValidString(c.Content))
			rebuilt.WriteString(c.Content)
		}
		assert.Equal(t, text, rebuilt.String())
	}
}

func TestChunkIsDeterministic(t *testing.T) {
	text := strings.Repeat("درس في الجغرافيا عن الأنهار والبحار. ", 50)
	first := Chunk(text, 512)
	second := Chunk(text, 512)
	assert.Equal(t, first, second)
}

func TestChunkPrefersWhitespaceBreaks(t *testing.T) {
	text := strings.Repeat("word ", 300)
	for _, c := range Chunk(text, 512)[:1] {
		assert.True(t, strings.HasSuffix(c.Content, " "), "chunk should end on the space break")
	}
}

func TestChunkEmptyInput(t *testing.T) {
	assert.Nil(t, Chunk("", 512))
	assert.Nil(t, Chunk("text", 0))
}

func TestTruncate(t *testing.T) {
	text := "مرحبا بالعالم"
	assert.Equal(t, text, Truncate(text, 100))
	assert.Equal(t, "مرحبا", Truncate(text, 5))
	assert.True(t, utf8.ValidString(Truncate(text, 5)))
	assert.Equal(t, "", Truncate(text, 0))
}
