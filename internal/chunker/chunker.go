// Package chunker splits extracted document text into bounded segments
// for the generation backend. Splits never land inside a multi-byte
// character, and the chunks concatenate back to the original text.
package chunker

import (
	"unicode"

	"docquiz/internal/models"
)

// Chunk splits text into contiguous segments of at most maxChars characters,
// in order. When a whitespace character sits near the end of a window the cut
// is moved there, so words survive intact where possible. Empty input or a
// non-positive size yields nil.
func Chunk(text string, maxChars int) []models.TextChunk {
	if maxChars <= 0 || len(text) == 0 {
		return nil
	}

	runes := []rune(text)
	var chunks []models.TextChunk

	start := 0
	for start < len(runes) {
		end := start + maxChars
		if end >= len(runes) {
			end = len(runes)
		} else {
			// Look for a break point within the last 10% of the window,
			// same scan-back the parser uses for overlapping chunks.
			lookBack := maxChars / 10
			if lookBack < 1 {
				lookBack = 1
			}
			for i := end - 1; i >= end-lookBack && i > start; i-- {
				if unicode.IsSpace(runes[i]) {
					end = i + 1
					break
				}
			}
		}

		chunks = append(chunks, models.TextChunk{
			Index:   len(chunks),
			Content: string(runes[start:end]),
		})
		start = end
	}

	return chunks
}

// Truncate returns the first maxChars characters of text as a single chunk
// budget, for backends that manage their own context window.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
