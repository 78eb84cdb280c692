// Package prompt builds backend-agnostic instruction payloads for one
// text chunk and question type.
package prompt

import (
	"fmt"
	"strings"

	"docquiz/internal/models"
)

// Payload is a role-tagged instruction set for the generation backend.
type Payload struct {
	System string
	User   string
}

// Empty reports a degenerate payload that downstream should skip.
func (p Payload) Empty() bool {
	return p.User == ""
}

// Build produces the instruction payload for one generation request.
// A blank chunk yields an empty payload rather than an error.
func Build(req models.GenerationRequest) Payload {
	text := strings.TrimSpace(req.Chunk.Content)
	if text == "" || req.Count <= 0 {
		return Payload{}
	}

	var tmpl string
	switch req.Type {
	case models.MultipleChoice:
		tmpl = models.MultipleChoicePromptTemplate
	case models.Essay:
		tmpl = models.EssayPromptTemplate
	case models.Flashcard:
		tmpl = models.FlashcardPromptTemplate
	default:
		return Payload{}
	}

	return Payload{
		System: models.SystemPersona,
		User:   fmt.Sprintf(tmpl, req.Count, text),
	}
}
