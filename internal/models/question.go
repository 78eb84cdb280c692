package models

import (
	"fmt"
	"time"
)

// QuestionType selects the output shape requested from the backend.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	Essay          QuestionType = "essay"
	Flashcard      QuestionType = "flashcards"
)

func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case MultipleChoice, Essay, Flashcard:
		return QuestionType(s), nil
	}
	return "", fmt.Errorf("unknown question type: %q", s)
}

// Option is one labeled multiple-choice answer.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is the canonical record produced by the output parser.
// Which fields are set depends on Type: multiple-choice questions carry
// Options and CorrectLabel, essays carry Guideline, flashcards carry Answer.
type Question struct {
	Type         QuestionType `json:"type"`
	Prompt       string       `json:"prompt"`
	Options      []Option     `json:"options,omitempty"`
	CorrectLabel string       `json:"correct_label,omitempty"`
	Guideline    string       `json:"guideline,omitempty"`
	Answer       string       `json:"answer,omitempty"`
}

// Valid reports whether the question matches its type's required shape.
func (q Question) Valid() bool {
	if q.Prompt == "" {
		return false
	}
	switch q.Type {
	case MultipleChoice:
		if len(q.Options) != OptionCount || q.CorrectLabel == "" {
			return false
		}
		for _, opt := range q.Options {
			if opt.Text == "" {
				return false
			}
			if opt.Label == q.CorrectLabel {
				return true
			}
		}
		return false
	case Essay:
		return q.Guideline != ""
	case Flashcard:
		return q.Answer != ""
	}
	return false
}

// QuestionSet is the ordered result of one generation request.
type QuestionSet struct {
	Type      QuestionType `json:"type"`
	Language  string       `json:"language"`
	Questions []Question   `json:"questions"`
	CreatedAt time.Time    `json:"created_at"`
}

// SourceDocument holds the extracted text of one uploaded file.
type SourceDocument struct {
	Text     string
	Filename string
	Size     int64
}

// TextChunk is one bounded slice of source text, ordered by Index.
type TextChunk struct {
	Index   int
	Content string
}

// GenerationRequest is what the pipeline hands to the prompt builder
// for a single chunk.
type GenerationRequest struct {
	Type     QuestionType
	Count    int
	Chunk    TextChunk
	Language string
}
