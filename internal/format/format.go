// Package format turns raw backend text into canonical questions and
// renders question sets back into the fixed Arabic text block the API
// returns. Parsing is marker-based scanning: candidates that do not carry
// the literal markers are dropped, never repaired.
package format

import (
	"regexp"
	"strings"

	"docquiz/internal/models"
)

var optionRe = regexp.MustCompile(`^([أبجد])\)\s*(.+)$`)

// Parse scans raw backend output for questions of the given type.
// Malformed candidates are discarded; the result may be empty.
func Parse(raw string, qt models.QuestionType) []models.Question {
	var questions []models.Question
	for _, block := range splitCandidates(raw) {
		var q models.Question
		switch qt {
		case models.MultipleChoice:
			q = parseMultipleChoice(block)
		case models.Essay:
			q = parseEssay(block)
		case models.Flashcard:
			q = parseFlashcard(block)
		default:
			return nil
		}
		if q.Valid() {
			questions = append(questions, q)
		}
	}
	return questions
}

// splitCandidates groups lines into candidate blocks, each starting at a
// question-marker line. Text before the first marker is ignored.
func splitCandidates(raw string) [][]string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var blocks [][]string
	var current []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, models.QuestionMarker) {
			if current != nil {
				blocks = append(blocks, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	if current != nil {
		blocks = append(blocks, current)
	}
	return blocks
}

// after returns the trimmed text following marker within line.
func after(line, marker string) (string, bool) {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(line[idx+len(marker):]), true
}

func parseMultipleChoice(block []string) models.Question {
	q := models.Question{Type: models.MultipleChoice}
	q.Prompt, _ = after(block[0], models.QuestionMarker)

	collecting := true
	for _, line := range block[1:] {
		if m := optionRe.FindStringSubmatch(line); m != nil && collecting {
			q.Options = append(q.Options, models.Option{Label: m[1], Text: strings.TrimSpace(m[2])})
			continue
		}
		if label, ok := after(line, models.CorrectMarker); ok {
			// the backend may echo the option text after the label
			if fields := strings.Fields(label); len(fields) > 0 {
				q.CorrectLabel = strings.Trim(fields[0], "() .")
			}
			break
		}
		// anything else ends the consecutive option run
		collecting = len(q.Options) == 0
	}
	return q
}

func parseEssay(block []string) models.Question {
	q := models.Question{Type: models.Essay}
	q.Prompt, _ = after(block[0], models.QuestionMarker)
	for _, line := range block[1:] {
		if guideline, ok := after(line, models.GuidelineMarker); ok {
			q.Guideline = guideline
			break
		}
	}
	if q.Prompt != "" && q.Guideline == "" {
		q.Guideline = models.DefaultGuideline
	}
	return q
}

func parseFlashcard(block []string) models.Question {
	q := models.Question{Type: models.Flashcard}
	q.Prompt, _ = after(block[0], models.QuestionMarker)
	for _, line := range block[1:] {
		if answer, ok := after(line, models.AnswerMarker); ok {
			q.Answer = answer
			break
		}
	}
	return q
}

// Render serializes a question set as the newline-delimited text block the
// API returns, one question per blank-line-separated section.
func Render(set *models.QuestionSet) string {
	sections := make([]string, 0, len(set.Questions))
	for _, q := range set.Questions {
		sections = append(sections, renderQuestion(q))
	}
	return strings.Join(sections, "\n\n")
}

func renderQuestion(q models.Question) string {
	var b strings.Builder
	b.WriteString(models.QuestionMarker + " " + q.Prompt)
	switch q.Type {
	case models.MultipleChoice:
		for _, opt := range q.Options {
			b.WriteString("\n" + opt.Label + ") " + opt.Text)
		}
		b.WriteString("\n" + models.CorrectMarker + " " + q.CorrectLabel)
	case models.Essay:
		b.WriteString("\n" + models.GuidelineMarker + " " + q.Guideline)
	case models.Flashcard:
		b.WriteString("\n" + models.AnswerMarker + " " + q.Answer)
	}
	return b.String()
}
