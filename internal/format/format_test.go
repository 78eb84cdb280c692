package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docquiz/internal/models"
)

const validMC = `السؤال: ما عاصمة مصر؟
أ) القاهرة
ب) دمشق
ج) بغداد
د) الرباط
الإجابة الصحيحة: أ`

func TestParseMultipleChoice(t *testing.T) {
	questions := Parse(validMC, models.MultipleChoice)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, models.MultipleChoice, q.Type)
	assert.Equal(t, "ما عاصمة مصر؟", q.Prompt)
	require.Len(t, q.Options, 4)
	assert.Equal(t, models.Option{Label: "أ", Text: "القاهرة"}, q.Options[0])
	assert.Equal(t, models.Option{Label: "د", Text: "الرباط"}, q.Options[3])
	assert.Equal(t, "أ", q.CorrectLabel)
}

func TestParseMultipleChoiceMissingCorrectMarkerIsDropped(t *testing.T) {
	raw := `السؤال: ما عاصمة مصر؟
أ) القاهرة
ب) دمشق
ج) بغداد
د) الرباط`
	assert.Empty(t, Parse(raw, models.MultipleChoice))
}

func TestParseMultipleChoiceTooFewOptionsIsDroppedNotPadded(t *testing.T) {
	raw := `السؤال: ما عاصمة مصر؟
أ) القاهرة
ب) دمشق
الإجابة الصحيحة: أ`
	questions := Parse(raw, models.MultipleChoice)
	assert.Empty(t, questions)
	// no synthesized placeholder options may ever appear
	for _, q := range questions {
		for _, opt := range q.Options {
			assert.NotContains(t, opt.Text, "خيار")
		}
	}
}

func TestParseMultipleChoiceCorrectLabelOutsideOptions(t *testing.T) {
	raw := `السؤال: ما عاصمة مصر؟
أ) القاهرة
ب) دمشق
ج) بغداد
د) الرباط
الإجابة الصحيحة: هـ`
	assert.Empty(t, Parse(raw, models.MultipleChoice))
}

func TestParseEssay(t *testing.T) {
	raw := `السؤال: ناقش أثر تغير المناخ على الزراعة.
إرشادات للإجابة: تناول الأسباب والنتائج مع أمثلة.`
	questions := Parse(raw, models.Essay)
	require.Len(t, questions, 1)
	assert.Equal(t, "ناقش أثر تغير المناخ على الزراعة.", questions[0].Prompt)
	assert.Equal(t, "تناول الأسباب والنتائج مع أمثلة.", questions[0].Guideline)
}

func TestParseEssayMissingGuidelineGetsDefault(t *testing.T) {
	questions := Parse("السؤال: ناقش أثر تغير المناخ.", models.Essay)
	require.Len(t, questions, 1)
	assert.Equal(t, models.DefaultGuideline, questions[0].Guideline)
}

func TestParseFlashcards(t *testing.T) {
	raw := `السؤال: ما هو الاحتباس الحراري؟
الإجابة: ارتفاع حرارة الأرض بسبب الغازات الدفيئة.

السؤال: بطاقة ناقصة بلا إجابة

السؤال: ما هي الغازات الدفيئة؟
الإجابة: غازات تحبس الحرارة في الغلاف الجوي.`
	questions := Parse(raw, models.Flashcard)
	require.Len(t, questions, 2)
	assert.Equal(t, "ما هو الاحتباس الحراري؟", questions[0].Prompt)
	assert.Equal(t, "غازات تحبس الحرارة في الغلاف الجوي.", questions[1].Answer)
}

func TestParseWithoutMarkersYieldsNothing(t *testing.T) {
	raw := "هذا نص حر من النموذج بدون أي علامات تنسيق.\nسطر آخر."
	assert.Empty(t, Parse(raw, models.MultipleChoice))
	assert.Empty(t, Parse(raw, models.Essay))
	assert.Empty(t, Parse(raw, models.Flashcard))
	assert.Empty(t, Parse("", models.Flashcard))
}

func TestParseIsIdempotent(t *testing.T) {
	first := Parse(validMC, models.MultipleChoice)
	second := Parse(validMC, models.MultipleChoice)
	assert.Equal(t, first, second)
}

func TestRenderParseRoundTrip(t *testing.T) {
	set := &models.QuestionSet{
		Type:     models.MultipleChoice,
		Language: "ar",
		Questions: []models.Question{
			{
				Type:   models.MultipleChoice,
				Prompt: "ما عاصمة مصر؟",
				Options: []models.Option{
					{Label: "أ", Text: "القاهرة"},
					{Label: "ب", Text: "دمشق"},
					{Label: "ج", Text: "بغداد"},
					{Label: "د", Text: "الرباط"},
				},
				CorrectLabel: "أ",
			},
			{
				Type:   models.MultipleChoice,
				Prompt: "ما أكبر قارة؟",
				Options: []models.Option{
					{Label: "أ", Text: "أفريقيا"},
					{Label: "ب", Text: "آسيا"},
					{Label: "ج", Text: "أوروبا"},
					{Label: "د", Text: "أستراليا"},
				},
				CorrectLabel: "ب",
			},
		},
	}

	rendered := Render(set)
	assert.Contains(t, rendered, "السؤال: ما عاصمة مصر؟")
	assert.Contains(t, rendered, "الإجابة الصحيحة: ب")

	parsed := Parse(rendered, models.MultipleChoice)
	assert.Equal(t, set.Questions, parsed)
}

func TestRenderEssayAndFlashcard(t *testing.T) {
	essay := &models.QuestionSet{
		Type: models.Essay,
		Questions: []models.Question{
			{Type: models.Essay, Prompt: "ناقش.", Guideline: "باختصار."},
		},
	}
	assert.Equal(t, "السؤال: ناقش.\nإرشادات للإجابة: باختصار.", Render(essay))

	card := &models.QuestionSet{
		Type: models.Flashcard,
		Questions: []models.Question{
			{Type: models.Flashcard, Prompt: "س", Answer: "ج"},
		},
	}
	assert.Equal(t, "السؤال: س\nالإجابة: ج", Render(card))
}
