package models

// Literal markers the backend is asked to emit and the parser scans for.
// The API response format depends on these exact strings.
const (
	QuestionMarker  = "السؤال:"
	AnswerMarker    = "الإجابة:"
	CorrectMarker   = "الإجابة الصحيحة:"
	GuidelineMarker = "إرشادات للإجابة:"

	// DefaultGuideline fills in when the backend omits the guideline line.
	DefaultGuideline = "اكتب إجابة شاملة ومفصلة."

	OptionCount = 4
)

// OptionLabels in display order. The correct-answer label must be one of these.
var OptionLabels = [OptionCount]string{"أ", "ب", "ج", "د"}

const SystemPersona = "أنت كاتب أسئلة تعليمية خبير. تكتب أسئلة دقيقة وواضحة باللغة العربية الفصحى، وتلتزم حرفياً بصيغة الإخراج المطلوبة."

var (
	MultipleChoicePromptTemplate = `اكتب %d من أسئلة الاختيار من متعدد اعتماداً على النص التالي فقط. لكل سؤال أربعة خيارات وإجابة صحيحة واحدة. استخدم هذه الصيغة حرفياً لكل سؤال، وافصل بين الأسئلة بسطر فارغ:

السؤال: <نص السؤال>
أ) <الخيار الأول>
ب) <الخيار الثاني>
ج) <الخيار الثالث>
د) <الخيار الرابع>
الإجابة الصحيحة: <أ أو ب أو ج أو د>

النص:
%s`

	EssayPromptTemplate = `اكتب %d من الأسئلة المقالية اعتماداً على النص التالي فقط. استخدم هذه الصيغة حرفياً لكل سؤال، وافصل بين الأسئلة بسطر فارغ:

السؤال: <نص السؤال>
إرشادات للإجابة: <إرشادات مختصرة للإجابة>

النص:
%s`

	FlashcardPromptTemplate = `اكتب %d من البطاقات التعليمية اعتماداً على النص التالي فقط. استخدم هذه الصيغة حرفياً لكل بطاقة، وافصل بين البطاقات بسطر فارغ:

السؤال: <وجه البطاقة>
الإجابة: <ظهر البطاقة>

النص:
%s`
)
