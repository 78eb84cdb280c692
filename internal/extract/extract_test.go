package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTextFromTxt(t *testing.T) {
	path := writeFile(t, "doc.txt", "درس عن تغير المناخ.\nسطر ثانٍ.")
	text, err := Text(path)
	require.NoError(t, err)
	assert.Equal(t, "درس عن تغير المناخ.\nسطر ثانٍ.", text)
}

func TestTextFromMarkdownStripsFormatting(t *testing.T) {
	path := writeFile(t, "doc.md", "# عنوان الدرس\n\nفقرة **مهمة** عن المناخ.\n\n- بند أول\n- بند ثانٍ\n")
	text, err := Text(path)
	require.NoError(t, err)
	assert.Contains(t, text, "عنوان الدرس")
	assert.Contains(t, text, "فقرة")
	assert.Contains(t, text, "مهمة")
	assert.Contains(t, text, "بند أول")
	assert.NotContains(t, text, "#")
	assert.NotContains(t, text, "**")
}

func TestTextUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "doc.exe", "binary")
	_, err := Text(path)
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(".pdf"))
	assert.True(t, Supported(".PDF"))
	assert.True(t, Supported(".txt"))
	assert.True(t, Supported(".docx"))
	assert.False(t, Supported(".exe"))
	assert.False(t, Supported(""))
}

func TestXMLRuns(t *testing.T) {
	xml := `<w:p><w:r><w:t>نص أول</w:t></w:r><w:tbl/><w:r><w:t xml:space="preserve">نص ثانٍ</w:t></w:r></w:p>`
	got := xmlRuns(xml, "<w:t")
	assert.Contains(t, got, "نص أول")
	assert.Contains(t, got, "نص ثانٍ")
	assert.NotContains(t, got, "<w:")
}
