// Package extract pulls plain text out of uploaded document files.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Text extracts the textual content of the file at path. The format is
// chosen by extension. An unsupported extension is an error; a supported
// file with no text yields an empty string.
func Text(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return pdfText(path)
	case ".docx":
		return docxText(path)
	case ".pptx":
		return pptxText(path)
	case ".xlsx":
		return xlsxText(path)
	case ".ods":
		return odsText(path)
	case ".md":
		return markdownText(path)
	case ".txt":
		return plainText(path)
	default:
		return "", fmt.Errorf("unsupported file format: %s", ext)
	}
}

// Supported reports whether the extension (with dot) can be extracted.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pdf", ".docx", ".pptx", ".xlsx", ".ods", ".md", ".txt":
		return true
	}
	return false
}
