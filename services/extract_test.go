package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractTextFromFile_TXT(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "neural networks and gradients")

	text, err := ExtractTextFromFile(path, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "neural networks and gradients", text)
}

func TestExtractTextFromFile_Markdown(t *testing.T) {
	path := writeTempFile(t, "notes.md", "# Heading\n\nbody text")

	text, err := ExtractTextFromFile(path, "notes.md")
	require.NoError(t, err)
	assert.Contains(t, text, "body text")
}

func TestExtractTextFromFile_ExtensionCaseInsensitive(t *testing.T) {
	path := writeTempFile(t, "NOTES.TXT", "upper case extension")

	text, err := ExtractTextFromFile(path, "NOTES.TXT")
	require.NoError(t, err)
	assert.Equal(t, "upper case extension", text)
}

func TestExtractTextFromFile_UnsupportedExtension(t *testing.T) {
	// video/ảnh không có text: trả rỗng, không lỗi
	path := writeTempFile(t, "clip.mp4", "binarydata")

	text, err := ExtractTextFromFile(path, "clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestExtractTextFromFile_CorruptPDF(t *testing.T) {
	path := writeTempFile(t, "bad.pdf", "not a real pdf")

	_, err := ExtractTextFromFile(path, "bad.pdf")
	assert.Error(t, err)
}

func TestExtractTextFromFile_CorruptDOCX(t *testing.T) {
	path := writeTempFile(t, "bad.docx", "not a zip archive")

	_, err := ExtractTextFromFile(path, "bad.docx")
	assert.Error(t, err)
}

func TestExtractTextFromTXT_MissingFile(t *testing.T) {
	_, err := ExtractTextFromTXT(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
