package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMaterialExt(t *testing.T) {
	allowed := []string{".pdf", ".docx", ".pptx", ".txt", ".md", ".jpg", ".png", ".mp4", ".mp3", ".wav"}
	for _, ext := range allowed {
		assert.NoError(t, ValidateMaterialExt(ext), ext)
	}

	// so sánh không phân biệt hoa thường
	assert.NoError(t, ValidateMaterialExt(".PDF"))
	assert.NoError(t, ValidateMaterialExt(".Mp4"))

	blocked := []string{".exe", ".sh", ".zip", ".html", "", "pdf"}
	for _, ext := range blocked {
		assert.Error(t, ValidateMaterialExt(ext), ext)
	}
}
