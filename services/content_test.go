package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/karisnidevibalan/lms-backend/models"
)

func testMaterial(keywords ...string) *models.StudyMaterial {
	return &models.StudyMaterial{
		Title:    "Neural Networks 101",
		Keywords: datatypes.NewJSONSlice(keywords),
	}
}

func TestGenerateStudyContent_Quick(t *testing.T) {
	m := testMaterial("neural", "network", "gradient", "backprop", "layer", "tensor", "relu")

	content, err := GenerateStudyContent(m, ModeQuick)
	require.NoError(t, err)
	require.NotNil(t, content.Quick)
	assert.Nil(t, content.Medium)
	assert.Nil(t, content.Detailed)
	assert.Equal(t, ModeQuick, content.Mode)

	// quick chỉ lấy tối đa 5 key point, flashcard 1-1 với key point
	assert.Len(t, content.Quick.KeyPoints, 5)
	assert.Len(t, content.Quick.FlashCards, 5)
	for i, card := range content.Quick.FlashCards {
		assert.Equal(t, content.Quick.KeyPoints[i], card.Front)
		assert.Contains(t, card.Back, m.Title)
	}
	assert.Contains(t, content.Quick.Summary, "neural")
	assert.Equal(t, "5-10 minutes", content.Quick.TimeEstimate)
}

func TestGenerateStudyContent_Medium(t *testing.T) {
	m := testMaterial("neural", "network")

	content, err := GenerateStudyContent(m, ModeMedium)
	require.NoError(t, err)
	require.NotNil(t, content.Medium)
	assert.Nil(t, content.Quick)

	assert.Equal(t, []string{"neural", "network"}, content.Medium.KeyPoints)
	require.Len(t, content.Medium.Sections, 4)
	assert.Equal(t, "Introduction", content.Medium.Sections[0].Heading)
	assert.Equal(t, "Summary", content.Medium.Sections[3].Heading)
	assert.Len(t, content.Medium.QuizQuestions, 1)
	assert.Len(t, content.Medium.QuizQuestions[0].Options, 4)
	assert.Equal(t, "15-30 minutes", content.Medium.TimeEstimate)
}

func TestGenerateStudyContent_Detailed(t *testing.T) {
	m := testMaterial("neural")

	content, err := GenerateStudyContent(m, ModeDetailed)
	require.NoError(t, err)
	require.NotNil(t, content.Detailed)

	require.Len(t, content.Detailed.Sections, 6)
	assert.Equal(t, "Background", content.Detailed.Sections[1].Heading)
	assert.Equal(t, "Deep Dive", content.Detailed.Sections[3].Heading)
	require.Len(t, content.Detailed.Multimedia, 2)
	assert.Equal(t, "video", content.Detailed.Multimedia[0].Type)
	assert.Equal(t, "diagram", content.Detailed.Multimedia[1].Type)
	assert.Len(t, content.Detailed.QuizQuestions, 2)
	assert.Equal(t, "45-60 minutes", content.Detailed.TimeEstimate)
}

func TestGenerateStudyContent_NoKeywords(t *testing.T) {
	m := testMaterial()

	content, err := GenerateStudyContent(m, ModeQuick)
	require.NoError(t, err)
	assert.Empty(t, content.Quick.KeyPoints)
	assert.Empty(t, content.Quick.FlashCards)

	// quiz prompt fallback về tên tài liệu khi thiếu keyword
	content, err = GenerateStudyContent(m, ModeMedium)
	require.NoError(t, err)
	require.Len(t, content.Medium.QuizQuestions, 1)
	assert.Contains(t, content.Medium.QuizQuestions[0].Question, m.Title)
}

func TestGenerateStudyContent_InvalidMode(t *testing.T) {
	_, err := GenerateStudyContent(testMaterial("x"), "turbo")
	assert.ErrorIs(t, err, ErrInvalidStudyMode)

	_, err = GenerateStudyContent(testMaterial("x"), "")
	assert.ErrorIs(t, err, ErrInvalidStudyMode)
}
