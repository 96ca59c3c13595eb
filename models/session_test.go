package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudySession_BeforeSave_ComputesScore(t *testing.T) {
	s := &StudySession{QuestionsAnswered: 10, QuestionsCorrect: 7}

	require.NoError(t, s.BeforeSave(nil))
	require.NotNil(t, s.PerformanceScore)
	assert.Equal(t, 70.0, *s.PerformanceScore)
}

func TestStudySession_BeforeSave_RecomputesOnUpdate(t *testing.T) {
	old := 50.0
	s := &StudySession{QuestionsAnswered: 4, QuestionsCorrect: 4, PerformanceScore: &old}

	require.NoError(t, s.BeforeSave(nil))
	assert.Equal(t, 100.0, *s.PerformanceScore)
}

func TestStudySession_BeforeSave_NoAnswers(t *testing.T) {
	s := &StudySession{}

	require.NoError(t, s.BeforeSave(nil))
	assert.Nil(t, s.PerformanceScore)
}
