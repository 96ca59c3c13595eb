package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/karisnidevibalan/lms-backend/models"
)

func sessionAt(start time.Time, mode string, spent int) models.StudySession {
	return models.StudySession{
		StudyMode: mode,
		TimeSpent: spent,
		StartTime: start,
	}
}

func TestAggregateSessions_Empty(t *testing.T) {
	got := AggregateSessions(nil, time.Now())

	assert.Equal(t, 0, got.TotalSessions)
	assert.Equal(t, 0, got.TotalStudyTime)
	assert.Equal(t, 0.0, got.AverageSessionTime)
	assert.Equal(t, "None", got.FavoriteCharacter)
	assert.Equal(t, "medium", got.PreferredMode)
	assert.Equal(t, 0.0, got.NarrationUsageRate)
	assert.Equal(t, 0, got.StudyStreak)
	assert.NotNil(t, got.CharacterStats)
	assert.NotNil(t, got.ModeStats)
}

func TestAggregateSessions_Totals(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)
	end := now.Add(-time.Hour)
	score1, score2 := 80.0, 60.0

	sessions := []models.StudySession{
		{
			StudyMode: "quick", CharacterUsed: "owl", TimeSpent: 30,
			UsedVoiceNarration: true, CompletionPercentage: 100,
			PerformanceScore: &score1, StartTime: now.Add(-2 * time.Hour), EndTime: &end,
		},
		{
			StudyMode: "quick", CharacterUsed: "owl", TimeSpent: 10,
			CompletionPercentage: 50,
			PerformanceScore:     &score2, StartTime: now.Add(-3 * time.Hour), EndTime: &end,
		},
		{
			StudyMode: "detailed", CharacterUsed: "robot", TimeSpent: 20,
			StartTime: now.Add(-4 * time.Hour), // phiên chưa kết thúc
		},
	}

	got := AggregateSessions(sessions, now)

	assert.Equal(t, 3, got.TotalSessions)
	assert.Equal(t, 60, got.TotalStudyTime)
	assert.Equal(t, 20.0, got.AverageSessionTime)
	assert.Equal(t, map[string]int{"owl": 2, "robot": 1}, got.CharacterStats)
	assert.Equal(t, "owl", got.FavoriteCharacter)
	assert.Equal(t, map[string]int{"quick": 2, "detailed": 1}, got.ModeStats)
	assert.Equal(t, "quick", got.PreferredMode)
	assert.InDelta(t, 33.33, got.NarrationUsageRate, 0.01)
	// completion/performance chỉ tính trên phiên đã kết thúc / có điểm
	assert.Equal(t, 75.0, got.AverageCompletion)
	assert.Equal(t, 70.0, got.AveragePerformance)
}

func TestAggregateSessions_TieBreakFirstSeen(t *testing.T) {
	now := time.Now()
	sessions := []models.StudySession{
		sessionAt(now, "detailed", 5),
		sessionAt(now, "quick", 5),
	}
	sessions[0].CharacterUsed = "robot"
	sessions[1].CharacterUsed = "owl"

	got := AggregateSessions(sessions, now)

	// hoà 1-1: giữ giá trị gặp trước
	assert.Equal(t, "detailed", got.PreferredMode)
	assert.Equal(t, "robot", got.FavoriteCharacter)
}

func TestAggregateSessions_EmptyCharacterCountsAsNone(t *testing.T) {
	now := time.Now()
	got := AggregateSessions([]models.StudySession{sessionAt(now, "medium", 5)}, now)

	assert.Equal(t, map[string]int{"None": 1}, got.CharacterStats)
	assert.Equal(t, "None", got.FavoriteCharacter)
}

func TestStudyStreak_ConsecutiveDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 22, 0, 0, 0, time.Local)
	sessions := []models.StudySession{
		sessionAt(now.Add(-30*time.Minute), "quick", 5),
		sessionAt(now.AddDate(0, 0, -1), "quick", 5),
		sessionAt(now.AddDate(0, 0, -2), "quick", 5),
		// ngày -4 có học nhưng ngày -3 trống nên không tính
		sessionAt(now.AddDate(0, 0, -4), "quick", 5),
	}

	got := AggregateSessions(sessions, now)
	assert.Equal(t, 3, got.StudyStreak)
}

func TestStudyStreak_BrokenToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 22, 0, 0, 0, time.Local)
	sessions := []models.StudySession{
		sessionAt(now.AddDate(0, 0, -1), "quick", 5),
		sessionAt(now.AddDate(0, 0, -2), "quick", 5),
	}

	// hôm nay chưa học thì streak đứt ngay
	got := AggregateSessions(sessions, now)
	assert.Equal(t, 0, got.StudyStreak)
}

func TestStudyStreak_MultipleSessionsSameDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 22, 0, 0, 0, time.Local)
	sessions := []models.StudySession{
		sessionAt(now.Add(-time.Hour), "quick", 5),
		sessionAt(now.Add(-2*time.Hour), "medium", 5),
		sessionAt(now.Add(-3*time.Hour), "quick", 5),
	}

	got := AggregateSessions(sessions, now)
	assert.Equal(t, 1, got.StudyStreak)
}
