package services

import (
	"time"

	"github.com/karisnidevibalan/lms-backend/models"
)

type AnalyticsSummary struct {
	TotalSessions      int            `json:"total_sessions"`
	TotalStudyTime     int            `json:"total_study_time"` // phút
	AverageSessionTime float64        `json:"average_session_time"`
	CharacterStats     map[string]int `json:"character_stats"`
	FavoriteCharacter  string         `json:"favorite_character"`
	NarrationUsageRate float64        `json:"narration_usage_rate"` // %
	ModeStats          map[string]int `json:"mode_stats"`
	PreferredMode      string         `json:"preferred_mode"`
	AverageCompletion  float64        `json:"average_completion"`
	AveragePerformance float64        `json:"average_performance"`
	StudyStreak        int            `json:"study_streak"` // ngày liên tiếp
}

// histogram đếm tần suất, giữ thứ tự gặp đầu tiên để arg-max ổn định
type histogram struct {
	counts map[string]int
	order  []string
}

func newHistogram() *histogram {
	return &histogram{counts: make(map[string]int)}
}

func (h *histogram) Add(key string) {
	if _, ok := h.counts[key]; !ok {
		h.order = append(h.order, key)
	}
	h.counts[key]++
}

// ArgMax trả về key có count lớn nhất; hoà thì key gặp trước thắng
func (h *histogram) ArgMax(fallback string) string {
	best, bestCount := fallback, 0
	for _, key := range h.order {
		if h.counts[key] > bestCount {
			best, bestCount = key, h.counts[key]
		}
	}
	return best
}

// AggregateSessions gộp lịch sử phiên học thành thống kê tổng hợp.
// now được inject để test streak không phụ thuộc đồng hồ thật.
func AggregateSessions(sessions []models.StudySession, now time.Time) AnalyticsSummary {
	summary := AnalyticsSummary{
		FavoriteCharacter: "None",
		PreferredMode:     "medium",
		CharacterStats:    map[string]int{},
		ModeStats:         map[string]int{},
	}
	if len(sessions) == 0 {
		return summary
	}

	characters := newHistogram()
	modes := newHistogram()
	narrationCount := 0
	completionSum, completionN := 0.0, 0
	performanceSum, performanceN := 0.0, 0

	for _, s := range sessions {
		summary.TotalStudyTime += s.TimeSpent

		character := s.CharacterUsed
		if character == "" {
			character = "None"
		}
		characters.Add(character)
		modes.Add(s.StudyMode)

		if s.UsedVoiceNarration {
			narrationCount++
		}
		if s.EndTime != nil {
			completionSum += s.CompletionPercentage
			completionN++
		}
		if s.PerformanceScore != nil {
			performanceSum += *s.PerformanceScore
			performanceN++
		}
	}

	summary.TotalSessions = len(sessions)
	summary.AverageSessionTime = float64(summary.TotalStudyTime) / float64(len(sessions))
	summary.CharacterStats = characters.counts
	summary.FavoriteCharacter = characters.ArgMax("None")
	summary.NarrationUsageRate = float64(narrationCount) / float64(len(sessions)) * 100
	summary.ModeStats = modes.counts
	summary.PreferredMode = modes.ArgMax("medium")
	if completionN > 0 {
		summary.AverageCompletion = completionSum / float64(completionN)
	}
	if performanceN > 0 {
		summary.AveragePerformance = performanceSum / float64(performanceN)
	}
	summary.StudyStreak = studyStreak(sessions, now)

	return summary
}

// studyStreak đếm số ngày liên tiếp (lùi từ hôm nay, theo ngày local)
// có ít nhất 1 phiên học; dừng ở ngày trống đầu tiên, tối đa 365 ngày.
func studyStreak(sessions []models.StudySession, now time.Time) int {
	days := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		days[s.StartTime.Local().Format("2006-01-02")] = true
	}

	streak := 0
	day := now.Local()
	for i := 0; i < 365; i++ {
		if !days[day.Format("2006-01-02")] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
