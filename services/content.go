package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/karisnidevibalan/lms-backend/models"
)

// Các study mode hỗ trợ
const (
	ModeQuick    = "quick"
	ModeMedium   = "medium"
	ModeDetailed = "detailed"
)

// ErrInvalidStudyMode: mode lạ là bug phía client, trả lỗi rõ ràng
var ErrInvalidStudyMode = errors.New("study mode không hợp lệ (quick|medium|detailed)")

type FlashCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type ContentSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type QuizPrompt struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type MediaRef struct {
	Type  string `json:"type"` // video | diagram
	Title string `json:"title"`
}

type QuickContent struct {
	Summary      string      `json:"summary"`
	KeyPoints    []string    `json:"key_points"`
	FlashCards   []FlashCard `json:"flash_cards"`
	TimeEstimate string      `json:"time_estimate"`
}

type MediumContent struct {
	KeyPoints     []string         `json:"key_points"`
	Sections      []ContentSection `json:"sections"`
	QuizQuestions []QuizPrompt     `json:"quiz_questions"`
	TimeEstimate  string           `json:"time_estimate"`
}

type DetailedContent struct {
	KeyPoints     []string         `json:"key_points"`
	Sections      []ContentSection `json:"sections"`
	Multimedia    []MediaRef       `json:"multimedia"`
	QuizQuestions []QuizPrompt     `json:"quiz_questions"`
	TimeEstimate  string           `json:"time_estimate"`
}

// StudyContent là union theo mode: chỉ đúng 1 nhánh khác nil
type StudyContent struct {
	Mode     string           `json:"mode"`
	Quick    *QuickContent    `json:"quick,omitempty"`
	Medium   *MediumContent   `json:"medium,omitempty"`
	Detailed *DetailedContent `json:"detailed,omitempty"`
}

var mediumHeadings = []string{"Introduction", "Main Concepts", "Examples", "Summary"}

var detailedHeadings = []string{
	"Introduction", "Background", "Main Concepts",
	"Deep Dive", "Examples", "Summary",
}

// GenerateStudyContent sinh nội dung học từ keyword đã lưu trên tài liệu.
// Hàm thuần, không gọi LLM; bản AI dùng AIContentService bên dưới.
func GenerateStudyContent(material *models.StudyMaterial, studyMode string) (*StudyContent, error) {
	keywords := []string(material.Keywords)

	switch studyMode {
	case ModeQuick:
		points := keywords
		if len(points) > 5 {
			points = points[:5]
		}
		cards := make([]FlashCard, 0, len(points))
		for _, kw := range points {
			cards = append(cards, FlashCard{
				Front: kw,
				Back:  fmt.Sprintf("Explain the concept of %q in the context of %s.", kw, material.Title),
			})
		}
		return &StudyContent{
			Mode: ModeQuick,
			Quick: &QuickContent{
				Summary: fmt.Sprintf("Quick review of %s covering: %s.",
					material.Title, strings.Join(points, ", ")),
				KeyPoints:    points,
				FlashCards:   cards,
				TimeEstimate: "5-10 minutes",
			},
		}, nil

	case ModeMedium:
		return &StudyContent{
			Mode: ModeMedium,
			Medium: &MediumContent{
				KeyPoints:     keywords,
				Sections:      buildSections(mediumHeadings, material.Title),
				QuizQuestions: buildQuizPrompts(keywords, material.Title, 1),
				TimeEstimate:  "15-30 minutes",
			},
		}, nil

	case ModeDetailed:
		return &StudyContent{
			Mode: ModeDetailed,
			Detailed: &DetailedContent{
				KeyPoints: keywords,
				Sections:  buildSections(detailedHeadings, material.Title),
				Multimedia: []MediaRef{
					{Type: "video", Title: "Video walkthrough: " + material.Title},
					{Type: "diagram", Title: "Concept map: " + material.Title},
				},
				QuizQuestions: buildQuizPrompts(keywords, material.Title, 2),
				TimeEstimate:  "45-60 minutes",
			},
		}, nil

	default:
		return nil, ErrInvalidStudyMode
	}
}

func buildSections(headings []string, title string) []ContentSection {
	sections := make([]ContentSection, 0, len(headings))
	for _, h := range headings {
		sections = append(sections, ContentSection{
			Heading: h,
			Body:    fmt.Sprintf("%s of %s based on the uploaded material.", h, title),
		})
	}
	return sections
}

func buildQuizPrompts(keywords []string, title string, n int) []QuizPrompt {
	prompts := make([]QuizPrompt, 0, n)
	for i := 0; i < n; i++ {
		topic := title
		if i < len(keywords) {
			topic = keywords[i]
		}
		prompts = append(prompts, QuizPrompt{
			Question: fmt.Sprintf("Which statement best describes %q?", topic),
			Options:  []string{"Option A", "Option B", "Option C", "Option D"},
		})
	}
	return prompts
}
