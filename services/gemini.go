package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/karisnidevibalan/lms-backend/models"
)

// ContentProvider là capability sinh text, inject vào pipeline để
// test không cần mạng. Bản thật là GeminiProvider.
type ContentProvider interface {
	Generate(prompt string) (string, error)
}

type GeminiProvider struct{}

// Hàm gọn để xử lý prompt và trả kết quả từ Gemini
func (GeminiProvider) Generate(prompt string) (string, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		return "", fmt.Errorf("không thể tạo Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("lỗi Gemini xử lý: %v", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini không trả kết quả hợp lệ")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// TranslateText dịch nội dung học sang ngôn ngữ yêu cầu
func TranslateText(provider ContentProvider, text, language string) (string, error) {
	prompt := fmt.Sprintf(`You are a translation tool for study content.
	Translate the following text into %s.
	Requirements:
	1. Keep the meaning intact, do not add or remove information
	2. Keep technical terms accurate
	3. Return plain text only, no markdown, no commentary
	Text to translate:`, language)

	return provider.Generate(prompt + "\n\n" + text)
}

// NarrationScript chuyển nội dung học thành kịch bản đọc cho TTS
func NarrationScript(provider ContentProvider, material *models.StudyMaterial) (string, error) {
	prompt := fmt.Sprintf(`You are a professional audiobook narrator.
	Write a short spoken narration (solo narration) introducing the study material
	"%s" and walking through these key concepts: %s.
	Requirements:
	1. Natural, friendly, educational tone
	2. Spell out abbreviations, no markdown, no special characters, no bullet points
	3. Return only the narration script, no commentary
	`, material.Title, strings.Join(material.Keywords, ", "))

	return provider.Generate(prompt)
}

// AIContentService bọc bản sinh nội dung deterministic, làm giàu phần
// summary/section bằng LLM. Provider lỗi thì fallback về bản skeleton.
type AIContentService struct {
	Provider ContentProvider
}

func (s *AIContentService) Generate(material *models.StudyMaterial, studyMode string) (*StudyContent, error) {
	content, err := GenerateStudyContent(material, studyMode)
	if err != nil {
		return nil, err
	}
	if s.Provider == nil {
		return content, nil
	}

	prompt := fmt.Sprintf(`You are a study assistant.
	Write a %s-depth study summary for the material "%s".
	Base it only on these keywords: %s.
	Return plain text only, no markdown, no commentary.`,
		studyMode, material.Title, strings.Join(material.Keywords, ", "))

	text, err := s.Provider.Generate(prompt)
	if err != nil {
		// LLM chỉ là enhancement, không chặn response
		log.Printf("Gemini lỗi, dùng nội dung mặc định: %v", err)
		return content, nil
	}

	text = strings.TrimSpace(text)
	switch studyMode {
	case ModeQuick:
		content.Quick.Summary = text
	case ModeMedium:
		if len(content.Medium.Sections) > 0 {
			content.Medium.Sections[0].Body = text
		}
	case ModeDetailed:
		if len(content.Detailed.Sections) > 0 {
			content.Detailed.Sections[0].Body = text
		}
	}
	return content, nil
}
