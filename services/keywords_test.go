package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_FrequencyOrder(t *testing.T) {
	text := "neural network neural network neural learning gradient"
	got := ExtractKeywords(text, 20)
	assert.Equal(t, []string{"neural", "network", "learning", "gradient"}, got)
}

func TestExtractKeywords_TieBreakFirstSeen(t *testing.T) {
	// cùng tần suất thì token xuất hiện trước đứng trước
	got := ExtractKeywords("alpha beta gamma alpha beta gamma", 20)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)
}

func TestExtractKeywords_FiltersShortStopAndNumeric(t *testing.T) {
	got := ExtractKeywords("the an AI 42 2024 for with learning", 20)
	assert.Equal(t, []string{"learning"}, got)
}

func TestExtractKeywords_KeepsAlphanumericTokens(t *testing.T) {
	// "web3" không phải toàn chữ số nên được giữ
	got := ExtractKeywords("web3 web3 blockchain 12345", 20)
	assert.Equal(t, []string{"web3", "blockchain"}, got)
}

func TestExtractKeywords_NormalizesPunctuationAndCase(t *testing.T) {
	got := ExtractKeywords("Machine-Learning: machine, LEARNING!", 20)
	assert.Equal(t, []string{"machine", "learning"}, got)
}

func TestExtractKeywords_CapsAtMax(t *testing.T) {
	var words []string
	for r := 'a'; r <= 'z'; r++ {
		words = append(words, strings.Repeat(string(r), 3))
	}
	got := ExtractKeywords(strings.Join(words, " "), 20)
	assert.Len(t, got, 20)

	// maxKeywords <= 0 dùng mặc định 20
	got = ExtractKeywords(strings.Join(words, " "), 0)
	assert.Len(t, got, MaxKeywords)
}

func TestExtractKeywords_EmptyInput(t *testing.T) {
	assert.Equal(t, []string{}, ExtractKeywords("", 20))
	assert.Equal(t, []string{}, ExtractKeywords("   \n\t", 20))
	assert.Equal(t, []string{}, ExtractKeywords("a an 12", 20))
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	text := "graph node edge graph node edge weight path path weight"
	first := ExtractKeywords(text, 20)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractKeywords(text, 20))
	}
}

func TestEnhanceKeywords_MergesFileNameAndTitle(t *testing.T) {
	got := EnhanceKeywords([]string{"neural", "network"}, "deep_learning_intro.pdf", "AI Fundamentals")
	assert.Equal(t, []string{"neural", "network", "deep", "learning", "intro", "fundamentals"}, got)
}

func TestEnhanceKeywords_DedupesAcrossSources(t *testing.T) {
	got := EnhanceKeywords([]string{"learning", "neural"}, "machine-learning.docx", "Machine Learning Basics")
	assert.Equal(t, []string{"learning", "neural", "machine", "basics"}, got)
}

func TestEnhanceKeywords_CapsAtTwenty(t *testing.T) {
	extracted := []string{
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
		"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen",
		"eighteen", "nineteen",
	}
	got := EnhanceKeywords(extracted, "extra_tokens_here.pdf", "Another Course Title")
	assert.Len(t, got, MaxKeywords)
	assert.Equal(t, "extra", got[19])
}

func TestEnhanceKeywords_EmptyInputs(t *testing.T) {
	assert.Equal(t, []string{}, EnhanceKeywords(nil, "", ""))
	assert.Equal(t, []string{}, EnhanceKeywords([]string{}, "...", "the an"))
}
