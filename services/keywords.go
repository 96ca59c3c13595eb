package services

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const MaxKeywords = 20

// Stop words tiếng Anh thông dụng, token < 3 ký tự đã bị loại từ trước
var stopWords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "against": true,
	"all": true, "and": true, "any": true, "are": true, "because": true,
	"been": true, "before": true, "being": true, "below": true, "between": true,
	"both": true, "but": true, "can": true, "did": true, "does": true,
	"doing": true, "down": true, "during": true, "each": true, "few": true,
	"for": true, "from": true, "further": true, "had": true, "has": true,
	"have": true, "having": true, "her": true, "here": true, "hers": true,
	"him": true, "his": true, "how": true, "into": true, "its": true,
	"itself": true, "just": true, "more": true, "most": true, "not": true,
	"now": true, "off": true, "once": true, "only": true, "other": true,
	"our": true, "ours": true, "out": true, "over": true, "own": true,
	"same": true, "she": true, "should": true, "some": true, "such": true,
	"than": true, "that": true, "the": true, "their": true, "theirs": true,
	"them": true, "then": true, "there": true, "these": true, "they": true,
	"this": true, "those": true, "through": true, "too": true, "under": true,
	"until": true, "very": true, "was": true, "were": true, "what": true,
	"when": true, "where": true, "which": true, "while": true, "who": true,
	"whom": true, "why": true, "will": true, "with": true, "you": true,
	"your": true,
}

var (
	reNonWord  = regexp.MustCompile(`[^\w]+`)
	reAllDigit = regexp.MustCompile(`^\d+$`)
)

// ExtractKeywords tách từ khoá theo tần suất xuất hiện.
// Token trùng tần suất giữ nguyên thứ tự xuất hiện đầu tiên (stable sort).
func ExtractKeywords(text string, maxKeywords int) []string {
	if maxKeywords <= 0 {
		maxKeywords = MaxKeywords
	}
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	normalized := strings.ToLower(text)
	normalized = reNonWord.ReplaceAllString(normalized, " ")

	counts := make(map[string]int)
	var order []string // thứ tự xuất hiện đầu tiên, dùng làm tie-break

	for _, token := range strings.Fields(normalized) {
		if len(token) < 3 {
			continue
		}
		if stopWords[token] {
			continue
		}
		// "web3" vẫn giữ, chỉ loại token toàn chữ số
		if reAllDigit.MatchString(token) {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	if order == nil {
		return []string{}
	}
	return order
}

// EnhanceKeywords gộp keyword trích từ file với keyword lấy từ tên file
// và tên khoá học, bỏ trùng, giới hạn 20 từ. Keyword trích từ file đứng trước.
func EnhanceKeywords(extracted []string, fileName, courseTitle string) []string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	fromFileName := ExtractKeywords(base, 5)
	fromTitle := ExtractKeywords(courseTitle, 5)

	seen := make(map[string]bool)
	merged := []string{}
	for _, group := range [][]string{extracted, fromFileName, fromTitle} {
		for _, kw := range group {
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			merged = append(merged, kw)
			if len(merged) >= MaxKeywords {
				return merged
			}
		}
	}
	return merged
}
