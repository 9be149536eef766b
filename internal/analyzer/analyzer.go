// Package analyzer normalizes job-description text and counts word-boundary
// safe keyword occurrences. It is the evidence-gathering half of the
// classifier: everything here is pure string work with no I/O.
package analyzer

import (
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/job-classifier/internal/types"
)

// Normalize lowercases text, collapses all whitespace runs (including
// newlines) to a single space, and trims the ends. Empty input yields "".
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// CountOccurrences returns the number of non-overlapping occurrences of
// keyword in normalizedText. Matching is literal with word boundaries on both
// sides, so "react" does not match inside "reactive" and "site reliability"
// matches only the exact phrase. Multi-word keywords are treated atomically.
// Either argument being empty yields 0.
func CountOccurrences(normalizedText, keyword string) (int, error) {
	if normalizedText == "" || keyword == "" {
		return 0, nil
	}

	pattern := boundaryPattern(Normalize(keyword))
	if pattern == "" {
		return 0, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, &KeywordError{
			Keyword: keyword,
			Message: "failed to compile match pattern",
			Cause:   err,
		}
	}

	return len(re.FindAllStringIndex(normalizedText, -1)), nil
}

// boundaryPattern builds a literal match pattern for a normalized keyword,
// anchored by \b wherever the phrase edge is a word character. Keywords like
// "c++" or ".net" keep their literal edges since \b cannot sit next to a
// non-word character.
func boundaryPattern(keyword string) string {
	if keyword == "" {
		return ""
	}

	var sb strings.Builder
	if isWordByte(keyword[0]) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(keyword))
	if isWordByte(keyword[len(keyword)-1]) {
		sb.WriteString(`\b`)
	}
	return sb.String()
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// ExtractKeywords normalizes the text once and counts every keyword in the
// list. Keywords with zero matches are omitted from the result; callers must
// not assume every requested keyword appears as a key. Empty keywords are
// skipped, and a keyword that fails pattern compilation is skipped and logged
// rather than aborting the extraction.
func ExtractKeywords(jobText string, keywords []string) map[string]int {
	counts, skipped := extractKeywords(jobText, keywords)
	for _, kwErr := range skipped {
		log.Printf("skipping keyword: %v", kwErr)
	}
	return counts
}

func extractKeywords(jobText string, keywords []string) (map[string]int, []*KeywordError) {
	counts := make(map[string]int)
	normalized := Normalize(jobText)
	if normalized == "" {
		return counts, nil
	}

	var skipped []*KeywordError
	for _, keyword := range keywords {
		if strings.TrimSpace(keyword) == "" {
			continue
		}
		count, err := CountOccurrences(normalized, keyword)
		if err != nil {
			if kwErr, ok := err.(*KeywordError); ok {
				skipped = append(skipped, kwErr)
			} else {
				skipped = append(skipped, &KeywordError{Keyword: keyword, Message: "count failed", Cause: err})
			}
			continue
		}
		if count > 0 {
			counts[keyword] = count
		}
	}

	return counts, skipped
}

// RoleIndicators runs ExtractKeywords for every category in the table and
// returns the per-category match maps keyed by category key. Categories with
// no configured keywords are skipped; downstream scoring treats an absent
// category the same as one with an empty match map (both score 0).
func RoleIndicators(jobText string, categories []types.RoleCategory) map[string]map[string]int {
	indicators := make(map[string]map[string]int, len(categories))
	for _, cat := range categories {
		if len(cat.Keywords) == 0 {
			continue
		}
		indicators[cat.Key] = ExtractKeywords(jobText, cat.Keywords)
	}
	return indicators
}
