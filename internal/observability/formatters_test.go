package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-classifier/internal/types"
)

func TestPrintClassification_BestMatch(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintClassification(&types.ClassificationResult{
		BestCategory: "android_developer",
		BestScore:    8.0,
		Confidence:   0.85,
		Breakdown: []types.BreakdownEntry{
			{Category: "android_developer", Percentage: 57.1},
			{Category: "fullstack_developer", Percentage: 35.7},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "CLASSIFICATION RESULT")
	assert.Contains(t, out, "android_developer")
	assert.Contains(t, out, "85%")
	assert.Contains(t, out, "57.1%")
}

func TestPrintClassification_NoEvidence(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintClassification(&types.ClassificationResult{})

	out := buf.String()
	assert.Contains(t, out, "no keyword evidence")
	assert.Contains(t, out, "0%")
}

func TestPrintClassification_Nil(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintClassification(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchedKeywords(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintMatchedKeywords(&types.ClassificationResult{
		Breakdown: []types.BreakdownEntry{
			{Category: "android_developer", Percentage: 100},
		},
		MatchedKeywords: map[string][]types.KeywordMatch{
			"android_developer": {
				{Keyword: "android", Count: 3},
				{Keyword: "kotlin", Count: 1},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCHED KEYWORDS")
	assert.Contains(t, out, "android (3)")
	assert.Contains(t, out, "kotlin (1)")
}

func TestPrintMatchedKeywords_Empty(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintMatchedKeywords(&types.ClassificationResult{})

	assert.Empty(t, buf.String())
}

func TestPrintCategories(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintCategories([]types.RoleCategory{
		{
			Key:      "devops_cloud",
			Priority: 1,
			Keywords: []string{"kubernetes", "terraform"},
			Templates: types.TemplatePair{
				CV:          "templates/cv_devops.tex",
				CoverLetter: "templates/cover_devops.tex",
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "ROLE CATEGORIES")
	assert.Contains(t, out, "devops_cloud (priority 1)")
	assert.Contains(t, out, "2 keywords")
}
