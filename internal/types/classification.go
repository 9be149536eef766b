// Package types defines the shared data structures for job-role classification.
package types

// TemplatePair holds the CV and cover-letter template identifiers for a role
// category. The paths are opaque to the classifier; the document generator
// resolves them.
type TemplatePair struct {
	CV          string `json:"cv" validate:"required"`
	CoverLetter string `json:"cover_letter" validate:"required"`
}

// RoleCategory is one résumé/cover-letter template family with the keywords
// that signal it in a job description. Priority acts as a divisor when scoring:
// priority 1 categories keep their raw keyword counts, priority 4 categories
// are down-weighted by a factor of 4.
type RoleCategory struct {
	Key       string       `json:"key" validate:"required"`
	Keywords  []string     `json:"keywords"`
	Priority  int          `json:"priority" validate:"required,gt=0"`
	Templates TemplatePair `json:"templates"`
}

// KeywordMatch records a single keyword and how many times it occurred in a
// job description. Transient; produced per classification call.
type KeywordMatch struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// ScoreResult holds the per-category scoring detail for one classification.
type ScoreResult struct {
	RawScore      float64 `json:"raw_score"`
	WeightedScore float64 `json:"weighted_score"`
	Percentage    float64 `json:"percentage"`
}

// BreakdownEntry is one row of the role breakdown: a category and the share of
// the total weighted score it captured.
type BreakdownEntry struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

// ClassificationResult is the immutable output of one classification call.
// BestCategory is empty when the job text produced no keyword evidence at all.
type ClassificationResult struct {
	BestCategory    string                    `json:"best_category"`
	BestScore       float64                   `json:"best_score"`
	Percentages     map[string]float64        `json:"percentages"`
	Scores          map[string]ScoreResult    `json:"scores"`
	Breakdown       []BreakdownEntry          `json:"breakdown"`
	Confidence      float64                   `json:"confidence"`
	MatchedKeywords map[string][]KeywordMatch `json:"matched_keywords,omitempty"`
}
