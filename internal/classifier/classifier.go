// Package classifier composes the analyzer and matcher into the full
// text-to-role-category pipeline. A Classifier wraps an immutable registry
// snapshot; each Classify call is pure and produces a fresh result, so one
// Classifier may be shared across goroutines freely.
package classifier

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-classifier/internal/analyzer"
	"github.com/jonathan/job-classifier/internal/matcher"
	"github.com/jonathan/job-classifier/internal/registry"
	"github.com/jonathan/job-classifier/internal/types"
)

// DefaultBatchConcurrency bounds how many classifications run at once in
// ClassifyBatch. Classification is CPU-only, so a small bound is plenty.
const DefaultBatchConcurrency = 8

// Classifier classifies job-description text against a role-category registry.
type Classifier struct {
	registry  *registry.Registry
	threshold float64
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithBreakdownThreshold overrides the minimum percentage for breakdown entries.
func WithBreakdownThreshold(threshold float64) Option {
	return func(c *Classifier) {
		c.threshold = threshold
	}
}

// New creates a Classifier over the given registry.
func New(reg *registry.Registry, opts ...Option) *Classifier {
	c := &Classifier{
		registry:  reg,
		threshold: matcher.DefaultBreakdownThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry snapshot this classifier was built over.
func (c *Classifier) Registry() *registry.Registry {
	return c.registry
}

// Classify runs the full pipeline on one job description: keyword extraction,
// weighted scoring, percentage normalization, best-match selection, and
// confidence estimation. Empty or evidence-free text yields the "no evidence"
// result: empty best category, all-zero percentages, empty breakdown,
// confidence 0. It never returns an error for bad job text; degraded input
// degrades the result, not the call.
func (c *Classifier) Classify(jobText string) *types.ClassificationResult {
	indicators := analyzer.RoleIndicators(jobText, c.registry.Categories())

	scores := matcher.CalculateScores(c.registry, indicators)
	percentages := matcher.CalculatePercentages(scores)
	bestKey, bestScore := matcher.SelectBestMatch(c.registry, scores)

	total := 0.0
	for _, score := range scores {
		total += score
	}
	second := matcher.SecondBestScore(c.registry, scores, bestKey)

	return &types.ClassificationResult{
		BestCategory:    bestKey,
		BestScore:       bestScore,
		Percentages:     percentages,
		Scores:          matcher.ScoreDetails(c.registry, indicators),
		Breakdown:       matcher.RoleBreakdown(c.registry, percentages, c.threshold),
		Confidence:      matcher.ConfidenceScore(bestScore, second, total),
		MatchedKeywords: matchedKeywords(c.registry, indicators),
	}
}

// Fallback returns the category to use when the primary classification is
// rejected or unusable, never returning an excluded key while any category
// remains.
func (c *Classifier) Fallback(excluded map[string]bool) string {
	return matcher.Fallback(c.registry, excluded)
}

// ClassifyBatch classifies many job descriptions concurrently. Results are
// returned in input order. Classification itself cannot fail; the error return
// only reports context cancellation.
func (c *Classifier) ClassifyBatch(ctx context.Context, jobTexts []string) ([]*types.ClassificationResult, error) {
	results := make([]*types.ClassificationResult, len(jobTexts))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultBatchConcurrency)

	for i, text := range jobTexts {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = c.Classify(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// matchedKeywords converts the raw indicator maps into sorted KeywordMatch
// slices for diagnostics output. Categories with no matches are omitted.
func matchedKeywords(reg *registry.Registry, indicators map[string]map[string]int) map[string][]types.KeywordMatch {
	matched := make(map[string][]types.KeywordMatch)
	for _, key := range reg.Keys() {
		counts := indicators[key]
		if len(counts) == 0 {
			continue
		}
		matches := make([]types.KeywordMatch, 0, len(counts))
		for keyword, count := range counts {
			matches = append(matches, types.KeywordMatch{Keyword: keyword, Count: count})
		}
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Count != matches[j].Count {
				return matches[i].Count > matches[j].Count
			}
			return matches[i].Keyword < matches[j].Keyword
		})
		matched[key] = matches
	}
	return matched
}
