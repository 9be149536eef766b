// Package matcher turns per-category keyword counts into a ranked, normalized
// classification decision with a confidence estimate. All functions are pure
// arithmetic: they never fail on well-formed input, and the only guarded
// hazard is division by a zero total.
package matcher

import (
	"sort"

	"github.com/jonathan/job-classifier/internal/registry"
	"github.com/jonathan/job-classifier/internal/types"
)

const (
	// DefaultBreakdownThreshold is the minimum percentage a category needs to
	// appear in the role breakdown.
	DefaultBreakdownThreshold = 5.0

	// SignificanceSaturationThreshold is the total weighted score at which the
	// evidence is considered fully significant: 10 keyword matches saturate
	// the significance term of the confidence formula. Calibrated against the
	// default keyword tables; change it deliberately, not in passing.
	SignificanceSaturationThreshold = 10.0

	// Confidence blends how decisively the winner beat the runner-up with how
	// much total evidence was found.
	separationWeight   = 0.7
	significanceWeight = 0.3
)

// CalculateScores sums the keyword counts for every category in the registry
// and divides by the category priority. Categories absent from the indicator
// map score 0. The returned map has an entry for every registry key.
func CalculateScores(reg *registry.Registry, indicators map[string]map[string]int) map[string]float64 {
	scores := make(map[string]float64, reg.Len())
	for _, cat := range reg.Categories() {
		raw := 0
		for _, count := range indicators[cat.Key] {
			raw += count
		}
		// Registry construction guarantees Priority > 0.
		scores[cat.Key] = float64(raw) / float64(cat.Priority)
	}
	return scores
}

// ScoreDetails returns the full per-category scoring breakdown: raw keyword
// count, priority-weighted score, and share of the total. Diagnostics only;
// selection works off CalculateScores.
func ScoreDetails(reg *registry.Registry, indicators map[string]map[string]int) map[string]types.ScoreResult {
	scores := CalculateScores(reg, indicators)
	percentages := CalculatePercentages(scores)

	details := make(map[string]types.ScoreResult, reg.Len())
	for _, cat := range reg.Categories() {
		raw := 0
		for _, count := range indicators[cat.Key] {
			raw += count
		}
		details[cat.Key] = types.ScoreResult{
			RawScore:      float64(raw),
			WeightedScore: scores[cat.Key],
			Percentage:    percentages[cat.Key],
		}
	}
	return details
}

// CalculatePercentages normalizes weighted scores to percentages summing to
// 100. When the total score is 0, every category gets 0.0 rather than NaN.
func CalculatePercentages(scores map[string]float64) map[string]float64 {
	percentages := make(map[string]float64, len(scores))

	total := 0.0
	for _, score := range scores {
		total += score
	}

	for key, score := range scores {
		if total == 0 {
			percentages[key] = 0.0
		} else {
			percentages[key] = 100 * score / total
		}
	}

	return percentages
}

// RoleBreakdown filters percentages to those at or above threshold and sorts
// them descending. The sort is stable over registry declaration order, so
// equal percentages keep the order the categories were declared in.
func RoleBreakdown(reg *registry.Registry, percentages map[string]float64, threshold float64) []types.BreakdownEntry {
	entries := make([]types.BreakdownEntry, 0, len(percentages))
	for _, key := range reg.Keys() {
		pct, ok := percentages[key]
		if !ok || pct < threshold {
			continue
		}
		entries = append(entries, types.BreakdownEntry{Category: key, Percentage: pct})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percentage > entries[j].Percentage
	})

	return entries
}

// SelectBestMatch returns the category with the highest weighted score,
// iterating the registry in declaration order so that ties go to the
// first-declared category. Empty or all-zero scores yield ("", 0.0): no
// evidence means no winner.
func SelectBestMatch(reg *registry.Registry, scores map[string]float64) (string, float64) {
	bestKey := ""
	bestScore := 0.0
	for _, key := range reg.Keys() {
		if score := scores[key]; score > bestScore {
			bestKey = key
			bestScore = score
		}
	}
	return bestKey, bestScore
}

// SecondBestScore returns the highest score among categories other than bestKey.
func SecondBestScore(reg *registry.Registry, scores map[string]float64, bestKey string) float64 {
	second := 0.0
	for _, key := range reg.Keys() {
		if key == bestKey {
			continue
		}
		if score := scores[key]; score > second {
			second = score
		}
	}
	return second
}

// Fallback returns the registry's configured fallback category unless it is in
// excluded, in which case the non-excluded category with the lowest priority
// integer wins, declaration order breaking ties. Callers that reject a
// classification can always retry through here and still end up with a
// template. Returns "" only if every category is excluded.
func Fallback(reg *registry.Registry, excluded map[string]bool) string {
	fallback := reg.FallbackKey()
	if !excluded[fallback] {
		return fallback
	}

	bestKey := ""
	bestPriority := 0
	for _, cat := range reg.Categories() {
		if excluded[cat.Key] {
			continue
		}
		if bestKey == "" || cat.Priority < bestPriority {
			bestKey = cat.Key
			bestPriority = cat.Priority
		}
	}
	return bestKey
}

// ConfidenceScore estimates how trustworthy a classification is, in [0,1].
// Separation measures how decisively the best category beat the runner-up;
// significance measures whether enough total evidence was found. A single
// keyword match with perfect separation still reports low confidence because
// the significance term stays small.
func ConfidenceScore(bestScore, secondBest, totalScore float64) float64 {
	if totalScore == 0 {
		return 0.0
	}

	separation := 1.0
	if secondBest > 0 {
		separation = clamp01((bestScore - secondBest) / bestScore)
	}

	significance := totalScore / SignificanceSaturationThreshold
	if significance > 1.0 {
		significance = 1.0
	}

	return separationWeight*separation + significanceWeight*significance
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
