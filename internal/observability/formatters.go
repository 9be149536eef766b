// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-classifier/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassification outputs a human-readable summary of a classification result.
func (p *Printer) PrintClassification(result *types.ClassificationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if result.BestCategory == "" {
		sb.WriteString("Best match:  (none, no keyword evidence)\n")
	} else {
		sb.WriteString(fmt.Sprintf("Best match:  %s\n", result.BestCategory))
		sb.WriteString(fmt.Sprintf("Score:       %.2f\n", result.BestScore))
	}
	sb.WriteString(fmt.Sprintf("Confidence:  %.0f%%\n", result.Confidence*100))

	if len(result.Breakdown) > 0 {
		sb.WriteString("\nRole breakdown:\n")
		for _, entry := range result.Breakdown {
			sb.WriteString(fmt.Sprintf("  %-24s %5.1f%%\n", entry.Category, entry.Percentage))
		}
	}

	p.printBox("CLASSIFICATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchedKeywords outputs the per-category matched keywords for the
// categories that found any evidence.
func (p *Printer) PrintMatchedKeywords(result *types.ClassificationResult) {
	if result == nil || len(result.MatchedKeywords) == 0 {
		return
	}

	var sb strings.Builder
	first := true
	for _, entry := range result.Breakdown {
		matches := result.MatchedKeywords[entry.Category]
		if len(matches) == 0 {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false

		sb.WriteString(fmt.Sprintf("%s:\n", entry.Category))
		count := min(len(matches), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", matches[i].Keyword, matches[i].Count))
		}
		if len(matches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(matches)-maxItemsToShow))
		}
	}

	if sb.Len() == 0 {
		return
	}
	p.printBox("MATCHED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCategories outputs the registry categories with priorities and templates.
func (p *Printer) PrintCategories(categories []types.RoleCategory) {
	if len(categories) == 0 {
		return
	}

	var sb strings.Builder
	for i, cat := range categories {
		sb.WriteString(fmt.Sprintf("%s (priority %d)\n", cat.Key, cat.Priority))
		sb.WriteString(fmt.Sprintf("  cv:     %s\n", cat.Templates.CV))
		sb.WriteString(fmt.Sprintf("  cover:  %s\n", cat.Templates.CoverLetter))
		sb.WriteString(fmt.Sprintf("  %d keywords\n", len(cat.Keywords)))
		if i < len(categories)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ROLE CATEGORIES", strings.TrimSuffix(sb.String(), "\n"))
}
