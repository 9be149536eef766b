// Package ingestion turns job-posting sources (URLs, files, stdin) into clean
// text ready for classification.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/job-classifier/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
	// ErrEmptyContent is returned when a source yields no usable text.
	ErrEmptyContent = fmt.Errorf("no usable text content")
)

var spaceRun = regexp.MustCompile(`\s+`)

// FromURL fetches a job posting page, extracts the main text with job-board
// selectors, and cleans it. The URL is also useful for logging on the caller
// side; classification itself never sees it.
func FromURL(ctx context.Context, urlStr string, verbose bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes from %s", len(result.HTML), urlStr)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyContent, urlStr)
	}
	return cleaned, nil
}

// FromFile reads a job posting from a text file.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	return CleanText(string(data)), nil
}

// FromReader reads a job posting from a stream, typically stdin.
func FromReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read job text: %w", err)
	}
	return CleanText(string(data)), nil
}

// CleanText normalizes line endings, trims each line, collapses in-line
// whitespace runs, and caps consecutive blank lines at one. Structure is kept
// line-oriented because the classifier's own normalization flattens it anyway;
// the cleaned form is mainly for verbose output and logging.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
