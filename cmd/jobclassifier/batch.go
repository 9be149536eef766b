package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-classifier/internal/ingestion"
)

var (
	batchRegistry string
	batchConfig   string
	batchJSON     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Classify many job description files concurrently",
	Long: `Batch classifies every given file against the registry. Classifications are
independent, so they run concurrently; results print in input order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchRegistry, "registry", "", "Path to a registry JSON file (built-in table if omitted)")
	batchCmd.Flags().StringVar(&batchConfig, "config", "", "Path to a JSON config file")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(batchCmd)
}

// batchEntry pairs an input file with its classification for output.
type batchEntry struct {
	File       string  `json:"file"`
	Category   string  `json:"category"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadMergedConfig(batchConfig, batchRegistry, 0)
	if err != nil {
		return err
	}

	cls, err := buildClassifier(cfg)
	if err != nil {
		return err
	}

	texts := make([]string, len(args))
	for i, path := range args {
		text, err := ingestion.FromFile(path)
		if err != nil {
			return err
		}
		texts[i] = text
	}

	results, err := cls.ClassifyBatch(cmd.Context(), texts)
	if err != nil {
		return fmt.Errorf("batch classification failed: %w", err)
	}

	entries := make([]batchEntry, len(results))
	for i, result := range results {
		entries[i] = batchEntry{
			File:       args[i],
			Category:   result.BestCategory,
			Score:      result.BestScore,
			Confidence: result.Confidence,
		}
	}

	if batchJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	for _, entry := range entries {
		category := entry.Category
		if category == "" {
			category = "(none)"
		}
		fmt.Printf("%-40s %-24s score=%.2f confidence=%.0f%%\n",
			entry.File, category, entry.Score, entry.Confidence*100)
	}
	return nil
}
