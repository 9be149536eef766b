package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-classifier/internal/ingestion"
	"github.com/jonathan/job-classifier/internal/templates"
)

var (
	fillJob      string
	fillRegistry string
	fillConfig   string
	fillName     string
	fillEmail    string
	fillPhone    string
	fillOutDir   string
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Classify a job description and fill the matching template pair",
	Long: `Fill classifies the job description, resolves the CV/cover-letter template
pair for the winning category (falling back when classification is
inconclusive), and writes the filled .tex sources. PDF compilation is left to
the usual LaTeX toolchain.`,
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVar(&fillJob, "job", "", "Path to a job description text file (required)")
	fillCmd.Flags().StringVar(&fillRegistry, "registry", "", "Path to a registry JSON file (built-in table if omitted)")
	fillCmd.Flags().StringVar(&fillConfig, "config", "", "Path to a JSON config file")
	fillCmd.Flags().StringVar(&fillName, "name", "", "Candidate name")
	fillCmd.Flags().StringVar(&fillEmail, "email", "", "Candidate email")
	fillCmd.Flags().StringVar(&fillPhone, "phone", "", "Candidate phone")
	fillCmd.Flags().StringVar(&fillOutDir, "out", "out", "Directory for the filled .tex files")
	_ = fillCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(fillCmd)
}

func runFill(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(fillConfig, fillRegistry, 0)
	if err != nil {
		return err
	}
	if fillName != "" {
		cfg.Name = fillName
	}
	if fillEmail != "" {
		cfg.Email = fillEmail
	}
	if fillPhone != "" {
		cfg.Phone = fillPhone
	}

	jobText, err := ingestion.FromFile(fillJob)
	if err != nil {
		return err
	}

	cls, err := buildClassifier(cfg)
	if err != nil {
		return err
	}

	result := cls.Classify(jobText)
	category := result.BestCategory
	if category == "" {
		category = cls.Fallback(nil)
		fmt.Printf("Classification inconclusive; using fallback category %s\n", category)
	}

	pair, err := templates.Resolve(cls.Registry(), category)
	if err != nil {
		return err
	}

	keywords := make([]string, 0, len(result.MatchedKeywords[category]))
	for _, match := range result.MatchedKeywords[category] {
		keywords = append(keywords, match.Keyword)
	}

	candidate := templates.Candidate{Name: cfg.Name, Email: cfg.Email, Phone: cfg.Phone}

	if err := os.MkdirAll(fillOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := fillOne(pair.CV, candidate, category, keywords, "cv.tex"); err != nil {
		return err
	}
	if err := fillOne(pair.CoverLetter, candidate, category, keywords, "cover_letter.tex"); err != nil {
		return err
	}

	fmt.Printf("Wrote %s and %s for category %s (confidence %.0f%%)\n",
		filepath.Join(fillOutDir, "cv.tex"),
		filepath.Join(fillOutDir, "cover_letter.tex"),
		category, result.Confidence*100)
	return nil
}

func fillOne(templatePath string, candidate templates.Candidate, category string, keywords []string, outName string) error {
	rendered, err := templates.Fill(templatePath, candidate, category, keywords)
	if err != nil {
		return err
	}

	outPath := filepath.Join(fillOutDir, outName)
	if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
