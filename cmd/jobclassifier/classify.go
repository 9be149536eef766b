package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-classifier/internal/classifier"
	"github.com/jonathan/job-classifier/internal/config"
	"github.com/jonathan/job-classifier/internal/ingestion"
	"github.com/jonathan/job-classifier/internal/observability"
	"github.com/jonathan/job-classifier/internal/registry"
)

var (
	classifyJob      string
	classifyJobURL   string
	classifyRegistry string
	classifyConfig   string
	classifyLimit    float64
	classifyJSON     bool
	classifyVerbose  bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a job description into a role category",
	Long: `Classify reads a job description from a file, a URL, or stdin, scores it
against the role-category registry, and reports the best-matching template
family with a percentage breakdown and confidence estimate.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyJob, "job", "", "Path to a job description text file (stdin if neither --job nor --job-url is given)")
	classifyCmd.Flags().StringVar(&classifyJobURL, "job-url", "", "URL to fetch the job posting from")
	classifyCmd.Flags().StringVar(&classifyRegistry, "registry", "", "Path to a registry JSON file (built-in table if omitted)")
	classifyCmd.Flags().StringVar(&classifyConfig, "config", "", "Path to a JSON config file")
	classifyCmd.Flags().Float64Var(&classifyLimit, "threshold", 0, "Minimum percentage for breakdown entries")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the raw classification result as JSON")
	classifyCmd.Flags().BoolVarP(&classifyVerbose, "verbose", "v", false, "Print matched keywords and ingestion detail")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, _ []string) error {
	if classifyJob != "" && classifyJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	cfg, err := loadMergedConfig(classifyConfig, classifyRegistry, classifyLimit)
	if err != nil {
		return err
	}

	jobText, err := readJobText(cmd.Context())
	if err != nil {
		return err
	}

	cls, err := buildClassifier(cfg)
	if err != nil {
		return err
	}

	result := cls.Classify(jobText)

	if classifyJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintClassification(result)
	if classifyVerbose {
		printer.PrintMatchedKeywords(result)
	}

	if result.BestCategory == "" {
		fmt.Printf("No keyword evidence found; fallback template: %s\n", cls.Fallback(nil))
	}

	return nil
}

func readJobText(ctx context.Context) (string, error) {
	switch {
	case classifyJobURL != "":
		return ingestion.FromURL(ctx, classifyJobURL, classifyVerbose)
	case classifyJob != "":
		return ingestion.FromFile(classifyJob)
	default:
		return ingestion.FromReader(os.Stdin)
	}
}

// loadMergedConfig merges the optional config file with the CLI flags, flags
// winning.
func loadMergedConfig(configPath, registryPath string, threshold float64) (config.Config, error) {
	cfg := config.Config{
		Registry:  registryPath,
		Threshold: threshold,
	}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func buildClassifier(cfg config.Config) (*classifier.Classifier, error) {
	reg := registry.Default()
	if cfg.Registry != "" {
		loaded, err := registry.Load(cfg.Registry)
		if err != nil {
			return nil, err
		}
		reg = loaded
	}
	return classifier.New(reg, classifier.WithBreakdownThreshold(cfg.Threshold)), nil
}
