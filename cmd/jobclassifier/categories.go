package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-classifier/internal/observability"
	"github.com/jonathan/job-classifier/internal/registry"
)

var categoriesRegistry string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the role categories and their template pairs",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesRegistry, "registry", "", "Path to a registry JSON file (built-in table if omitted)")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	reg := registry.Default()
	if categoriesRegistry != "" {
		loaded, err := registry.Load(categoriesRegistry)
		if err != nil {
			return err
		}
		reg = loaded
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCategories(reg.Categories())
	return nil
}
