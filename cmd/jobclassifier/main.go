// Package main provides the entry point for the job classifier CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobclassifier",
	Short: "Job-role classification toolkit",
	Long:  "Job Classifier scores job descriptions against a role-category registry and picks the CV/cover-letter template family the posting calls for.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
