package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-classifier/internal/server"
)

var (
	servePort      int
	serveRegistry  string
	serveThreshold float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the classification REST API server",
	Long:  `Start an HTTP server that exposes classification and registry introspection endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveRegistry, "registry", "", "Path to a registry JSON file (built-in table if omitted)")
	serveCmd.Flags().Float64Var(&serveThreshold, "threshold", 0, "Minimum percentage for breakdown entries")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:         servePort,
		RegistryPath: serveRegistry,
		Threshold:    serveThreshold,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
