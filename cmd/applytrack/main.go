// Package main provides the entry point for the ApplyTrack HTTP API
// server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "applytrack",
	Short: "ApplyTrack job application tracker",
	Long:  "ApplyTrack stores a master resume, tailors application documents per job posting, and tracks applications through their lifecycle via REST API and CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
