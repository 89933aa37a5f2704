package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/applytrack/internal/generate"
	"github.com/jonathan/applytrack/internal/ingest"
	"github.com/jonathan/applytrack/internal/observability"
	"github.com/jonathan/applytrack/internal/parsing"
)

var (
	parseJobURL     string
	parseJobFile    string
	parseJobBrowser bool
	parseJobVerbose bool
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Extract structured fields from a job posting",
	Long:  `Read a job posting from a file or URL and extract company, role, skills, and keywords as JSON.`,
	RunE:  runParseJob,
}

func init() {
	parseJobCmd.Flags().StringVar(&parseJobURL, "url", "", "Job posting URL to fetch")
	parseJobCmd.Flags().StringVar(&parseJobFile, "file", "", "Path to a file containing the posting text")
	parseJobCmd.Flags().BoolVar(&parseJobBrowser, "browser", false, "Use a headless browser for script-rendered pages")
	parseJobCmd.Flags().BoolVar(&parseJobVerbose, "verbose", false, "Print detailed debug information")
	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(_ *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var text string
	switch {
	case parseJobFile != "":
		data, err := os.ReadFile(parseJobFile)
		if err != nil {
			return fmt.Errorf("failed to read posting file: %w", err)
		}
		text = string(data)
	case parseJobURL != "":
		fetched, err := ingest.FromURL(ctx, parseJobURL, parseJobBrowser, parseJobVerbose)
		if err != nil {
			return fmt.Errorf("failed to fetch posting: %w", err)
		}
		text = fetched
	default:
		return fmt.Errorf("either --file or --url is required")
	}

	text = ingest.CleanText(text)
	if err := ingest.ValidateJobText(text); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	if parseJobVerbose {
		source := parseJobFile
		if source == "" {
			source = parseJobURL
		}
		printer.PrintIngestedText(source, len(text))
	}

	client, err := generate.NewGeminiClient(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer client.Close()

	job, err := parsing.ParseJobText(ctx, client, text)
	if err != nil {
		return err
	}
	if parseJobVerbose {
		printer.PrintJobDescription(job)
	}

	out, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode job JSON: %w", err)
	}
	fmt.Println(strings.TrimSpace(string(out)))
	return nil
}
