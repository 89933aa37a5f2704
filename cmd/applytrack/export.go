package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applytrack/internal/render"
	"github.com/jonathan/applytrack/internal/schemas"
	"github.com/jonathan/applytrack/internal/types"
)

var (
	exportFormat  string
	exportCompany string
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export <resume.json>",
	Short: "Render a resume file to PDF, DOCX, or plain text",
	Long:  `Read a master resume JSON file, validate it, and render it to a document. Disabled bullets are excluded from the output.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "Output format: pdf, docx, or txt")
	exportCmd.Flags().StringVar(&exportCompany, "company", "", "Company name used in the output filename")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (default: deterministic name in the current directory)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateEntity(schemas.MasterResumeSchema, data); err != nil {
		return fmt.Errorf("resume file is invalid: %w", err)
	}

	var resume types.MasterResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	format, err := render.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	artifact, err := render.Render(render.Request{
		Resume:      &resume,
		CompanyName: exportCompany,
	}, render.TargetResume, format)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	out := exportOutput
	if out == "" {
		out = artifact.Filename
	}
	if err := os.WriteFile(out, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(artifact.Data))
	return nil
}
