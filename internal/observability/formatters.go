// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/applytrack/internal/generate"
	"github.com/jonathan/applytrack/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobDescription outputs a human-readable summary of an extracted
// job description.
func (p *Printer) PrintJobDescription(job *types.JobDescription) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.Role))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	if job.Salary != "" {
		sb.WriteString(fmt.Sprintf("Salary:   %s\n", job.Salary))
	}
	sb.WriteString(fmt.Sprintf("Type:     %s\n", job.JobType))

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
	}

	if len(job.Keywords) > 0 {
		keywords := strings.Join(job.Keywords, ", ")
		if len(keywords) > 45 {
			keywords = keywords[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nKeywords: %s\n", keywords))
	}

	p.printBox("EXTRACTED JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGenerationResult outputs a summary of generated documents
// without dumping their full text.
func (p *Printer) PrintGenerationResult(result *generate.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume:       %s\n", describeText(result.Resume)))
	sb.WriteString(fmt.Sprintf("Cover letter: %s\n", describeText(result.CoverLetter)))
	sb.WriteString(fmt.Sprintf("Why role:     %s\n", describeText(result.WhyRole)))
	sb.WriteString(fmt.Sprintf("Why company:  %s", describeText(result.WhyCompany)))

	p.printBox("GENERATED DOCUMENTS", sb.String())
}

// describeText summarizes a generated text field as its first line plus
// a character count.
func describeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "n/a"
	}
	first := text
	if idx := strings.Index(first, "\n"); idx >= 0 {
		first = first[:idx]
	}
	if len(first) > 30 {
		first = first[:27] + "..."
	}
	return fmt.Sprintf("%s (%d chars)", first, len(text))
}

// PrintIngestedText outputs where the posting text came from and how
// much of it survived cleaning.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintIngestedText(source string, length int) {
	fmt.Fprintf(p.out, "Ingested %d characters from %s\n", length, source)
}
