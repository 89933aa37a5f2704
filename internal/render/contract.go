// Package render turns a master resume and generated text into
// downloadable PDF, DOCX, and plain-text artifacts. All three backends
// share one contract: the same section ordering, the same
// enabled-bullet filtering, and the same deterministic filenames.
package render

import (
	"strings"

	"github.com/jonathan/applytrack/internal/types"
)

// Target selects which content an artifact contains.
type Target string

// Target values
const (
	TargetResume      Target = "resume"
	TargetCoverLetter Target = "coverLetter"
	TargetBoth        Target = "both"
)

// Format selects the artifact backend.
type Format string

// Format values
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
)

// MIME types by format
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain; charset=utf-8"
)

// Request carries everything a backend needs to produce an artifact.
// Resume is optional: when absent (or when the target excludes resume
// content) backends fall back to rendering ResumeText as wrapped
// paragraphs under a generic heading.
type Request struct {
	ResumeText      string
	CoverLetterText string
	CompanyName     string
	RoleName        string
	Resume          *types.MasterResume
}

// Artifact is a named, downloadable document.
type Artifact struct {
	Filename string
	MIME     string
	Data     []byte
}

// IncludesResume reports whether the target selects resume content.
func (t Target) IncludesResume() bool {
	return t == TargetResume || t == TargetBoth
}

// IncludesCoverLetter reports whether the target selects cover-letter content.
func (t Target) IncludesCoverLetter() bool {
	return t == TargetCoverLetter || t == TargetBoth
}

// Filename builds the deterministic artifact name for a target, company
// and format: {Resume|CoverLetter|Application}_{Company}.{ext} with
// spaces in the company name replaced by underscores.
func Filename(target Target, company string, format Format) string {
	var prefix string
	switch target {
	case TargetCoverLetter:
		prefix = "CoverLetter"
	case TargetBoth:
		prefix = "Application"
	default:
		prefix = "Resume"
	}

	company = strings.TrimSpace(company)
	if company == "" {
		company = "Document"
	}
	company = strings.ReplaceAll(company, " ", "_")

	return prefix + "_" + company + "." + string(format)
}

// ContentTypeFor returns the MIME type for a format.
func ContentTypeFor(format Format) string {
	switch format {
	case FormatPDF:
		return MIMEPDF
	case FormatDOCX:
		return MIMEDOCX
	default:
		return MIMEText
	}
}

// splitParagraphs splits free text on blank lines, trimming each
// paragraph and dropping empty ones. Used by every fallback path and by
// cover-letter bodies.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	blocks := strings.Split(text, "\n\n")
	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		// Collapse single newlines inside a paragraph to spaces so the
		// backend controls wrapping.
		lines := strings.Split(block, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
		p := strings.TrimSpace(strings.Join(lines, " "))
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
