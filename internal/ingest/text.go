// Package ingest turns pasted or fetched job posting content into clean
// text ready for extraction.
package ingest

import (
	"fmt"
	"regexp"
	"strings"
)

// Job posting text length bounds. Anything shorter is almost certainly
// not a posting; anything longer is likely a whole page dump.
const (
	MinJobTextLength = 50
	MaxJobTextLength = 50000
)

var (
	multiSpaceRE = regexp.MustCompile(`\s+`)
	blankLinesRE = regexp.MustCompile(`\n\n\n+`)
)

// ValidationError reports job text that is outside accepted bounds.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidateJobText checks that cleaned posting text is a plausible job
// description before it is sent for extraction.
func ValidateJobText(text string) error {
	n := len(strings.TrimSpace(text))
	if n < MinJobTextLength {
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("job text too short: %d chars (minimum %d)", n, MinJobTextLength),
		}
	}
	if n > MaxJobTextLength {
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("job text too long: %d chars (maximum %d)", n, MaxJobTextLength),
		}
	}
	return nil
}

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLinesRE.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Keep markdown headings as-is, normalize leading spaces to 0
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Preserve bullet lists with their indentation
	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// For regular lines, collapse runs of spaces but keep leading indent
	leadingSpace := len(line) - len(trimmed)
	content := multiSpaceRE.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}
