package generate

import (
	"encoding/json"
	"strings"
)

// Result holds the text fields returned by the generation collaborator.
type Result struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"coverLetter"`
	WhyRole     string `json:"whyRole"`
	WhyCompany  string `json:"whyCompany"`
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// The collaborator often wraps JSON in ```json ... ``` blocks even when
// instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a potential language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// ParseResult parses a collaborator response into a Result. The payload
// may be wrapped in a fenced code block. An unparseable response is not
// an error: the raw text becomes the resume field and the other fields
// stay empty, so the caller always has something to show.
func ParseResult(text string) Result {
	cleaned := CleanJSONBlock(text)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
		if result != (Result{}) {
			return result
		}
	}

	return Result{Resume: strings.TrimSpace(text)}
}
