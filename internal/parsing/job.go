// Package parsing extracts structured job descriptions from pasted
// posting text using AI extraction.
package parsing

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/applytrack/internal/generate"
	"github.com/jonathan/applytrack/internal/types"
)

// extractedJob mirrors the JSON shape the extractor is asked to return.
type extractedJob struct {
	Company        string   `json:"company"`
	Role           string   `json:"role"`
	Location       string   `json:"location"`
	Salary         string   `json:"salary"`
	JobType        string   `json:"jobType"`
	Industry       string   `json:"industry"`
	RequiredSkills []string `json:"requiredSkills"`
	Keywords       []string `json:"keywords"`
}

// ParseJobText extracts a structured JobDescription from raw job
// posting text. The original text is preserved verbatim on the result
// so nothing the extractor missed is lost.
func ParseJobText(ctx context.Context, client generate.Client, text string) (*types.JobDescription, error) {
	prompt := BuildExtractionPrompt(JobDescriptionSchema(), text)

	responseText, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to extract job description",
			Cause:   err,
		}
	}

	responseText = generate.CleanJSONBlock(responseText)

	var extracted extractedJob
	if err := json.Unmarshal([]byte(responseText), &extracted); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	if strings.TrimSpace(extracted.Company) == "" && strings.TrimSpace(extracted.Role) == "" {
		return nil, &ParseError{Message: "no company or role found in posting"}
	}

	job := &types.JobDescription{
		ID:             uuid.New(),
		Company:        strings.TrimSpace(extracted.Company),
		Role:           strings.TrimSpace(extracted.Role),
		Location:       strings.TrimSpace(extracted.Location),
		Salary:         strings.TrimSpace(extracted.Salary),
		JobType:        types.NormalizeJobType(extracted.JobType),
		Industry:       strings.TrimSpace(extracted.Industry),
		RequiredSkills: NormalizeSkills(extracted.RequiredSkills),
		Keywords:       NormalizeKeywords(extracted.Keywords),
		RawText:        text,
		CreatedAt:      time.Now(),
	}

	return job, nil
}
