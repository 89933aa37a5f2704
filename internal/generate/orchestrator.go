package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/applytrack/internal/prompts"
	"github.com/jonathan/applytrack/internal/types"
)

// Request is the single payload sent to the generation collaborator:
// the full master resume, the selected job description, and the
// tailoring settings.
type Request struct {
	Resume   types.MasterResume       `json:"masterResume"`
	Job      types.JobDescription     `json:"jobDescription"`
	Settings types.GenerationSettings `json:"settings"`
}

// Validate rejects requests with missing required inputs before any
// external call is made.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Job.Company) == "" && strings.TrimSpace(r.Job.Role) == "" {
		return &ValidationError{Field: "jobDescription", Message: "company or role is required"}
	}
	if strings.TrimSpace(r.Resume.Header.Name) == "" && len(r.Resume.Experience) == 0 && len(r.Resume.Education) == 0 {
		return &ValidationError{Field: "masterResume", Message: "resume has no content to tailor"}
	}
	if err := r.Settings.Validate(); err != nil {
		return &ValidationError{Field: "settings", Message: err.Error()}
	}
	return nil
}

// BuildPrompt assembles the collaborator prompt. Disabled bullets are
// filtered out first so the generation context matches what would
// actually be exported.
func BuildPrompt(req Request) (string, error) {
	payload := Request{
		Resume:   req.Resume.FilterEnabled(),
		Job:      req.Job,
		Settings: req.Settings,
	}

	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation payload: %w", err)
	}

	coverKey := "cover_letter_off"
	if req.Settings.IncludeCoverLetter {
		coverKey = "cover_letter_on"
	}
	whyKey := "why_off"
	if req.Settings.GenerateWhy {
		whyKey = "why_on"
	}

	system, err := prompts.Get("generation.json", "system")
	if err != nil {
		return "", err
	}
	instructions, err := prompts.Get("generation.json", "instructions")
	if err != nil {
		return "", err
	}
	coverInstruction, err := prompts.Get("generation.json", coverKey)
	if err != nil {
		return "", err
	}
	whyInstruction, err := prompts.Get("generation.json", whyKey)
	if err != nil {
		return "", err
	}

	instructions = prompts.Format(instructions, map[string]string{
		"ResumeLength":           strconv.Itoa(req.Settings.ResumeLength),
		"Emphasis":               req.Settings.Emphasis,
		"ATSLevel":               req.Settings.ATSLevel,
		"CoverLetterInstruction": prompts.Format(coverInstruction, map[string]string{"CoverLetterTone": req.Settings.CoverLetterTone}),
		"WhyInstruction":         whyInstruction,
	})

	var sb strings.Builder
	sb.WriteString(system)
	sb.WriteString("\n\n")
	sb.WriteString(instructions)
	sb.WriteString("\n\nInput payload:\n")
	sb.Write(payloadJSON)
	sb.WriteString("\n")

	return sb.String(), nil
}

// Generate runs one tailoring request against the collaborator. The
// call is synchronous; no partial state is persisted on failure.
func Generate(ctx context.Context, client Client, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, &GenerationError{Message: "failed to build prompt", Cause: err}
	}

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{Message: "generation service unavailable", Cause: err}
	}
	if strings.TrimSpace(raw) == "" {
		return nil, &GenerationError{Message: "response contained no content"}
	}

	result := ParseResult(raw)
	return &result, nil
}
