package parsing

import (
	"fmt"
	"strings"

	"github.com/jonathan/applytrack/internal/prompts"
)

// ExtractionSchema defines the structure for AI-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobDescription")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string"
	Description string // Description for the extractor
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the extraction prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// JobDescriptionSchema returns the extraction schema for job postings.
func JobDescriptionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "JobDescription",
		Description: prompts.MustGet("parsing.json", "job_description"),
		Fields: []SchemaField{
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "Company or organization name",
				Required:    true,
			},
			{
				Name:        "role",
				Type:        "\"string\"",
				Description: "Job title as written in the posting",
				Required:    true,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "Work location, including remote/hybrid notes",
				Required:    false,
			},
			{
				Name:        "salary",
				Type:        "\"string\"",
				Description: "Salary or compensation range, verbatim",
				Required:    false,
			},
			{
				Name:        "jobType",
				Type:        "\"string\"",
				Description: "One of: full_time, part_time, internship, contract, remote",
				Required:    false,
			},
			{
				Name:        "industry",
				Type:        "\"string\"",
				Description: "Industry or domain of the company",
				Required:    false,
			},
			{
				Name:        "requiredSkills",
				Type:        "[\"string\"]",
				Description: "Technical skills and qualifications the posting requires",
				Required:    false,
			},
			{
				Name:        "keywords",
				Type:        "[\"string\"]",
				Description: "Notable keywords and phrases useful for tailoring a resume",
				Required:    false,
			},
		},
	}
}
