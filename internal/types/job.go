package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobType constants for the job description job-type enum
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeInternship = "internship"
	JobTypeContract   = "contract"
	JobTypeRemote     = "remote"
)

// JobTypes lists every valid job-type value.
var JobTypes = []string{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeInternship,
	JobTypeContract,
	JobTypeRemote,
}

// NormalizeJobType coerces free-form job-type text (often produced by
// the AI extractor) into the enum set. Unrecognized input defaults to
// full_time rather than failing the parse.
func NormalizeJobType(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	switch normalized {
	case JobTypeFullTime, "fulltime", "full":
		return JobTypeFullTime
	case JobTypePartTime, "parttime", "part":
		return JobTypePartTime
	case JobTypeInternship, "intern", "internships":
		return JobTypeInternship
	case JobTypeContract, "contractor", "freelance":
		return JobTypeContract
	case JobTypeRemote:
		return JobTypeRemote
	default:
		return JobTypeFullTime
	}
}

// ValidJobType reports whether v is in the job-type enum set.
func ValidJobType(v string) bool {
	for _, t := range JobTypes {
		if t == v {
			return true
		}
	}
	return false
}

// JobDescription is a stored job posting, created by user input or AI
// extraction from pasted text. Immutable once referenced by an
// application except for explicit edits.
type JobDescription struct {
	ID             uuid.UUID `json:"id"`
	Company        string    `json:"company"`
	Role           string    `json:"role"`
	Location       string    `json:"location,omitempty"`
	Salary         string    `json:"salary,omitempty"`
	JobType        string    `json:"jobType"`
	Industry       string    `json:"industry,omitempty"`
	RequiredSkills []string  `json:"requiredSkills,omitempty"`
	Keywords       []string  `json:"keywords,omitempty"`
	RawText        string    `json:"rawText,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
