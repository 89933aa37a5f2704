package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status constants for the application lifecycle
const (
	StatusDraft     = "draft"
	StatusApplied   = "applied"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

// Statuses lists every valid application status.
var Statuses = []string{
	StatusDraft,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusWithdrawn,
}

// ValidStatus reports whether v is in the status enum set.
func ValidStatus(v string) bool {
	for _, s := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// StatusLabel returns the case-normalized display label for a status
// value, e.g. "interview" -> "Interview".
func StatusLabel(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return ""
	}
	return strings.ToUpper(status[:1]) + strings.ToLower(status[1:])
}

// InterviewType constants
const (
	InterviewPhone     = "phone"
	InterviewVideo     = "video"
	InterviewOnsite    = "onsite"
	InterviewTechnical = "technical"
	InterviewFinal     = "final"
)

// ReminderType constants
const (
	ReminderFollowUp = "follow_up"
	ReminderThankYou = "thank_you"
	ReminderCheckIn  = "check_in"
	ReminderDeadline = "deadline"
)

// InterviewSchedule is one scheduled interview on an application.
type InterviewSchedule struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD, local calendar day
	Time      string `json:"time,omitempty"`
	Type      string `json:"type"`
	Notes     string `json:"notes,omitempty"`
	Completed bool   `json:"completed"`
}

// FollowUpReminder is one follow-up reminder on an application.
type FollowUpReminder struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD, local calendar day
	Type      string `json:"type"`
	Message   string `json:"message,omitempty"`
	Completed bool   `json:"completed"`
}

// Application is one tracked job application. Company, role, and
// location are snapshotted at creation time so history survives later
// edits or deletion of the referenced job description.
type Application struct {
	ID               uuid.UUID  `json:"id"`
	JobDescriptionID *uuid.UUID `json:"jobDescriptionId,omitempty"` // weak reference, survives job deletion

	Company  string `json:"company"`
	Role     string `json:"role"`
	Location string `json:"location,omitempty"`

	Status          string `json:"status"`
	ApplicationDate string `json:"applicationDate,omitempty"` // YYYY-MM-DD, local calendar day
	Notes           string `json:"notes,omitempty"`
	ConnectionInfo  string `json:"connectionInfo,omitempty"`
	ApplicationLink string `json:"applicationLink,omitempty"`

	// Point-in-time generated text captured at save.
	SavedResume      string `json:"savedResume,omitempty"`
	SavedCoverLetter string `json:"savedCoverLetter,omitempty"`

	Interviews []InterviewSchedule `json:"interviews,omitempty"`
	Reminders  []FollowUpReminder  `json:"reminders,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
