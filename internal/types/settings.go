package types

import "github.com/go-playground/validator/v10"

// Emphasis constants for generation settings
const (
	EmphasisTechnical  = "technical"
	EmphasisBalanced   = "balanced"
	EmphasisLeadership = "leadership"
	EmphasisBusiness   = "business"
)

// ATS level constants for generation settings
const (
	ATSLow    = "low"
	ATSMedium = "medium"
	ATSHigh   = "high"
)

// Cover letter tone constants for generation settings
const (
	ToneProfessional   = "professional"
	ToneConversational = "conversational"
	ToneEnthusiastic   = "enthusiastic"
)

// GenerationSettings controls how the external collaborator tailors a
// resume and cover letter for a job.
type GenerationSettings struct {
	ResumeLength       int    `json:"resumeLength" validate:"min=1,max=2"`
	Emphasis           string `json:"emphasis" validate:"oneof=technical balanced leadership business"`
	ATSLevel           string `json:"atsLevel" validate:"oneof=low medium high"`
	IncludeCoverLetter bool   `json:"includeCoverLetter"`
	CoverLetterTone    string `json:"coverLetterTone" validate:"omitempty,oneof=professional conversational enthusiastic"`
	GenerateWhy        bool   `json:"generateWhyQuestions"`
}

// DefaultGenerationSettings returns the settings used when the caller
// provides none.
func DefaultGenerationSettings() GenerationSettings {
	return GenerationSettings{
		ResumeLength:       1,
		Emphasis:           EmphasisBalanced,
		ATSLevel:           ATSMedium,
		IncludeCoverLetter: true,
		CoverLetterTone:    ToneProfessional,
	}
}

// WithDefaults fills unset fields with their defaults. Boolean fields
// are left alone: false is a valid caller choice.
func (s GenerationSettings) WithDefaults() GenerationSettings {
	def := DefaultGenerationSettings()
	if s.ResumeLength == 0 {
		s.ResumeLength = def.ResumeLength
	}
	if s.Emphasis == "" {
		s.Emphasis = def.Emphasis
	}
	if s.ATSLevel == "" {
		s.ATSLevel = def.ATSLevel
	}
	if s.CoverLetterTone == "" {
		s.CoverLetterTone = def.CoverLetterTone
	}
	return s
}

var settingsValidator = validator.New()

// Validate checks the settings against their enumerated sets.
func (s GenerationSettings) Validate() error {
	return settingsValidator.Struct(s)
}
