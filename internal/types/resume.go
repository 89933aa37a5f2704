// Package types provides type definitions for structured data used throughout the applytrack system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Header holds the contact block of a master resume. Singleton per resume.
type Header struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ContactLine joins the non-empty contact fields with " | " separators.
// Empty fields are skipped so the line never renders a dangling separator.
func (h Header) ContactLine() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{h.Location, h.Phone, h.Email, h.LinkedIn, h.Website, h.GitHub} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

// Summary is one reusable professional summary. Exactly one is
// conventionally marked default; this is not enforced.
type Summary struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Text      string `json:"text"`
	IsDefault bool   `json:"isDefault"`
}

// Bullet is one line-item achievement attached to an entry. Disabled
// bullets are retained in the model but excluded from every render and
// from generation payloads (soft delete for reversible curation).
type Bullet struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Enabled bool   `json:"enabled"`
}

// VisibleBullets filters a bullet list to enabled entries only.
// Every layout and generation path must go through this filter.
func VisibleBullets(bullets []Bullet) []Bullet {
	visible := make([]Bullet, 0, len(bullets))
	for _, b := range bullets {
		if b.Enabled {
			visible = append(visible, b)
		}
	}
	return visible
}

// Education is one education entry with its bullets.
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Bullets     []Bullet `json:"bullets,omitempty"`
}

// Experience is one work experience entry with its bullets.
type Experience struct {
	ID        string   `json:"id"`
	Company   string   `json:"company"`
	Title     string   `json:"title,omitempty"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Bullets   []Bullet `json:"bullets,omitempty"`
}

// Leadership is one leadership/volunteering entry with its bullets.
type Leadership struct {
	ID           string   `json:"id"`
	Organization string   `json:"organization"`
	Title        string   `json:"title,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Bullets      []Bullet `json:"bullets,omitempty"`
}

// Project is one academic/personal project entry with its bullets.
type Project struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role,omitempty"`
	Link      string   `json:"link,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Bullets   []Bullet `json:"bullets,omitempty"`
}

// Skills holds the four disjoint categorized skill lists.
type Skills struct {
	Technical      []string `json:"technical,omitempty"`
	Tools          []string `json:"tools,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
}

// MasterResume is the aggregate root owning all resume sections.
// It is created empty at account provisioning and mutated via
// field-level partial updates; it is never deleted on its own.
type MasterResume struct {
	Header     Header       `json:"header"`
	Summaries  []Summary    `json:"summaries,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Leadership []Leadership `json:"leadership,omitempty"`
	Projects   []Project    `json:"projects,omitempty"`
	Skills     Skills       `json:"skills"`
}

// DefaultSummary returns the summary marked default, falling back to
// the first summary when none is flagged. Returns nil for an empty list.
func (m *MasterResume) DefaultSummary() *Summary {
	for i := range m.Summaries {
		if m.Summaries[i].IsDefault {
			return &m.Summaries[i]
		}
	}
	if len(m.Summaries) > 0 {
		return &m.Summaries[0]
	}
	return nil
}

// FilterEnabled returns a deep copy of the resume with disabled bullets
// removed from every entry. The generation orchestrator sends this copy
// so the model only sees content that would actually be exported.
func (m MasterResume) FilterEnabled() MasterResume {
	out := m

	out.Summaries = append([]Summary(nil), m.Summaries...)

	out.Education = make([]Education, len(m.Education))
	for i, e := range m.Education {
		e.Bullets = VisibleBullets(e.Bullets)
		out.Education[i] = e
	}

	out.Experience = make([]Experience, len(m.Experience))
	for i, e := range m.Experience {
		e.Bullets = VisibleBullets(e.Bullets)
		out.Experience[i] = e
	}

	out.Leadership = make([]Leadership, len(m.Leadership))
	for i, l := range m.Leadership {
		l.Bullets = VisibleBullets(l.Bullets)
		out.Leadership[i] = l
	}

	out.Projects = make([]Project, len(m.Projects))
	for i, p := range m.Projects {
		p.Bullets = VisibleBullets(p.Bullets)
		out.Projects[i] = p
	}

	return out
}

// FormatDateRange joins a start and end date for display. An open-ended
// range renders as "start - Present"; two empty dates render as "".
func FormatDateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " - Present"
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}
