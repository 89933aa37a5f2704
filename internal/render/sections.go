package render

import (
	"strings"

	"github.com/jonathan/applytrack/internal/types"
)

// Section headings, in emission order. A section is emitted only when
// its source array is non-empty; HEADER is handled separately and is
// always present.
const (
	HeadingEducation  = "EDUCATION"
	HeadingExperience = "WORK EXPERIENCE"
	HeadingLeadership = "LEADERSHIP EXPERIENCE"
	HeadingProjects   = "ACADEMIC PROJECTS"
	HeadingSkills     = "SKILLS"
	HeadingLanguages  = "LANGUAGES"
)

// entry is one dated record inside a section, normalized so every
// backend lays out the same content.
type entry struct {
	Title   string   // bold primary field
	Dates   string   // right-aligned date range, may be empty
	Sub     string   // affiliating org + location, may be empty
	Link    string   // project hyperlink, may be empty
	Bullets []string // enabled bullet texts only
}

// section is one heading plus either entries or plain lines (skills
// and languages use lines).
type section struct {
	Heading string
	Entries []entry
	Lines   []string
}

// subLine joins an organization and a location with a comma, omitting
// the comma when the location is absent.
func subLine(org, location string) string {
	org = strings.TrimSpace(org)
	location = strings.TrimSpace(location)
	switch {
	case org == "":
		return location
	case location == "":
		return org
	default:
		return org + ", " + location
	}
}

// bulletTexts extracts the text of enabled bullets, skipping blanks.
func bulletTexts(bullets []types.Bullet) []string {
	visible := types.VisibleBullets(bullets)
	texts := make([]string, 0, len(visible))
	for _, b := range visible {
		if strings.TrimSpace(b.Text) != "" {
			texts = append(texts, b.Text)
		}
	}
	return texts
}

// buildSections normalizes a master resume into the shared section
// sequence consumed by all three backends. Empty sections are omitted
// entirely, which is what makes backend output structurally equivalent.
func buildSections(m *types.MasterResume) []section {
	var sections []section

	if len(m.Education) > 0 {
		entries := make([]entry, 0, len(m.Education))
		for _, e := range m.Education {
			entries = append(entries, entry{
				Title:   e.Institution,
				Dates:   types.FormatDateRange(e.StartDate, e.EndDate),
				Sub:     subLine(e.Degree, e.Location),
				Bullets: bulletTexts(e.Bullets),
			})
		}
		sections = append(sections, section{Heading: HeadingEducation, Entries: entries})
	}

	if len(m.Experience) > 0 {
		entries := make([]entry, 0, len(m.Experience))
		for _, e := range m.Experience {
			entries = append(entries, entry{
				Title:   e.Title,
				Dates:   types.FormatDateRange(e.StartDate, e.EndDate),
				Sub:     subLine(e.Company, e.Location),
				Bullets: bulletTexts(e.Bullets),
			})
		}
		sections = append(sections, section{Heading: HeadingExperience, Entries: entries})
	}

	if len(m.Leadership) > 0 {
		entries := make([]entry, 0, len(m.Leadership))
		for _, l := range m.Leadership {
			entries = append(entries, entry{
				Title:   l.Title,
				Dates:   types.FormatDateRange(l.StartDate, l.EndDate),
				Sub:     subLine(l.Organization, l.Location),
				Bullets: bulletTexts(l.Bullets),
			})
		}
		sections = append(sections, section{Heading: HeadingLeadership, Entries: entries})
	}

	if len(m.Projects) > 0 {
		entries := make([]entry, 0, len(m.Projects))
		for _, p := range m.Projects {
			entries = append(entries, entry{
				Title:   p.Name,
				Dates:   types.FormatDateRange(p.StartDate, p.EndDate),
				Sub:     p.Role,
				Link:    p.Link,
				Bullets: bulletTexts(p.Bullets),
			})
		}
		sections = append(sections, section{Heading: HeadingProjects, Entries: entries})
	}

	if lines := skillLines(m.Skills); len(lines) > 0 {
		sections = append(sections, section{Heading: HeadingSkills, Lines: lines})
	}

	if len(m.Skills.Languages) > 0 {
		sections = append(sections, section{
			Heading: HeadingLanguages,
			Lines:   []string{strings.Join(m.Skills.Languages, ", ")},
		})
	}

	return sections
}

// skillLines builds the labeled lines of the SKILLS section from the
// non-language skill categories.
func skillLines(s types.Skills) []string {
	var lines []string
	if len(s.Technical) > 0 {
		lines = append(lines, "Technical: "+strings.Join(s.Technical, ", "))
	}
	if len(s.Tools) > 0 {
		lines = append(lines, "Tools: "+strings.Join(s.Tools, ", "))
	}
	if len(s.Certifications) > 0 {
		lines = append(lines, "Certifications: "+strings.Join(s.Certifications, ", "))
	}
	return lines
}

// entryTitle falls back through the entry fields so a sparsely filled
// record still gets a title line instead of an empty bold line.
func entryTitle(e entry) string {
	if strings.TrimSpace(e.Title) != "" {
		return e.Title
	}
	return e.Sub
}

// hasStructured reports whether a request should take the structured
// path for resume content.
func hasStructured(req Request, target Target) bool {
	return req.Resume != nil && target.IncludesResume()
}
