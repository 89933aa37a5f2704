package render

import "strings"

// headingRule is the underline drawn below every plain-text heading.
const headingRule = 50

// Text renders the plain-text backend: a single linear string with the
// shared section order, dash-underlined headings, and "• " bullets.
// It is the agreed fallback for unsupported environments and cannot
// fail; identical input always yields byte-identical output.
func Text(req Request, target Target) Artifact {
	var sb strings.Builder

	if target.IncludesResume() {
		if hasStructured(req, target) {
			writeTextResume(&sb, req)
		} else {
			writeTextFallback(&sb, req)
		}
	}

	if target.IncludesCoverLetter() && strings.TrimSpace(req.CoverLetterText) != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		writeTextHeading(&sb, "COVER LETTER")
		for i, p := range splitParagraphs(req.CoverLetterText) {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(p)
			sb.WriteString("\n")
		}
	}

	return Artifact{
		Filename: Filename(target, req.CompanyName, FormatText),
		MIME:     MIMEText,
		Data:     []byte(sb.String()),
	}
}

func writeTextHeading(sb *strings.Builder, heading string) {
	sb.WriteString(heading)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", headingRule))
	sb.WriteString("\n")
}

// writeTextResume emits the structured path.
func writeTextResume(sb *strings.Builder, req Request) {
	m := req.Resume

	if name := strings.TrimSpace(m.Header.Name); name != "" {
		sb.WriteString(strings.ToUpper(name))
		sb.WriteString("\n")
	}
	if contact := m.Header.ContactLine(); contact != "" {
		sb.WriteString(contact)
		sb.WriteString("\n")
	}

	for _, sec := range buildSections(m) {
		sb.WriteString("\n")
		writeTextHeading(sb, sec.Heading)

		for _, line := range sec.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}

		for i, e := range sec.Entries {
			if i > 0 {
				sb.WriteString("\n")
			}
			title := entryTitle(e)
			if e.Dates != "" {
				title = strings.TrimSpace(title) + "  " + e.Dates
			}
			if strings.TrimSpace(title) != "" {
				sb.WriteString(strings.TrimSpace(title))
				sb.WriteString("\n")
			}
			if e.Sub != "" && e.Sub != entryTitle(e) {
				sb.WriteString(e.Sub)
				sb.WriteString("\n")
			}
			if e.Link != "" {
				sb.WriteString(e.Link)
				sb.WriteString("\n")
			}
			for _, b := range e.Bullets {
				sb.WriteString("• ")
				sb.WriteString(b)
				sb.WriteString("\n")
			}
		}
	}
}

// writeTextFallback prints a stub header followed by the raw generated
// text verbatim.
func writeTextFallback(sb *strings.Builder, req Request) {
	role := strings.TrimSpace(req.RoleName)
	if role == "" {
		role = "Position"
	}
	sb.WriteString("RESUME - ")
	sb.WriteString(role)
	sb.WriteString("\n")
	if company := strings.TrimSpace(req.CompanyName); company != "" {
		sb.WriteString(company)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(req.ResumeText)
	sb.WriteString("\n")
}
