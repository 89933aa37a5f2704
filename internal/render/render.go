package render

import "fmt"

// Render dispatches a request to the backend for the given format.
func Render(req Request, target Target, format Format) (Artifact, error) {
	switch format {
	case FormatPDF:
		return PDF(req, target)
	case FormatDOCX:
		return DOCX(req, target)
	case FormatText:
		return Text(req, target), nil
	default:
		return Artifact{}, &RenderError{Format: format, Message: fmt.Sprintf("unsupported format %q", format)}
	}
}

// ParseTarget validates a target string, defaulting to resume.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetResume, TargetCoverLetter, TargetBoth:
		return Target(s), nil
	case "":
		return TargetResume, nil
	default:
		return "", fmt.Errorf("invalid target %q (want resume, coverLetter, or both)", s)
	}
}

// ParseFormat validates a format string, defaulting to pdf.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatDOCX, FormatText:
		return Format(s), nil
	case "":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("invalid format %q (want pdf, docx, or txt)", s)
	}
}
