package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in PDF user-space units (points). US Letter.
const (
	pageWidth     = 612.0
	pageHeight    = 792.0
	pageMargin    = 50.0
	contentWidth  = pageWidth - 2*pageMargin
	hangingIndent = 20.0
)

// Font sizes in points by role.
const (
	sizeName    = 15.0
	sizeContact = 9.5
	sizeSection = 10.5
	sizeTitle   = 10.0
	sizeBody    = 9.5
)

// Line advance per font role. Roughly 1.25x the font size.
const (
	leadName    = 19.0
	leadContact = 12.0
	leadSection = 14.0
	leadTitle   = 13.0
	leadBody    = 12.0
)

const pdfFont = "Helvetica"

// pdfWriter tracks a vertical cursor over a gofpdf document. Every
// block checks remaining space before drawing so no entry or bullet
// line is split across a page boundary.
type pdfWriter struct {
	doc *gofpdf.Fpdf
	y   float64
}

func newPDFWriter() *pdfWriter {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &pdfWriter{doc: doc, y: pageMargin}
}

// ensure starts a new page and resets the cursor when the next block of
// height h would cross the bottom margin.
func (w *pdfWriter) ensure(h float64) {
	if w.y+h > pageHeight-pageMargin {
		w.newPage()
	}
}

func (w *pdfWriter) newPage() {
	w.doc.AddPage()
	w.y = pageMargin
}

// textAt draws a single line with its baseline one lead below the
// current cursor, then advances the cursor.
func (w *pdfWriter) textAt(x float64, lead float64, s string) {
	w.doc.Text(x, w.y+lead*0.8, s)
	w.y += lead
}

// centered measures the rendered string width and offsets it so the
// line is centered on the page.
func (w *pdfWriter) centered(lead float64, s string) {
	width := w.doc.GetStringWidth(s)
	w.textAt((pageWidth-width)/2, lead, s)
}

// PDF renders the paginated fixed-layout backend.
func PDF(req Request, target Target) (Artifact, error) {
	w := newPDFWriter()

	if target.IncludesResume() {
		if hasStructured(req, target) {
			w.writeResume(req)
		} else {
			w.writeFallback(req)
		}
	}

	if target.IncludesCoverLetter() && strings.TrimSpace(req.CoverLetterText) != "" {
		// Cover letters always start on a fresh page.
		if target.IncludesResume() {
			w.newPage()
		}
		w.writeCoverLetter(req)
	}

	var buf bytes.Buffer
	if err := w.doc.Output(&buf); err != nil {
		return Artifact{}, &RenderError{Format: FormatPDF, Message: "failed to encode document", Cause: err}
	}

	return Artifact{
		Filename: Filename(target, req.CompanyName, FormatPDF),
		MIME:     MIMEPDF,
		Data:     buf.Bytes(),
	}, nil
}

// writeResume emits the structured path: header block then each
// non-empty section in the shared order.
func (w *pdfWriter) writeResume(req Request) {
	m := req.Resume

	name := strings.TrimSpace(m.Header.Name)
	if name == "" {
		name = "Your Name"
	}
	w.doc.SetFont(pdfFont, "B", sizeName)
	w.centered(leadName, name)

	if contact := m.Header.ContactLine(); contact != "" {
		w.doc.SetFont(pdfFont, "", sizeContact)
		w.centered(leadContact, contact)
	}

	for _, sec := range buildSections(m) {
		w.writeSectionHeader(sec.Heading)

		w.doc.SetFont(pdfFont, "", sizeBody)
		for _, line := range sec.Lines {
			w.writeWrapped(line, pageMargin, contentWidth, leadBody)
		}

		for _, e := range sec.Entries {
			w.writeEntry(e)
		}
	}
}

// writeSectionHeader draws the upper-case bold heading, a thin
// horizontal rule under it, and a fixed gap before the body.
func (w *pdfWriter) writeSectionHeader(heading string) {
	// Keep the header attached to at least one body line.
	w.ensure(leadSection + leadBody + 8)
	w.y += 6
	w.doc.SetFont(pdfFont, "B", sizeSection)
	w.textAt(pageMargin, leadSection, strings.ToUpper(heading))
	w.doc.SetDrawColor(120, 120, 120)
	w.doc.SetLineWidth(0.5)
	w.doc.Line(pageMargin, w.y, pageWidth-pageMargin, w.y)
	w.y += 6
}

// writeEntry draws a title line with a right-aligned date on the same
// visual line, an optional secondary line, an optional hyperlink line
// for projects, and the entry's enabled bullets.
func (w *pdfWriter) writeEntry(e entry) {
	w.ensure(leadTitle + leadBody)

	title := entryTitle(e)
	w.doc.SetFont(pdfFont, "B", sizeTitle)
	baseline := w.y + leadTitle*0.8
	if title != "" {
		w.doc.Text(pageMargin, baseline, title)
	}
	if e.Dates != "" {
		w.doc.SetFont(pdfFont, "", sizeBody)
		dateWidth := w.doc.GetStringWidth(e.Dates)
		w.doc.Text(pageWidth-pageMargin-dateWidth, baseline, e.Dates)
	}
	if title != "" || e.Dates != "" {
		w.y += leadTitle
	}

	if e.Sub != "" && e.Sub != title {
		w.ensure(leadBody)
		w.doc.SetFont(pdfFont, "I", sizeBody)
		w.textAt(pageMargin, leadBody, e.Sub)
	}

	if e.Link != "" {
		w.writeLink(e.Link)
	}

	w.doc.SetFont(pdfFont, "", sizeBody)
	for _, b := range e.Bullets {
		w.writeBullet(b)
	}
	w.y += 3
}

// writeLink draws a clickable hyperlink line in a distinguishing color.
func (w *pdfWriter) writeLink(link string) {
	w.ensure(leadBody)
	w.doc.SetFont(pdfFont, "", sizeBody)
	w.doc.SetTextColor(17, 85, 204)
	width := w.doc.GetStringWidth(link)
	w.doc.Text(pageMargin, w.y+leadBody*0.8, link)
	w.doc.LinkString(pageMargin, w.y, width, leadBody, link)
	w.doc.SetTextColor(0, 0, 0)
	w.y += leadBody
}

// writeBullet wraps a bullet to the hanging-indent width: the glyph and
// first line start at the left margin, continuation lines indent by the
// hanging amount. The page-break check runs per wrapped line so a
// bullet never splits mid-line.
func (w *pdfWriter) writeBullet(text string) {
	lines := w.doc.SplitText(text, contentWidth-hangingIndent)
	for i, line := range lines {
		w.ensure(leadBody)
		if i == 0 {
			w.doc.Text(pageMargin, w.y+leadBody*0.8, "• "+line)
		} else {
			w.doc.Text(pageMargin+hangingIndent, w.y+leadBody*0.8, line)
		}
		w.y += leadBody
	}
}

// writeWrapped draws free text wrapped to a width at an x offset.
func (w *pdfWriter) writeWrapped(text string, x, width, lead float64) {
	for _, line := range w.doc.SplitText(text, width) {
		w.ensure(lead)
		w.textAt(x, lead, line)
	}
}

// writeFallback dumps the raw generated text as wrapped paragraphs
// under a generic heading when no structured model is available.
func (w *pdfWriter) writeFallback(req Request) {
	role := strings.TrimSpace(req.RoleName)
	if role == "" {
		role = "Position"
	}

	w.doc.SetFont(pdfFont, "B", sizeName)
	w.centered(leadName, "RESUME - "+role)
	if company := strings.TrimSpace(req.CompanyName); company != "" {
		w.doc.SetFont(pdfFont, "", sizeContact)
		w.centered(leadContact, company)
	}
	w.y += 8

	w.doc.SetFont(pdfFont, "", sizeBody)
	for _, p := range splitParagraphs(req.ResumeText) {
		w.writeWrapped(p, pageMargin, contentWidth, leadBody)
		w.y += 6
	}
}

// writeCoverLetter renders the cover letter body: paragraphs split on
// blank lines, each wrapped independently with inter-paragraph spacing.
func (w *pdfWriter) writeCoverLetter(req Request) {
	w.doc.SetFont(pdfFont, "B", sizeSection)
	heading := "Cover Letter"
	if company := strings.TrimSpace(req.CompanyName); company != "" {
		heading = "Cover Letter - " + company
	}
	w.ensure(leadSection)
	w.textAt(pageMargin, leadSection, heading)
	w.y += 8

	w.doc.SetFont(pdfFont, "", sizeBody)
	for _, p := range splitParagraphs(req.CoverLetterText) {
		w.writeWrapped(p, pageMargin, contentWidth, leadBody)
		w.y += 8
	}
}
