package render

import (
	"bytes"
	"strings"

	"baliance.com/gooxml"
	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"
)

// Word layout constants. The right tab stop sits at the text-column
// width so dates right-align without manual measurement.
const (
	docxTabStop     = 6.5 * measurement.Inch
	docxMarginTB    = 0.5 * measurement.Inch
	docxMarginLR    = 0.75 * measurement.Inch
	docxSizeName    = 15 * measurement.Point
	docxSizeContact = 9.5 * measurement.Point
	docxSizeSection = 10.5 * measurement.Point
	docxSizeTitle   = 10 * measurement.Point
	docxSizeBody    = 9.5 * measurement.Point
)

// docxWriter builds the styled-package backend over a structured
// paragraph/run model instead of absolute coordinates.
type docxWriter struct {
	doc     *document.Document
	bullets document.NumberingDefinition
}

func newDocxWriter() *docxWriter {
	doc := document.New()
	doc.BodySection().SetPageMargins(
		docxMarginTB, docxMarginLR, docxMarginTB, docxMarginLR,
		docxMarginTB, docxMarginTB, 0)

	// One shared bulleted-list definition, list level 0.
	nd := doc.Numbering.AddDefinition()
	lvl := nd.AddLevel()
	lvl.SetFormat(wml.ST_NumberFormatBullet)
	lvl.SetAlignment(wml.ST_JcLeft)
	lvl.SetText("•")
	lvl.Properties().SetLeftIndent(0.25 * measurement.Inch)

	return &docxWriter{doc: doc, bullets: nd}
}

// DOCX renders the styled word-processor backend. Section ordering and
// conditional emission match the other backends exactly.
func DOCX(req Request, target Target) (Artifact, error) {
	w := newDocxWriter()

	if target.IncludesResume() {
		if hasStructured(req, target) {
			w.writeResume(req)
		} else {
			w.writeFallback(req)
		}
	}

	if target.IncludesCoverLetter() && strings.TrimSpace(req.CoverLetterText) != "" {
		// A forced page break precedes cover-letter content when the
		// artifact also carries the resume.
		w.writeCoverLetter(req, target.IncludesResume())
	}

	var buf bytes.Buffer
	if err := w.doc.Save(&buf); err != nil {
		return Artifact{}, &RenderError{Format: FormatDOCX, Message: "failed to encode document", Cause: err}
	}

	return Artifact{
		Filename: Filename(target, req.CompanyName, FormatDOCX),
		MIME:     MIMEDOCX,
		Data:     buf.Bytes(),
	}, nil
}

func (w *docxWriter) writeResume(req Request) {
	m := req.Resume

	name := strings.TrimSpace(m.Header.Name)
	if name == "" {
		name = "Your Name"
	}
	namePara := w.doc.AddParagraph()
	namePara.Properties().SetAlignment(wml.ST_JcCenter)
	nameRun := namePara.AddRun()
	nameRun.Properties().SetBold(true)
	nameRun.Properties().SetSize(docxSizeName)
	nameRun.AddText(name)

	if contact := m.Header.ContactLine(); contact != "" {
		contactPara := w.doc.AddParagraph()
		contactPara.Properties().SetAlignment(wml.ST_JcCenter)
		contactRun := contactPara.AddRun()
		contactRun.Properties().SetSize(docxSizeContact)
		contactRun.AddText(contact)
	}

	for _, sec := range buildSections(m) {
		w.writeSectionHeader(sec.Heading)

		for _, line := range sec.Lines {
			para := w.doc.AddParagraph()
			run := para.AddRun()
			run.Properties().SetSize(docxSizeBody)
			run.AddText(line)
		}

		for _, e := range sec.Entries {
			w.writeEntry(e)
		}
	}
}

// writeSectionHeader emits the upper-case heading with a bottom border
// rule instead of a manually drawn line. The document package exposes
// border helpers for table cells only, so the paragraph border is set
// on the raw properties element.
func (w *docxWriter) writeSectionHeader(heading string) {
	para := w.doc.AddParagraph()
	para.Properties().Spacing().SetBefore(6 * measurement.Point)

	bottom := wml.NewCT_Border()
	bottom.ValAttr = wml.ST_BorderSingle
	bottom.ColorAttr = &wml.ST_HexColor{ST_HexColorRGB: color.Gray.AsRGBString()}
	// Border size is in eighth-points.
	bottom.SzAttr = gooxml.Uint64(uint64(0.5 * measurement.Point / measurement.Point * 8))
	ppr := para.Properties().X()
	ppr.PBdr = wml.NewCT_PBdr()
	ppr.PBdr.Bottom = bottom

	run := para.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(docxSizeSection)
	run.AddText(strings.ToUpper(heading))
}

// writeEntry emits a title paragraph with a right-tabbed date, an
// optional secondary line, an optional hyperlink, and native bulleted
// paragraphs for the enabled bullets.
func (w *docxWriter) writeEntry(e entry) {
	title := entryTitle(e)

	if title != "" || e.Dates != "" {
		para := w.doc.AddParagraph()
		para.Properties().AddTabStop(docxTabStop, wml.ST_TabJcRight, wml.ST_TabTlcNone)
		run := para.AddRun()
		run.Properties().SetBold(true)
		run.Properties().SetSize(docxSizeTitle)
		run.AddText(title)
		if e.Dates != "" {
			dateRun := para.AddRun()
			dateRun.Properties().SetSize(docxSizeBody)
			dateRun.AddTab()
			dateRun.AddText(e.Dates)
		}
	}

	if e.Sub != "" && e.Sub != title {
		para := w.doc.AddParagraph()
		run := para.AddRun()
		run.Properties().SetItalic(true)
		run.Properties().SetSize(docxSizeBody)
		run.AddText(e.Sub)
	}

	if e.Link != "" {
		para := w.doc.AddParagraph()
		hl := para.AddHyperLink()
		hl.SetTarget(e.Link)
		run := hl.AddRun()
		run.Properties().SetSize(docxSizeBody)
		run.Properties().SetColor(color.Blue)
		run.AddText(e.Link)
	}

	for _, b := range e.Bullets {
		para := w.doc.AddParagraph()
		para.SetNumberingDefinition(w.bullets)
		para.SetNumberingLevel(0)
		run := para.AddRun()
		run.Properties().SetSize(docxSizeBody)
		run.AddText(b)
	}
}

func (w *docxWriter) writeFallback(req Request) {
	role := strings.TrimSpace(req.RoleName)
	if role == "" {
		role = "Position"
	}

	titlePara := w.doc.AddParagraph()
	titlePara.Properties().SetAlignment(wml.ST_JcCenter)
	titleRun := titlePara.AddRun()
	titleRun.Properties().SetBold(true)
	titleRun.Properties().SetSize(docxSizeName)
	titleRun.AddText("RESUME - " + role)

	if company := strings.TrimSpace(req.CompanyName); company != "" {
		companyPara := w.doc.AddParagraph()
		companyPara.Properties().SetAlignment(wml.ST_JcCenter)
		companyRun := companyPara.AddRun()
		companyRun.Properties().SetSize(docxSizeContact)
		companyRun.AddText(company)
	}

	for _, p := range splitParagraphs(req.ResumeText) {
		para := w.doc.AddParagraph()
		run := para.AddRun()
		run.Properties().SetSize(docxSizeBody)
		run.AddText(p)
	}
}

func (w *docxWriter) writeCoverLetter(req Request, pageBreak bool) {
	heading := "Cover Letter"
	if company := strings.TrimSpace(req.CompanyName); company != "" {
		heading = "Cover Letter - " + company
	}
	headPara := w.doc.AddParagraph()
	if pageBreak {
		headPara.Properties().SetPageBreakBefore(true)
	}
	headRun := headPara.AddRun()
	headRun.Properties().SetBold(true)
	headRun.Properties().SetSize(docxSizeSection)
	headRun.AddText(heading)

	for _, p := range splitParagraphs(req.CoverLetterText) {
		para := w.doc.AddParagraph()
		para.Properties().Spacing().SetAfter(8 * measurement.Point)
		run := para.AddRun()
		run.Properties().SetSize(docxSizeBody)
		run.AddText(p)
	}
}
