package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// documentXML unzips the main document part out of a DOCX artifact.
func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range reader.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(content)
		}
	}
	t.Fatal("word/document.xml not found in archive")
	return ""
}

func TestDOCX_StructuredPath(t *testing.T) {
	artifact, err := DOCX(Request{CompanyName: "Acme Corp", Resume: sampleResume()}, TargetResume)
	require.NoError(t, err)

	assert.Equal(t, "Resume_Acme_Corp.docx", artifact.Filename)
	assert.Equal(t, MIMEDOCX, artifact.MIME)

	xml := documentXML(t, artifact.Data)
	assert.Contains(t, xml, "Jane Smith")
	assert.Contains(t, xml, "EDUCATION")
	assert.Contains(t, xml, "WORK EXPERIENCE")
	assert.Contains(t, xml, "Shipped the billing service")
	assert.NotContains(t, xml, "LEADERSHIP EXPERIENCE")
}

func TestDOCX_ExcludesDisabledBullets(t *testing.T) {
	artifact, err := DOCX(Request{Resume: sampleResume()}, TargetResume)
	require.NoError(t, err)
	assert.NotContains(t, documentXML(t, artifact.Data), "Hidden coursework bullet")
}

func TestDOCX_FallbackPath(t *testing.T) {
	req := Request{
		ResumeText:  "Generated body.",
		RoleName:    "Engineer",
		CompanyName: "Acme",
	}
	artifact, err := DOCX(req, TargetResume)
	require.NoError(t, err)

	xml := documentXML(t, artifact.Data)
	assert.Contains(t, xml, "RESUME - Engineer")
	assert.Contains(t, xml, "Generated body.")
}

func TestDOCX_BothAddsPageBreakAndCoverLetter(t *testing.T) {
	req := Request{
		Resume:          sampleResume(),
		CoverLetterText: "Dear team,\n\nBody paragraph.",
		CompanyName:     "Acme Corp",
	}
	artifact, err := DOCX(req, TargetBoth)
	require.NoError(t, err)

	xml := documentXML(t, artifact.Data)
	assert.Contains(t, xml, "Cover Letter - Acme Corp")
	assert.Contains(t, xml, "Body paragraph.")
	// The forced page break before cover-letter content.
	assert.Contains(t, xml, "<w:pageBreakBefore")
}

func TestDOCX_CoverLetterOnlyHasNoPageBreak(t *testing.T) {
	artifact, err := DOCX(Request{CoverLetterText: "Dear team,\n\nBody."}, TargetCoverLetter)
	require.NoError(t, err)

	assert.NotContains(t, documentXML(t, artifact.Data), "<w:pageBreakBefore")
}

func TestDOCX_SectionHeadersCarryBottomBorder(t *testing.T) {
	artifact, err := DOCX(Request{Resume: sampleResume()}, TargetResume)
	require.NoError(t, err)

	xml := documentXML(t, artifact.Data)
	assert.Contains(t, xml, "<w:pBdr>")
	assert.Contains(t, xml, `w:val="single"`)
}

func TestDOCX_SectionPresenceMatchesText(t *testing.T) {
	req := Request{Resume: sampleResume(), CompanyName: "Acme"}

	xml := documentXML(t, mustDOCX(t, req))
	text := string(Text(req, TargetResume).Data)

	for _, heading := range []string{HeadingEducation, HeadingExperience, HeadingProjects, HeadingSkills, HeadingLanguages} {
		assert.Contains(t, xml, heading)
		assert.Contains(t, text, heading)
	}
	assert.False(t, strings.Contains(xml, HeadingLeadership))
	assert.False(t, strings.Contains(text, HeadingLeadership))
}

func mustDOCX(t *testing.T, req Request) []byte {
	t.Helper()
	artifact, err := DOCX(req, TargetResume)
	require.NoError(t, err)
	return artifact.Data
}
