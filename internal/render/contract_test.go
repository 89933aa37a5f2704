package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename_SpacesBecomeUnderscores(t *testing.T) {
	assert.Equal(t, "Application_Acme_Corp.pdf", Filename(TargetBoth, "Acme Corp", FormatPDF))
	assert.Equal(t, "Resume_Acme_Corp.docx", Filename(TargetResume, "Acme Corp", FormatDOCX))
	assert.Equal(t, "CoverLetter_Acme_Corp.txt", Filename(TargetCoverLetter, "Acme Corp", FormatText))
}

func TestFilename_EmptyCompany(t *testing.T) {
	assert.Equal(t, "Resume_Document.pdf", Filename(TargetResume, "", FormatPDF))
	assert.Equal(t, "Application_Document.txt", Filename(TargetBoth, "   ", FormatText))
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("both")
	assert.NoError(t, err)
	assert.Equal(t, TargetBoth, target)

	target, err = ParseTarget("")
	assert.NoError(t, err)
	assert.Equal(t, TargetResume, target)

	_, err = ParseTarget("everything")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("docx")
	assert.NoError(t, err)
	assert.Equal(t, FormatDOCX, format)

	format, err = ParseFormat("")
	assert.NoError(t, err)
	assert.Equal(t, FormatPDF, format)

	_, err = ParseFormat("odt")
	assert.Error(t, err)
}

func TestSplitParagraphs(t *testing.T) {
	paragraphs := splitParagraphs("First line\nstill first.\n\n\nSecond paragraph.\r\n\r\nThird.")
	assert.Equal(t, []string{"First line still first.", "Second paragraph.", "Third."}, paragraphs)
}

func TestSplitParagraphs_Empty(t *testing.T) {
	assert.Empty(t, splitParagraphs(""))
	assert.Empty(t, splitParagraphs("\n\n  \n\n"))
}

func TestTargetSelectors(t *testing.T) {
	assert.True(t, TargetBoth.IncludesResume())
	assert.True(t, TargetBoth.IncludesCoverLetter())
	assert.True(t, TargetResume.IncludesResume())
	assert.False(t, TargetResume.IncludesCoverLetter())
	assert.False(t, TargetCoverLetter.IncludesResume())
	assert.True(t, TargetCoverLetter.IncludesCoverLetter())
}
