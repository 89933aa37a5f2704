package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"resume\": \"text\"}\n```"
	assert.Equal(t, `{"resume": "text"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"resume\": \"text\"}\n```"
	assert.Equal(t, `{"resume": "text"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithLanguage(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"resume": "text"}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestParseResult_FencedJSON(t *testing.T) {
	raw := "```json\n" + `{
  "resume": "Tailored resume text",
  "coverLetter": "Dear team",
  "whyRole": "Because",
  "whyCompany": "Mission"
}` + "\n```"

	result := ParseResult(raw)
	assert.Equal(t, "Tailored resume text", result.Resume)
	assert.Equal(t, "Dear team", result.CoverLetter)
	assert.Equal(t, "Because", result.WhyRole)
	assert.Equal(t, "Mission", result.WhyCompany)
}

func TestParseResult_PlainJSON(t *testing.T) {
	result := ParseResult(`{"resume": "only resume"}`)
	assert.Equal(t, "only resume", result.Resume)
	assert.Empty(t, result.CoverLetter)
}

func TestParseResult_UnparseableFallsBackToRawText(t *testing.T) {
	raw := "Here is your tailored resume:\n\nEXPERIENCE\n- Did things"
	result := ParseResult(raw)

	assert.Equal(t, raw, result.Resume)
	assert.Empty(t, result.CoverLetter)
	assert.Empty(t, result.WhyRole)
	assert.Empty(t, result.WhyCompany)
}

func TestParseResult_EmptyJSONObjectFallsBack(t *testing.T) {
	// A response that parses but carries none of the expected fields is
	// treated like unparseable content.
	result := ParseResult(`{"unexpected": true}`)
	assert.Equal(t, `{"unexpected": true}`, result.Resume)
}
