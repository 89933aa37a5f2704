package parsing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/applytrack/internal/types"
)

type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

const postingText = "Globex is hiring a Backend Engineer in Austin, TX. Full-time. Go and PostgreSQL required."

func TestParseJobText_Success(t *testing.T) {
	client := &stubClient{response: `{
		"company": "Globex",
		"role": "Backend Engineer",
		"location": "Austin, TX",
		"jobType": "Full-time",
		"requiredSkills": ["golang", "postgres"],
		"keywords": ["Distributed Systems", "gRPC"]
	}`}

	job, err := ParseJobText(context.Background(), client, postingText)
	require.NoError(t, err)

	assert.Equal(t, "Globex", job.Company)
	assert.Equal(t, "Backend Engineer", job.Role)
	assert.Equal(t, "Austin, TX", job.Location)
	assert.Equal(t, types.JobTypeFullTime, job.JobType)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, job.RequiredSkills)
	assert.Equal(t, []string{"distributed systems", "grpc"}, job.Keywords)
	assert.Equal(t, postingText, job.RawText)
	assert.NotEmpty(t, job.ID)
}

func TestParseJobText_FencedResponse(t *testing.T) {
	client := &stubClient{response: "```json\n{\"company\": \"Acme\", \"role\": \"SRE\"}\n```"}

	job, err := ParseJobText(context.Background(), client, postingText)
	require.NoError(t, err)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "SRE", job.Role)
}

func TestParseJobText_PromptCarriesPosting(t *testing.T) {
	client := &stubClient{response: `{"company": "Acme", "role": "SRE"}`}

	_, err := ParseJobText(context.Background(), client, postingText)
	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], postingText)
	assert.Contains(t, client.prompts[0], "requiredSkills")
}

func TestParseJobText_ServiceError(t *testing.T) {
	client := &stubClient{err: errors.New("timeout")}

	_, err := ParseJobText(context.Background(), client, postingText)
	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestParseJobText_MalformedResponse(t *testing.T) {
	client := &stubClient{response: "not json at all"}

	_, err := ParseJobText(context.Background(), client, postingText)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseJobText_EmptyExtraction(t *testing.T) {
	client := &stubClient{response: `{"company": "  ", "role": ""}`}

	_, err := ParseJobText(context.Background(), client, postingText)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, strings.Contains(parseErr.Message, "no company or role"))
}

func TestParseJobText_UnknownJobTypeDefaultsToFullTime(t *testing.T) {
	client := &stubClient{response: `{"company": "Acme", "role": "SRE", "jobType": "permanent"}`}

	job, err := ParseJobText(context.Background(), client, postingText)
	require.NoError(t, err)
	assert.Equal(t, types.JobTypeFullTime, job.JobType)
}
