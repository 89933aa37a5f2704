package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/applytrack/internal/types"
)

func TestBuildApplicationUpdate_OrdersClauses(t *testing.T) {
	clauses, args, err := buildApplicationUpdate(map[string]any{
		"notes":   "sent follow-up",
		"status":  types.StatusApplied,
		"company": "Globex",
	})
	require.NoError(t, err)

	assert.Equal(t, "company = $1, status = $2, notes = $3", clauses)
	assert.Equal(t, []any{"Globex", types.StatusApplied, "sent follow-up"}, args)
}

func TestBuildApplicationUpdate_RejectsInvalidStatus(t *testing.T) {
	_, _, err := buildApplicationUpdate(map[string]any{"status": "ghosted"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid application status")
}

func TestBuildApplicationUpdate_RejectsUnknownField(t *testing.T) {
	_, _, err := buildApplicationUpdate(map[string]any{"salary": "100k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown application field")
}

func TestBuildApplicationUpdate_EncodesInterviewsAsJSON(t *testing.T) {
	clauses, args, err := buildApplicationUpdate(map[string]any{
		"interviews": []types.InterviewSchedule{{ID: "i1", Date: "2026-08-25", Type: types.InterviewVideo}},
	})
	require.NoError(t, err)

	assert.Equal(t, "interviews = $1", clauses)
	require.Len(t, args, 1)
	assert.IsType(t, []byte(nil), args[0])
	assert.Contains(t, string(args[0].([]byte)), "2026-08-25")
}

func TestBuildApplicationUpdate_EmptyMap(t *testing.T) {
	_, _, err := buildApplicationUpdate(map[string]any{})
	assert.Error(t, err)
}

func TestOrEmpty(t *testing.T) {
	assert.Equal(t, []int{}, orEmpty[int](nil))
	assert.Equal(t, []int{1}, orEmpty([]int{1}))
}
