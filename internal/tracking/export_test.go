package tracking

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/applytrack/internal/types"
)

func TestExportXLSX(t *testing.T) {
	apps := []types.Application{
		{
			ID:              uuid.New(),
			Company:         "Globex",
			Role:            "Backend Engineer",
			Location:        "Austin, TX",
			Status:          types.StatusInterview,
			ApplicationDate: "2026-08-01",
			Interviews:      []types.InterviewSchedule{{ID: "i1", Date: "2026-08-25"}},
		},
		{
			ID:      uuid.New(),
			Company: "Acme Corp",
			Role:    "SRE",
			Status:  types.StatusDraft,
		},
	}

	data, err := ExportXLSX(apps)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "COMPANY", rows[0][0])
	assert.Equal(t, "Globex", rows[1][0])
	assert.Equal(t, "Interview", rows[1][3])
	assert.Equal(t, "1", rows[1][5])
	assert.Equal(t, "Acme Corp", rows[2][0])
}

func TestExportXLSX_EmptyList(t *testing.T) {
	data, err := ExportXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
