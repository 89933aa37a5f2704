package tracking

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/applytrack/internal/types"
)

const exportSheetName = "Applications"

var exportHeaders = []string{
	"COMPANY",
	"ROLE",
	"LOCATION",
	"STATUS",
	"APPLIED",
	"INTERVIEWS",
	"REMINDERS",
	"NOTES",
}

// ExportXLSX writes the application list to a spreadsheet, one row per
// application with a styled header row.
func ExportXLSX(apps []types.Application) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheetName)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(exportSheetName, "A1", endCell, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for rowIdx, app := range apps {
		values := []any{
			app.Company,
			app.Role,
			app.Location,
			types.StatusLabel(app.Status),
			app.ApplicationDate,
			strconv.Itoa(len(app.Interviews)),
			strconv.Itoa(len(app.Reminders)),
			app.Notes,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", rowIdx+1, err)
			}
		}
	}

	for i := range exportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(exportSheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
