// Package export renders the checklist as a spreadsheet for reviewers.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"kycagent/internal/checklist"
)

const (
	ChecklistSheet = "Checklist"
	PendingSheet   = "Pending"
	ContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var checklistHeaders = []string{
	"ID",
	"Item",
	"Description",
	"Required",
	"Status",
	"Value",
	"Source Document",
	"Source Page",
	"Coordinates",
}

// ChecklistXLSX writes the checklist and its pending list into a workbook.
func ChecklistXLSX(items []checklist.Item, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ChecklistSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(PendingSheet); err != nil {
		return nil, fmt.Errorf("add pending sheet: %w", err)
	}

	for i, h := range checklistHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ChecklistSheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, item := range items {
		row := i + 2
		values := []any{
			item.ID,
			item.Name,
			item.Description,
			yesNo(item.Required),
			string(item.Status),
			item.Value,
			item.SourceDocument,
			pageCell(item.SourcePage),
			coordinatesCell(item),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(ChecklistSheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	_ = f.SetColWidth(ChecklistSheet, "A", "A", 20)
	_ = f.SetColWidth(ChecklistSheet, "B", "B", 28)
	_ = f.SetColWidth(ChecklistSheet, "C", "C", 44)
	_ = f.SetColWidth(ChecklistSheet, "F", "G", 36)
	_ = f.SetColWidth(ChecklistSheet, "I", "I", 24)

	_ = f.SetCellValue(PendingSheet, "A1", "Pending required items")
	_ = f.SetCellValue(PendingSheet, "B1", "Generated "+generatedAt.UTC().Format(time.RFC3339))
	for i, name := range checklist.PendingNames(items) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetCellValue(PendingSheet, cell, name); err != nil {
			return nil, fmt.Errorf("write pending row: %w", err)
		}
	}
	_ = f.SetColWidth(PendingSheet, "A", "B", 32)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func pageCell(page int) string {
	if page <= 0 {
		return ""
	}
	return strconv.Itoa(page)
}

func coordinatesCell(item checklist.Item) string {
	c := item.SourceCoordinates
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g %gx%g", c.X, c.Y, c.Width, c.Height)
}
