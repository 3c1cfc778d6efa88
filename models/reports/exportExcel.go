package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const InventoryWorkbookFileName = "InventoryReports.xlsx"

// ExportInventoryWorkbook puts each report on its own sheet, headings in row 1,
// followed by a Summary sheet.
func ExportInventoryWorkbook(reportList []*Report, summary []*InventorySummaryResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for _, r := range reportList {
		if err := writeSheet(f, r.Name, r.Headings(), r.CellValues(), first); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", r.Name, err)
		}
		first = false
	}

	rows := make([][]interface{}, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, s.GetCellValues())
	}
	if err := writeSheet(f, "Summary", InventorySummaryHeadings, rows, first); err != nil {
		return nil, fmt.Errorf("sheet Summary: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeSheet fills sheetName. The workbook starts with "Sheet1", which the
// first sheet written takes over.
func writeSheet(f *excelize.File, sheetName string, headings []string, rows [][]interface{}, first bool) error {
	if first {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	for i, h := range headings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for r, values := range rows {
		for c, value := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
