package reports_test

import (
	"bytes"
	"testing"

	"github.com/mmdatafocus/inventory_reports/models/reports"
	"github.com/xuri/excelize/v2"
)

func TestExportInventoryWorkbook(t *testing.T) {
	inv := sampleInventory(t)
	data, err := reports.ExportInventoryWorkbook(
		[]*reports.Report{
			reports.GetFullInventoryReport(inv),
			reports.GetDamagedInventoryReport(inv),
		},
		reports.GetInventorySummaryReport(inv, reportNow),
	)
	if err != nil {
		t.Fatalf("ExportInventoryWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"FullInventory", "DamagedInventory", "Summary"}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Fatalf("expected sheets %v, got %v", want, sheets)
		}
	}

	rows, err := f.GetRows("FullInventory")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1+inv.Len() {
		t.Fatalf("expected %d rows, got %d", 1+inv.Len(), len(rows))
	}
	if rows[0][0] != "ItemId" || rows[1][0] != "1167234" || rows[1][4] != "02/01/2025" {
		t.Fatalf("unexpected rows %v", rows[:2])
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if summary[1][0] != "phone" || summary[1][5] != "1734.00" {
		t.Fatalf("unexpected summary row %v", summary[1])
	}
}
