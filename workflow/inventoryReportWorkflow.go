package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmdatafocus/inventory_reports/config"
	"github.com/mmdatafocus/inventory_reports/models"
	"github.com/mmdatafocus/inventory_reports/models/reports"
	"github.com/mmdatafocus/inventory_reports/utils"
	"github.com/sirupsen/logrus"
)

type renderedFile struct {
	name        string
	data        []byte
	contentType string
}

// WriteInventoryReports renders every report against the single cutoff now and
// hands them to sink. Nothing is written until every file has rendered.
// It returns the names written, in write order.
func WriteInventoryReports(
	ctx context.Context,
	logger *logrus.Logger,
	inv *models.Inventory,
	sink utils.ReportSink,
	now time.Time,
	exportExcel bool,
) ([]string, error) {
	if logger == nil {
		logger = config.GetLogger()
	}
	if inv == nil {
		return nil, fmt.Errorf("write inventory reports: inventory is nil")
	}
	if sink == nil {
		return nil, fmt.Errorf("write inventory reports: sink is nil")
	}

	reportList := reports.GetInventoryReports(inv, now)
	files := make([]renderedFile, 0, len(reportList)+1)
	// Keyed case-insensitively: on macOS and Windows LaptopInventory.txt and
	// laptopInventory.txt are the same file.
	seen := map[string]string{}
	for _, r := range reportList {
		key := strings.ToLower(r.FileName)
		if other, dup := seen[key]; dup {
			err := fmt.Errorf("reports %s and %s both map to file %s", other, r.Name, r.FileName)
			config.LogError(logger, "workflow", "WriteInventoryReports", "file name collision", r.FileName, err)
			return nil, err
		}
		seen[key] = r.Name
		files = append(files, renderedFile{name: r.FileName, data: r.Bytes(), contentType: utils.ContentTypeText})
	}

	if exportExcel {
		workbook, err := reports.ExportInventoryWorkbook(
			[]*reports.Report{
				reports.GetFullInventoryReport(inv),
				reports.GetPastServiceDateInventoryReport(inv, now),
				reports.GetDamagedInventoryReport(inv),
			},
			reports.GetInventorySummaryReport(inv, now),
		)
		if err != nil {
			config.LogError(logger, "workflow", "WriteInventoryReports", "export workbook", nil, err)
			return nil, fmt.Errorf("export workbook: %w", err)
		}
		files = append(files, renderedFile{name: reports.InventoryWorkbookFileName, data: workbook, contentType: utils.ContentTypeXlsx})
	}

	runId, _ := utils.GetRunIdFromContext(ctx)
	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := sink.Put(ctx, f.name, f.data, f.contentType); err != nil {
			config.LogError(logger, "workflow", "WriteInventoryReports", "write report", f.name, err)
			return written, fmt.Errorf("write %s: %w", f.name, err)
		}
		written = append(written, f.name)
		logger.WithFields(logrus.Fields{
			"runId": runId,
			"file":  f.name,
			"bytes": len(f.data),
		}).Info("report written")
	}
	return written, nil
}
