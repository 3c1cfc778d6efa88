package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mmdatafocus/inventory_reports/config"
	"github.com/mmdatafocus/inventory_reports/models"
	"github.com/mmdatafocus/inventory_reports/utils"
	"github.com/mmdatafocus/inventory_reports/workflow"
)

func main() {
	cfg := config.LoadInventoryConfig()

	flag.StringVar(&cfg.ManufacturerFile, "manufacturers", cfg.ManufacturerFile, "Manufacturer feed (id,manufacturer,type[,damaged])")
	flag.StringVar(&cfg.PriceFile, "prices", cfg.PriceFile, "Price feed (id,price)")
	flag.StringVar(&cfg.ServiceDatesFile, "service-dates", cfg.ServiceDatesFile, "Service date feed (id,MM/DD/YYYY)")
	flag.StringVar(&cfg.ReportDir, "out", cfg.ReportDir, "Directory for report files (local sink)")
	flag.StringVar(&cfg.ReportSink, "sink", cfg.ReportSink, "Report sink: local or gcs")
	flag.StringVar(&cfg.GcsBucket, "bucket", cfg.GcsBucket, "GCS bucket (gcs sink)")
	flag.StringVar(&cfg.GcsPrefix, "prefix", cfg.GcsPrefix, "GCS object prefix (gcs sink)")
	flag.BoolVar(&cfg.ExportExcel, "excel", cfg.ExportExcel, "Also write InventoryReports.xlsx")
	flag.BoolVar(&cfg.StrictQuery, "strict", cfg.StrictQuery, "Reject queries naming more than one manufacturer or type")
	noQuery := flag.Bool("no-query", false, "Write reports and exit without the interactive lookup")
	nowStr := flag.String("now", "", "Optional: evaluate service dates against this day (MM/DD/YYYY) instead of the current time")
	flag.Parse()
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	clock := time.Now
	if strings.TrimSpace(*nowStr) != "" {
		pinned, err := utils.ParseDate(*nowStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid now date: %v\n", err)
			os.Exit(1)
		}
		clock = func() time.Time { return pinned }
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = utils.NewRunContext(ctx)
	logger := config.GetLogger()

	inv, err := workflow.LoadInventory(ctx, logger, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load inventory failed: %v\n", err)
		os.Exit(1)
	}

	sink, err := utils.NewReportSink(cfg.ReportSink, cfg.ReportDir, cfg.GcsBucket, cfg.GcsPrefix)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	written, err := workflow.WriteInventoryReports(ctx, logger, inv, sink, clock(), cfg.ExportExcel)
	if closer, ok := sink.(io.Closer); ok {
		if cerr := closer.Close(); cerr != nil {
			config.LogError(logger, "main", "main", "close report sink", nil, cerr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "write reports failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d report files for %d items\n", len(written), inv.Len())

	if *noQuery {
		return
	}

	engine := models.NewQueryEngine(inv, models.QueryOptions{StrictMatching: cfg.StrictQuery})
	session := models.NewQuerySession(engine, cfg.QuitSentinel, clock)
	err = workflow.RunQuerySession(ctx, logger, session, os.Stdin, os.Stdout)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(130)
	case err != nil:
		fmt.Fprintf(os.Stderr, "query session failed: %v\n", err)
		os.Exit(1)
	}
}
