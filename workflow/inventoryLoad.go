package workflow

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mmdatafocus/inventory_reports/config"
	"github.com/mmdatafocus/inventory_reports/models"
	"github.com/mmdatafocus/inventory_reports/utils"
	"github.com/sirupsen/logrus"
)

// LoadInventory reads the three feeds named in cfg and joins them. Any read,
// parse or join failure aborts the run before a single report exists.
func LoadInventory(ctx context.Context, logger *logrus.Logger, cfg *config.InventoryConfig) (*models.Inventory, error) {
	if logger == nil {
		logger = config.GetLogger()
	}
	if cfg == nil {
		return nil, fmt.Errorf("load inventory: config is nil")
	}

	var manufacturers *models.ManufacturerList
	if err := readSource(ctx, cfg.ManufacturerFile, func(r io.Reader) (err error) {
		manufacturers, err = models.ReadManufacturerList(r, cfg.ManufacturerFile)
		return err
	}); err != nil {
		config.LogError(logger, "workflow", "LoadInventory", "read manufacturer list", cfg.ManufacturerFile, err)
		return nil, err
	}

	var prices models.PriceList
	if err := readSource(ctx, cfg.PriceFile, func(r io.Reader) (err error) {
		prices, err = models.ReadPriceList(r, cfg.PriceFile)
		return err
	}); err != nil {
		config.LogError(logger, "workflow", "LoadInventory", "read price list", cfg.PriceFile, err)
		return nil, err
	}

	var serviceDates models.ServiceDateList
	if err := readSource(ctx, cfg.ServiceDatesFile, func(r io.Reader) (err error) {
		serviceDates, err = models.ReadServiceDates(r, cfg.ServiceDatesFile)
		return err
	}); err != nil {
		config.LogError(logger, "workflow", "LoadInventory", "read service dates", cfg.ServiceDatesFile, err)
		return nil, err
	}

	inv, err := models.BuildInventory(manufacturers, prices, serviceDates)
	if err != nil {
		config.LogError(logger, "workflow", "LoadInventory", "build inventory", nil, err)
		return nil, err
	}

	runId, _ := utils.GetRunIdFromContext(ctx)
	logger.WithFields(logrus.Fields{
		"runId":         runId,
		"items":         inv.Len(),
		"manufacturers": len(inv.Manufacturers()),
		"types":         len(inv.Types()),
	}).Info("inventory built")
	return inv, nil
}

func readSource(ctx context.Context, path string, read func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}
