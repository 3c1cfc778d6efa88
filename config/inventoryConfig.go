package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ReportSinkLocal = "local"
	ReportSinkGCS   = "gcs"

	DefaultQuitSentinel = "q"
)

// InventoryConfig holds everything one reporting run needs.
type InventoryConfig struct {
	ManufacturerFile string `validate:"required"`
	PriceFile        string `validate:"required"`
	ServiceDatesFile string `validate:"required"`
	ReportDir        string `validate:"required_if=ReportSink local"`
	ReportSink       string `validate:"required,oneof=local gcs"`
	GcsBucket        string `validate:"required_if=ReportSink gcs"`
	GcsPrefix        string
	QuitSentinel     string `validate:"required"`
	ExportExcel      bool
	StrictQuery      bool
}

var validate = validator.New()

func init() {
	// Load env from .env
	godotenv.Load()
}

// LoadInventoryConfig reads the environment, falling back to the file names the
// feeds are traditionally delivered under.
func LoadInventoryConfig() *InventoryConfig {
	cfg := &InventoryConfig{
		ManufacturerFile: envOr("MANUFACTURER_FILE", "ManufacturerList.txt"),
		PriceFile:        envOr("PRICE_FILE", "PriceList.txt"),
		ServiceDatesFile: envOr("SERVICE_DATES_FILE", "ServiceDatesList.txt"),
		ReportDir:        envOr("REPORT_DIR", "."),
		ReportSink:       envOr("REPORT_SINK", ReportSinkLocal),
		GcsBucket:        strings.TrimSpace(os.Getenv("GCS_BUCKET")),
		GcsPrefix:        strings.TrimSpace(os.Getenv("GCS_PREFIX")),
		QuitSentinel:     envOr("QUIT_SENTINEL", DefaultQuitSentinel),
		ExportExcel:      ExportExcelEnabled(),
		StrictQuery:      StrictQueryMatching(),
	}
	cfg.Normalize()
	return cfg
}

// Normalize trims and lower-cases values that are matched case-insensitively,
// wherever they came from (env or flags).
func (c *InventoryConfig) Normalize() {
	c.ReportSink = strings.ToLower(strings.TrimSpace(c.ReportSink))
	c.GcsBucket = strings.TrimSpace(c.GcsBucket)
	c.GcsPrefix = strings.TrimSpace(c.GcsPrefix)
}

// Validate reports every invalid field in one error.
func (c *InventoryConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", ve.Field(), ve.Tag()))
	}
	return fmt.Errorf("invalid inventory config: %s", strings.Join(msgs, ", "))
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
