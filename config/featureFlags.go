package config

import (
	"os"
	"strings"
)

// ExportExcelEnabled writes InventoryReports.xlsx next to the text reports.
//
// Set via env:
// - EXPORT_EXCEL=true
func ExportExcelEnabled() bool {
	return envBool("EXPORT_EXCEL")
}

// StrictQueryMatching rejects query phrases whose tokens resolve to more than one
// manufacturer or more than one type instead of letting the last token win.
//
// Set via env:
// - STRICT_QUERY_MATCHING=true
func StrictQueryMatching() bool {
	return envBool("STRICT_QUERY_MATCHING")
}

func envBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
