package utils

import (
	"strings"
	"time"
)

// DateLayout is the MM/DD/YYYY form every report prints.
const DateLayout = "01/02/2006"

// parseLayout also accepts unpadded months and days ("2/1/2025").
const parseLayout = "1/2/2006"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads an MM/DD/YYYY value as midnight in the local time zone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(parseLayout, strings.TrimSpace(value), time.Local)
}

// FormatBool renders flags the way the report files have always carried them.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
