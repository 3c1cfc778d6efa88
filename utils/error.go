package utils

import "errors"

var ErrorUnknownReportSink = errors.New("unknown report sink")
