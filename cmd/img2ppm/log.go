package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a timestamped logger writing to w, filtering at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
