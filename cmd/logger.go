package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostics logger. It only reports warnings and
// errors unless verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "wlt",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}
	return logger
}
