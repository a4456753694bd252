package logging

import (
	"os"

	"vien/internal/core/domain"

	"github.com/charmbracelet/log"
)

// ProvideLogger returns the diagnostic logger. It writes to stderr and stays quiet
// below warn level unless --verbose was given.
func ProvideLogger(settings domain.Settings) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "vien",
		ReportTimestamp: settings.Verbose,
	})
	logger.SetLevel(Level(settings.Verbose))
	return logger
}

func Level(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.WarnLevel
}
