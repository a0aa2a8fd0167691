// Package logging builds the process logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"tilemap.dev/internal/config"
)

// New returns a logger for cfg. Output goes to a size-rotated file when
// cfg.File is set and to stderr otherwise.
func New(cfg config.LogConfig) *log.Logger {
	var out io.Writer = os.Stderr
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "mapview",
	})
	if cfg.File != "" {
		logger.SetFormatter(log.LogfmtFormatter)
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
