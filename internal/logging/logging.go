// Package logging builds the zerolog loggers used by the binaries
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const permission = 0664

// New returns a JSON logger writing to w at the given level ("debug",
// "info", "warn", "error"; empty means info)
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Console returns a human-readable logger for terminal use
func Console(w io.Writer, level string) (zerolog.Logger, error) {
	return New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}, level)
}

// File returns a JSON logger appending to path. The caller closes the file.
func File(path, level string) (zerolog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger, err := New(zerolog.SyncWriter(f), level)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, err
	}
	return logger, f, nil
}
