// Package logging wires the global zerolog logger to a file. The TUI owns
// stdout, so everything is written to a per-day log file in the data
// directory.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logFile *os.File

// Init opens the log file and configures the global logger.
func Init(dataDir, level string) error {
	logPath := filepath.Join(dataDir, fmt.Sprintf("cityassist-%s.log", time.Now().Format("2006-01-02")))

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(level))
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	log.Info().Msg("cityassist session started")

	return nil
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Close flushes and closes the log file.
func Close() {
	if logFile != nil {
		log.Info().Msg("cityassist session ended")
		logFile.Close()
	}
}
