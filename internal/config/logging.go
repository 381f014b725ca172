package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	LogDir      = "logs"
	LogFileName = "dodge.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// SetupLogging routes the standard logger. With debug off everything is discarded,
// otherwise it appends to logs/dodge.log, truncating it once it grows past MaxLogSize.
// The returned file must be closed by the caller; it is nil when logging is off.
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(LogDir, LogFileName)
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxLogSize {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}

	f, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
