package logging

import (
	"sync"
)

var (
	mu           sync.RWMutex
	globalLogger *Logger
)

// InitLogger builds the process-wide logger from config.
// Calling it again replaces (and closes) the previous logger.
func InitLogger(config *LogConfig) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	previous := globalLogger
	globalLogger = logger
	mu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}
	return nil
}

// GetGlobalLogger returns the process-wide logger.
// If InitLogger was never called, a stdout-only info logger is installed.
func GetGlobalLogger() *Logger {
	mu.RLock()
	logger := globalLogger
	mu.RUnlock()
	if logger != nil {
		return logger
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = NewLogger(&LogConfig{Level: LevelInfo})
	}
	return globalLogger
}

// SetGlobalLogger replaces the process-wide logger with an already built one
func SetGlobalLogger(logger *Logger) {
	mu.Lock()
	previous := globalLogger
	globalLogger = logger
	mu.Unlock()

	if previous != nil && previous != logger {
		_ = previous.Close()
	}
}
