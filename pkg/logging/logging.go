/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package logging wraps log/slog with computectl defaults: structured JSON
// output to stderr, module/version context attributes, and log level
// configuration via the LOG_LEVEL environment variable or an explicit level.
package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable used to configure the default
// log level when no explicit level is provided.
const EnvLogLevel = "LOG_LEVEL"

// ParseLevel converts a level name to slog.Level. Parsing is
// case-insensitive and accepts both "warn" and "warning". Unknown or empty
// values default to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger creates a JSON logger writing to stderr with the
// given module and version attached to every record. Debug level enables
// source location tracking.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs the default slog logger using the
// LOG_LEVEL environment variable for level selection.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(EnvLogLevel))
}

// SetDefaultStructuredLoggerWithLevel installs the default slog logger with
// an explicit level, typically from a --log-level flag.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger returns a standard library logger that forwards to the
// default slog handler at the given level. Useful for third-party code
// that only accepts a *log.Logger.
func NewLogLogger(level slog.Level) *log.Logger {
	return slog.NewLogLogger(slog.Default().Handler(), level)
}
