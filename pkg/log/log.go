// Package log provides structured logging for the templateforge library
// packages and the CLI. Server-side code logs through go-zero logx instead.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// LevelEnv overrides the level chosen by Setup.
const LevelEnv = "FORGE_LOG_LEVEL"

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(New(os.Stderr, slog.LevelInfo))
}

// New builds a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs the CLI logger: warnings and above, debug when verbose,
// or whatever FORGE_LOG_LEVEL names.
func Setup(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if env, ok := ParseLevel(os.Getenv(LevelEnv)); ok {
		level = env
	}
	SetLogger(New(w, level))
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// SetLogger replaces the package logger.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// With returns the current logger with args attached to every record.
func With(args ...any) *slog.Logger {
	return logger.Load().With(args...)
}

func Debug(msg string, args ...any) {
	logger.Load().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	logger.Load().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Load().Error(msg, args...)
}
