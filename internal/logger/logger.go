// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the go-flashcards server and client.
//
// The Logger type embeds zerolog.Logger, so Debug, Info, Warn, Error and the
// rest of the zerolog API are available directly on *Logger. Request-scoped
// loggers are attached by the HTTP middleware and obtained with FromContext
// or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFileName is the file the client writes to, next to its executable.
// The TUI owns stdout, so client logs must go elsewhere.
const ClientLogFileName = "flashcards-client.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries
// "role", a timestamp and a "func" field with the caller's function name.
// The global level is reset to debug; use SetLevel to narrow it.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is NewLogger for the terminal client: entries are appended
// to ClientLogFileName beside the executable, falling back to stderr.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stderr

	execPath, err := os.Executable()
	if err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), ClientLogFileName)
		f, openErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if openErr == nil {
			out = f
		}
	}

	return newLogger(out, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel sets the process-wide minimum level. An empty string keeps the
// current level.
func SetLevel(level string) error {
	if strings.TrimSpace(level) == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched with fields
// without affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithUserID returns a child logger tagged with the authenticated user's id.
func (l *Logger) WithUserID(userID int64) *Logger {
	return &Logger{l.With().Int64("user_id", userID).Logger()}
}

// FromRequest returns the logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// When none is attached zerolog falls back to its default logger, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
