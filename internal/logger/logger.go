// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the console.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Because bubbletea owns the terminal while the console runs, log output
// goes to a file next to the executable rather than to stdout.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the full
// zerolog API while allowing helper methods without modifying the upstream
// type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label (e.g. "console").
//
// The logger is configured with:
//   - the global level parsed from level ("debug", "info", ...; falls back
//     to info on unknown values);
//   - a "role" field for filtering logs from different components;
//   - a timestamp on every entry;
//   - a "func" caller field recording the fully-qualified function name.
//
// Output is JSON appended to a "logs" file next to the executable. When the
// file cannot be opened the logger falls back to stderr so startup failures
// remain visible.
func New(role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	sink := os.Stderr
	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), "logs")
		if logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			sink = logFile
		}
	}

	l := zerolog.New(sink).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper. If no logger has been attached, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
