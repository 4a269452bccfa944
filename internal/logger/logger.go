// SPDX-License-Identifier: Apache-2.0

// Package logger provides a thin wrapper around zerolog.Logger used for the
// client's diagnostic output.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger. A
// client constructed without debug mode receives the Nop logger, so regular
// operation emits nothing.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// library to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given component label (e.g. "gengo").
//
// The logger is configured with:
//   - level set to Debug, since it exists purely for request inspection;
//   - a "component" field set to component;
//   - a timestamp field added to every log entry.
//
// Output is written to os.Stderr in JSON format so it never mixes with
// payloads a caller may print to stdout.
func New(component string) *Logger {
	l := zerolog.New(os.Stderr).Level(zerolog.DebugLevel).With().
		Str("component", component).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output.
// It is the logger used by clients constructed without debug mode, and is
// also handy in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
