// Package logger wraps zerolog.Logger with the constructors the apiprop
// command uses. Library packages under pkg/ do not log; internal packages
// accept a *Logger and fall back to Nop.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// Options configures New.
type Options struct {
	// Level is a zerolog level name. Empty means info.
	Level string
	// Pretty switches to zerolog's console writer.
	Pretty bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a logger that writes JSON lines, or console output when
// Pretty is set, with a timestamp on every entry.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{zl}, nil
}

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logger: invalid level %q: %w", name, err)
	}
	return level, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Component returns a child logger tagged with a component field.
func (l *Logger) Component(name string) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{l.With().Str("component", name).Logger()}
}

// WithContext stores l on ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored on ctx. zerolog returns a disabled
// logger when none is present, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}
