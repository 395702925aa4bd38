// Package logger adapts zerolog to the component/message/fields shape used
// by the driver and the CLI.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrBadFormat indicates an output format other than console or json.
var ErrBadFormat = errors.New("logger: format must be console or json")

// Logger writes leveled, structured records tagged with a component name.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to w at the given level. Console format is
// human-readable; JSON emits one object per line.
func New(w io.Writer, level zerolog.Level, format string) (*Logger, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldInteger = true

	switch format {
	case FormatJSON:
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}

	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}, nil
}

// NewConsole logs human-readable records to stderr.
func NewConsole(level zerolog.Level) *Logger {
	l, _ := New(os.Stderr, level, FormatConsole)

	return l
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// ParseLevel maps "debug", "info", "warn", "error" (case-insensitive) to a level.
func ParseLevel(s string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logger: %w", err)
	}

	return lvl, nil
}

// Info logs msg at info level.
func (l *Logger) Info(component, msg string, fields map[string]interface{}) {
	l.emit(l.zl.Info(), component, msg, fields)
}

// Debug logs msg at debug level.
func (l *Logger) Debug(component, msg string, fields map[string]interface{}) {
	l.emit(l.zl.Debug(), component, msg, fields)
}

// Warning logs msg at warn level.
func (l *Logger) Warning(component, msg string, fields map[string]interface{}) {
	l.emit(l.zl.Warn(), component, msg, fields)
}

// Error logs err at error level.
func (l *Logger) Error(component string, err error, fields map[string]interface{}) {
	l.emit(l.zl.Error().Err(err), component, "operation failed", fields)
}

// emit attaches the component and fields to ev and writes it. A disabled
// level yields a nil event, on which every zerolog method is a no-op.
func (l *Logger) emit(ev *zerolog.Event, component, msg string, fields map[string]interface{}) {
	if !ev.Enabled() {
		return
	}
	ev = ev.Str("component", component)
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
