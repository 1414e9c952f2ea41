// Package logger is the zerolog setup shared by the folio commands and the
// HTTP server. A nil *Logger drops everything.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name. Empty means info.
	Level string
	// Pretty switches from JSON lines to zerolog's console format.
	Pretty bool
	// Out defaults to stderr.
	Out io.Writer
}

// Logger carries a zerolog logger plus whatever fields were bound with With.
type Logger struct {
	zl zerolog.Logger
}

func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(name))
}

// Nop discards everything. Tests and optional wiring use it.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With binds alternating key/value pairs to a derived logger.
//
//	log.With("session", id, "mode", m).Info("toggled")
func (l *Logger) With(keyvals ...any) *Logger {
	if l == nil || len(keyvals) == 0 {
		return l
	}
	return &Logger{zl: l.zl.With().Fields(keyvals).Logger()}
}

func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Info(msg string)  { l.emit(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.emit(zerolog.WarnLevel, nil, msg) }

// Error logs msg at error level with err under the "error" key.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	ev := l.zl.WithLevel(level)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
