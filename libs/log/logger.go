package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger is what any component of the simulator logs through.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})

	With(keyvals ...interface{}) Logger
}

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelError = "error"
	LevelNone  = "none"
)

const msgKey = "_msg"

type kitLogger struct {
	srcLogger kitlog.Logger
}

var _ Logger = (*kitLogger)(nil)

// NewLogger returns a logfmt logger writing to w that drops entries below
// lvl. Accepted levels are debug, info, error and none.
func NewLogger(w io.Writer, lvl string) (Logger, error) {
	option, err := allowLevel(lvl)
	if err != nil {
		return nil, err
	}
	src := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	return &kitLogger{srcLogger: level.NewFilter(src, option)}, nil
}

// NewStdoutLogger is NewLogger writing to stdout.
func NewStdoutLogger(lvl string) (Logger, error) {
	return NewLogger(os.Stdout, lvl)
}

func allowLevel(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case LevelDebug:
		return level.AllowDebug(), nil
	case "", LevelInfo:
		return level.AllowInfo(), nil
	case LevelError:
		return level.AllowError(), nil
	case LevelNone:
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q (want debug|info|error|none)", lvl)
	}
}

func (l *kitLogger) Debug(msg string, keyvals ...interface{}) {
	l.log(level.Debug(l.srcLogger), msg, keyvals...)
}

func (l *kitLogger) Info(msg string, keyvals ...interface{}) {
	l.log(level.Info(l.srcLogger), msg, keyvals...)
}

func (l *kitLogger) Error(msg string, keyvals ...interface{}) {
	l.log(level.Error(l.srcLogger), msg, keyvals...)
}

func (l *kitLogger) log(lvl kitlog.Logger, msg string, keyvals ...interface{}) {
	if err := kitlog.With(lvl, msgKey, msg).Log(keyvals...); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
	}
}

func (l *kitLogger) With(keyvals ...interface{}) Logger {
	return &kitLogger{srcLogger: kitlog.With(l.srcLogger, keyvals...)}
}

type nopLogger struct{}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (l nopLogger) With(...interface{}) Logger { return l }
