// Package log provides the small leveled-logging facade consumed by the
// iges package. It mirrors the sibling log package the teacher codebase
// injects into its own File type: a minimal Logger interface plus a
// level filter and a Helper wrapper, so callers can plug in any backend
// without the core depending on one.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Level is a logging severity.
type Level int

// Severity levels, lowest to highest.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal interface the iges package depends on.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger writes formatted lines to an io.Writer via the standard
// library logger.
type stdLogger struct {
	log *log.Logger
}

// NewStdLogger returns a Logger that writes to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{log: log.New(w, "", 0)}
}

func (s *stdLogger) Log(level Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	ts := time.Now().Format(time.RFC3339)
	line := fmt.Sprintf("%s level=%s", ts, level)
	for i := 0; i+1 < len(keyvals); i += 2 {
		line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	s.log.Print(line)
	return nil
}

// filter wraps a Logger, dropping records below a minimum level.
type filter struct {
	logger Logger
	level  Level
}

// FilterOption configures a filter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level a filtered logger will emit.
func FilterLevel(level Level) FilterOption {
	return func(f *filter) { f.level = level }
}

// NewFilter returns logger filtered by the given options. By default
// every level passes through.
func NewFilter(logger Logger, opts ...FilterOption) Logger {
	f := &filter{logger: logger, level: LevelDebug}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.logger.Log(level, keyvals...)
}

// Helper adds convenience printf-style methods on top of a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in a Helper. A nil logger yields a Helper that
// discards everything, so a zero-value *Helper is always safe to call.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, "msg", fmt.Sprintf(format, args...))
}

// Debugf logs at LevelDebug.
func (h *Helper) Debugf(format string, args ...interface{}) { h.log(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (h *Helper) Infof(format string, args ...interface{}) { h.log(LevelInfo, format, args...) }

// Warnf logs at LevelWarn.
func (h *Helper) Warnf(format string, args ...interface{}) { h.log(LevelWarn, format, args...) }

// Warn logs a single message at LevelWarn.
func (h *Helper) Warn(args ...interface{}) { h.log(LevelWarn, "%s", fmt.Sprint(args...)) }

// Errorf logs at LevelError.
func (h *Helper) Errorf(format string, args ...interface{}) { h.log(LevelError, format, args...) }

// Default returns a Helper writing to stderr, filtered to Warn and above,
// the same default the teacher's File.New falls back to when no logger
// option is supplied.
func Default() *Helper {
	return NewHelper(NewFilter(NewStdLogger(os.Stderr), FilterLevel(LevelWarn)))
}
