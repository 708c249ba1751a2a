package dsl

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lyraproj/issue/issue"
)

type (
	LogLevel string

	Logger interface {
		Log(level LogLevel, args ...Value)

		Logf(level LogLevel, format string, args ...interface{})

		LogIssue(issue issue.Reported)
	}

	stdlog struct {
		out   io.Writer
		err   io.Writer
		level LogLevel
	}

	LogEntry struct {
		level   LogLevel
		message string
	}

	ArrayLogger struct {
		entries []*LogEntry
	}
)

const (
	DEBUG   = LogLevel(`debug`)
	INFO    = LogLevel(`info`)
	NOTICE  = LogLevel(`notice`)
	WARNING = LogLevel(`warning`)
	ERR     = LogLevel(`err`)
)

// LogLevels lists all levels in increasing order of severity
var LogLevels = []LogLevel{DEBUG, INFO, NOTICE, WARNING, ERR}

func (l LogLevel) severity() int {
	for i, level := range LogLevels {
		if level == l {
			return i
		}
	}
	return len(LogLevels)
}

// ParseLogLevel returns the level with the given name
func ParseLogLevel(s string) (LogLevel, bool) {
	l := LogLevel(s)
	return l, l.severity() < len(LogLevels)
}

func Debug(logger Logger, format string, args ...interface{}) {
	logger.Logf(DEBUG, format, args...)
}

func Info(logger Logger, format string, args ...interface{}) {
	logger.Logf(INFO, format, args...)
}

func Notice(logger Logger, format string, args ...interface{}) {
	logger.Logf(NOTICE, format, args...)
}

func Warning(logger Logger, format string, args ...interface{}) {
	logger.Logf(WARNING, format, args...)
}

func Err(logger Logger, format string, args ...interface{}) {
	logger.Logf(ERR, format, args...)
}

// NewStdLogger returns a logger that writes notice and above to stdout and
// stderr
func NewStdLogger() Logger {
	return NewLogger(os.Stdout, os.Stderr, NOTICE)
}

// NewLogger returns a logger that discards everything below the given level.
// Debug, info, and notice are written to out, everything else to err.
func NewLogger(out, err io.Writer, level LogLevel) Logger {
	return &stdlog{out, err, level}
}

func (l *stdlog) Log(level LogLevel, args ...Value) {
	if !l.enabled(level) {
		return
	}
	w := l.writerFor(level)
	fmt.Fprintf(w, "%s: %s\n", level, joinValues(args))
}

func (l *stdlog) Logf(level LogLevel, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	w := l.writerFor(level)
	fmt.Fprintf(w, `%s: `, level)
	fmt.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

func (l *stdlog) LogIssue(issue issue.Reported) {
	if l.enabled(ERR) {
		fmt.Fprintln(l.err, issue.String())
	}
}

func (l *stdlog) enabled(level LogLevel) bool {
	return level.severity() >= l.level.severity()
}

func (l *stdlog) writerFor(level LogLevel) io.Writer {
	switch level {
	case DEBUG, INFO, NOTICE:
		return l.out
	default:
		return l.err
	}
}

func NewArrayLogger() *ArrayLogger {
	return &ArrayLogger{make([]*LogEntry, 0, 16)}
}

// Entries returns the messages logged with the given level
func (l *ArrayLogger) Entries(level LogLevel) (result []string) {
	result = make([]string, 0, 8)
	for _, entry := range l.entries {
		if entry.level == level {
			result = append(result, entry.message)
		}
	}
	return
}

func (l *ArrayLogger) Log(level LogLevel, args ...Value) {
	l.entries = append(l.entries, &LogEntry{level, joinValues(args)})
}

func (l *ArrayLogger) Logf(level LogLevel, format string, args ...interface{}) {
	l.entries = append(l.entries, &LogEntry{level, fmt.Sprintf(format, args...)})
}

func (l *ArrayLogger) LogIssue(i issue.Reported) {
	l.entries = append(l.entries, &LogEntry{ERR, i.Error()})
}

func joinValues(args []Value) string {
	b := bytes.NewBufferString(``)
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t, ok := arg.(Text); ok {
			b.WriteString(string(t))
		} else {
			b.WriteString(ToString(arg))
		}
	}
	return b.String()
}
