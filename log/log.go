package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

var levelTags = map[Level]string{
	LevelInfo:  "INFO ",
	LevelWarn:  "WARN ",
	LevelError: "ERROR",
}

// Logger writes leveled, module-tagged lines. Instances are handed to
// components at construction instead of sharing process-wide state.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	module string
	level  Level
}

func New(module string) *Logger {
	return &Logger{
		out:    os.Stderr,
		module: module,
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.out, "[%s][%s][%s] : %s\n", levelTags[level], ts, l.module, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) Error(err error) {
	l.logf(LevelError, "%v", err)
}

func (l *Logger) Panic(err error) {
	l.logf(LevelError, "%v", err)
	panic(err)
}

var std = New("main")

func Infof(format string, args ...interface{}) {
	std.Infof(format, args...)
}

func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

func Error(err error) {
	std.Error(err)
}

func Panic(err error) {
	std.Panic(err)
}
