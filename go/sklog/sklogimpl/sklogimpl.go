// Package sklogimpl holds the pluggable Logger behind the sklog functions.
// Programs pick an implementation once at startup with SetLogger.
package sklogimpl

import (
	"context"
	"fmt"
	"sync"
)

// Severity of a log message.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
)

// AllSeverities is every Severity in increasing order.
var AllSeverities = []Severity{Debug, Info, Warning, Error, Fatal}

func (s Severity) String() string {
	switch s {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Logger is implemented by each logging backend.
type Logger interface {
	// Log writes one message. depth is the number of stack frames between
	// the original sklog call and Log. If format is empty the args are
	// formatted with fmt.Sprint, otherwise with fmt.Sprintf.
	Log(depth int, severity Severity, format string, args ...interface{})

	// Flush writes out any buffered messages.
	Flush()
}

// CtxLogger is implemented by backends that can attach values carried by a
// context.Context to each message.
type CtxLogger interface {
	Logger
	LogCtx(ctx context.Context, depth int, severity Severity, format string, args ...interface{})
}

var (
	mtx         sync.RWMutex
	logger      Logger
	minSeverity = Debug
)

// SetLogger changes the Logger used by Log and Flush.
func SetLogger(l Logger) {
	mtx.Lock()
	defer mtx.Unlock()
	logger = l
}

// SetMinSeverity drops messages below s. Fatal is never dropped.
func SetMinSeverity(s Severity) {
	mtx.Lock()
	defer mtx.Unlock()
	if s > Fatal {
		s = Fatal
	}
	minSeverity = s
}

// MinSeverity returns the current threshold.
func MinSeverity() Severity {
	mtx.RLock()
	defer mtx.RUnlock()
	return minSeverity
}

// Log sends the message to the current Logger.
func Log(depth int, severity Severity, format string, args ...interface{}) {
	mtx.RLock()
	l, min := logger, minSeverity
	mtx.RUnlock()
	if l == nil || severity < min {
		return
	}
	l.Log(depth+1, severity, format, args...)
}

// LogCtx is like Log, but hands ctx to Loggers that implement CtxLogger.
func LogCtx(ctx context.Context, depth int, severity Severity, format string, args ...interface{}) {
	mtx.RLock()
	l, min := logger, minSeverity
	mtx.RUnlock()
	if l == nil || severity < min {
		return
	}
	if cl, ok := l.(CtxLogger); ok {
		cl.LogCtx(ctx, depth+1, severity, format, args...)
		return
	}
	l.Log(depth+1, severity, format, args...)
}

// Flush flushes the current Logger.
func Flush() {
	mtx.RLock()
	l := logger
	mtx.RUnlock()
	if l != nil {
		l.Flush()
	}
}
