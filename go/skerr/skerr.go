// Package skerr provides functions for adding context to errors. Wrapped
// errors record the call site where they were wrapped and any additional
// context messages, while still allowing errors.Is and errors.As to reach
// the original cause.
package skerr

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// callstackHeight is the number of frames recorded by Wrap, Wrapf and Fmt.
const callstackHeight = 3

// StackTrace identifies one frame of a call stack.
type StackTrace struct {
	File string
	Line int
}

// String returns "file.go:line".
func (st *StackTrace) String() string {
	return fmt.Sprintf("%s:%d", st.File, st.Line)
}

// CallStack returns at most height frames of the caller's stack, skipping the
// first startAt frames. startAt == 0 starts at the caller of CallStack.
func CallStack(height, startAt int) []StackTrace {
	pcs := make([]uintptr, height)
	n := runtime.Callers(startAt+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	ret := make([]StackTrace, 0, n)
	for {
		f, more := frames.Next()
		ret = append(ret, StackTrace{
			File: filepath.Base(f.File),
			Line: f.Line,
		})
		if !more {
			break
		}
	}
	return ret
}

// ErrorWithContext is an error that carries the call stack where it was first
// wrapped and a list of context messages, outermost last.
type ErrorWithContext struct {
	// Wrapped is the original error.
	Wrapped error
	// CallStack is where the error was first wrapped.
	CallStack []StackTrace
	// Context holds messages added by Wrapf, innermost first.
	Context []string
}

// Error implements the error interface. The result looks like
// "outer context: inner context: original error. At file.go:12 other.go:40".
func (err *ErrorWithContext) Error() string {
	var out strings.Builder
	for i := len(err.Context) - 1; i >= 0; i-- {
		out.WriteString(err.Context[i])
		out.WriteString(": ")
	}
	out.WriteString(err.Wrapped.Error())
	if len(err.CallStack) > 0 {
		out.WriteString(". At")
		for _, st := range err.CallStack {
			out.WriteString(" ")
			out.WriteString(st.String())
		}
	}
	return out.String()
}

// Unwrap returns the original error, for errors.Is and errors.As.
func (err *ErrorWithContext) Unwrap() error {
	return err.Wrapped
}

// Wrap adds the caller's location to err. If err is already an
// ErrorWithContext it is returned unchanged. Returns nil if err is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var ewc *ErrorWithContext
	if errors.As(err, &ewc) {
		return err
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(callstackHeight, 1),
	}
}

// Wrapf is like Wrap but also adds a context message. Returns nil if err is
// nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	if ewc, ok := err.(*ErrorWithContext); ok {
		return &ErrorWithContext{
			Wrapped:   ewc.Wrapped,
			CallStack: ewc.CallStack,
			Context:   append(append([]string{}, ewc.Context...), msg),
		}
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(callstackHeight, 1),
		Context:   []string{msg},
	}
}

// Fmt is fmt.Errorf plus the caller's location.
func Fmt(format string, args ...interface{}) error {
	return &ErrorWithContext{
		Wrapped:   fmt.Errorf(format, args...),
		CallStack: CallStack(callstackHeight, 1),
	}
}

// Unwrap returns the original error if err is an ErrorWithContext, otherwise
// err itself.
func Unwrap(err error) error {
	if ewc, ok := err.(*ErrorWithContext); ok {
		return ewc.Wrapped
	}
	return err
}
