package lisp

import (
	"errors"
	"fmt"
)

// LexErrorKind classifies a LexError.
type LexErrorKind int

const (
	LexUnterminatedString LexErrorKind = iota
)

func (k LexErrorKind) String() string {
	switch k {
	case LexUnterminatedString:
		return "unterminated-string"
	}
	return fmt.Sprintf("LexErrorKind(%d)", int(k))
}

// LexError is returned when the source text cannot be split into tokens.
type LexError struct {
	Kind LexErrorKind
	Pos  Pos
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", e.Pos, e.Msg)
}

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	// ParseUnbalanced is a ")" without a matching "(", or a "(" that is never
	// closed.
	ParseUnbalanced ParseErrorKind = iota
	// ParseEmpty means the input held no tokens at all.
	ParseEmpty
	// ParseTrailing means more input followed a complete expression.
	ParseTrailing
	// ParseTooDeep means lists were nested beyond the Context's limit.
	ParseTooDeep
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseUnbalanced:
		return "unbalanced-parens"
	case ParseEmpty:
		return "empty-input"
	case ParseTrailing:
		return "trailing-input"
	case ParseTooDeep:
		return "too-deep"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError is returned when the tokens do not form an expression.
type ParseError struct {
	Kind ParseErrorKind
	Pos  Pos
	Msg  string

	// Incomplete is set when the input ended inside an open list, i.e. more
	// input could still make it valid.
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}

// TypeErrorKind classifies a TypeError.
type TypeErrorKind int

const (
	// TypeShapeMismatch means an argument evaluated to the wrong kind of
	// value.
	TypeShapeMismatch TypeErrorKind = iota
	// TypeArityMismatch means a built-in got the wrong number of arguments.
	TypeArityMismatch
)

func (k TypeErrorKind) String() string {
	switch k {
	case TypeShapeMismatch:
		return "argument-shape-mismatch"
	case TypeArityMismatch:
		return "arity-mismatch"
	}
	return fmt.Sprintf("TypeErrorKind(%d)", int(k))
}

// TypeError is returned when a built-in is applied to arguments it cannot
// handle.
type TypeError struct {
	Kind    TypeErrorKind
	Builtin Builtin
	// Pos is the position of the call, i.e. of its opening paren.
	Pos Pos
	// Arg is the 0-based index of the offending argument. Unused for
	// TypeArityMismatch.
	Arg int
	// Got is the kind of the offending argument. Unused for
	// TypeArityMismatch.
	Got ValueKind
	Msg string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error at %s: %s: %s", e.Pos, e.Builtin, e.Msg)
}

// IsIncomplete returns true if err means the input stopped too early: an
// unterminated quoted string or an unclosed list. A REPL uses this to ask
// for another line instead of reporting the error.
func IsIncomplete(err error) bool {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Kind == LexUnterminatedString
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Incomplete
	}
	return false
}
