package lisp

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// TokenType identifies the type of lexical items.
type TokenType int

const (
	TokenError  TokenType = iota // error occurred; Val is text of error
	TokenEOF                     // end of input
	TokenLParen                  // (
	TokenRParen                  // )
	TokenString                  // "quoted text", Val excludes the quotes
	TokenWord                    // any other run of non-space, non-paren characters
)

var tokenNames = map[TokenType]string{
	TokenError:  "Error",
	TokenEOF:    "EOF",
	TokenLParen: "OpenParen",
	TokenRParen: "CloseParen",
	TokenString: "QuotedString",
	TokenWord:   "Word",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Pos is a location in the source text. Line and Column are 1-based, Column
// counts runes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical item.
type Token struct {
	Typ TokenType
	Val string
	Pos Pos
}

func (t Token) String() string {
	switch t.Typ {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return t.Val
	}
	return fmt.Sprintf("%s(%q)", t.Typ, t.Val)
}

const eof = -1

// stateFn represents the state of the lexer as a function that returns the
// next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the scanner. It runs synchronously: nextItem
// advances the state machine only until at least one token is ready.
type lexer struct {
	input string
	state stateFn
	start int // start of the current token
	pos   int // current position in input
	width int // width of the last rune read
	items []Token
	err   *LexError

	// Incremental line tracking for locate.
	scanned   int
	line      int
	lineStart int
}

func newLexer(input string) *lexer {
	return &lexer{
		input: input,
		state: lexAny,
		line:  1,
	}
}

// nextItem returns the next token from the input. After TokenEOF or
// TokenError it keeps returning TokenEOF.
func (l *lexer) nextItem() Token {
	for len(l.items) == 0 && l.state != nil {
		l.state = l.state(l)
	}
	if len(l.items) == 0 {
		return Token{Typ: TokenEOF, Pos: l.locate(len(l.input))}
	}
	it := l.items[0]
	l.items = l.items[1:]
	return it
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *lexer) backup() {
	l.pos -= l.width
}

// ignore skips over the pending input before this point.
func (l *lexer) ignore() {
	l.start = l.pos
}

// emit passes the pending input back to the client as a token of type t.
func (l *lexer) emit(t TokenType) {
	l.emitVal(t, l.input[l.start:l.pos])
}

// emitVal is emit with a value that differs from the raw input, e.g. a
// quoted string without its quotes.
func (l *lexer) emitVal(t TokenType, val string) {
	l.items = append(l.items, Token{Typ: t, Val: val, Pos: l.locate(l.start)})
	l.start = l.pos
}

// errorf records the error, emits a TokenError and stops the state machine.
func (l *lexer) errorf(kind LexErrorKind, format string, args ...interface{}) stateFn {
	l.err = &LexError{
		Kind: kind,
		Pos:  l.locate(l.start),
		Msg:  fmt.Sprintf(format, args...),
	}
	l.items = append(l.items, Token{Typ: TokenError, Val: l.err.Error(), Pos: l.err.Pos})
	return nil
}

// locate converts offset into a Pos. Offsets must be passed in
// non-decreasing order.
func (l *lexer) locate(offset int) Pos {
	for ; l.scanned < offset; l.scanned++ {
		if l.input[l.scanned] == '\n' {
			l.line++
			l.lineStart = l.scanned + 1
		}
	}
	return Pos{
		Offset: offset,
		Line:   l.line,
		Column: utf8.RuneCountInString(l.input[l.lineStart:offset]) + 1,
	}
}

// lexAny scans between tokens.
func lexAny(l *lexer) stateFn {
	switch r := l.next(); {
	case r == eof:
		l.emit(TokenEOF)
		return nil
	case isSpace(r):
		l.ignore()
		return lexAny
	case r == '(':
		l.emit(TokenLParen)
		return lexAny
	case r == ')':
		l.emit(TokenRParen)
		return lexAny
	case r == '"':
		return lexQuote
	default:
		return lexWord
	}
}

// lexQuote scans a quoted string. The opening quote is already consumed.
// A backslash stops the following character from closing the string, but
// both are kept in the token text as written.
func lexQuote(l *lexer) stateFn {
	for {
		switch l.next() {
		case eof:
			return l.errorf(LexUnterminatedString, "unterminated quoted string")
		case '\\':
			if l.next() == eof {
				return l.errorf(LexUnterminatedString, "unterminated quoted string")
			}
		case '"':
			l.emitVal(TokenString, l.input[l.start+1:l.pos-1])
			return lexAny
		}
	}
}

// lexWord scans a run of characters up to whitespace, a paren or the end of
// input. The first rune is already consumed.
func lexWord(l *lexer) stateFn {
	for {
		r := l.next()
		if r == eof || isSpace(r) || r == '(' || r == ')' {
			l.backup()
			l.emit(TokenWord)
			return lexAny
		}
	}
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// Tokenize splits text into tokens. The trailing TokenEOF is not included.
// The only failure is an unterminated quoted string, reported as a
// *LexError.
func Tokenize(text string) ([]Token, error) {
	ret, _, err := tokenize(text)
	return ret, err
}

// tokenize is Tokenize that also returns the position of the end of input.
func tokenize(text string) ([]Token, Pos, error) {
	l := newLexer(text)
	ret := []Token{}
	for {
		it := l.nextItem()
		switch it.Typ {
		case TokenEOF:
			return ret, it.Pos, nil
		case TokenError:
			return nil, Pos{}, l.err
		}
		ret = append(ret, it)
	}
}
