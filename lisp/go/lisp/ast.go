package lisp

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeType is the variant of a Node.
type NodeType int

const (
	NodeAtom NodeType = iota
	NodeList
)

func (t NodeType) String() string {
	switch t {
	case NodeAtom:
		return "Atom"
	case NodeList:
		return "List"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// AtomKind is the decoded type of an atom, fixed at parse time.
type AtomKind int

const (
	KindNumber AtomKind = iota
	KindString
	KindSymbol
)

func (k AtomKind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	}
	return fmt.Sprintf("AtomKind(%d)", int(k))
}

// Node is a node in the parse tree: either an atom or a list.
type Node struct {
	Typ NodeType

	// Atom fields.
	Kind AtomKind
	Raw  string // token text, without quotes for strings
	Num  int64  // value of a KindNumber atom
	Str  string // value of a KindString or KindSymbol atom

	// List fields. Never nil for a list node.
	Children []*Node

	// Pos is where the node's first token starts.
	Pos Pos
}

// newAtom decodes a TokenString or TokenWord into an atom.
func newAtom(t Token) *Node {
	n := &Node{
		Typ: NodeAtom,
		Raw: t.Val,
		Pos: t.Pos,
	}
	if t.Typ == TokenString {
		n.Kind = KindString
		n.Str = t.Val
		return n
	}
	if num, err := strconv.ParseInt(t.Val, 10, 64); err == nil {
		n.Kind = KindNumber
		n.Num = num
		return n
	}
	n.Kind = KindSymbol
	n.Str = t.Val
	return n
}

// IsSymbol returns true if n is a symbol atom.
func (n *Node) IsSymbol() bool {
	return n.Typ == NodeAtom && n.Kind == KindSymbol
}

// Value returns the decoded value of an atom, an int64 or a string, and nil
// for lists.
func (n *Node) Value() interface{} {
	if n.Typ != NodeAtom {
		return nil
	}
	if n.Kind == KindNumber {
		return n.Num
	}
	return n.Str
}

// String returns source text that parses back into an equivalent tree.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.Typ == NodeList {
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(' ')
			}
			c.write(b)
		}
		b.WriteByte(')')
		return
	}
	if n.Kind == KindString {
		b.WriteString(quote(n.Str))
		return
	}
	b.WriteString(n.Raw)
}

// quote wraps s in double quotes. String text is kept as written by the
// lexer, so nothing inside needs escaping.
func quote(s string) string {
	return `"` + s + `"`
}
