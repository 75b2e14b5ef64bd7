package lisp

import "errors"

var errNilNode = errors.New("cannot evaluate a nil node")

// Context holds the options used to parse and evaluate programs. It is never
// modified after NewContext returns and may be shared between goroutines.
type Context struct {
	maxDepth int
}

// Option configures a Context.
type Option func(*Context)

// WithMaxDepth limits how deeply lists may be nested. n <= 0 means no limit,
// which is the default.
func WithMaxDepth(n int) Option {
	return func(c *Context) {
		c.maxDepth = n
	}
}

// NewContext returns a Context with the given options applied.
func NewContext(opts ...Option) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultContext = NewContext()

// Parse parses text, which must hold exactly one expression. Errors are
// *LexError or *ParseError.
func (c *Context) Parse(text string) (*Node, error) {
	return c.parse(text)
}

// ParseAll parses text holding zero or more expressions, e.g. a source file.
func (c *Context) ParseAll(text string) ([]*Node, error) {
	return c.parseAll(text)
}

// Execute parses text and evaluates the expression.
func (c *Context) Execute(text string) (Value, error) {
	n, err := c.parse(text)
	if err != nil {
		return Value{}, err
	}
	return Evaluate(n)
}

// ExecuteAll evaluates every expression in text in order. It stops at the
// first error.
func (c *Context) ExecuteAll(text string) ([]Value, error) {
	nodes, err := c.parseAll(text)
	if err != nil {
		return nil, err
	}
	ret := make([]Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := Evaluate(n)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// Parse parses text with the default Context.
func Parse(text string) (*Node, error) {
	return defaultContext.Parse(text)
}

// ParseAll parses text with the default Context.
func ParseAll(text string) ([]*Node, error) {
	return defaultContext.ParseAll(text)
}

// Execute parses and evaluates text with the default Context.
func Execute(text string) (Value, error) {
	return defaultContext.Execute(text)
}

// ExecuteAll evaluates every expression in text with the default Context.
func ExecuteAll(text string) ([]Value, error) {
	return defaultContext.ExecuteAll(text)
}

// Evaluate computes the value of n. Errors are *TypeError.
func Evaluate(n *Node) (Value, error) {
	if n == nil {
		return Value{}, errNilNode
	}
	if n.Typ == NodeAtom {
		if n.Kind == KindNumber {
			return Number(n.Num), nil
		}
		return String(n.Str), nil
	}
	if len(n.Children) == 0 {
		return Sequence(), nil
	}
	head := n.Children[0]
	if head.IsSymbol() {
		if b, ok := LookupBuiltin(head.Str); ok {
			// Every argument is evaluated, even the ones print discards.
			args, err := evaluateAll(n.Children[1:])
			if err != nil {
				return Value{}, err
			}
			return b.call(n.Pos, args)
		}
	}
	vs, err := evaluateAll(n.Children)
	if err != nil {
		return Value{}, err
	}
	return Sequence(vs...), nil
}

func evaluateAll(nodes []*Node) ([]Value, error) {
	ret := make([]Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := Evaluate(n)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}
