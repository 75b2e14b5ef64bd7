package lisp

// parser builds a tree from a token slice by recursive descent.
type parser struct {
	tokens   []Token
	pos      int
	maxDepth int
	end      Pos
}

func newParser(text string, maxDepth int) (*parser, error) {
	tokens, end, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	return &parser{
		tokens:   tokens,
		maxDepth: maxDepth,
		end:      end,
	}, nil
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the next token without consuming it, TokenEOF at the end.
func (p *parser) peek() Token {
	if p.done() {
		return Token{Typ: TokenEOF, Pos: p.end}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	t := p.peek()
	if !p.done() {
		p.pos++
	}
	return t
}

// expr parses one expression. depth is the number of enclosing lists.
func (p *parser) expr(depth int) (*Node, error) {
	t := p.next()
	switch t.Typ {
	case TokenLParen:
		return p.list(t, depth+1)
	case TokenRParen:
		return nil, &ParseError{
			Kind: ParseUnbalanced,
			Pos:  t.Pos,
			Msg:  `")" without matching "("`,
		}
	case TokenString, TokenWord:
		return newAtom(t), nil
	default:
		return nil, &ParseError{
			Kind:       ParseEmpty,
			Pos:        t.Pos,
			Msg:        "expected an expression, found end of input",
			Incomplete: depth > 0,
		}
	}
}

// list parses the children of a list whose "(" is open.
func (p *parser) list(open Token, depth int) (*Node, error) {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return nil, &ParseError{
			Kind: ParseTooDeep,
			Pos:  open.Pos,
			Msg:  "lists nested too deeply",
		}
	}
	n := &Node{
		Typ:      NodeList,
		Children: []*Node{},
		Pos:      open.Pos,
	}
	for {
		switch p.peek().Typ {
		case TokenRParen:
			p.next()
			return n, nil
		case TokenEOF:
			return nil, &ParseError{
				Kind:       ParseUnbalanced,
				Pos:        open.Pos,
				Msg:        `"(" is never closed`,
				Incomplete: true,
			}
		}
		child, err := p.expr(depth)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
}

// trailing reports the token after a complete program.
func (p *parser) trailing() error {
	t := p.peek()
	if t.Typ == TokenRParen {
		return &ParseError{
			Kind: ParseUnbalanced,
			Pos:  t.Pos,
			Msg:  `")" without matching "("`,
		}
	}
	return &ParseError{
		Kind: ParseTrailing,
		Pos:  t.Pos,
		Msg:  "unexpected " + t.String() + " after end of expression",
	}
}

func (c *Context) parse(text string) (*Node, error) {
	p, err := newParser(text, c.maxDepth)
	if err != nil {
		return nil, err
	}
	if p.done() {
		return nil, &ParseError{
			Kind: ParseEmpty,
			Pos:  p.end,
			Msg:  "no expression found",
		}
	}
	n, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.trailing()
	}
	return n, nil
}

func (c *Context) parseAll(text string) ([]*Node, error) {
	p, err := newParser(text, c.maxDepth)
	if err != nil {
		return nil, err
	}
	ret := []*Node{}
	for !p.done() {
		n, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		ret = append(ret, n)
	}
	return ret, nil
}
