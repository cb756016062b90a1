package xpath

// Expr is a node in a parsed selector expression tree.
type Expr interface {
	isExpr()
}

// Literal is a plain value to be matched.
type Literal struct {
	Value string
}

// Not negates its operand.
type Not struct {
	X Expr
}

// And requires both operands to match.
type And struct {
	L, R Expr
}

// Or requires either operand to match.
type Or struct {
	L, R Expr
}

func (*Literal) isExpr() {}
func (*Not) isExpr()     {}
func (*And) isExpr()     {}
func (*Or) isExpr()      {}

// Parse parses a boolean selector expression into a tree. The grammar:
// "&" and "|" share one precedence tier and associate left, "!" binds
// tighter than both, parentheses group. A bare literal is a valid
// expression.
func Parse(expr string) (Expr, error) {
	tokens, err := lex(expr)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &ParseError{Expr: expr, Msg: "empty expression"}
	}

	p := &parser{expr: expr, tokens: tokens}
	e, err := p.parseBinary()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, &ParseError{Expr: expr, Msg: "unexpected trailing token"}
	}
	return e, nil
}

type parser struct {
	expr   string
	tokens []token
	pos    int
}

func (p *parser) parseBinary() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.pos < len(p.tokens) {
		op := p.tokens[p.pos].kind
		if op != tokAnd && op != tokOr {
			break
		}
		p.pos++

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == tokAnd {
			left = &And{L: left, R: right}
		} else {
			left = &Or{L: left, R: right}
		}
	}

	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.pos >= len(p.tokens) {
		return nil, &ParseError{Expr: p.expr, Msg: "dangling operator"}
	}

	tok := p.tokens[p.pos]
	switch tok.kind {
	case tokNot:
		p.pos++
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Not{X: x}, nil

	case tokLParen:
		p.pos++
		e, err := p.parseBinary()
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.tokens) || p.tokens[p.pos].kind != tokRParen {
			return nil, &ParseError{Expr: p.expr, Msg: "unbalanced parentheses"}
		}
		p.pos++
		return e, nil

	case tokAtom:
		p.pos++
		return &Literal{Value: tok.text}, nil

	default:
		return nil, &ParseError{Expr: p.expr, Msg: "unexpected operator"}
	}
}
