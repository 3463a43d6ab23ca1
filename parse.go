package tilted

// expr   = term { ('+' | '-') term }
// term   = factor { ('*' | '/') factor | implicit factor }
// factor = { '+' | '-' } pow
// pow    = atomic [ '^' factor ]
// atomic = int | flt | '(' expr ')' | func '(' expr ')'
//
// implicit is an open parenthesis or function name directly following a
// factor, which multiplies at the same precedence as '*'. A run of unary
// signs collapses to a single negation or to nothing. Exponentiation is
// right-associative and its exponent may carry its own signs, so 2^-3^2 is
// 2^(-(3^2)).

// Parser builds syntax trees from tokens. A Parser holds one token of
// lookahead. It cannot continue after an error.
type Parser struct {
	lex *Lexer
	// tok is the lookahead token.
	tok Token
	// depth is the number of open parentheses enclosing tok.
	depth int
}

// NewParser creates a parser reading tokens from lex.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse parses the entire input into a tree. The result is the first lexing
// or parsing error, if any; partial trees are never returned. Tokens left
// after a complete expression are an error: ErrMismatchRightParen for a close
// parenthesis and ErrOperatorExpected for anything else.
func (p *Parser) Parse() (*Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case TokenEOF:
		return n, nil
	case TokenRightParen:
		return nil, p.error(ErrMismatchRightParen)
	default:
		return nil, p.error(ErrOperatorExpected)
	}
}

// Parse is a shortcut to parse a string.
func Parse(src string) (*Node, error) {
	return NewParser(NewLexer(src)).Parse()
}

// next replaces the lookahead token with the next one from the lexer.
func (p *Parser) next() error {
	tok, err := p.lex.Lex()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) isop(op Operator) bool {
	return p.tok.Kind == TokenOp && p.tok.Op == op
}

func (p *Parser) parseExpr() (*Node, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch {
		case p.isop(OpPlus):
			kind = nodeAdd
		case p.isop(OpMinus):
			kind = nodeSub
		default:
			return n, nil
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		n = &Node{kind: kind, left: n, right: rhs}
	}
}

func (p *Parser) parseTerm() (*Node, error) {
	n, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch {
		case p.isop(OpStar):
			kind = nodeMul
		case p.isop(OpSlash):
			kind = nodeDiv
		case p.tok.Kind == TokenLeftParen, p.tok.Kind == TokenFunc:
			// 5(x) -> (5) * (x), 5 sin(x) -> (5) * (sin(x))
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			n = &Node{kind: nodeMul, left: n, right: rhs}
			continue
		default:
			return n, nil
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		n = &Node{kind: kind, left: n, right: rhs}
	}
}

func (p *Parser) parseFactor() (*Node, error) {
	neg := false
	for p.tok.Kind == TokenOp {
		switch p.tok.Op {
		case OpPlus: // do nothing
		case OpMinus:
			neg = !neg
		default:
			return nil, p.error(ErrInvalidUnaryOperator)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	n, err := p.parsePow()
	if err != nil {
		return nil, err
	}
	if neg {
		n = &Node{kind: nodeNeg, left: n}
	}
	return n, nil
}

func (p *Parser) parsePow() (*Node, error) {
	base, err := p.parseAtomic()
	if err != nil {
		return nil, err
	}
	if !p.isop(OpCaret) {
		return base, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	exp, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &Node{kind: nodePow, left: base, right: exp}, nil
}

func (p *Parser) parseAtomic() (*Node, error) {
	var n *Node
	switch p.tok.Kind {
	case TokenInt:
		n = &Node{kind: nodeNum, num: Uint(p.tok.Int)}
	case TokenFlt:
		n = &Node{kind: nodeNum, num: Float(p.tok.Flt)}
	case TokenLeftParen:
		return p.parseParen()
	case TokenFunc:
		fn := p.tok.Func
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.tok.Kind {
		case TokenLeftParen: // ok
		case TokenEOF:
			return nil, p.error(ErrUnexpectedEOF)
		default:
			return nil, p.error(ErrLeftParenExpected)
		}
		arg, err := p.parseParen()
		if err != nil {
			return nil, err
		}
		return &Node{kind: nodeCall, fn: fn, left: arg}, nil
	case TokenOp:
		// Signs are consumed by parseFactor, so this is some other operator.
		return nil, p.error(ErrInvalidUnaryOperator)
	case TokenEOF:
		return nil, p.error(ErrUnexpectedEOF)
	case TokenRightParen:
		if p.depth > 0 {
			// e.g. () or (1+)
			return nil, p.error(ErrNumberExpected)
		}
		return nil, p.error(ErrMismatchRightParen)
	default:
		return nil, &ParseError{Err: ErrParseInternal, Token: p.tok, Index: p.tok.Span.Start}
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return n, nil
}

// parseParen parses a parenthesized expression starting at the lookahead
// token, which must be an open parenthesis.
func (p *Parser) parseParen() (*Node, error) {
	if p.tok.Kind != TokenLeftParen {
		return nil, &ParseError{Err: ErrParseInternal, Token: p.tok, Index: p.tok.Span.Start}
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	p.depth++
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.depth--
	if p.tok.Kind != TokenRightParen {
		return nil, p.error(ErrRightParenExpected)
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return n, nil
}

// error creates an error of the given kind at the lookahead token.
func (p *Parser) error(kind error) error {
	return &ParseError{Err: kind, Token: p.tok, Index: p.tok.Span.Start}
}
