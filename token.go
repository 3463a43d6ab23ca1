package tilted

import "strconv"

// Span is the location of a token in its source, as the half-open range of
// byte offsets [Start, End). The span of an EOF token is empty, with both
// offsets at the end of the source, so slicing the source with it gives the
// empty string.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Token is a lexical token. Only the payload field corresponding to Kind is
// meaningful; the others are zero. Tokens are comparable.
type Token struct {
	Kind TokenKind
	Span Span

	// Int is the value of an integer literal.
	Int uint64
	// Flt is the value of a float literal.
	Flt float64
	// Op is the operator of an operator token.
	Op Operator
	// Func is the function of a function name token.
	Func Function
}

// describe formats the kind and payload of the token.
func (t Token) describe() string {
	switch t.Kind {
	case TokenInt:
		return "Int(" + strconv.FormatUint(t.Int, 10) + ")"
	case TokenFlt:
		return "Flt(" + strconv.FormatFloat(t.Flt, 'g', -1, 64) + ")"
	case TokenOp:
		return "Op(" + t.Op.String() + ")"
	case TokenFunc:
		return "Func(" + t.Func.String() + ")"
	default:
		return t.Kind.String()
	}
}

func (t Token) String() string {
	return atindex(t.describe(), t.Span.Start)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	// TokenEOF indicates the end of the input. It is the zero TokenKind.
	TokenEOF TokenKind = iota
	// TokenInt is an integer literal, i.e. digits without a decimal point.
	TokenInt
	// TokenFlt is a float literal, i.e. digits with one decimal point.
	TokenFlt
	// TokenOp is an operator.
	TokenOp
	// TokenFunc is a function name.
	TokenFunc
	// TokenLeftParen is (.
	TokenLeftParen
	// TokenRightParen is ).
	TokenRightParen
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.1.0 -type=TokenKind -trimprefix=Token

// Operator is an arithmetic operator.
type Operator int8

const (
	OpPlus Operator = iota
	OpMinus
	OpStar
	OpSlash
	OpCaret
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.1.0 -type=Operator -trimprefix=Op

// Operators contains the characters which are lexed as operators. The byte
// position of each is its Operator value.
const Operators = "+-*/^"

// Glyph returns the character for the operator.
func (op Operator) Glyph() byte {
	if op < 0 || int(op) >= len(Operators) {
		panic("tilted: invalid operator " + op.String())
	}
	return Operators[op]
}
