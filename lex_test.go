package tilted

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func tokInt(n uint64, start, end int) Token {
	return Token{Kind: TokenInt, Span: Span{start, end}, Int: n}
}

func tokFlt(f float64, start, end int) Token {
	return Token{Kind: TokenFlt, Span: Span{start, end}, Flt: f}
}

func tokOp(op Operator, start int) Token {
	return Token{Kind: TokenOp, Span: Span{start, start + 1}, Op: op}
}

func tokFunc(fn Function, start, end int) Token {
	return Token{Kind: TokenFunc, Span: Span{start, end}, Func: fn}
}

func tokKind(kind TokenKind, start int) Token {
	return Token{Kind: kind, Span: Span{start, start + 1}}
}

func tokEOF(at int) Token {
	return Token{Kind: TokenEOF, Span: Span{at, at}}
}

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
		err    error
		pos    int
	}{
		// spaces
		{"", []Token{tokEOF(0)}, nil, 0},
		{" \t \r\n ", []Token{tokEOF(6)}, nil, 0},
		{" 1", []Token{tokInt(1, 1, 2), tokEOF(2)}, nil, 0},
		// numbers
		{"8", []Token{tokInt(8, 0, 1), tokEOF(1)}, nil, 0},
		{"9876543210", []Token{tokInt(9876543210, 0, 10), tokEOF(10)}, nil, 0},
		{"18446744073709551615", []Token{tokInt(18446744073709551615, 0, 20), tokEOF(20)}, nil, 0},
		{"9.0", []Token{tokFlt(9, 0, 3), tokEOF(3)}, nil, 0},
		{".5", []Token{tokFlt(0.5, 0, 2), tokEOF(2)}, nil, 0},
		{"5.", []Token{tokFlt(5, 0, 2), tokEOF(2)}, nil, 0},
		{"8 9.0", []Token{tokInt(8, 0, 1), tokFlt(9, 2, 5), tokEOF(5)}, nil, 0},
		// operators
		{"+ - * / ^", []Token{tokOp(OpPlus, 0), tokOp(OpMinus, 2), tokOp(OpStar, 4), tokOp(OpSlash, 6), tokOp(OpCaret, 8), tokEOF(9)}, nil, 0},
		{"--", []Token{tokOp(OpMinus, 0), tokOp(OpMinus, 1), tokEOF(2)}, nil, 0},
		// parentheses
		{"( )", []Token{tokKind(TokenLeftParen, 0), tokKind(TokenRightParen, 2), tokEOF(3)}, nil, 0},
		// functions
		{"sin cos tan", []Token{tokFunc(FuncSin, 0, 3), tokFunc(FuncCos, 4, 7), tokFunc(FuncTan, 8, 11), tokEOF(11)}, nil, 0},
		{"csc sec cot", []Token{tokFunc(FuncCsc, 0, 3), tokFunc(FuncSec, 4, 7), tokFunc(FuncCot, 8, 11), tokEOF(11)}, nil, 0},
		{"asin acos atan acsc asec acot", []Token{
			tokFunc(FuncAsin, 0, 4), tokFunc(FuncAcos, 5, 9), tokFunc(FuncAtan, 10, 14),
			tokFunc(FuncAcsc, 15, 19), tokFunc(FuncAsec, 20, 24), tokFunc(FuncAcot, 25, 29),
			tokEOF(29),
		}, nil, 0},
		// expressions
		{"8 + 9.0 * 2", []Token{tokInt(8, 0, 1), tokOp(OpPlus, 2), tokFlt(9, 4, 7), tokOp(OpStar, 8), tokInt(2, 10, 11), tokEOF(11)}, nil, 0},
		{"-(8 + 9.0) * 2", []Token{
			tokOp(OpMinus, 0), tokKind(TokenLeftParen, 1), tokInt(8, 2, 3), tokOp(OpPlus, 4),
			tokFlt(9, 6, 9), tokKind(TokenRightParen, 9), tokOp(OpStar, 11), tokInt(2, 13, 14),
			tokEOF(14),
		}, nil, 0},
		{"asin(3.14)", []Token{tokFunc(FuncAsin, 0, 4), tokKind(TokenLeftParen, 4), tokFlt(3.14, 5, 9), tokKind(TokenRightParen, 9), tokEOF(10)}, nil, 0},
		{"5sin(0)", []Token{tokInt(5, 0, 1), tokFunc(FuncSin, 1, 4), tokKind(TokenLeftParen, 4), tokInt(0, 5, 6), tokKind(TokenRightParen, 6), tokEOF(7)}, nil, 0},
		// errors
		{"9.0.0", nil, ErrUnrecognisedCharacter, 3},
		{"1 9.0.0", []Token{tokInt(1, 0, 1)}, ErrUnrecognisedCharacter, 5},
		{".", nil, ErrUnrecognisedCharacter, 0},
		{"a", nil, ErrUnrecognisedFunction, 0},
		{"Sin", nil, ErrUnrecognisedFunction, 0},
		{"sinx", nil, ErrUnrecognisedFunction, 0},
		{"2 x", []Token{tokInt(2, 0, 1)}, ErrUnrecognisedFunction, 2},
		{"$", nil, ErrUnrecognisedCharacter, 0},
		{"1 $", []Token{tokInt(1, 0, 1)}, ErrUnrecognisedCharacter, 2},
		{"é", nil, ErrUnrecognisedCharacter, 0},
		{"18446744073709551616", nil, ErrNumberRange, 0},
	}
	// Float literals out of range round like IEEE-754 instead of failing.
	huge := "1" + strings.Repeat("0", 400) + ".0"
	tiny := "0." + strings.Repeat("0", 400) + "1"
	cases = append(cases, []struct {
		src    string
		tokens []Token
		err    error
		pos    int
	}{
		{huge, []Token{tokFlt(math.Inf(1), 0, len(huge)), tokEOF(len(huge))}, nil, 0},
		{tiny, []Token{tokFlt(0, 0, len(tiny)), tokEOF(len(tiny))}, nil, 0},
	}...)
	for _, c := range cases {
		l := NewLexer(c.src)
		for _, want := range c.tokens {
			got, err := l.Lex()
			if err != nil {
				t.Errorf("scanning %q: expected token %v but got error %v", c.src, want, err)
				break
			}
			if got != want {
				t.Errorf("scanning %q: want %v %v, got %v %v", c.src, want, want.Span, got, got.Span)
			}
		}
		if c.err == nil {
			// Lexing past the end keeps giving EOF.
			want := tokEOF(len(c.src))
			for i := 0; i < 3; i++ {
				got, err := l.Lex()
				if err != nil || got != want {
					t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
				}
			}
			continue
		}
		_, err := l.Lex()
		if !errors.Is(err, c.err) {
			t.Errorf("scanning %q: want error %v, got %v", c.src, c.err, err)
			continue
		}
		var ie InputError
		if !errors.As(err, &ie) {
			t.Errorf("scanning %q: %T is not an InputError", c.src, err)
			continue
		}
		if ie.Pos() != c.pos {
			t.Errorf("scanning %q: want error at %d, got %d (%v)", c.src, c.pos, ie.Pos(), err)
		}
	}
}

func TestLexErrorFields(t *testing.T) {
	_, err := NewLexer("1 + $").Tokens()
	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("want *LexError, got %T: %v", err, err)
	}
	if le.Char != '$' || le.Index != 4 {
		t.Errorf("want '$' at 4, got %q at %d", le.Char, le.Index)
	}
	if got, want := le.Error(), "unrecognised character '$' at index 4"; got != want {
		t.Errorf("wrong message: want %q, got %q", want, got)
	}

	_, err = NewLexer("tanh(1)").Lex()
	if !errors.As(err, &le) {
		t.Fatalf("want *LexError, got %T: %v", err, err)
	}
	if le.Text != "tanh" || le.Index != 0 {
		t.Errorf("want tanh at 0, got %q at %d", le.Text, le.Index)
	}
	if got, want := le.Error(), `unrecognised function "tanh" at index 0`; got != want {
		t.Errorf("wrong message: want %q, got %q", want, got)
	}
}

func TestLexReset(t *testing.T) {
	srcs := []string{"", "1", "7 + 6 * 2 - 4 * (8 + 3)", "5sin(0.5)^2", "  acot ( .25 ) "}
	for _, src := range srcs {
		l := NewLexer(src)
		first, err := l.Tokens()
		if err != nil {
			t.Fatalf("scanning %q: %v", src, err)
		}
		l.Reset()
		second, err := l.Tokens()
		if err != nil {
			t.Fatalf("rescanning %q: %v", src, err)
		}
		if len(first) != len(second) {
			t.Fatalf("scanning %q: %d tokens before reset, %d after", src, len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("scanning %q: token %d was %v before reset, %v after", src, i, first[i], second[i])
			}
		}
	}
}

func TestLexSpanText(t *testing.T) {
	srcs := []string{"7 + 6.25 * 2", "5sin(0)", " (acsc(2)) ^ 3.", "\t.5/  12"}
	for _, src := range srcs {
		l := NewLexer(src)
		toks, err := l.Tokens()
		if err != nil {
			t.Fatalf("scanning %q: %v", src, err)
		}
		for _, tok := range toks {
			text := l.Text(tok.Span)
			if len(text) != tok.Span.Len() {
				t.Errorf("scanning %q: %v covers %q", src, tok, text)
			}
			got, err := NewLexer(text).Lex()
			if err != nil {
				t.Errorf("rescanning %q from %q: %v", text, src, err)
				continue
			}
			want := tok
			want.Span = Span{0, len(text)}
			if got != want {
				t.Errorf("rescanning %q from %q: want %v, got %v", text, src, want, got)
			}
		}
		eof, _ := l.Lex()
		if text := l.Text(eof.Span); text != "" {
			t.Errorf("scanning %q: EOF span covers %q", src, text)
		}
	}
}

func TestLexAll(t *testing.T) {
	l := NewLexer("1 + 2 * 3")
	var kinds []TokenKind
	for tok := range l.All() {
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{TokenInt, TokenOp, TokenInt, TokenOp, TokenInt}
	if len(kinds) != len(want) {
		t.Fatalf("want %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: want %v, got %v", i, want[i], kinds[i])
		}
	}

	// Stopping early leaves the rest of the input.
	l = NewLexer("1 2 3")
	for range l.All() {
		break
	}
	if tok, err := l.Lex(); err != nil || tok != tokInt(2, 2, 3) {
		t.Errorf("after break: got %v, %v", tok, err)
	}

	// Errors end iteration.
	n := 0
	for range NewLexer("1 $ 2").All() {
		n++
	}
	if n != 1 {
		t.Errorf("want 1 token before error, got %d", n)
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{tokEOF(3), "EOF at index 3"},
		{tokInt(8, 0, 1), "Int(8) at index 0"},
		{tokFlt(2.5, 4, 7), "Flt(2.5) at index 4"},
		{tokOp(OpCaret, 2), "Op(Caret) at index 2"},
		{tokFunc(FuncAcsc, 1, 5), "Func(Acsc) at index 1"},
		{tokKind(TokenLeftParen, 0), "LeftParen at index 0"},
		{tokKind(TokenRightParen, 9), "RightParen at index 9"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}

func TestOperatorGlyphs(t *testing.T) {
	for i := range Operators {
		op := Operator(i)
		if g := op.Glyph(); g != Operators[i] {
			t.Errorf("%v has glyph %c, want %c", op, g, Operators[i])
		}
		tok, err := NewLexer(string(op.Glyph())).Lex()
		if err != nil || tok.Kind != TokenOp || tok.Op != op {
			t.Errorf("lexing %c: got %v, %v", op.Glyph(), tok, err)
		}
	}
}
