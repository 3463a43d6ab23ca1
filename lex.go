package tilted

import (
	"errors"
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer scans tokens from source text. The zero Lexer scans the empty string.
// A Lexer never looks back; its only state is its position in the source.
type Lexer struct {
	src string
	cur int
}

// NewLexer creates a lexer over src. The source is not validated until it is
// scanned.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Reset rewinds the lexer to the start of its source.
func (l *Lexer) Reset() {
	l.cur = 0
}

// Text returns the source text covered by a span. Spans past the end of the
// source, like those of EOF tokens, give the empty string.
func (l *Lexer) Text(s Span) string {
	start, end := s.Start, s.End
	if end > len(l.src) {
		end = len(l.src)
	}
	if start < 0 || start >= end {
		return ""
	}
	return l.src[start:end]
}

// Lex scans the next token. At the end of the input, the result is an EOF
// token, and every subsequent call returns the same EOF token. On an error,
// the lexer does not advance past the offending text.
func (l *Lexer) Lex() (Token, error) {
	for l.cur < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.cur:])
		if !unicode.IsSpace(r) {
			break
		}
		l.cur += sz
	}
	if l.cur >= len(l.src) {
		return Token{Kind: TokenEOF, Span: Span{Start: l.cur, End: l.cur}}, nil
	}
	c := l.src[l.cur]
	switch {
	case c == '.', isdigit(c):
		return l.scanNum()
	case strings.IndexByte(Operators, c) >= 0:
		return l.scanOp()
	case c == '(':
		l.cur++
		return Token{Kind: TokenLeftParen, Span: Span{Start: l.cur - 1, End: l.cur}}, nil
	case c == ')':
		l.cur++
		return Token{Kind: TokenRightParen, Span: Span{Start: l.cur - 1, End: l.cur}}, nil
	case isalpha(c):
		return l.scanFunc()
	default:
		r, _ := utf8.DecodeRuneInString(l.src[l.cur:])
		return Token{}, &LexError{Err: ErrUnrecognisedCharacter, Char: r, Text: string(r), Index: l.cur}
	}
}

// All returns an iterator over the remaining tokens. Iteration stops before
// the first EOF token or at the first error; use Lex to observe the error.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, err := l.Lex()
			if err != nil || tok.Kind == TokenEOF {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokens scans all remaining tokens, not including the final EOF. If an error
// occurs, the result contains the tokens scanned before it.
func (l *Lexer) Tokens() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.Lex()
		if err != nil {
			return toks, err
		}
		if tok.Kind == TokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) scanNum() (Token, error) {
	start := l.cur
	dot := false
	for l.cur < len(l.src) {
		c := l.src[l.cur]
		if c == '.' {
			if dot {
				return Token{}, &LexError{Err: ErrUnrecognisedCharacter, Char: '.', Text: l.src[start : l.cur+1], Index: l.cur}
			}
			dot = true
		} else if !isdigit(c) {
			break
		}
		l.cur++
	}
	text := l.src[start:l.cur]
	span := Span{Start: start, End: l.cur}
	if text == "." {
		// A lone decimal point is not a number.
		l.cur = start
		return Token{}, &LexError{Err: ErrUnrecognisedCharacter, Char: '.', Text: text, Index: start}
	}
	if dot {
		// Out of range floats become infinities or zeros as in IEEE-754.
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			l.cur = start
			return Token{}, l.numerr(err, text, start)
		}
		return Token{Kind: TokenFlt, Span: span, Flt: f}, nil
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		l.cur = start
		return Token{}, l.numerr(err, text, start)
	}
	return Token{Kind: TokenInt, Span: span, Int: n}, nil
}

// numerr converts an error from parsing a number literal. Only integer range
// errors are possible given the characters the lexer accepts.
func (l *Lexer) numerr(err error, text string, start int) error {
	if errors.Is(err, strconv.ErrRange) {
		return &LexError{Err: ErrNumberRange, Text: text, Index: start}
	}
	return &LexError{Err: ErrLexInternal, Text: "parse number " + strconv.Quote(text) + ": " + err.Error(), Index: start}
}

func (l *Lexer) scanOp() (Token, error) {
	k := strings.IndexByte(Operators, l.src[l.cur])
	if k < 0 {
		return Token{}, &LexError{Err: ErrLexInternal, Text: "operator scan on " + strconv.QuoteRuneToASCII(rune(l.src[l.cur])), Index: l.cur}
	}
	l.cur++
	return Token{Kind: TokenOp, Span: Span{Start: l.cur - 1, End: l.cur}, Op: Operator(k)}, nil
}

func (l *Lexer) scanFunc() (Token, error) {
	start := l.cur
	end := start
	for end < len(l.src) && isalpha(l.src[end]) {
		end++
	}
	name := l.src[start:end]
	fn, ok := LookupFunc(name)
	if !ok {
		return Token{}, &LexError{Err: ErrUnrecognisedFunction, Text: name, Index: start}
	}
	l.cur = end
	return Token{Kind: TokenFunc, Span: Span{Start: start, End: end}, Func: fn}, nil
}

func isdigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isalpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

var (
	// ErrUnrecognisedCharacter is the error kind for a character that cannot
	// begin or continue a token.
	ErrUnrecognisedCharacter = errors.New("unrecognised character")
	// ErrUnrecognisedFunction is the error kind for a name that is not a
	// built-in function.
	ErrUnrecognisedFunction = errors.New("unrecognised function")
	// ErrNumberRange is the error kind for an integer literal above 2^64-1.
	// Float literals never produce it; they round to infinity or zero.
	ErrNumberRange = errors.New("number literal out of range")
	// ErrLexInternal is the error kind for violated lexer invariants. It
	// indicates a bug, not invalid input.
	ErrLexInternal = errors.New("internal lexer error")
)

// LexError indicates invalid input text. It implements InputError.
type LexError struct {
	// Err is the kind of error.
	Err error
	// Char is the unrecognised character, if Err is ErrUnrecognisedCharacter.
	Char rune
	// Text is the text the lexer was scanning, or a description of the
	// violated invariant for ErrLexInternal.
	Text string
	// Index is the byte offset of the error in the source.
	Index int
}

func (err *LexError) Error() string {
	switch {
	case errors.Is(err.Err, ErrUnrecognisedCharacter):
		return atindex(err.Err.Error()+" "+strconv.QuoteRune(err.Char), err.Index)
	case errors.Is(err.Err, ErrLexInternal):
		return atindex(err.Err.Error()+": "+err.Text, err.Index)
	default:
		return atindex(err.Err.Error()+" "+strconv.Quote(err.Text), err.Index)
	}
}

func (err *LexError) Unwrap() error {
	return err.Err
}

func (err *LexError) Pos() int {
	return err.Index
}
