package tilted

import (
	"errors"
	"strconv"
)

var (
	// ErrUnexpectedEOF is the error kind for input that ends where an operand
	// is required.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrNumberExpected is the error kind for a close parenthesis where an
	// operand is required inside parentheses, as in "()" or "(1+)". That
	// parenthesis has a match, so it is not reported as ErrMismatchRightParen.
	ErrNumberExpected = errors.New("expected a number")
	// ErrOperatorExpected is the error kind for an operand following a
	// complete expression without an operator between them, as in "1 2".
	ErrOperatorExpected = errors.New("expected an operator")
	// ErrRightParenExpected is the error kind for an open parenthesis that is
	// never closed.
	ErrRightParenExpected = errors.New("expected a right parenthesis")
	// ErrLeftParenExpected is the error kind for a function name not followed
	// by a parenthesized argument.
	ErrLeftParenExpected = errors.New("expected a left parenthesis")
	// ErrInvalidUnaryOperator is the error kind for an operator other than +
	// or - where an operand is required.
	ErrInvalidUnaryOperator = errors.New("invalid unary operator")
	// ErrMismatchRightParen is the error kind for a close parenthesis with no
	// matching open parenthesis.
	ErrMismatchRightParen = errors.New("right parenthesis without a matching left one")
	// ErrParseInternal is the error kind for violated parser invariants. It
	// indicates a bug, not invalid input.
	ErrParseInternal = errors.New("internal parser error")
)

// ParseError is an error indicating invalid syntax. It implements InputError.
type ParseError struct {
	// Err is the kind of error.
	Err error
	// Token is the token at which the error was detected.
	Token Token
	// Index is the byte offset of Token in the source.
	Index int
}

func (err *ParseError) Error() string {
	switch {
	case errors.Is(err.Err, ErrUnexpectedEOF), errors.Is(err.Err, ErrMismatchRightParen):
		return atindex(err.Err.Error(), err.Index)
	default:
		return err.Err.Error() + ", found " + err.Token.String()
	}
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

func (err *ParseError) Pos() int {
	return err.Index
}

// atindex is a shortcut to create a message with a position.
func atindex(msg string, index int) string {
	return msg + " at index " + strconv.Itoa(index)
}

// InputError is an error with position information. Every error resulting
// from invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset in the source of the text that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
