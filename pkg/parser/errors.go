package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrNumberOutOfRange    = errors.New("integer literal out of range")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrUnexpectedEOF       = errors.New("unexpected end of input")
	ErrUnmatchedDelimiter  = errors.New("unmatched delimiter")
)

// LexError is returned by Tokenize for input it cannot turn into tokens.
type LexError struct {
	Err     error
	Char    rune
	Literal string // digit run, set for ErrNumberOutOfRange
	Pos     Position
}

func (e *LexError) Error() string {
	if errors.Is(e.Err, ErrNumberOutOfRange) {
		return fmt.Sprintf("%s: %s at %s", e.Err, e.Literal, e.Pos)
	}
	return fmt.Sprintf("%s %q at %s", e.Err, e.Char, e.Pos)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Position() (Position, bool) {
	return e.Pos, true
}

// ParseError is returned by Parse. Found is the offending token; it is the
// zero Token when the stream ran out, in which case HasPos is false.
type ParseError struct {
	Err      error
	Expected Kind
	Found    Token
	HasPos   bool
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnmatchedDelimiter):
		return fmt.Sprintf("expected '%s', found %s", e.Expected, e.Found.describe())
	case !e.HasPos:
		return e.Err.Error()
	case e.Found.Kind == EOF:
		return fmt.Sprintf("%s at %s", e.Err, e.Found.Pos)
	default:
		return fmt.Sprintf("%s %s at %s", e.Err, e.Found.describe(), e.Found.Pos)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Position() (Position, bool) {
	return e.Found.Pos, e.HasPos
}
