package parser

import (
	"fmt"
	"strconv"
	"unicode"
)

type Kind int

const (
	EOF Kind = iota
	Number
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case LParen:
		return "("
	case RParen:
		return ")"
	default:
		return "unknown"
	}
}

// Position is a zero-based line/column pair. Columns count runes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Kind  Kind
	Value int64 // only set for Number
	Pos   Position
}

func (t Token) String() string {
	if t.Kind == Number {
		return fmt.Sprintf("Number(%d)@%s", t.Value, t.Pos)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Pos)
}

func (t Token) describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Number:
		return fmt.Sprintf("number %d", t.Value)
	default:
		return fmt.Sprintf("'%s'", t.Kind)
	}
}

func token(kind Kind, pos Position) Token {
	return Token{
		Kind: kind,
		Pos:  pos,
	}
}

func number(n int64, pos Position) Token {
	return Token{
		Kind:  Number,
		Value: n,
		Pos:   pos,
	}
}

var punct = map[rune]Kind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'(': LParen,
	')': RParen,
}

// Tokenize splits code into tokens. The result always ends with exactly one
// EOF token. Literals that do not fit in an int64 are rejected with
// ErrNumberOutOfRange.
func Tokenize(code string) ([]Token, error) {
	runes := []rune(code)
	tokens := make([]Token, 0, len(runes)/2+1)

	pos := Position{}
	i := 0

	for i < len(runes) {
		r := runes[i]

		switch {
		case r == '\n':
			pos.Line++
			pos.Column = 0
			i++
			continue
		case r == ' ' || r == '\t' || r == '\r':
			pos.Column++
			i++
			continue
		}

		if kind, ok := punct[r]; ok {
			tokens = append(tokens, token(kind, pos))
			pos.Column++
			i++
			continue
		}

		if isDigit(r) {
			start := i
			for i < len(runes) && isDigit(runes[i]) {
				i++
			}
			lit := string(runes[start:i])
			n, err := strconv.ParseInt(lit, 10, 64)
			if err != nil {
				return nil, &LexError{
					Err:     ErrNumberOutOfRange,
					Char:    r,
					Literal: lit,
					Pos:     pos,
				}
			}
			tokens = append(tokens, number(n, pos))
			pos.Column += i - start
			continue
		}

		return nil, &LexError{
			Err:  ErrUnexpectedCharacter,
			Char: r,
			Pos:  pos,
		}
	}

	tokens = append(tokens, token(EOF, pos))

	return tokens, nil
}

// isDigit only accepts ASCII digits; unicode.IsDigit would admit other
// scripts that strconv cannot parse.
func isDigit(r rune) bool {
	return r <= unicode.MaxASCII && unicode.IsDigit(r)
}
