package parser

import (
	"fmt"
	"slices"

	"github.com/brenoafb/arithc/pkg/expr"
)

var binops = map[Kind]expr.BinOp{
	Plus:  expr.Add,
	Minus: expr.Sub,
	Star:  expr.Mul,
	Slash: expr.Div,
}

var unops = map[Kind]expr.UnOp{
	Plus:  expr.Plus,
	Minus: expr.Minus,
}

// Parse reads exactly one expression followed by EOF.
//
//	expr    := mul (('+' | '-') mul)*
//	mul     := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | primary
//	primary := Number | '(' expr ')'
func Parse(tokens *Tokens) (expr.E, error) {
	e, err := parseExpr(tokens)
	if err != nil {
		return nil, err
	}

	if _, err := tokens.Expect(EOF); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseString tokenizes and parses code.
func ParseString(code string) (expr.E, error) {
	tokens, err := Tokenize(code)
	if err != nil {
		return nil, fmt.Errorf("tokenizer error: %w", err)
	}

	e, err := Parse(NewTokens(tokens))
	if err != nil {
		return nil, fmt.Errorf("parser error: %w", err)
	}

	return e, nil
}

func parseExpr(tokens *Tokens) (expr.E, error) {
	return parseLeftAssoc(tokens, parseMul, Plus, Minus)
}

func parseMul(tokens *Tokens) (expr.E, error) {
	return parseLeftAssoc(tokens, parseUnary, Star, Slash)
}

// parseLeftAssoc folds operand (op operand)* to the left, so that 1-2-3
// becomes (1-2)-3.
func parseLeftAssoc(
	tokens *Tokens,
	operand func(*Tokens) (expr.E, error),
	ops ...Kind,
) (expr.E, error) {
	lhs, err := operand(tokens)
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := tokens.Peek()
		if !ok || !slices.Contains(ops, tok.Kind) {
			return lhs, nil
		}
		tokens.Next()

		rhs, err := operand(tokens)
		if err != nil {
			return nil, err
		}

		lhs = expr.Bin(binops[tok.Kind], lhs, rhs)
	}
}

func parseUnary(tokens *Tokens) (expr.E, error) {
	tok, ok := tokens.Peek()
	if ok {
		if op, isUnary := unops[tok.Kind]; isUnary {
			tokens.Next()
			operand, err := parseUnary(tokens)
			if err != nil {
				return nil, err
			}
			return expr.Un(op, operand), nil
		}
	}

	return parsePrimary(tokens)
}

func parsePrimary(tokens *Tokens) (expr.E, error) {
	tok, ok := tokens.Next()
	if !ok {
		return nil, &ParseError{Err: ErrUnexpectedEOF, Expected: Number}
	}

	switch tok.Kind {
	case Number:
		return expr.N(tok.Value), nil
	case LParen:
		e, err := parseExpr(tokens)
		if err != nil {
			return nil, err
		}
		if _, err := tokens.Expect(RParen); err != nil {
			return nil, err
		}
		return e, nil
	case EOF:
		return nil, &ParseError{
			Err:      ErrUnexpectedEOF,
			Expected: Number,
			Found:    tok,
			HasPos:   true,
		}
	default:
		return nil, &ParseError{
			Err:      ErrUnexpectedToken,
			Expected: Number,
			Found:    tok,
			HasPos:   true,
		}
	}
}
