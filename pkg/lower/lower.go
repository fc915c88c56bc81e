package lower

import (
	"fmt"

	"github.com/brenoafb/arithc/pkg/expr"
)

// Lower rewrites e without unary operators: +x becomes x and -x becomes 0-x.
func Lower(e expr.E) E {
	switch e := e.(type) {
	case expr.Number:
		return N(e.Value)
	case expr.Binary:
		return Bin(e.Op, Lower(e.LHS), Lower(e.RHS))
	case expr.Unary:
		switch e.Op {
		case expr.Plus:
			return Lower(e.Operand)
		case expr.Minus:
			return Bin(expr.Sub, N(0), Lower(e.Operand))
		}
		panic(fmt.Sprintf("lower: unknown unary operator %d", e.Op))
	default:
		panic(fmt.Sprintf("lower: unknown expression %T", e))
	}
}

// Raise converts a lowered tree back into an ordinary expression tree.
func Raise(e E) expr.E {
	switch e := e.(type) {
	case Number:
		return expr.N(e.Value)
	case Binary:
		return expr.Bin(e.Op, Raise(e.LHS), Raise(e.RHS))
	default:
		panic(fmt.Sprintf("raise: unknown expression %T", e))
	}
}
