// Package eval computes the value a compiled program returns, using the same
// 64-bit two's-complement arithmetic as the generated code.
package eval

import (
	"errors"
	"fmt"
	"math"

	"github.com/brenoafb/arithc/pkg/expr"
	"github.com/brenoafb/arithc/pkg/lower"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned for MinInt64 / -1, which faults in idiv.
	ErrOverflow = errors.New("division overflow")
)

// Eval returns the value of e. Addition, subtraction and multiplication wrap
// on overflow; division truncates toward zero.
func Eval(e lower.E) (int64, error) {
	switch e := e.(type) {
	case lower.Number:
		return e.Value, nil
	case lower.Binary:
		lhs, err := Eval(e.LHS)
		if err != nil {
			return 0, err
		}
		rhs, err := Eval(e.RHS)
		if err != nil {
			return 0, err
		}
		return apply(e.Op, lhs, rhs)
	default:
		return 0, fmt.Errorf("eval: unsupported expression %T", e)
	}
}

func apply(op expr.BinOp, lhs, rhs int64) (int64, error) {
	switch op {
	case expr.Add:
		return lhs + rhs, nil
	case expr.Sub:
		return lhs - rhs, nil
	case expr.Mul:
		return lhs * rhs, nil
	case expr.Div:
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return 0, ErrOverflow
		}
		return lhs / rhs, nil
	default:
		return 0, fmt.Errorf("eval: unsupported operation %s", op)
	}
}
