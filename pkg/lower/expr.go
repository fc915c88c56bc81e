package lower

import (
	"fmt"

	"github.com/brenoafb/arithc/pkg/expr"
)

// E is a lowered expression. Only Number and Binary implement it, so a
// lowered tree cannot contain unary operators.
type E interface {
	String() string
	isLowered()
}

type Number struct {
	Value int64
}

type Binary struct {
	Op  expr.BinOp
	LHS E
	RHS E
}

func (Number) isLowered() {}
func (Binary) isLowered() {}

func N(n int64) E {
	return Number{Value: n}
}

func Bin(op expr.BinOp, lhs, rhs E) E {
	return Binary{
		Op:  op,
		LHS: lhs,
		RHS: rhs,
	}
}

func (n Number) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func (b Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Op, b.LHS, b.RHS)
}
