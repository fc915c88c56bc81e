package expr

import (
	"fmt"
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "unknown_binop"
	}
}

func (op UnOp) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	default:
		return "unknown_unop"
	}
}

func (n Number) String() string {
	return fmt.Sprintf("%d", n.Value)
}

// Binary and unary nodes print as prefix lists, e.g. (- (- 1 2) 3).
func (b Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Op, str(b.LHS), str(b.RHS))
}

func (u Unary) String() string {
	return fmt.Sprintf("(%s %s)", u.Op, str(u.Operand))
}

func str(e E) string {
	if e == nil {
		return "()"
	}
	return e.String()
}
