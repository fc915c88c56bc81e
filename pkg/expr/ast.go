package expr

// E is a node of the expression tree produced by the parser.
// The set of implementations is closed: Number, Binary and Unary.
type E interface {
	String() string
	isExpr()
}

type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
)

type UnOp int

const (
	Plus UnOp = iota
	Minus
)

type Number struct {
	Value int64
}

type Binary struct {
	Op  BinOp
	LHS E
	RHS E
}

type Unary struct {
	Op      UnOp
	Operand E
}

func (Number) isExpr() {}
func (Binary) isExpr() {}
func (Unary) isExpr() {}

func N(n int64) E {
	return Number{Value: n}
}

func Bin(op BinOp, lhs, rhs E) E {
	return Binary{
		Op:  op,
		LHS: lhs,
		RHS: rhs,
	}
}

func Un(op UnOp, operand E) E {
	return Unary{
		Op:      op,
		Operand: operand,
	}
}

func Neg(operand E) E {
	return Un(Minus, operand)
}

func Pos(operand E) E {
	return Un(Plus, operand)
}
