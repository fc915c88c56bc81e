package compiler

import (
	"github.com/brenoafb/arithc/pkg/expr"
)

// binop emits the instructions combining lhsReg and rhsReg into lhsReg.
type binop func(c *Compiler)

var binops map[expr.BinOp]binop

func init() {
	binops = map[expr.BinOp]binop{
		expr.Add: func(c *Compiler) {
			c.emitf("  add %s, %s", lhsReg, rhsReg)
		},
		expr.Sub: func(c *Compiler) {
			c.emitf("  sub %s, %s", lhsReg, rhsReg)
		},
		expr.Mul: func(c *Compiler) {
			c.emitf("  imul %s, %s", lhsReg, rhsReg)
		},
		expr.Div: func(c *Compiler) {
			// sign-extend rax into rdx:rax, quotient lands in rax
			c.emit("  cqo")
			c.emitf("  idiv %s", rhsReg)
		},
	}
}
