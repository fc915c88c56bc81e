package compiler

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/brenoafb/arithc/pkg/lower"
	"github.com/brenoafb/arithc/pkg/parser"
)

var ErrWrite = errors.New("error writing assembly")

const (
	DefaultEntry = "main"

	// registers holding the popped operands; the result is left in lhsReg
	lhsReg = "rax"
	rhsReg = "rdi"
)

// Options controls the program wrapper emitted around the expression.
type Options struct {
	// Entry is the global symbol the program starts at.
	Entry string
	// NoExecStack appends the .note.GNU-stack section marking the stack
	// non-executable.
	NoExecStack bool
}

func DefaultOptions() Options {
	return Options{
		Entry:       DefaultEntry,
		NoExecStack: true,
	}
}

type Compiler struct {
	W     io.Writer
	opts  Options
	depth int // values pushed by the code emitted so far
	err   error
}

func NewCompiler(w io.Writer, options ...Options) *Compiler {
	opts := DefaultOptions()
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.Entry == "" {
		opts.Entry = DefaultEntry
	}
	return &Compiler{W: w, opts: opts}
}

// Compile tokenizes, parses and lowers code, then writes the program.
func (c *Compiler) Compile(code string) error {
	e, err := parser.ParseString(code)
	if err != nil {
		return err
	}

	return c.CompileProgram(lower.Lower(e))
}

// CompileProgram writes a complete program evaluating e and returning its
// value from the entry symbol.
func (c *Compiler) CompileProgram(e lower.E) error {
	c.preamble()

	if err := c.compileExpr(e); err != nil {
		return err
	}

	c.pop(lhsReg)
	c.emit("  ret")

	if c.opts.NoExecStack {
		c.emit(`.section .note.GNU-stack,"",@progbits`)
	}

	if c.err == nil && c.depth != 0 {
		return fmt.Errorf("stack depth is %d after program, expected 0", c.depth)
	}

	return c.err
}

// compileExpr emits code that leaves the value of e on top of the stack.
func (c *Compiler) compileExpr(e lower.E) error {
	switch e := e.(type) {
	case lower.Number:
		c.pushImm(e.Value)
	case lower.Binary:
		op, ok := binops[e.Op]
		if !ok {
			return fmt.Errorf("unsupported operation %s", e.Op)
		}

		if err := c.compileExpr(e.LHS); err != nil {
			return err
		}
		if err := c.compileExpr(e.RHS); err != nil {
			return err
		}

		c.pop(rhsReg)
		c.pop(lhsReg)
		op(c)
		c.push(lhsReg)
	default:
		return fmt.Errorf("error compiling code: unsupported expression %T", e)
	}

	return c.err
}

// pushImm pushes a literal. push only encodes a sign-extended 32-bit
// immediate, so wider values go through rax.
func (c *Compiler) pushImm(n int64) {
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		c.emitf("  push %d", n)
		c.depth++
		return
	}
	c.emitf("  mov %s, %d", lhsReg, n)
	c.push(lhsReg)
}

func (c *Compiler) push(reg string) {
	c.emitf("  push %s", reg)
	c.depth++
}

func (c *Compiler) pop(reg string) {
	c.emitf("  pop %s", reg)
	c.depth--
}

func (c *Compiler) emitf(format string, args ...any) {
	c.emit(fmt.Sprintf(format, args...))
}

// emit writes one line. After the first write error nothing else is
// written and the error is kept for the caller.
func (c *Compiler) emit(code string) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintln(c.W, code); err != nil {
		c.err = fmt.Errorf("%w: %w", ErrWrite, err)
	}
}

func (c *Compiler) preamble() {
	c.emit(".intel_syntax noprefix")
	c.emitf(".globl %s", c.opts.Entry)
	c.emitf("%s:", c.opts.Entry)
}

// CompileSource compiles code into w with the given options.
func CompileSource(w io.Writer, code string, options ...Options) error {
	return NewCompiler(w, options...).Compile(code)
}
