package compiler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brenoafb/arithc/pkg/expr"
	"github.com/brenoafb/arithc/pkg/lower"
	"github.com/brenoafb/arithc/pkg/parser"
)

func TestCompileExpr(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{
			code:     "42",
			expected: "  push 42\n",
		},
		{
			code: "1+2",
			expected: `  push 1
  push 2
  pop rdi
  pop rax
  add rax, rdi
  push rax
`,
		},
		{
			code: "1-2-3",
			expected: `  push 1
  push 2
  pop rdi
  pop rax
  sub rax, rdi
  push rax
  push 3
  pop rdi
  pop rax
  sub rax, rdi
  push rax
`,
		},
		{
			code: "6*7",
			expected: `  push 6
  push 7
  pop rdi
  pop rax
  imul rax, rdi
  push rax
`,
		},
		{
			code: "7/2",
			expected: `  push 7
  push 2
  pop rdi
  pop rax
  cqo
  idiv rdi
  push rax
`,
		},
		{
			code: "-5",
			expected: `  push 0
  push 5
  pop rdi
  pop rax
  sub rax, rdi
  push rax
`,
		},
		{
			code:     "+5",
			expected: "  push 5\n",
		},
		{
			code: "4294967296",
			expected: `  mov rax, 4294967296
  push rax
`,
		},
		{
			code:     "2147483647",
			expected: "  push 2147483647\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := &bytes.Buffer{}
			c := NewCompiler(w)

			e, err := parser.ParseString(tt.code)
			require.NoError(t, err)

			err = c.compileExpr(lower.Lower(e))
			require.NoError(t, err)
			require.Equal(t, tt.expected, w.String())
			require.Equal(t, 1, c.depth)
		})
	}
}

func TestCompile(t *testing.T) {
	w := &bytes.Buffer{}
	err := CompileSource(w, "1+2")
	require.NoError(t, err)

	expected := `.intel_syntax noprefix
.globl main
main:
  push 1
  push 2
  pop rdi
  pop rax
  add rax, rdi
  push rax
  pop rax
  ret
.section .note.GNU-stack,"",@progbits
`
	require.Equal(t, expected, w.String())
}

func TestCompileOptions(t *testing.T) {
	w := &bytes.Buffer{}
	err := CompileSource(w, "3", Options{Entry: "_start_expr", NoExecStack: false})
	require.NoError(t, err)

	expected := `.intel_syntax noprefix
.globl _start_expr
_start_expr:
  push 3
  pop rax
  ret
`
	require.Equal(t, expected, w.String())
}

func TestCompileBalancesStack(t *testing.T) {
	for _, code := range []string{"1", "-(-5)", "(1+2)*(3-4)/-(5+6)", "1-2-3-4-5-6"} {
		t.Run(code, func(t *testing.T) {
			w := &bytes.Buffer{}
			err := CompileSource(w, code)
			require.NoError(t, err)

			pushes := strings.Count(w.String(), "  push ")
			pops := strings.Count(w.String(), "  pop ")
			require.Equal(t, pushes, pops)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	w := &bytes.Buffer{}

	err := CompileSource(w, "1 & 2")
	require.ErrorIs(t, err, parser.ErrUnexpectedCharacter)

	err = CompileSource(w, "(1+2")
	require.ErrorIs(t, err, parser.ErrUnmatchedDelimiter)

	err = CompileSource(w, "")
	require.ErrorIs(t, err, parser.ErrUnexpectedEOF)

	require.Empty(t, w.String(), "nothing is written for invalid input")

	err = NewCompiler(w).CompileProgram(lower.Bin(expr.BinOp(99), lower.N(1), lower.N(2)))
	require.Error(t, err)
}

var errDiskFull = errors.New("disk full")

// failingWriter accepts n writes and then fails.
type failingWriter struct {
	n      int
	writes int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.writes >= f.n {
		return 0, errDiskFull
	}
	f.writes++
	return len(p), nil
}

func TestCompileWriteError(t *testing.T) {
	for _, n := range []int{0, 1, 4, 10} {
		w := &failingWriter{n: n}
		err := CompileSource(w, "(1+2)*3")
		require.ErrorIs(t, err, ErrWrite)
		require.ErrorIs(t, err, errDiskFull)
		require.Equal(t, n, w.writes, "no writes after the first failure")
	}
}
