package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brenoafb/arithc/pkg/parser"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunWritesDerivedOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "calc.expr", "1 + 2 * 3\n")

	cli := &CLI{Input: input, Config: filepath.Join(dir, "missing.yaml")}
	require.NoError(t, cli.Run())

	out, err := os.ReadFile(filepath.Join(dir, "calc.s"))
	require.NoError(t, err)
	require.Contains(t, string(out), ".globl main\nmain:\n")
	require.Contains(t, string(out), "  imul rax, rdi\n")
	require.Contains(t, string(out), "  pop rax\n  ret\n")
}

func TestRunUsesConfigAndOutputFlag(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "calc.expr", "-7")
	cfg := writeInput(t, dir, "arithc.toml", "entry = \"calc\"\nnoexec_stack = false\n")
	output := filepath.Join(dir, "out.asm")

	cli := &CLI{Input: input, Output: output, Config: cfg}
	require.NoError(t, cli.Run())

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(out), ".globl calc\ncalc:\n")
	require.NotContains(t, string(out), ".note.GNU-stack")
}

func TestRunParseErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "bad.expr", "(1+2")

	cli := &CLI{Input: input, Config: filepath.Join(dir, "missing.yaml")}
	err := cli.Run()
	require.ErrorIs(t, err, parser.ErrUnmatchedDelimiter)
	require.Equal(t, "(1+2", cli.source)

	_, err = os.Stat(filepath.Join(dir, "bad.s"))
	require.True(t, os.IsNotExist(err))
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	cli := &CLI{Input: filepath.Join(dir, "nope.expr"), Config: filepath.Join(dir, "missing.yaml")}
	require.ErrorIs(t, cli.Run(), os.ErrNotExist)
}
