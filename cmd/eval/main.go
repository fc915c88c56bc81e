package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/brenoafb/arithc/pkg/diag"
	"github.com/brenoafb/arithc/pkg/eval"
	"github.com/brenoafb/arithc/pkg/lower"
	"github.com/brenoafb/arithc/pkg/parser"
)

var cli struct {
	Input   string `arg:"" optional:"" help:"Expression source file" type:"path"`
	Expr    string `short:"e" help:"Evaluate this expression instead of reading a file"`
	NoColor bool   `help:"Disable colored output"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("arithc-eval"),
		kong.Description("Evaluate an arithmetic expression the way the compiled program would."),
		kong.UsageOnError(),
	)
	if cli.NoColor {
		color.NoColor = true
	}

	code := cli.Expr
	if cli.Input != "" {
		content, err := os.ReadFile(cli.Input)
		if err != nil {
			diag.Report(os.Stderr, "", fmt.Errorf("error opening file: %w", err))
			os.Exit(1)
		}
		code = string(content)
	} else if cli.Expr == "" {
		kctx.Fatalf("either an input file or --expr is required")
	}

	e, err := parser.ParseString(code)
	if err != nil {
		diag.Report(os.Stderr, code, err)
		os.Exit(1)
	}

	v, err := eval.Eval(lower.Lower(e))
	if err != nil {
		diag.Report(os.Stderr, code, err)
		os.Exit(1)
	}

	fmt.Println(v)
}
