package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/brenoafb/arithc/pkg/diag"
	"github.com/brenoafb/arithc/pkg/lower"
	"github.com/brenoafb/arithc/pkg/parser"
)

var cli struct {
	Input   string `arg:"" help:"Expression source file" type:"path"`
	Tokens  bool   `help:"Print the token stream instead of the tree"`
	Lowered bool   `help:"Print the tree after unary operators are lowered"`
	NoColor bool   `help:"Disable colored output"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("arithc-fmt"),
		kong.Description("Print the tokens or syntax tree of an arithmetic expression."),
		kong.UsageOnError(),
	)
	if cli.NoColor {
		color.NoColor = true
	}

	content, err := os.ReadFile(cli.Input)
	if err != nil {
		diag.Report(os.Stderr, "", fmt.Errorf("error opening file: %w", err))
		os.Exit(1)
	}
	code := string(content)

	if err := run(code); err != nil {
		diag.Report(os.Stderr, code, err)
		os.Exit(1)
	}
}

func run(code string) error {
	if cli.Tokens {
		tokens, err := parser.Tokenize(code)
		if err != nil {
			return fmt.Errorf("tokenizer error: %w", err)
		}
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		return nil
	}

	e, err := parser.ParseString(code)
	if err != nil {
		return err
	}

	if cli.Lowered {
		fmt.Println(lower.Lower(e))
		return nil
	}

	fmt.Println(e)
	return nil
}
