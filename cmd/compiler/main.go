package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/brenoafb/arithc/pkg/compiler"
	"github.com/brenoafb/arithc/pkg/config"
	"github.com/brenoafb/arithc/pkg/diag"
	"github.com/brenoafb/arithc/pkg/lower"
	"github.com/brenoafb/arithc/pkg/parser"
)

// CLI is the arithc command line.
type CLI struct {
	Input   string `arg:"" help:"Expression source file" type:"path"`
	Output  string `short:"o" help:"Assembly output file (default: input with its extension replaced)" type:"path"`
	Config  string `help:"Configuration file path" default:"arithc.yaml" type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose output"`
	NoColor bool   `help:"Disable colored output"`

	source string `kong:"-"`
}

func (cli *CLI) Run() error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	verbose := cli.Verbose || cfg.Verbose

	content, err := os.ReadFile(cli.Input)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	cli.source = string(content)

	e, err := parser.ParseString(cli.source)
	if err != nil {
		return err
	}
	if verbose {
		color.Blue("parsed %s: %s", cli.Input, e)
	}

	lowered := lower.Lower(e)
	if verbose {
		color.Blue("lowered: %s", lowered)
	}

	output := cli.Output
	if output == "" {
		output = cfg.OutputPath(cli.Input)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	c := compiler.NewCompiler(w, cfg.CompilerOptions())
	if err := c.CompileProgram(lowered); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}

	if verbose {
		color.Blue("wrote %s", output)
	}

	return nil
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("arithc"),
		kong.Description("Compile an arithmetic expression to x86-64 assembly."),
		kong.UsageOnError(),
	)

	if cli.NoColor {
		color.NoColor = true
	}

	// progress goes to stderr alongside diagnostics
	color.Output = color.Error

	if err := cli.Run(); err != nil {
		diag.Report(os.Stderr, cli.source, err)
		os.Exit(1)
	}
}
