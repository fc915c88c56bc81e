// Package diag renders compiler errors for humans.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/brenoafb/arithc/pkg/parser"
)

// Positioner is implemented by errors that point into the source.
type Positioner interface {
	error
	Position() (parser.Position, bool)
}

var (
	caret   = color.New(color.FgRed, color.Bold)
	errText = color.New(color.FgRed)
)

// Report writes err to w. Positioned errors reproduce the offending source
// line with a caret under the error column:
//
//	1 & 2
//	  ^ unexpected character '&' at 0:2
//
// Anything else is written as a single "error: ..." line.
func Report(w io.Writer, src string, err error) {
	if err == nil {
		return
	}

	var p Positioner
	if errors.As(err, &p) {
		if pos, ok := p.Position(); ok {
			if line, ok := sourceLine(src, pos.Line); ok {
				fmt.Fprintln(w, line)
				caret.Fprintf(w, "%s^ ", strings.Repeat(" ", pos.Column))
				errText.Fprintln(w, p.Error())
				return
			}
		}
	}

	errText.Fprintf(w, "error: %v\n", err)
}

func sourceLine(src string, n int) (string, bool) {
	lines := strings.Split(src, "\n")
	if n < 0 || n >= len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n], "\r"), true
}
