package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/grovelang/grove/internal/typesystem"
)

func init() {
	register(termBuiltins)
}

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// SupportsColor reports whether w is an interactive terminal that can take
// ANSI color sequences.
func SupportsColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DisplayString renders obj the way display does: strings without quotes,
// everything else in its literal form.
func DisplayString(obj Object) string {
	if s, ok := obj.(*String); ok {
		return s.Value
	}
	return obj.Inspect()
}

var termBuiltins = map[string]*Builtin{
	"display": {
		Params: []Param{{Name: "x", Type: typesystem.Any}},
		Doc:    "Writes x to the output, strings without quotes.",
		Fn: func(e *Evaluator, args ...Object) Object {
			out := DisplayString(args[0])
			if isError(args[0]) && SupportsColor(e.Out) {
				out = ansiRed + out + ansiReset
			}
			fmt.Fprint(e.Out, out)
			return emptyList()
		},
	},
	"write": {
		Params: []Param{{Name: "x", Type: typesystem.Any}},
		Doc:    "Writes x to the output in re-readable literal form.",
		Fn: func(e *Evaluator, args ...Object) Object {
			fmt.Fprint(e.Out, args[0].Inspect())
			return emptyList()
		},
	},
	"newline": {
		Doc: "Writes a line break to the output.",
		Fn: func(e *Evaluator, args ...Object) Object {
			fmt.Fprintln(e.Out)
			return emptyList()
		},
	},
}
