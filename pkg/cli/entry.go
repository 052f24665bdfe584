package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/grovelang/grove/internal/evaluator"
)

// Version can be set at build time using:
// -ldflags "-X github.com/grovelang/grove/pkg/cli.Version=v1.2.3"
var Version = "dev"

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

func bold(s string) string {
	if evaluator.SupportsColor(os.Stdout) {
		return ansiBold + s + ansiReset
	}
	return s
}

// handleHelp prints general usage, or the documentation entry for a single
// builtin when a name is given.
func handleHelp() bool {
	if len(os.Args) < 2 {
		return false
	}
	if os.Args[1] != "-help" && os.Args[1] != "--help" && os.Args[1] != "help" {
		return false
	}

	if len(os.Args) == 2 {
		printUsage(os.Stdout)
		return true
	}

	name := os.Args[2]
	b, ok := evaluator.Builtins[name]
	if !ok {
		fmt.Printf("Unknown builtin: %s\n", name)
		fmt.Println("Use 'builtins' to list everything the engine provides")
		return true
	}
	fmt.Printf("%s\n  %s\n", bold(Signature(b)), b.Doc)
	return true
}

// handleBuiltins lists every registered builtin with its signature, the
// catalog the editor surfaces as a palette.
func handleBuiltins() bool {
	if len(os.Args) < 2 || os.Args[1] != "builtins" {
		return false
	}

	names := make([]string, 0, len(evaluator.Builtins))
	for name := range evaluator.Builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%d builtins:\n\n", len(names))
	for _, name := range names {
		b := evaluator.Builtins[name]
		fmt.Printf("  %-34s %s\n", Signature(b), b.Doc)
	}
	return true
}

func handleVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	if os.Args[1] != "version" && os.Args[1] != "-version" && os.Args[1] != "--version" {
		return false
	}
	fmt.Printf("grove %s\n", Version)
	return true
}

func printUsage(w *os.File) {
	fmt.Fprintf(w, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  builtins        list the builtin library with signatures")
	fmt.Fprintln(w, "  help <name>     documentation for one builtin")
	fmt.Fprintln(w, "  version         print the engine version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The engine itself is a library; the visual editor embeds it")
	fmt.Fprintln(w, "through the forest.Session API.")
}

// Signature renders a builtin header in list form, parameter types included:
// (car xs : List[a]) -> a.
func Signature(b *evaluator.Builtin) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(b.Name)
	for _, p := range b.Params {
		sb.WriteString(" ")
		sb.WriteString(p.Name)
		if p.Variadic {
			sb.WriteString("...")
		}
		if p.Type != nil {
			sb.WriteString(" : ")
			sb.WriteString(p.Type.String())
		}
	}
	sb.WriteString(")")
	if b.Result != nil {
		sb.WriteString(" -> ")
		sb.WriteString(b.Result.String())
	}
	return sb.String()
}

func Run() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if handleHelp() {
		return
	}
	if handleBuiltins() {
		return
	}
	if handleVersion() {
		return
	}

	printUsage(os.Stderr)
	os.Exit(1)
}
