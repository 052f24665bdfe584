package evaluator

import (
	"strconv"
	"strings"

	"github.com/grovelang/grove/internal/diagnostics"
	"github.com/grovelang/grove/internal/typesystem"
)

func init() {
	register(stringBuiltins)
}

var stringBuiltins = map[string]*Builtin{
	"string-append": {
		Params: []Param{{Name: "xs", Type: typesystem.String, Variadic: true}},
		Result: typesystem.String,
		Doc:    "Concatenates the arguments.",
		Fn: func(e *Evaluator, args ...Object) Object {
			var sb strings.Builder
			for _, arg := range args {
				sb.WriteString(arg.(*String).Value)
			}
			return &String{Value: sb.String()}
		},
	},
	"string-length": {
		Params: []Param{{Name: "s", Type: typesystem.String}},
		Result: typesystem.Integer,
		Doc:    "Number of bytes in the string.",
		Fn: func(e *Evaluator, args ...Object) Object {
			return &Number{Value: float64(len(args[0].(*String).Value))}
		},
	},
	"substring": {
		Params: []Param{
			{Name: "s", Type: typesystem.String},
			{Name: "start", Type: typesystem.Integer},
			{Name: "end", Type: typesystem.Integer},
		},
		Result: typesystem.String,
		Doc:    "Slice of s from start (inclusive) to end (exclusive).",
		Fn: func(e *Evaluator, args ...Object) Object {
			s := args[0].(*String).Value
			start := int(args[1].(*Number).Value)
			end := int(args[2].(*Number).Value)
			if start < 0 || end < start || end > len(s) {
				return newError(diagnostics.TypeMismatch,
					"substring bounds [%d, %d) out of range for length %d", start, end, len(s))
			}
			return &String{Value: s[start:end]}
		},
	},
	"string->symbol": {
		Params: []Param{{Name: "s", Type: typesystem.String}},
		Result: typesystem.Symbol,
		Doc:    "The symbol spelled by s.",
		Fn: func(e *Evaluator, args ...Object) Object {
			return &Symbol{Value: args[0].(*String).Value}
		},
	},
	"symbol->string": {
		Params: []Param{{Name: "sym", Type: typesystem.Symbol}},
		Result: typesystem.String,
		Doc:    "The spelling of a symbol.",
		Fn: func(e *Evaluator, args ...Object) Object {
			return &String{Value: args[0].(*Symbol).Value}
		},
	},
	"number->string": {
		Params: []Param{{Name: "n", Type: typesystem.Number}},
		Result: typesystem.String,
		Doc:    "Decimal rendering of a number.",
		Fn: func(e *Evaluator, args ...Object) Object {
			return &String{Value: args[0].(*Number).Inspect()}
		},
	},
	"string->number": {
		Params: []Param{{Name: "s", Type: typesystem.String}},
		Doc:    "Parses a decimal number, or #f when s is not numeric.",
		Fn: func(e *Evaluator, args ...Object) Object {
			v, err := strconv.ParseFloat(strings.TrimSpace(args[0].(*String).Value), 64)
			if err != nil {
				return FALSE
			}
			return &Number{Value: v}
		},
	},
}
