package evaluator

import (
	"fmt"

	"github.com/grovelang/grove/internal/diagnostics"
	"github.com/grovelang/grove/internal/typesystem"
)

// Builtins is the full builtin library, assembled from the per-domain maps
// in the builtins_*.go files.
var Builtins = map[string]*Builtin{}

func register(m map[string]*Builtin) {
	for name, b := range m {
		if b.Name == "" {
			b.Name = name
		}
		Builtins[name] = b
	}
}

func init() {
	register(coreBuiltins)
	register(unimplementedBuiltins)

	for name, b := range Builtins {
		if b.Fn == nil {
			panic(fmt.Sprintf("builtin %q is missing its native operation", name))
		}
	}
}

// RegisterBuiltins installs every builtin into env with attribute metadata
// (documentation, declared types, arity bounds) for the editor to surface.
func RegisterBuiltins(env *Environment) {
	for name, b := range Builtins {
		env.SetBinding(name, &Binding{
			Cell:  FilledCell(b),
			Attrs: builtinAttributes(b),
		})
	}
}

func builtinAttributes(b *Builtin) *Attributes {
	attrs := &Attributes{Doc: b.Doc, ReturnType: b.Result}
	min := 0
	max := 0
	for _, p := range b.Params {
		if p.Variadic {
			max = -1
			break
		}
		attrs.ArgTypes = append(attrs.ArgTypes, p.Type)
		min++
		max++
	}
	attrs.MinArgs = min
	attrs.MaxArgs = max
	return attrs
}

var coreBuiltins = map[string]*Builtin{
	"+": {
		Params: []Param{{Name: "xs", Type: typesystem.Number, Variadic: true}},
		Result: typesystem.Number,
		Doc:    "Sum of the arguments; 0 with none.",
		Fn: func(e *Evaluator, args ...Object) Object {
			sum := 0.0
			for _, arg := range args {
				sum += arg.(*Number).Value
			}
			return &Number{Value: sum}
		},
	},
	"*": {
		Params: []Param{{Name: "xs", Type: typesystem.Number, Variadic: true}},
		Result: typesystem.Number,
		Doc:    "Product of the arguments; 1 with none.",
		Fn: func(e *Evaluator, args ...Object) Object {
			product := 1.0
			for _, arg := range args {
				product *= arg.(*Number).Value
			}
			return &Number{Value: product}
		},
	},
	"-": {
		Params: []Param{
			{Name: "x", Type: typesystem.Number},
			{Name: "xs", Type: typesystem.Number, Variadic: true},
		},
		Result: typesystem.Number,
		Doc:    "Subtraction left to right; negation with one argument.",
		Fn: func(e *Evaluator, args ...Object) Object {
			first := args[0].(*Number).Value
			if len(args) == 1 {
				return &Number{Value: -first}
			}
			for _, arg := range args[1:] {
				first -= arg.(*Number).Value
			}
			return &Number{Value: first}
		},
	},
	"/": {
		Params: []Param{
			{Name: "x", Type: typesystem.Number},
			{Name: "xs", Type: typesystem.Number, Variadic: true},
		},
		Result: typesystem.Number,
		Doc:    "Division left to right; reciprocal with one argument.",
		Fn: func(e *Evaluator, args ...Object) Object {
			first := args[0].(*Number).Value
			if len(args) == 1 {
				return &Number{Value: 1 / first}
			}
			for _, arg := range args[1:] {
				first /= arg.(*Number).Value
			}
			return &Number{Value: first}
		},
	},
	"=":  comparison("Numeric equality over all arguments.", func(a, b float64) bool { return a == b }),
	"<":  comparison("Strictly increasing over all arguments.", func(a, b float64) bool { return a < b }),
	">":  comparison("Strictly decreasing over all arguments.", func(a, b float64) bool { return a > b }),
	"<=": comparison("Non-decreasing over all arguments.", func(a, b float64) bool { return a <= b }),
	">=": comparison("Non-increasing over all arguments.", func(a, b float64) bool { return a >= b }),
	"not": {
		Params: []Param{{Name: "x", Type: typesystem.Any}},
		Result: typesystem.Boolean,
		Doc:    "Logical negation under the truthiness rule.",
		Fn: func(e *Evaluator, args ...Object) Object {
			return nativeBool(!isTruthy(args[0]))
		},
	},
	"equal?": {
		Params: []Param{{Name: "a", Type: typesystem.Any}, {Name: "b", Type: typesystem.Any}},
		Result: typesystem.Boolean,
		Doc:    "Deep structural equality.",
		Fn: func(e *Evaluator, args ...Object) Object {
			return nativeBool(objectsEqual(args[0], args[1]))
		},
	},
	"number?":    predicate("True for numbers.", func(o Object) bool { _, ok := o.(*Number); return ok }),
	"integer?":   predicate("True for whole-valued numbers.", func(o Object) bool { n, ok := o.(*Number); return ok && n.IsIntegral() }),
	"boolean?":   predicate("True for booleans.", func(o Object) bool { _, ok := o.(*Boolean); return ok }),
	"string?":    predicate("True for strings.", func(o Object) bool { _, ok := o.(*String); return ok }),
	"symbol?":    predicate("True for symbols.", func(o Object) bool { _, ok := o.(*Symbol); return ok }),
	"null?":      predicate("True for the empty list.", func(o Object) bool { l, ok := o.(*List); return ok && l.IsEmpty() }),
	"pair?":      predicate("True for non-empty lists.", func(o Object) bool { l, ok := o.(*List); return ok && !l.IsEmpty() }),
	"list?":      predicate("True for proper lists.", func(o Object) bool { l, ok := o.(*List); return ok && l.IsProper() }),
	"procedure?": predicate("True for closures and builtins.", func(o Object) bool {
		switch o.(type) {
		case *Function, *Builtin:
			return true
		}
		return false
	}),
}

func comparison(doc string, cmp func(a, b float64) bool) *Builtin {
	return &Builtin{
		Params: []Param{
			{Name: "a", Type: typesystem.Number},
			{Name: "b", Type: typesystem.Number},
			{Name: "xs", Type: typesystem.Number, Variadic: true},
		},
		Result: typesystem.Boolean,
		Doc:    doc,
		Fn: func(e *Evaluator, args ...Object) Object {
			for i := 0; i < len(args)-1; i++ {
				if !cmp(args[i].(*Number).Value, args[i+1].(*Number).Value) {
					return FALSE
				}
			}
			return TRUE
		},
	}
}

func predicate(doc string, test func(Object) bool) *Builtin {
	return &Builtin{
		Params: []Param{{Name: "x", Type: typesystem.Any}},
		Result: typesystem.Boolean,
		Doc:    doc,
		Fn: func(e *Evaluator, args ...Object) Object {
			return nativeBool(test(args[0]))
		},
	}
}

// Builtins the editor exposes but the engine does not implement yet. They
// validate like any other builtin and fail only when invoked.
var unimplementedBuiltins = map[string]*Builtin{
	"force":                          unimplemented("force", 1),
	"call-with-current-continuation": unimplemented("call-with-current-continuation", 1),
	"eval":                           unimplemented("eval", 1),
	"append":                         unimplemented("append", 2),
	"reverse":                        unimplemented("reverse", 1),
}

func unimplemented(name string, arity int) *Builtin {
	params := make([]Param, arity)
	for i := range params {
		params[i] = Param{Name: fmt.Sprintf("arg%d", i+1), Type: typesystem.Any}
	}
	return &Builtin{
		Name:   name,
		Params: params,
		Doc:    "Not implemented.",
		Fn: func(e *Evaluator, args ...Object) Object {
			return newError(diagnostics.NotImplemented, "%s is not implemented", name)
		},
	}
}
