package evaluator

import (
	"github.com/grovelang/grove/internal/diagnostics"
	"github.com/grovelang/grove/internal/typesystem"
)

func init() {
	register(listBuiltins)
}

var listBuiltins = map[string]*Builtin{
	"cons": {
		Params: []Param{{Name: "head", Type: typesystem.Any}, {Name: "rest", Type: typesystem.Any}},
		Result: typesystem.List(typesystem.Any),
		Doc:    "Prepends head to a list, or forms an improper pair.",
		Fn: func(e *Evaluator, args ...Object) Object {
			if rest, ok := args[1].(*List); ok {
				heads := make([]Object, 0, len(rest.Heads)+1)
				heads = append(heads, args[0])
				heads = append(heads, rest.Heads...)
				return &List{Heads: heads, Tail: rest.Tail}
			}
			return &List{Heads: []Object{args[0]}, Tail: args[1]}
		},
	},
	"car": {
		Params: []Param{{Name: "xs", Type: typesystem.List(typesystem.TypeVar{Name: "a"})}},
		Doc:    "First element of a non-empty list.",
		Fn: func(e *Evaluator, args ...Object) Object {
			list := args[0].(*List)
			if len(list.Heads) == 0 {
				return newError(diagnostics.TypeMismatch, "car of an empty list")
			}
			return list.Heads[0]
		},
	},
	"cdr": {
		Params: []Param{{Name: "xs", Type: typesystem.List(typesystem.TypeVar{Name: "a"})}},
		Doc:    "Everything after the first element.",
		Fn: func(e *Evaluator, args ...Object) Object {
			list := args[0].(*List)
			if len(list.Heads) == 0 {
				return newError(diagnostics.TypeMismatch, "cdr of an empty list")
			}
			if len(list.Heads) == 1 && list.Tail != nil {
				return list.Tail
			}
			rest := make([]Object, len(list.Heads)-1)
			copy(rest, list.Heads[1:])
			return &List{Heads: rest, Tail: list.Tail}
		},
	},
	"list": {
		Params: []Param{{Name: "xs", Type: typesystem.Any, Variadic: true}},
		Result: typesystem.List(typesystem.Any),
		Doc:    "Builds a proper list of the arguments.",
		Fn: func(e *Evaluator, args ...Object) Object {
			heads := make([]Object, len(args))
			copy(heads, args)
			return &List{Heads: heads}
		},
	},
	"length": {
		Params: []Param{{Name: "xs", Type: typesystem.List(typesystem.TypeVar{Name: "a"})}},
		Result: typesystem.Integer,
		Doc:    "Length of a proper list.",
		Fn: func(e *Evaluator, args ...Object) Object {
			list := args[0].(*List)
			if !list.IsProper() {
				return newError(diagnostics.TypeMismatch, "length of an improper list")
			}
			return &Number{Value: float64(len(list.Heads))}
		},
	},
	"map": {
		Params: []Param{
			{Name: "fn", Type: typesystem.Function(typesystem.TypeVar{Name: "a"}, typesystem.TypeVar{Name: "b"})},
			{Name: "xs", Type: typesystem.List(typesystem.TypeVar{Name: "a"})},
		},
		Result: typesystem.List(typesystem.TypeVar{Name: "b"}),
		Doc:    "Applies fn to each element, collecting the results.",
		Fn: func(e *Evaluator, args ...Object) Object {
			list := args[1].(*List)
			if !list.IsProper() {
				return newError(diagnostics.TypeMismatch, "map over an improper list")
			}
			heads := make([]Object, len(list.Heads))
			for i, item := range list.Heads {
				val := e.Apply(args[0], []Object{item})
				if isError(val) {
					return val
				}
				heads[i] = val
			}
			return &List{Heads: heads}
		},
	},
	"for-each": {
		Params: []Param{
			{Name: "fn", Type: typesystem.Function(typesystem.TypeVar{Name: "a"}, typesystem.Any)},
			{Name: "xs", Type: typesystem.List(typesystem.TypeVar{Name: "a"})},
		},
		Doc: "Applies fn to each element for its effect.",
		Fn: func(e *Evaluator, args ...Object) Object {
			list := args[1].(*List)
			if !list.IsProper() {
				return newError(diagnostics.TypeMismatch, "for-each over an improper list")
			}
			for _, item := range list.Heads {
				if val := e.Apply(args[0], []Object{item}); isError(val) {
					return val
				}
			}
			return emptyList()
		},
	},
	"apply": {
		Params: []Param{
			{Name: "fn", Type: typesystem.Function(typesystem.Any)},
			{Name: "xs", Type: typesystem.List(typesystem.Any)},
		},
		Doc: "Applies fn to the elements of a list.",
		Fn: func(e *Evaluator, args ...Object) Object {
			list := args[1].(*List)
			if !list.IsProper() {
				return newError(diagnostics.TypeMismatch, "apply needs a proper argument list")
			}
			return e.Apply(args[0], list.Heads)
		},
	},
	"filter": {
		Params: []Param{
			{Name: "fn", Type: typesystem.Function(typesystem.TypeVar{Name: "a"}, typesystem.Boolean)},
			{Name: "xs", Type: typesystem.List(typesystem.TypeVar{Name: "a"})},
		},
		Result: typesystem.List(typesystem.TypeVar{Name: "a"}),
		Doc:    "Keeps the elements fn maps to a truthy value.",
		Fn: func(e *Evaluator, args ...Object) Object {
			list := args[1].(*List)
			if !list.IsProper() {
				return newError(diagnostics.TypeMismatch, "filter over an improper list")
			}
			var heads []Object
			for _, item := range list.Heads {
				val := e.Apply(args[0], []Object{item})
				if isError(val) {
					return val
				}
				if isTruthy(val) {
					heads = append(heads, item)
				}
			}
			return &List{Heads: heads}
		},
	},
	"member": {
		Params: []Param{
			{Name: "x", Type: typesystem.Any},
			{Name: "xs", Type: typesystem.List(typesystem.Any)},
		},
		Doc: "The sublist starting at the first element equal to x, or #f.",
		Fn: func(e *Evaluator, args ...Object) Object {
			list := args[1].(*List)
			for i, item := range list.Heads {
				if objectsEqual(args[0], item) {
					rest := make([]Object, len(list.Heads)-i)
					copy(rest, list.Heads[i:])
					return &List{Heads: rest, Tail: list.Tail}
				}
			}
			return FALSE
		},
	},
	"assoc": {
		Params: []Param{
			{Name: "key", Type: typesystem.Any},
			{Name: "pairs", Type: typesystem.List(typesystem.Any)},
		},
		Doc: "The first pair whose head equals key, or #f.",
		Fn: func(e *Evaluator, args ...Object) Object {
			list := args[1].(*List)
			for _, item := range list.Heads {
				pair, ok := item.(*List)
				if !ok || len(pair.Heads) == 0 {
					continue
				}
				if objectsEqual(args[0], pair.Heads[0]) {
					return pair
				}
			}
			return FALSE
		},
	},
}
