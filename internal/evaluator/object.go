package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/grovelang/grove/internal/ast"
	"github.com/grovelang/grove/internal/config"
	"github.com/grovelang/grove/internal/diagnostics"
	"github.com/grovelang/grove/internal/typesystem"
)

type ObjectType string

const (
	NUMBER_OBJ   = "NUMBER"
	BOOLEAN_OBJ  = "BOOLEAN"
	STRING_OBJ   = "STRING"
	SYMBOL_OBJ   = "SYMBOL"
	LIST_OBJ     = "LIST"
	FUNCTION_OBJ = "FUNCTION"
	BUILTIN_OBJ  = "BUILTIN"
	ERROR_OBJ    = "ERROR"
)

// Object is the runtime value union.
type Object interface {
	Type() ObjectType
	Inspect() string
	RuntimeType() typesystem.Type
}

// Number is the single numeric kind. A whole-valued Number also satisfies
// the Integer type tag at call sites.
type Number struct {
	Value float64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string {
	if n.IsIntegral() {
		return strconv.FormatFloat(n.Value, 'f', 0, 64)
	}
	return strconv.FormatFloat(n.Value, 'g', config.DisplayFloatPrecision, 64)
}
func (n *Number) RuntimeType() typesystem.Type {
	if n.IsIntegral() {
		return typesystem.Integer
	}
	return typesystem.Number
}

// IsIntegral reports whether the number holds a whole value.
func (n *Number) IsIntegral() bool {
	return !math.IsInf(n.Value, 0) && !math.IsNaN(n.Value) && n.Value == math.Trunc(n.Value)
}

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "#t"
	}
	return "#f"
}
func (b *Boolean) RuntimeType() typesystem.Type { return typesystem.Boolean }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string { return strconv.Quote(s.Value) }
func (s *String) RuntimeType() typesystem.Type { return typesystem.String }

type Symbol struct {
	Value string
}

func (s *Symbol) Type() ObjectType { return SYMBOL_OBJ }
func (s *Symbol) Inspect() string { return s.Value }
func (s *Symbol) RuntimeType() typesystem.Type { return typesystem.Symbol }

// List holds ordered heads plus an optional improper tail. A nil tail makes
// the list proper; a proper list with no heads is the empty list.
type List struct {
	Heads []Object
	Tail  Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Heads))
	for i, h := range l.Heads {
		parts[i] = h.Inspect()
	}
	if l.Tail != nil {
		return "(" + strings.Join(parts, " ") + " . " + l.Tail.Inspect() + ")"
	}
	return "(" + strings.Join(parts, " ") + ")"
}
func (l *List) RuntimeType() typesystem.Type {
	if l.IsEmpty() {
		return typesystem.Null
	}
	return typesystem.List(typesystem.Any)
}

// IsEmpty reports whether l is the empty proper list.
func (l *List) IsEmpty() bool {
	return len(l.Heads) == 0 && l.Tail == nil
}

// IsProper reports whether l has no improper tail.
func (l *List) IsProper() bool {
	return l.Tail == nil
}

// Param is one slot of a function signature: a name, an optional declared
// type, and whether it collects trailing arguments.
type Param struct {
	Name     string
	Type     typesystem.Type
	Variadic bool
}

// Function is an interpreted closure: a signature, a body and the captured
// defining environment.
type Function struct {
	Params []Param
	Body   ast.Expr
	Env    *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Name
		if p.Variadic {
			parts[i] += "..."
		}
	}
	return "(lambda (" + strings.Join(parts, " ") + ") ...)"
}
func (f *Function) RuntimeType() typesystem.Type { return signatureType(f.Params, nil) }

// BuiltinFn is the native operation behind a builtin. It receives the raw
// argument values plus the evaluator so natives like map and apply can call
// back into user closures.
type BuiltinFn func(e *Evaluator, args ...Object) Object

// Builtin pairs the same signature shape as Function with a native
// operation. Result documents the return type; nil means Any.
type Builtin struct {
	Name   string
	Params []Param
	Result typesystem.Type
	Doc    string
	Fn     BuiltinFn
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "#<builtin " + b.Name + ">" }
func (b *Builtin) RuntimeType() typesystem.Type { return signatureType(b.Params, b.Result) }

// Error is an evaluation failure propagating up the recursive walk. The
// Kind ties it to the engine's failure taxonomy.
type Error struct {
	Kind    diagnostics.Kind
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string { return "error[" + string(e.Kind) + "]: " + e.Message }
func (e *Error) RuntimeType() typesystem.Type { return typesystem.Never }

// signatureType derives a function type from a parameter list, defaulting
// undeclared slots to Any. Variadic signatures use the bounded variadic tag.
func signatureType(params []Param, result typesystem.Type) typesystem.Type {
	types := make([]typesystem.Type, 0, len(params)+1)
	variadic := false
	for _, p := range params {
		t := p.Type
		if t == nil {
			t = typesystem.Any
		}
		types = append(types, t)
		if p.Variadic {
			variadic = true
		}
	}
	if result == nil {
		result = typesystem.Any
	}
	types = append(types, result)
	if variadic {
		return typesystem.VariadicFunction(len(params)-1, config.NoVariadicLimit, types...)
	}
	return typesystem.Function(types...)
}
