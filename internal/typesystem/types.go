package typesystem

import (
	"strings"

	"github.com/grovelang/grove/internal/config"
)

// Type is the interface for all types in our system.
type Type interface {
	String() string
	typeNode()
}

// ConcreteType is a tagged type with ordered parameters, e.g. List[Number]
// or Function[Number, Number, Boolean]. By convention a function type's last
// parameter is its result type. MinArgs/MaxArgs carry argument-count bounds
// and are meaningful only for the variadic-function tag; MaxArgs is
// config.NoVariadicLimit when unbounded.
type ConcreteType struct {
	Tag     string
	Params  []Type
	MinArgs int
	MaxArgs int
}

func (t ConcreteType) typeNode() {}

func (t ConcreteType) String() string {
	if len(t.Params) == 0 {
		return t.Tag
	}
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return t.Tag + "[" + strings.Join(parts, ", ") + "]"
}

// TypeVar is a named placeholder for an as-yet-unconstrained type.
type TypeVar struct {
	Name string
}

func (t TypeVar) typeNode()      {}
func (t TypeVar) String() string { return t.Name }

// TypeVarSlot names a type-variable position when presenting or editing a
// quantifier. It is either a hole or a bound identifier and carries no
// checking semantics of its own.
type TypeVarSlot struct {
	Hole bool
	Name string
}

func (t TypeVarSlot) typeNode() {}

func (t TypeVarSlot) String() string {
	if t.Hole {
		return "_"
	}
	return t.Name
}

// ForallType universally quantifies its body over the named slots.
type ForallType struct {
	Slots []TypeVarSlot
	Body  Type
}

func (t ForallType) typeNode() {}

func (t ForallType) String() string {
	parts := make([]string, len(t.Slots))
	for i, s := range t.Slots {
		parts[i] = s.String()
	}
	return "forall " + strings.Join(parts, " ") + ". " + t.Body.String()
}

// Predeclared scalar types.
var (
	Any     = ConcreteType{Tag: config.AnyTypeName}
	Never   = ConcreteType{Tag: config.NeverTypeName}
	Null    = ConcreteType{Tag: config.NullTypeName}
	Number  = ConcreteType{Tag: config.NumberTypeName}
	Integer = ConcreteType{Tag: config.IntegerTypeName}
	Boolean = ConcreteType{Tag: config.BooleanTypeName}
	String  = ConcreteType{Tag: config.StringTypeName}
	Symbol  = ConcreteType{Tag: config.SymbolTypeName}
)

// List builds a List[elem] type.
func List(elem Type) ConcreteType {
	return ConcreteType{Tag: config.ListTypeName, Params: []Type{elem}}
}

// Promise builds a Promise[t] type.
func Promise(t Type) ConcreteType {
	return ConcreteType{Tag: config.PromiseTypeName, Params: []Type{t}}
}

// Function builds a fixed-arity function type. The last parameter is the
// result type.
func Function(params ...Type) ConcreteType {
	return ConcreteType{Tag: config.FunctionTypeName, Params: params}
}

// VariadicFunction builds a function type whose argument count is bounded by
// [min, max] instead of the parameter list length. Pass
// config.NoVariadicLimit for max when unbounded.
func VariadicFunction(min, max int, params ...Type) ConcreteType {
	return ConcreteType{
		Tag:     config.VariadicFunctionTypeName,
		Params:  params,
		MinArgs: min,
		MaxArgs: max,
	}
}

// HasTag reports whether t is a ConcreteType carrying the given tag.
func HasTag(t Type, tag string) bool {
	ct, ok := t.(ConcreteType)
	return ok && ct.Tag == tag
}

// IsFunctionTag reports whether tag names either function form.
func IsFunctionTag(tag string) bool {
	return tag == config.FunctionTypeName || tag == config.VariadicFunctionTypeName
}

// TypeParams returns the ordered type parameters of t. Type variables and
// slots have none; a quantifier delegates to its body.
func TypeParams(t Type) []Type {
	switch typ := t.(type) {
	case ConcreteType:
		return typ.Params
	case ForallType:
		return TypeParams(typ.Body)
	default:
		return nil
	}
}

// FunctionParamTypes returns all but the last type parameter: the argument
// types of a function type.
func FunctionParamTypes(t Type) []Type {
	params := TypeParams(t)
	if len(params) == 0 {
		return nil
	}
	return params[:len(params)-1]
}

// FunctionResultType returns the last type parameter, defaulting to Any for
// a function type with no declared result.
func FunctionResultType(t Type) Type {
	params := TypeParams(t)
	if len(params) == 0 {
		return Any
	}
	return params[len(params)-1]
}

// StructureMap rebuilds t by applying fn to each immediate type parameter.
// Type variables and slots pass through unchanged; a quantifier keeps its
// slots and maps over its body. This is the structural-recursion primitive
// the other type transforms are built from.
func StructureMap(t Type, fn func(Type) Type) Type {
	switch typ := t.(type) {
	case ConcreteType:
		if len(typ.Params) == 0 {
			return typ
		}
		params := make([]Type, len(typ.Params))
		for i, p := range typ.Params {
			params[i] = fn(p)
		}
		return ConcreteType{Tag: typ.Tag, Params: params, MinArgs: typ.MinArgs, MaxArgs: typ.MaxArgs}
	case ForallType:
		return ForallType{Slots: typ.Slots, Body: fn(typ.Body)}
	default:
		return t
	}
}
