package ast

import (
	"strconv"

	"github.com/grovelang/grove/internal/typesystem"
)

// Expr is the base interface for all expression nodes. The set of kinds is
// closed: every consumer switches exhaustively over the variants below.
type Expr interface {
	exprNode()
	String() string
}

// Hole is the distinguished "no expression here yet" sentinel. Every empty
// child slot holds a Hole, never nil; a Hole may also stand alone as the
// root of an empty draft tree.
type Hole struct{}

func (h *Hole) exprNode()      {}
func (h *Hole) String() string { return "_" }

// NewHole returns a fresh hole node.
func NewHole() *Hole { return &Hole{} }

// IsHole reports whether e is the hole sentinel.
func IsHole(e Expr) bool {
	_, ok := e.(*Hole)
	return ok
}

// NumberLit is a numeric literal.
type NumberLit struct {
	Value float64
}

func (n *NumberLit) exprNode() {}
func (n *NumberLit) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

func (b *BoolLit) exprNode() {}
func (b *BoolLit) String() string {
	if b.Value {
		return "#t"
	}
	return "#f"
}

// StringLit is a string literal.
type StringLit struct {
	Value string
}

func (s *StringLit) exprNode()      {}
func (s *StringLit) String() string { return strconv.Quote(s.Value) }

// SymbolLit is a quoted symbol literal.
type SymbolLit struct {
	Value string
}

func (s *SymbolLit) exprNode()      {}
func (s *SymbolLit) String() string { return s.Value }

// Var references a name to be resolved in the lexical environment or, failing
// that, the session's defines table.
type Var struct {
	Name string
}

func (v *Var) exprNode()      {}
func (v *Var) String() string { return v.Name }

// NameBinding is a bindable identifier, optionally type-annotated and
// optionally variadic (a rest parameter collecting trailing arguments).
type NameBinding struct {
	Name     string
	Type     typesystem.Type // nil when unannotated
	Variadic bool
}

func (nb *NameBinding) exprNode() {}
func (nb *NameBinding) String() string {
	out := nb.Name
	if nb.Variadic {
		out = out + "..."
	}
	if nb.Type != nil {
		out = out + " : " + nb.Type.String()
	}
	return out
}

// TypeLit wraps a type used in expression position. Evaluating one is not
// implemented; the node exists so the editor can hold types on the canvas.
type TypeLit struct {
	Type typesystem.Type
}

func (t *TypeLit) exprNode() {}
func (t *TypeLit) String() string {
	if t.Type == nil {
		return "<type>"
	}
	return t.Type.String()
}
