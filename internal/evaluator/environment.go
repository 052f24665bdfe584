package evaluator

import "github.com/grovelang/grove/internal/typesystem"

// Cell is a mutable box holding zero or one value. Cells are shared by
// reference between the defining scope and every closure capturing it, which
// is what makes letrec-style mutual recursion work: setting the cell is
// visible to all holders. A cell is empty only transiently during letrec
// setup.
type Cell struct {
	value Object
	set   bool
}

// NewCell returns an empty cell.
func NewCell() *Cell { return &Cell{} }

// FilledCell returns a cell already holding v.
func FilledCell(v Object) *Cell {
	return &Cell{value: v, set: true}
}

// Get returns the held value, or false while the cell is still empty.
func (c *Cell) Get() (Object, bool) {
	return c.value, c.set
}

// Set populates the cell.
func (c *Cell) Set(v Object) {
	c.value = v
	c.set = true
}

// Attributes is optional metadata on a binding: documentation and the
// declared argument/return types and arity bounds the editor surfaces.
type Attributes struct {
	Doc        string
	ArgTypes   []typesystem.Type
	ReturnType typesystem.Type
	MinArgs    int
	MaxArgs    int
}

// Binding pairs a value cell with its optional attributes.
type Binding struct {
	Cell  *Cell
	Attrs *Attributes
}

// Environment maps names to bindings. Scope nesting is modeled by
// right-biased merging rather than parent mutation: extending a scope builds
// a new environment, leaving the outer one untouched.
type Environment struct {
	bindings map[string]*Binding
}

func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]*Binding)}
}

// Get returns the binding for name.
func (e *Environment) Get(name string) (*Binding, bool) {
	b, ok := e.bindings[name]
	return b, ok
}

// Set binds name to a filled cell holding val.
func (e *Environment) Set(name string, val Object) {
	e.bindings[name] = &Binding{Cell: FilledCell(val)}
}

// SetBinding installs a prepared binding, replacing any existing one.
func (e *Environment) SetBinding(name string, b *Binding) {
	e.bindings[name] = b
}

// Names returns the bound names in no particular order.
func (e *Environment) Names() []string {
	out := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		out = append(out, name)
	}
	return out
}

// Merge composes environments into a new one with a right-biased union:
// keys of later environments take precedence. Neither input is mutated, and
// bindings (hence cells) are shared, not copied.
func Merge(envs ...*Environment) *Environment {
	merged := NewEnvironment()
	for _, env := range envs {
		if env == nil {
			continue
		}
		for name, b := range env.bindings {
			merged.bindings[name] = b
		}
	}
	return merged
}
