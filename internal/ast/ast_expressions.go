package ast

import "strings"

// ListLit is quoted list data: ordered heads plus an optional improper tail.
// A nil Tail makes the list proper.
type ListLit struct {
	Heads []Expr
	Tail  Expr
}

func (l *ListLit) exprNode() {}
func (l *ListLit) String() string {
	parts := make([]string, len(l.Heads))
	for i, h := range l.Heads {
		parts[i] = h.String()
	}
	if l.Tail != nil {
		return "(" + strings.Join(parts, " ") + " . " + l.Tail.String() + ")"
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Call applies Called to Args. Child slot 0 is Called, slots 1..n the args.
type Call struct {
	Called Expr
	Args   []Expr
}

func (c *Call) exprNode() {}
func (c *Call) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Called.String())
	for _, a := range c.Args {
		parts = append(parts, a.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Define binds a top-level name to a value. Binding must resolve to a plain
// NameBinding by evaluation time; the editor may leave a hole there.
type Define struct {
	Binding Expr
	Value   Expr
}

func (d *Define) exprNode() {}
func (d *Define) String() string {
	return "(define " + d.Binding.String() + " " + d.Value.String() + ")"
}

// LetPair is one (binding, value) pair of a let or letrec form.
type LetPair struct {
	Binding Expr
	Value   Expr
}

// Let binds names non-recursively: every value is evaluated in the outer
// environment, then all bindings extend the scope at once.
type Let struct {
	Pairs []LetPair
	Body  Expr
}

func (l *Let) exprNode()      {}
func (l *Let) String() string { return letString("let", l.Pairs, l.Body) }

// Letrec binds names recursively: all binding cells exist before any value
// is evaluated, so closures may refer to later siblings.
type Letrec struct {
	Pairs []LetPair
	Body  Expr
}

func (l *Letrec) exprNode()      {}
func (l *Letrec) String() string { return letString("letrec", l.Pairs, l.Body) }

func letString(form string, pairs []LetPair, body Expr) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = "(" + p.Binding.String() + " " + p.Value.String() + ")"
	}
	return "(" + form + " (" + strings.Join(parts, " ") + ") " + body.String() + ")"
}

// Lambda builds a closure over the current environment. Params hold
// NameBinding nodes (or holes while being edited); the body is not evaluated
// until the closure is applied.
type Lambda struct {
	Params []Expr
	Body   Expr
}

func (l *Lambda) exprNode() {}
func (l *Lambda) String() string {
	parts := make([]string, len(l.Params))
	for i, p := range l.Params {
		parts[i] = p.String()
	}
	return "(lambda (" + strings.Join(parts, " ") + ") " + l.Body.String() + ")"
}

// Sequence evaluates its expressions in order and yields the last value.
type Sequence struct {
	Exprs []Expr
}

func (s *Sequence) exprNode() {}
func (s *Sequence) String() string {
	parts := make([]string, len(s.Exprs))
	for i, e := range s.Exprs {
		parts[i] = e.String()
	}
	return "(begin " + strings.Join(parts, " ") + ")"
}

// If branches on the truthiness of Cond.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (i *If) exprNode() {}
func (i *If) String() string {
	return "(if " + i.Cond.String() + " " + i.Then.String() + " " + i.Else.String() + ")"
}

// Cond is a multi-clause conditional. Evaluation is not implemented; the
// node exists so cond blocks survive on the canvas.
type Cond struct {
	Clauses []Expr
}

func (c *Cond) exprNode() {}
func (c *Cond) String() string {
	parts := make([]string, len(c.Clauses))
	for i, cl := range c.Clauses {
		parts[i] = cl.String()
	}
	return "(cond " + strings.Join(parts, " ") + ")"
}
