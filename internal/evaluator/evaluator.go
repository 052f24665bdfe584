package evaluator

import (
	"io"
	"os"

	"github.com/grovelang/grove/internal/ast"
	"github.com/grovelang/grove/internal/config"
	"github.com/grovelang/grove/internal/diagnostics"
)

// Evaluator is a call-by-value tree walker. Evaluation is synchronous and
// pure apart from writes to Out by the display builtins; every failure is an
// *Error object propagating up the recursive walk with no local recovery.
type Evaluator struct {
	Out io.Writer
	// Defines is the session's table of top-level definitions, consulted
	// after the lexical environment.
	Defines *Defines

	depth int
}

func New(defines *Defines) *Evaluator {
	if defines == nil {
		defines = NewDefines()
	}
	return &Evaluator{
		Out:     os.Stdout,
		Defines: defines,
	}
}

// Eval evaluates node in env.
func (e *Evaluator) Eval(node ast.Expr, env *Environment) Object {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > config.MaxEvalDepth {
		return newError(diagnostics.DepthExceeded, "maximum recursion depth exceeded")
	}

	switch node := node.(type) {
	case *ast.NumberLit:
		return &Number{Value: node.Value}
	case *ast.BoolLit:
		return nativeBool(node.Value)
	case *ast.StringLit:
		return &String{Value: node.Value}
	case *ast.SymbolLit:
		return &Symbol{Value: node.Value}
	case *ast.ListLit:
		return quotedValue(node)
	case *ast.Hole:
		return newError(diagnostics.HoleEvaluated, "evaluated an empty slot")
	case *ast.Var:
		return e.evalVar(node, env)
	case *ast.Call:
		return e.evalCall(node, env)
	case *ast.Define:
		return e.evalDefine(node, env)
	case *ast.Let:
		return e.evalLet(node, env)
	case *ast.Letrec:
		return e.evalLetrec(node, env)
	case *ast.Lambda:
		return e.evalLambda(node, env)
	case *ast.Sequence:
		return e.evalSequence(node, env)
	case *ast.If:
		return e.evalIf(node, env)
	case *ast.Cond:
		return newError(diagnostics.NotImplemented, "cond is not implemented")
	case *ast.TypeLit:
		return newError(diagnostics.NotImplemented, "cannot evaluate a type in expression position")
	case *ast.NameBinding:
		return newError(diagnostics.NotImplemented, "cannot evaluate a bare name binding")
	default:
		return newError(diagnostics.NotImplemented, "unknown expression kind %T", node)
	}
}

func (e *Evaluator) evalVar(node *ast.Var, env *Environment) Object {
	if binding, ok := env.Get(node.Name); ok {
		val, set := binding.Cell.Get()
		if !set {
			return newError(diagnostics.UnboundVariable,
				"%s is referenced before it is initialized", node.Name)
		}
		return val
	}
	cell, errObj := e.Defines.Get(node.Name)
	if errObj != nil {
		return errObj
	}
	val, set := cell.Get()
	if !set {
		return newError(diagnostics.UnboundVariable,
			"%s is referenced before it is initialized", node.Name)
	}
	return val
}

func (e *Evaluator) evalCall(node *ast.Call, env *Environment) Object {
	called := e.Eval(node.Called, env)
	if isError(called) {
		return called
	}
	// Arguments are evaluated left to right, eagerly, before arity or type
	// validation runs.
	args := make([]Object, len(node.Args))
	for i, arg := range node.Args {
		val := e.Eval(arg, env)
		if isError(val) {
			return val
		}
		args[i] = val
	}
	return e.Apply(called, args)
}

// evalDefine registers a lazy producer for the bound name. The value
// expression is not evaluated here: it runs in the environment current at
// definition time when the defines table first forces the name.
func (e *Evaluator) evalDefine(node *ast.Define, env *Environment) Object {
	binding, ok := node.Binding.(*ast.NameBinding)
	if !ok {
		return newError(diagnostics.TypeMismatch,
			"define expects a name binding on the left, got %s", node.Binding)
	}
	value := node.Value
	e.Defines.Add(binding.Name, func() Object {
		return e.Eval(value, env)
	})
	return emptyList()
}

// evalLet evaluates every binding value in the outer environment, then
// extends the scope with all bindings at once. Bindings cannot see each
// other.
func (e *Evaluator) evalLet(node *ast.Let, env *Environment) Object {
	local := NewEnvironment()
	for _, pair := range node.Pairs {
		binding, ok := pair.Binding.(*ast.NameBinding)
		if !ok {
			return newError(diagnostics.TypeMismatch,
				"let expects a name binding, got %s", pair.Binding)
		}
		val := e.Eval(pair.Value, env)
		if isError(val) {
			return val
		}
		local.Set(binding.Name, val)
	}
	return e.Eval(node.Body, Merge(env, local))
}

// evalLetrec pre-allocates an empty cell per binding so every value
// expression already sees all sibling names. Values are evaluated in order;
// a direct reference to a sibling cell that is not populated yet fails,
// while a reference deferred inside a lambda body succeeds once all cells
// are set.
func (e *Evaluator) evalLetrec(node *ast.Letrec, env *Environment) Object {
	local := NewEnvironment()
	cells := make([]*Cell, len(node.Pairs))
	for i, pair := range node.Pairs {
		binding, ok := pair.Binding.(*ast.NameBinding)
		if !ok {
			return newError(diagnostics.TypeMismatch,
				"letrec expects a name binding, got %s", pair.Binding)
		}
		cells[i] = NewCell()
		local.SetBinding(binding.Name, &Binding{Cell: cells[i]})
	}
	scope := Merge(env, local)
	for i, pair := range node.Pairs {
		val := e.Eval(pair.Value, scope)
		if isError(val) {
			return val
		}
		cells[i].Set(val)
	}
	return e.Eval(node.Body, scope)
}

// evalLambda captures the current environment and the parameter signature.
// The body is not evaluated until the closure is applied.
func (e *Evaluator) evalLambda(node *ast.Lambda, env *Environment) Object {
	params := make([]Param, len(node.Params))
	for i, p := range node.Params {
		binding, ok := p.(*ast.NameBinding)
		if !ok {
			return newError(diagnostics.TypeMismatch,
				"lambda parameter %d is not a name binding", i)
		}
		params[i] = Param{Name: binding.Name, Type: binding.Type, Variadic: binding.Variadic}
	}
	return &Function{Params: params, Body: node.Body, Env: env}
}

func (e *Evaluator) evalSequence(node *ast.Sequence, env *Environment) Object {
	var result Object = emptyList()
	for _, expr := range node.Exprs {
		result = e.Eval(expr, env)
		if isError(result) {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalIf(node *ast.If, env *Environment) Object {
	cond := e.Eval(node.Cond, env)
	if isError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.Eval(node.Then, env)
	}
	return e.Eval(node.Else, env)
}

// quotedValue converts literal expression data to its value verbatim,
// without evaluation. Variables and name bindings inside quoted data read as
// symbols; holes fail as everywhere else.
func quotedValue(expr ast.Expr) Object {
	switch node := expr.(type) {
	case *ast.NumberLit:
		return &Number{Value: node.Value}
	case *ast.BoolLit:
		return nativeBool(node.Value)
	case *ast.StringLit:
		return &String{Value: node.Value}
	case *ast.SymbolLit:
		return &Symbol{Value: node.Value}
	case *ast.Var:
		return &Symbol{Value: node.Name}
	case *ast.NameBinding:
		return &Symbol{Value: node.Name}
	case *ast.Hole:
		return newError(diagnostics.HoleEvaluated, "evaluated an empty slot inside quoted data")
	case *ast.ListLit:
		heads := make([]Object, len(node.Heads))
		for i, h := range node.Heads {
			val := quotedValue(h)
			if isError(val) {
				return val
			}
			heads[i] = val
		}
		list := &List{Heads: heads}
		if node.Tail != nil {
			tail := quotedValue(node.Tail)
			if isError(tail) {
				return tail
			}
			list.Tail = tail
		}
		return list
	default:
		return newError(diagnostics.NotImplemented, "%s cannot appear in quoted data", expr)
	}
}
