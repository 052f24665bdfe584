package evaluator

import "github.com/grovelang/grove/internal/ast"

// ToExpr reifies a value as a literal expression so the editor can inject
// an evaluation result back onto the canvas as a new tree. Closures become
// lambda forms over a copy of their body; builtins become a variable
// reference to be re-resolved by name, since native code has no literal
// form.
func ToExpr(obj Object) ast.Expr {
	switch v := obj.(type) {
	case *Number:
		return &ast.NumberLit{Value: v.Value}
	case *Boolean:
		return &ast.BoolLit{Value: v.Value}
	case *String:
		return &ast.StringLit{Value: v.Value}
	case *Symbol:
		return &ast.SymbolLit{Value: v.Value}
	case *List:
		out := &ast.ListLit{Heads: make([]ast.Expr, len(v.Heads))}
		for i, h := range v.Heads {
			out.Heads[i] = ToExpr(h)
		}
		if v.Tail != nil {
			out.Tail = ToExpr(v.Tail)
		}
		return out
	case *Function:
		params := make([]ast.Expr, len(v.Params))
		for i, p := range v.Params {
			params[i] = &ast.NameBinding{Name: p.Name, Type: p.Type, Variadic: p.Variadic}
		}
		return &ast.Lambda{Params: params, Body: ast.CopyExpr(v.Body)}
	case *Builtin:
		return &ast.Var{Name: v.Name}
	default:
		return ast.NewHole()
	}
}
