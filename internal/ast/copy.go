package ast

// CopyExpr returns a deep copy of e: no node of the result is shared with
// the original. Type annotations are immutable value structures and are
// carried over as-is.
func CopyExpr(e Expr) Expr {
	switch node := e.(type) {
	case *Hole:
		return NewHole()
	case *NumberLit:
		return &NumberLit{Value: node.Value}
	case *BoolLit:
		return &BoolLit{Value: node.Value}
	case *StringLit:
		return &StringLit{Value: node.Value}
	case *SymbolLit:
		return &SymbolLit{Value: node.Value}
	case *Var:
		return &Var{Name: node.Name}
	case *NameBinding:
		return &NameBinding{Name: node.Name, Type: node.Type, Variadic: node.Variadic}
	case *TypeLit:
		return &TypeLit{Type: node.Type}
	case *ListLit:
		out := &ListLit{Heads: copyExprs(node.Heads)}
		if node.Tail != nil {
			out.Tail = CopyExpr(node.Tail)
		}
		return out
	case *Call:
		return &Call{Called: CopyExpr(node.Called), Args: copyExprs(node.Args)}
	case *Define:
		return &Define{Binding: CopyExpr(node.Binding), Value: CopyExpr(node.Value)}
	case *Let:
		return &Let{Pairs: copyPairs(node.Pairs), Body: CopyExpr(node.Body)}
	case *Letrec:
		return &Letrec{Pairs: copyPairs(node.Pairs), Body: CopyExpr(node.Body)}
	case *Lambda:
		return &Lambda{Params: copyExprs(node.Params), Body: CopyExpr(node.Body)}
	case *Sequence:
		return &Sequence{Exprs: copyExprs(node.Exprs)}
	case *If:
		return &If{Cond: CopyExpr(node.Cond), Then: CopyExpr(node.Then), Else: CopyExpr(node.Else)}
	case *Cond:
		return &Cond{Clauses: copyExprs(node.Clauses)}
	default:
		return NewHole()
	}
}

func copyExprs(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = CopyExpr(e)
	}
	return out
}

func copyPairs(pairs []LetPair) []LetPair {
	if pairs == nil {
		return nil
	}
	out := make([]LetPair, len(pairs))
	for i, p := range pairs {
		out[i] = LetPair{Binding: CopyExpr(p.Binding), Value: CopyExpr(p.Value)}
	}
	return out
}
