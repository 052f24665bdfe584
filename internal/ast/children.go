package ast

// Each composite kind exposes a fixed, ordered set of child slots. The
// ordering is part of the node's contract:
//
//	ListLit:  heads..., tail (when present)
//	Call:     called, args...
//	Define:   binding, value
//	Let(rec): binding0, value0, binding1, value1, ..., body
//	Lambda:   params..., body
//	Sequence: exprs...
//	If:       cond, then, else
//	Cond:     clauses...
//
// Leaf kinds (literals, Var, NameBinding, TypeLit, Hole) have no slots.

// IsComposite reports whether e is a kind that carries child slots, even
// when the current slot count happens to be zero.
func IsComposite(e Expr) bool {
	switch e.(type) {
	case *ListLit, *Call, *Define, *Let, *Letrec, *Lambda, *Sequence, *If, *Cond:
		return true
	default:
		return false
	}
}

// ChildCount returns the number of child slots e currently exposes.
func ChildCount(e Expr) int {
	switch node := e.(type) {
	case *ListLit:
		if node.Tail != nil {
			return len(node.Heads) + 1
		}
		return len(node.Heads)
	case *Call:
		return len(node.Args) + 1
	case *Define:
		return 2
	case *Let:
		return 2*len(node.Pairs) + 1
	case *Letrec:
		return 2*len(node.Pairs) + 1
	case *Lambda:
		return len(node.Params) + 1
	case *Sequence:
		return len(node.Exprs)
	case *If:
		return 3
	case *Cond:
		return len(node.Clauses)
	default:
		return 0
	}
}

// ChildAt returns the child in slot i, or false when e is a leaf or i is out
// of range.
func ChildAt(e Expr, i int) (Expr, bool) {
	if i < 0 || i >= ChildCount(e) {
		return nil, false
	}
	switch node := e.(type) {
	case *ListLit:
		if i < len(node.Heads) {
			return node.Heads[i], true
		}
		return node.Tail, true
	case *Call:
		if i == 0 {
			return node.Called, true
		}
		return node.Args[i-1], true
	case *Define:
		if i == 0 {
			return node.Binding, true
		}
		return node.Value, true
	case *Let:
		return letChildAt(node.Pairs, node.Body, i), true
	case *Letrec:
		return letChildAt(node.Pairs, node.Body, i), true
	case *Lambda:
		if i < len(node.Params) {
			return node.Params[i], true
		}
		return node.Body, true
	case *Sequence:
		return node.Exprs[i], true
	case *If:
		switch i {
		case 0:
			return node.Cond, true
		case 1:
			return node.Then, true
		default:
			return node.Else, true
		}
	case *Cond:
		return node.Clauses[i], true
	default:
		return nil, false
	}
}

// SetChildAt replaces the child in slot i without disturbing sibling slots.
// A nil child is normalized to a hole so slots are never left unpopulated.
// Returns false when e is a leaf or i is out of range.
func SetChildAt(e Expr, i int, child Expr) bool {
	if i < 0 || i >= ChildCount(e) {
		return false
	}
	if child == nil {
		child = NewHole()
	}
	switch node := e.(type) {
	case *ListLit:
		if i < len(node.Heads) {
			node.Heads[i] = child
		} else {
			node.Tail = child
		}
	case *Call:
		if i == 0 {
			node.Called = child
		} else {
			node.Args[i-1] = child
		}
	case *Define:
		if i == 0 {
			node.Binding = child
		} else {
			node.Value = child
		}
	case *Let:
		letSetChildAt(node.Pairs, &node.Body, i, child)
	case *Letrec:
		letSetChildAt(node.Pairs, &node.Body, i, child)
	case *Lambda:
		if i < len(node.Params) {
			node.Params[i] = child
		} else {
			node.Body = child
		}
	case *Sequence:
		node.Exprs[i] = child
	case *If:
		switch i {
		case 0:
			node.Cond = child
		case 1:
			node.Then = child
		default:
			node.Else = child
		}
	case *Cond:
		node.Clauses[i] = child
	default:
		return false
	}
	return true
}

func letChildAt(pairs []LetPair, body Expr, i int) Expr {
	if i == 2*len(pairs) {
		return body
	}
	pair := pairs[i/2]
	if i%2 == 0 {
		return pair.Binding
	}
	return pair.Value
}

func letSetChildAt(pairs []LetPair, body *Expr, i int, child Expr) {
	if i == 2*len(pairs) {
		*body = child
		return
	}
	if i%2 == 0 {
		pairs[i/2].Binding = child
	} else {
		pairs[i/2].Value = child
	}
}
