package evaluator

import (
	"fmt"

	"github.com/grovelang/grove/internal/diagnostics"
)

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

func newError(kind diagnostics.Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

// emptyList returns a fresh empty proper list.
func emptyList() *List { return &List{} }

// nativeBool maps a Go bool onto the boolean singletons.
func nativeBool(v bool) *Boolean {
	if v {
		return TRUE
	}
	return FALSE
}

// isTruthy implements the engine's truthiness rule: only an explicit
// boolean false is falsy, everything else is truthy.
func isTruthy(obj Object) bool {
	if b, ok := obj.(*Boolean); ok {
		return b.Value
	}
	return true
}

// objectsEqual is deep structural equality over the value union. Functions
// and builtins compare by identity.
func objectsEqual(a, b Object) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av.Value == bv.Value
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Heads) != len(bv.Heads) {
			return false
		}
		for i := range av.Heads {
			if !objectsEqual(av.Heads[i], bv.Heads[i]) {
				return false
			}
		}
		if (av.Tail == nil) != (bv.Tail == nil) {
			return false
		}
		if av.Tail != nil {
			return objectsEqual(av.Tail, bv.Tail)
		}
		return true
	default:
		return a == b
	}
}
