package evaluator

import (
	"github.com/grovelang/grove/internal/config"
	"github.com/grovelang/grove/internal/diagnostics"
	"github.com/grovelang/grove/internal/typesystem"
)

// Apply validates args against fn's signature and invokes it. Closures get
// an environment extending their captured scope; builtins run their native
// operation on the raw values with the evaluator in hand so they can call
// back into user code.
func (e *Evaluator) Apply(fn Object, args []Object) Object {
	switch fn := fn.(type) {
	case *Function:
		if errObj := validateCall(fn.Params, args); errObj != nil {
			return errObj
		}
		return e.Eval(fn.Body, bindParams(fn.Env, fn.Params, args))
	case *Builtin:
		if errObj := validateCall(fn.Params, args); errObj != nil {
			return errObj
		}
		return fn.Fn(e, args...)
	default:
		return newError(diagnostics.NotCallable, "%s is not callable", fn.Inspect())
	}
}

// validateCall checks arity and declared argument tags. Arity is exact
// unless the last parameter is variadic, in which case the fixed prefix is
// the minimum. Each declared tag is checked structurally; a variadic
// parameter's declared type applies to every collected argument.
func validateCall(params []Param, args []Object) *Error {
	fixed := len(params)
	variadic := fixed > 0 && params[fixed-1].Variadic
	if variadic {
		fixed--
	}

	if variadic {
		if len(args) < fixed {
			return newError(diagnostics.ArityMismatch,
				"expected at least %d arguments, got %d", fixed, len(args))
		}
	} else if len(args) != fixed {
		return newError(diagnostics.ArityMismatch,
			"expected %d arguments, got %d", fixed, len(args))
	}

	for i := 0; i < fixed; i++ {
		if params[i].Type == nil {
			continue
		}
		if !tagMatches(args[i], params[i].Type) {
			return newError(diagnostics.TypeMismatch,
				"argument %d (%s): expected %s, got %s",
				i+1, params[i].Name, params[i].Type, args[i].RuntimeType())
		}
	}
	if variadic && params[fixed].Type != nil {
		for i := fixed; i < len(args); i++ {
			if !tagMatches(args[i], params[fixed].Type) {
				return newError(diagnostics.TypeMismatch,
					"argument %d (%s): expected %s, got %s",
					i+1, params[fixed].Name, params[fixed].Type, args[i].RuntimeType())
			}
		}
	}
	return nil
}

// bindParams binds fixed parameters positionally to fresh cells, collects
// the variadic rest into a trailing list, and extends the captured
// environment with the result.
func bindParams(captured *Environment, params []Param, args []Object) *Environment {
	local := NewEnvironment()
	fixed := len(params)
	variadic := fixed > 0 && params[fixed-1].Variadic
	if variadic {
		fixed--
	}
	for i := 0; i < fixed; i++ {
		local.Set(params[i].Name, args[i])
	}
	if variadic {
		rest := make([]Object, len(args)-fixed)
		copy(rest, args[fixed:])
		local.Set(params[fixed].Name, &List{Heads: rest})
	}
	return Merge(captured, local)
}

// tagMatches is the structural check at call sites: a declared tag against a
// value's runtime shape. Type variables constrain nothing here; this layer
// does substitution and tag checks only, not inference.
func tagMatches(obj Object, t typesystem.Type) bool {
	switch typ := t.(type) {
	case typesystem.ForallType:
		return tagMatches(obj, typ.Body)
	case typesystem.ConcreteType:
		switch typ.Tag {
		case config.AnyTypeName:
			return true
		case config.NeverTypeName:
			return false
		case config.NumberTypeName:
			_, ok := obj.(*Number)
			return ok
		case config.IntegerTypeName:
			n, ok := obj.(*Number)
			return ok && n.IsIntegral()
		case config.BooleanTypeName:
			_, ok := obj.(*Boolean)
			return ok
		case config.StringTypeName:
			_, ok := obj.(*String)
			return ok
		case config.SymbolTypeName:
			_, ok := obj.(*Symbol)
			return ok
		case config.NullTypeName:
			l, ok := obj.(*List)
			return ok && l.IsEmpty()
		case config.ListTypeName:
			_, ok := obj.(*List)
			return ok
		case config.FunctionTypeName, config.VariadicFunctionTypeName:
			switch obj.(type) {
			case *Function, *Builtin:
				return true
			}
			return false
		case config.PromiseTypeName:
			return false
		default:
			return false
		}
	default:
		// TypeVar and TypeVarSlot declare no tag.
		return true
	}
}
