package evaluator

import (
	"bytes"
	"testing"

	"github.com/grovelang/grove/internal/ast"
	"github.com/grovelang/grove/internal/diagnostics"
)

func callBuiltin(t *testing.T, name string, args ...Object) Object {
	t.Helper()
	b, ok := Builtins[name]
	if !ok {
		t.Fatalf("builtin %q is not registered", name)
	}
	return New(NewDefines()).Apply(b, args)
}

func numbers(vs ...float64) []Object {
	out := make([]Object, len(vs))
	for i, v := range vs {
		out[i] = &Number{Value: v}
	}
	return out
}

func properList(items ...Object) *List { return &List{Heads: items} }

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args []Object
		want string
	}{
		{"sum", "+", numbers(1, 2, 3), "6"},
		{"sum identity", "+", nil, "0"},
		{"product", "*", numbers(2, 3, 4), "24"},
		{"product identity", "*", nil, "1"},
		{"subtraction folds left", "-", numbers(10, 3, 2), "5"},
		{"unary minus negates", "-", numbers(5), "-5"},
		{"division folds left", "/", numbers(24, 2, 3), "4"},
		{"unary divide is reciprocal", "/", numbers(4), "0.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := callBuiltin(t, tt.op, tt.args...)
			if got.Inspect() != tt.want {
				t.Errorf("(%s ...) = %s, want %s", tt.op, got.Inspect(), tt.want)
			}
		})
	}
}

func TestSubtractionRequiresAnArgument(t *testing.T) {
	got := callBuiltin(t, "-")
	errObj, ok := got.(*Error)
	if !ok || errObj.Kind != diagnostics.ArityMismatch {
		t.Errorf("(-) should fail arity validation, got %s", got.Inspect())
	}
}

func TestComparisonsChain(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args []Object
		want Object
	}{
		{"equal chain holds", "=", numbers(2, 2, 2), TRUE},
		{"equal chain breaks", "=", numbers(2, 2, 3), FALSE},
		{"strictly increasing", "<", numbers(1, 2, 3), TRUE},
		{"not strictly increasing", "<", numbers(1, 3, 2), FALSE},
		{"strictly decreasing", ">", numbers(3, 2, 1), TRUE},
		{"non-decreasing allows ties", "<=", numbers(1, 1, 2), TRUE},
		{"non-increasing allows ties", ">=", numbers(2, 2, 1), TRUE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := callBuiltin(t, tt.op, tt.args...); got != tt.want {
				t.Errorf("(%s ...) = %s, want %s", tt.op, got.Inspect(), tt.want.Inspect())
			}
		})
	}
}

func TestNotAndEqual(t *testing.T) {
	if callBuiltin(t, "not", FALSE) != Object(TRUE) {
		t.Errorf("(not #f) should be #t")
	}
	if callBuiltin(t, "not", &Number{Value: 0}) != Object(FALSE) {
		t.Errorf("zero is truthy, so (not 0) should be #f")
	}

	a := properList(&Number{Value: 1}, properList(&Symbol{Value: "x"}))
	b := properList(&Number{Value: 1}, properList(&Symbol{Value: "x"}))
	if callBuiltin(t, "equal?", a, b) != Object(TRUE) {
		t.Errorf("structurally equal lists compare unequal")
	}
	if callBuiltin(t, "equal?", a, properList()) != Object(FALSE) {
		t.Errorf("distinct lists compare equal")
	}
}

func TestPredicates(t *testing.T) {
	closure := &Function{Body: ast.NewHole(), Env: NewEnvironment()}
	improper := &List{Heads: []Object{&Number{Value: 1}}, Tail: &Number{Value: 2}}

	tests := []struct {
		name string
		op   string
		arg  Object
		want Object
	}{
		{"number", "number?", &Number{Value: 1.5}, TRUE},
		{"integer holds for whole values", "integer?", &Number{Value: 3}, TRUE},
		{"integer fails for fractions", "integer?", &Number{Value: 3.5}, FALSE},
		{"boolean", "boolean?", FALSE, TRUE},
		{"string", "string?", &String{Value: ""}, TRUE},
		{"symbol", "symbol?", &Symbol{Value: "s"}, TRUE},
		{"null holds only for empty", "null?", properList(), TRUE},
		{"null fails for non-empty", "null?", properList(TRUE), FALSE},
		{"pair fails for empty", "pair?", properList(), FALSE},
		{"pair holds for non-empty", "pair?", properList(TRUE), TRUE},
		{"list fails for improper", "list?", improper, FALSE},
		{"procedure holds for closures", "procedure?", closure, TRUE},
		{"procedure holds for builtins", "procedure?", Builtins["car"], TRUE},
		{"procedure fails for data", "procedure?", &Number{Value: 1}, FALSE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := callBuiltin(t, tt.op, tt.arg); got != tt.want {
				t.Errorf("(%s %s) = %s, want %s", tt.op, tt.arg.Inspect(), got.Inspect(), tt.want.Inspect())
			}
		})
	}
}

func TestConsCarCdr(t *testing.T) {
	cell := callBuiltin(t, "cons", &Number{Value: 1}, properList(&Number{Value: 2}))
	if cell.Inspect() != "(1 2)" {
		t.Errorf("cons onto a list = %s, want (1 2)", cell.Inspect())
	}

	pair := callBuiltin(t, "cons", &Number{Value: 1}, &Number{Value: 2})
	if pair.Inspect() != "(1 . 2)" {
		t.Errorf("cons onto a non-list = %s, want (1 . 2)", pair.Inspect())
	}

	if got := callBuiltin(t, "car", pair.(*List)); got.Inspect() != "1" {
		t.Errorf("car = %s, want 1", got.Inspect())
	}
	if got := callBuiltin(t, "cdr", pair.(*List)); got.Inspect() != "2" {
		t.Errorf("cdr of a dotted pair = %s, want the raw tail 2", got.Inspect())
	}

	for _, op := range []string{"car", "cdr"} {
		got := callBuiltin(t, op, properList())
		errObj, ok := got.(*Error)
		if !ok || errObj.Kind != diagnostics.TypeMismatch {
			t.Errorf("(%s ()) should fail, got %s", op, got.Inspect())
		}
	}
}

func TestListAndLength(t *testing.T) {
	built := callBuiltin(t, "list", &Number{Value: 1}, TRUE, &Symbol{Value: "x"})
	if built.Inspect() != "(1 #t x)" {
		t.Errorf("list = %s", built.Inspect())
	}

	if got := callBuiltin(t, "length", built.(*List)); got.Inspect() != "3" {
		t.Errorf("length = %s, want 3", got.Inspect())
	}

	improper := &List{Heads: []Object{TRUE}, Tail: TRUE}
	got := callBuiltin(t, "length", improper)
	if errObj, ok := got.(*Error); !ok || errObj.Kind != diagnostics.TypeMismatch {
		t.Errorf("length of an improper list should fail, got %s", got.Inspect())
	}
}

// map must route each element through a user closure via the evaluator, not
// just through native code.
func TestMapAppliesUserClosure(t *testing.T) {
	env := NewEnvironment()
	RegisterBuiltins(env)
	double := &Function{
		Params: []Param{{Name: "n"}},
		Body: &ast.Call{
			Called: &ast.Var{Name: "*"},
			Args:   []ast.Expr{&ast.NumberLit{Value: 2}, &ast.Var{Name: "n"}},
		},
		Env: env,
	}

	got := callBuiltin(t, "map", double, properList(numbers(1, 2, 3)...))
	if got.Inspect() != "(2 4 6)" {
		t.Errorf("map = %s, want (2 4 6)", got.Inspect())
	}

	// A failing element aborts the traversal with that error.
	failing := &Function{Params: []Param{{Name: "n"}}, Body: ast.NewHole(), Env: env}
	bad := callBuiltin(t, "map", failing, properList(numbers(1)...))
	if errObj, ok := bad.(*Error); !ok || errObj.Kind != diagnostics.HoleEvaluated {
		t.Errorf("map should propagate the closure's failure, got %s", bad.Inspect())
	}
}

func TestFilterApplyMemberAssoc(t *testing.T) {
	if got := callBuiltin(t, "filter", Builtins["integer?"], properList(numbers(1, 2.5, 3)...)); got.Inspect() != "(1 3)" {
		t.Errorf("filter = %s, want (1 3)", got.Inspect())
	}

	if got := callBuiltin(t, "apply", Builtins["+"], properList(numbers(1, 2, 3)...)); got.Inspect() != "6" {
		t.Errorf("apply = %s, want 6", got.Inspect())
	}

	xs := properList(numbers(1, 2, 3)...)
	if got := callBuiltin(t, "member", &Number{Value: 2}, xs); got.Inspect() != "(2 3)" {
		t.Errorf("member = %s, want (2 3)", got.Inspect())
	}
	if got := callBuiltin(t, "member", &Number{Value: 9}, xs); got != Object(FALSE) {
		t.Errorf("member of an absent element = %s, want #f", got.Inspect())
	}

	pairs := properList(
		properList(&Symbol{Value: "a"}, &Number{Value: 1}),
		properList(&Symbol{Value: "b"}, &Number{Value: 2}),
	)
	if got := callBuiltin(t, "assoc", &Symbol{Value: "b"}, pairs); got.Inspect() != "(b 2)" {
		t.Errorf("assoc = %s, want (b 2)", got.Inspect())
	}
	if got := callBuiltin(t, "assoc", &Symbol{Value: "c"}, pairs); got != Object(FALSE) {
		t.Errorf("assoc of an absent key = %s, want #f", got.Inspect())
	}
}

func TestStringBuiltins(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args []Object
		want string
	}{
		{"append", "string-append", []Object{&String{Value: "foo"}, &String{Value: "bar"}}, `"foobar"`},
		{"append identity", "string-append", nil, `""`},
		{"length", "string-length", []Object{&String{Value: "hello"}}, "5"},
		{"substring", "substring", []Object{&String{Value: "hello"}, &Number{Value: 1}, &Number{Value: 3}}, `"el"`},
		{"string to symbol", "string->symbol", []Object{&String{Value: "abc"}}, "abc"},
		{"symbol to string", "symbol->string", []Object{&Symbol{Value: "abc"}}, `"abc"`},
		{"number to string", "number->string", []Object{&Number{Value: 2.5}}, `"2.5"`},
		{"string to number", "string->number", []Object{&String{Value: " 42 "}}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := callBuiltin(t, tt.op, tt.args...)
			if got.Inspect() != tt.want {
				t.Errorf("(%s ...) = %s, want %s", tt.op, got.Inspect(), tt.want)
			}
		})
	}

	if got := callBuiltin(t, "string->number", &String{Value: "nope"}); got != Object(FALSE) {
		t.Errorf("non-numeric parse = %s, want #f", got.Inspect())
	}

	bad := callBuiltin(t, "substring", &String{Value: "ab"}, &Number{Value: 1}, &Number{Value: 5})
	if errObj, ok := bad.(*Error); !ok || errObj.Kind != diagnostics.TypeMismatch {
		t.Errorf("out-of-range substring should fail, got %s", bad.Inspect())
	}
}

func TestDisplayWriteNewline(t *testing.T) {
	var out bytes.Buffer
	e := New(NewDefines())
	e.Out = &out

	e.Apply(Builtins["display"], []Object{&String{Value: "hi"}})
	e.Apply(Builtins["write"], []Object{&String{Value: "hi"}})
	e.Apply(Builtins["newline"], nil)

	if out.String() != "hi\"hi\"\n" {
		t.Errorf("terminal output = %q, want %q", out.String(), "hi\"hi\"\n")
	}
}

func TestUnimplementedBuiltinsFailOnlyWhenInvoked(t *testing.T) {
	names := []string{"force", "call-with-current-continuation", "eval", "append", "reverse"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			b, ok := Builtins[name]
			if !ok {
				t.Fatalf("%q must still be registered", name)
			}
			args := make([]Object, len(b.Params))
			for i := range args {
				args[i] = TRUE
			}
			got := New(NewDefines()).Apply(b, args)
			errObj, ok := got.(*Error)
			if !ok || errObj.Kind != diagnostics.NotImplemented {
				t.Errorf("invoking %q = %s, want NotImplemented", name, got.Inspect())
			}
		})
	}
}
