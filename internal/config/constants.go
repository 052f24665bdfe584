package config

// Type tag names used across the typesystem, evaluator and builtin signatures.
const (
	AnyTypeName              = "Any"
	NeverTypeName            = "Never"
	NullTypeName             = "Null"
	NumberTypeName           = "Number"
	IntegerTypeName          = "Integer"
	BooleanTypeName          = "Boolean"
	StringTypeName           = "String"
	SymbolTypeName           = "Symbol"
	ListTypeName             = "List"
	FunctionTypeName         = "Function"
	VariadicFunctionTypeName = "VariadicFunction"
	PromiseTypeName          = "Promise"
)

// MaxEvalDepth caps Eval recursion to fail cleanly instead of overflowing
// the goroutine stack on runaway recursion.
const MaxEvalDepth = 10000

// DisplayFloatPrecision controls how many significant digits display/write
// print for non-integral numbers.
const DisplayFloatPrecision = 12

// NoVariadicLimit marks the absence of an upper arity bound on a
// variadic function type.
const NoVariadicLimit = -1
