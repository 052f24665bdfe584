package diagnostics

import "errors"

// Kind classifies an engine failure. Structural operations wrap the matching
// sentinel error; the evaluator carries the Kind on its error objects.
type Kind string

const (
	InvalidPath     Kind = "InvalidPath"
	HoleEvaluated   Kind = "HoleEvaluated"
	UnboundVariable Kind = "UnboundVariable"
	NotCallable     Kind = "NotCallable"
	ArityMismatch   Kind = "ArityMismatch"
	TypeMismatch    Kind = "TypeMismatch"
	NotImplemented  Kind = "NotImplemented"
	// DepthExceeded guards the evaluator's recursion cap; it is a resource
	// failure, not part of the language-level taxonomy.
	DepthExceeded Kind = "DepthExceeded"
)

// ErrInvalidPath is the sentinel for structural failures in forest
// resolution and mutation. Callers test with errors.Is.
var ErrInvalidPath = errors.New("invalid path")
