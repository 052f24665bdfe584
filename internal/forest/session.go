package forest

import (
	"io"

	"github.com/google/uuid"

	"github.com/grovelang/grove/internal/ast"
	"github.com/grovelang/grove/internal/evaluator"
)

// ParseFunc is the external parser collaborator: a pure function from
// source text to an expression. The engine never parses text itself.
type ParseFunc func(src string) (ast.Expr, error)

// Session owns the mutable state of one editor session: the forest of trees
// being edited and the defines table evaluation runs resolve globals
// against. All operations on a session must come from one sequential
// control flow; concurrent mutation is the caller's problem to serialize.
type Session struct {
	ID      string
	Forest  *Forest
	Defines *evaluator.Defines
}

func NewSession() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Forest:  NewForest(),
		Defines: evaluator.NewDefines(),
	}
}

// Reset discards the defines table ahead of a fresh evaluation pass. The
// forest is left intact: resetting re-runs definitions, it does not edit
// trees.
func (s *Session) Reset() {
	s.Defines = evaluator.NewDefines()
}

// BaseEnv returns a fresh environment holding the builtin library.
func (s *Session) BaseEnv() *evaluator.Environment {
	env := evaluator.NewEnvironment()
	evaluator.RegisterBuiltins(env)
	return env
}

// EvalAt resolves loc and evaluates the node there against the session's
// defines and the builtin base environment. Structural failures come back
// as a Go error; evaluation failures come back as the evaluator's error
// object. Program output goes to out when given.
func (s *Session) EvalAt(loc Location, out io.Writer) (evaluator.Object, error) {
	node, err := Resolve(loc.Tree, loc.Path)
	if err != nil {
		return nil, err
	}
	e := evaluator.New(s.Defines)
	if out != nil {
		e.Out = out
	}
	return e.Eval(node, s.BaseEnv()), nil
}

// Inject parses src with the external parser and adds the result to the
// forest as a new tree at location.
func (s *Session) Inject(src string, parse ParseFunc, location Point) (*Tree, error) {
	expr, err := parse(src)
	if err != nil {
		return nil, err
	}
	return s.Forest.Create(expr, location), nil
}
