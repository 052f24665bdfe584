package forest

import (
	"strconv"

	"github.com/grovelang/grove/internal/ast"
)

// Point is placement metadata for the external renderer. The engine carries
// it around but never interprets it.
type Point struct {
	X float64
	Y float64
}

// Tree is an independently owned root expression with a stable id and a
// canvas position. Exactly one Tree owns any given Expr node transitively;
// subtrees are never aliased across two Trees.
type Tree struct {
	ID       string
	Root     ast.Expr
	Location Point
}

// Forest is the ordered collection of all trees in a session. Ids are
// assigned monotonically and never reused within a session.
type Forest struct {
	trees  []*Tree
	nextID int
}

// NewForest returns an empty forest.
func NewForest() *Forest {
	return &Forest{}
}

// Create wraps root in a fresh tree, assigns the next id and appends it.
// A nil root is normalized to a hole so an empty draft tree is still
// addressable.
func (f *Forest) Create(root ast.Expr, location Point) *Tree {
	if root == nil {
		root = ast.NewHole()
	}
	tree := &Tree{
		ID:       strconv.Itoa(f.nextID),
		Root:     root,
		Location: location,
	}
	f.nextID++
	f.trees = append(f.trees, tree)
	return tree
}

// Remove deletes the tree with the given id. Unknown ids are ignored.
func (f *Forest) Remove(id string) {
	for i, tree := range f.trees {
		if tree.ID == id {
			f.trees = append(f.trees[:i], f.trees[i+1:]...)
			return
		}
	}
}

// Lookup finds a tree by id with a linear scan; forests are editor-scale.
func (f *Forest) Lookup(id string) (*Tree, bool) {
	for _, tree := range f.trees {
		if tree.ID == id {
			return tree, true
		}
	}
	return nil, false
}

// Enumerate returns a snapshot copy of the tree list. Forest mutations after
// the call do not affect snapshots already handed out.
func (f *Forest) Enumerate() []*Tree {
	out := make([]*Tree, len(f.trees))
	copy(out, f.trees)
	return out
}

// Len reports the number of trees.
func (f *Forest) Len() int {
	return len(f.trees)
}
