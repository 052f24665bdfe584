package forest

import (
	"fmt"

	"github.com/grovelang/grove/internal/ast"
	"github.com/grovelang/grove/internal/diagnostics"
)

// IndexPath locates a node within a tree as a sequence of child-slot
// selections starting at the root. The empty path is the root itself.
type IndexPath []int

// Location addresses a node in the forest: a tree plus an index path.
type Location struct {
	Tree *Tree
	Path IndexPath
}

// Resolve walks path from the tree's root. Each step requires the current
// node to be a composite kind with the index in range, otherwise the walk
// fails with diagnostics.ErrInvalidPath.
func Resolve(tree *Tree, path IndexPath) (ast.Expr, error) {
	node := tree.Root
	for depth, index := range path {
		if !ast.IsComposite(node) {
			return nil, fmt.Errorf("tree %s: step %d selects into a leaf: %w",
				tree.ID, depth, diagnostics.ErrInvalidPath)
		}
		child, ok := ast.ChildAt(node, index)
		if !ok {
			return nil, fmt.Errorf("tree %s: step %d index %d out of range: %w",
				tree.ID, depth, index, diagnostics.ErrInvalidPath)
		}
		node = child
	}
	return node, nil
}

// resolveSlot resolves path to its node along with the parent and slot index
// holding it, so the slot can be rewritten in place. For the empty path the
// parent is nil.
func resolveSlot(tree *Tree, path IndexPath) (parent ast.Expr, slot int, node ast.Expr, err error) {
	if len(path) == 0 {
		return nil, 0, tree.Root, nil
	}
	parent, err = Resolve(tree, path[:len(path)-1])
	if err != nil {
		return nil, 0, nil, err
	}
	slot = path[len(path)-1]
	if !ast.IsComposite(parent) {
		return nil, 0, nil, fmt.Errorf("tree %s: step %d selects into a leaf: %w",
			tree.ID, len(path)-1, diagnostics.ErrInvalidPath)
	}
	node, ok := ast.ChildAt(parent, slot)
	if !ok {
		return nil, 0, nil, fmt.Errorf("tree %s: step %d index %d out of range: %w",
			tree.ID, len(path)-1, slot, diagnostics.ErrInvalidPath)
	}
	return parent, slot, node, nil
}
