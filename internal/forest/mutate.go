package forest

import "github.com/grovelang/grove/internal/ast"

// The mutation engine. All three operations are synchronous and atomic with
// respect to the forest: every resolution happens before the first write, so
// a failed call leaves the forest exactly as it was.

// Move relocates the node at src into the slot at dst.
//
// No-ops: dst path of length zero (a tree's root cannot be replaced by a
// structural move), dst resolving to the same node as src, and dst resolving
// to its own tree's root. When src is its tree's root the whole source tree
// is removed from the forest; otherwise the vacated slot becomes a hole. A
// non-hole node already sitting at dst is promoted to a new standalone tree
// before the slot is overwritten, so it is never silently discarded.
func (f *Forest) Move(src, dst Location) error {
	if len(dst.Path) == 0 {
		return nil
	}
	srcParent, srcSlot, srcNode, err := resolveSlot(src.Tree, src.Path)
	if err != nil {
		return err
	}
	dstParent, dstSlot, dstNode, err := resolveSlot(dst.Tree, dst.Path)
	if err != nil {
		return err
	}
	if dstNode == srcNode || dstNode == dst.Tree.Root {
		return nil
	}

	if srcParent == nil {
		f.Remove(src.Tree.ID)
	} else {
		ast.SetChildAt(srcParent, srcSlot, ast.NewHole())
	}
	f.promote(dstNode, dst.Tree.Location)
	ast.SetChildAt(dstParent, dstSlot, srcNode)
	return nil
}

// Copy places a deep copy of the node at src into the slot at dst, applying
// the same no-op and displaced-destination rules as Move. The original is
// left behind as a hole.
//
// When src is its own tree's root the source tree is removed outright,
// making a root copy behave like a move that duplicates at the destination.
// That asymmetry matches the editor's established behavior and is pinned by
// tests; do not "fix" it silently.
func (f *Forest) Copy(src, dst Location) error {
	if len(dst.Path) == 0 {
		return nil
	}
	srcParent, srcSlot, srcNode, err := resolveSlot(src.Tree, src.Path)
	if err != nil {
		return err
	}
	dstParent, dstSlot, dstNode, err := resolveSlot(dst.Tree, dst.Path)
	if err != nil {
		return err
	}
	if dstNode == srcNode || dstNode == dst.Tree.Root {
		return nil
	}

	dup := ast.CopyExpr(srcNode)
	if srcParent == nil {
		f.Remove(src.Tree.ID)
	} else {
		ast.SetChildAt(srcParent, srcSlot, ast.NewHole())
	}
	f.promote(dstNode, dst.Tree.Location)
	ast.SetChildAt(dstParent, dstSlot, dup)
	return nil
}

// Orphan detaches the node at loc into a standalone tree. A node that is
// already a tree root has no parent to detach from, so the call is a no-op.
// Detached holes simply vanish; anything else becomes a new tree.
func (f *Forest) Orphan(loc Location) error {
	if len(loc.Path) == 0 {
		return nil
	}
	parent, slot, node, err := resolveSlot(loc.Tree, loc.Path)
	if err != nil {
		return err
	}
	ast.SetChildAt(parent, slot, ast.NewHole())
	f.promote(node, loc.Tree.Location)
	return nil
}

// promote lifts a displaced non-hole node into its own tree so no content
// is lost by an overwrite.
func (f *Forest) promote(node ast.Expr, location Point) {
	if node == nil || ast.IsHole(node) {
		return
	}
	f.Create(node, location)
}
