package forest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grovelang/grove/internal/ast"
)

func TestMoveIntoSlot(t *testing.T) {
	f := NewForest()
	src := f.Create(&ast.NumberLit{Value: 42}, Point{})
	dst := f.Create(&ast.Call{
		Called: &ast.Var{Name: "+"},
		Args:   []ast.Expr{ast.NewHole(), &ast.NumberLit{Value: 1}},
	}, Point{})

	if err := f.Move(Location{Tree: src}, Location{Tree: dst, Path: IndexPath{1}}); err != nil {
		t.Fatal(err)
	}

	// Source was its own root, so the whole source tree is gone.
	if _, ok := f.Lookup(src.ID); ok {
		t.Errorf("moving a root should remove the source tree")
	}
	got, err := Resolve(dst, IndexPath{1})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "42" {
		t.Errorf("destination slot = %s, want 42", got)
	}
}

func TestMoveLeavesHoleAtSource(t *testing.T) {
	f := NewForest()
	src := f.Create(&ast.Sequence{Exprs: []ast.Expr{&ast.NumberLit{Value: 7}}}, Point{})
	dst := f.Create(&ast.Call{Called: ast.NewHole(), Args: []ast.Expr{ast.NewHole()}}, Point{})

	if err := f.Move(
		Location{Tree: src, Path: IndexPath{0}},
		Location{Tree: dst, Path: IndexPath{1}},
	); err != nil {
		t.Fatal(err)
	}

	left, _ := Resolve(src, IndexPath{0})
	if !ast.IsHole(left) {
		t.Errorf("source slot should be a hole, got %s", left)
	}
	moved, _ := Resolve(dst, IndexPath{1})
	if moved.String() != "7" {
		t.Errorf("destination slot = %s, want 7", moved)
	}
}

func TestMoveToRootIsNoOp(t *testing.T) {
	f := NewForest()
	src := f.Create(&ast.NumberLit{Value: 1}, Point{})
	dst := f.Create(&ast.NumberLit{Value: 2}, Point{})

	if err := f.Move(Location{Tree: src}, Location{Tree: dst}); err != nil {
		t.Fatal(err)
	}
	if f.Len() != 2 {
		t.Errorf("zero-length destination path must leave the forest unchanged")
	}
	if dst.Root.String() != "2" {
		t.Errorf("destination root changed: %s", dst.Root)
	}
}

func TestMoveOntoItselfIsNoOp(t *testing.T) {
	f := NewForest()
	tree := f.Create(&ast.Sequence{Exprs: []ast.Expr{&ast.NumberLit{Value: 5}}}, Point{})

	loc := Location{Tree: tree, Path: IndexPath{0}}
	if err := f.Move(loc, loc); err != nil {
		t.Fatal(err)
	}
	got, _ := Resolve(tree, IndexPath{0})
	if got.String() != "5" {
		t.Errorf("moving a node onto itself should change nothing, got %s", got)
	}
}

func TestMovePromotesDisplacedContent(t *testing.T) {
	f := NewForest()
	src := f.Create(&ast.NumberLit{Value: 1}, Point{})
	dst := f.Create(&ast.Sequence{Exprs: []ast.Expr{&ast.StringLit{Value: "keep me"}}}, Point{})

	if err := f.Move(Location{Tree: src}, Location{Tree: dst, Path: IndexPath{0}}); err != nil {
		t.Fatal(err)
	}

	// The displaced string is not discarded: it lives on as a new tree.
	var promoted *Tree
	for _, tree := range f.Enumerate() {
		if tree.Root.String() == `"keep me"` {
			promoted = tree
		}
	}
	if promoted == nil {
		t.Fatalf("displaced destination content was silently discarded")
	}
	got, _ := Resolve(dst, IndexPath{0})
	if got.String() != "1" {
		t.Errorf("destination slot = %s, want 1", got)
	}
}

func TestCopyLeavesHoleAndDuplicates(t *testing.T) {
	f := NewForest()
	src := f.Create(&ast.Sequence{Exprs: []ast.Expr{
		&ast.Call{Called: &ast.Var{Name: "list"}, Args: []ast.Expr{&ast.NumberLit{Value: 1}}},
	}}, Point{})
	dst := f.Create(&ast.Sequence{Exprs: []ast.Expr{ast.NewHole()}}, Point{})

	original, _ := Resolve(src, IndexPath{0})
	if err := f.Copy(
		Location{Tree: src, Path: IndexPath{0}},
		Location{Tree: dst, Path: IndexPath{0}},
	); err != nil {
		t.Fatal(err)
	}

	left, _ := Resolve(src, IndexPath{0})
	if !ast.IsHole(left) {
		t.Errorf("copy should leave a hole at a non-root source, got %s", left)
	}

	dup, _ := Resolve(dst, IndexPath{0})
	if diff := cmp.Diff(original.String(), dup.String()); diff != "" {
		t.Errorf("duplicate differs structurally (-want +got):\n%s", diff)
	}
	if dup == original {
		t.Errorf("duplicate must not share identity with the source node")
	}
}

// Copying a tree's root removes the source tree, turning a root copy into
// move-with-duplicate. The asymmetry is long-standing editor behavior; this
// test pins it so it only changes deliberately.
func TestCopyRootRemovesSourceTree(t *testing.T) {
	f := NewForest()
	src := f.Create(&ast.NumberLit{Value: 9}, Point{})
	dst := f.Create(&ast.Sequence{Exprs: []ast.Expr{ast.NewHole()}}, Point{})

	if err := f.Copy(Location{Tree: src}, Location{Tree: dst, Path: IndexPath{0}}); err != nil {
		t.Fatal(err)
	}

	if _, ok := f.Lookup(src.ID); ok {
		t.Errorf("copying from a root should remove the source tree")
	}
	got, _ := Resolve(dst, IndexPath{0})
	if got.String() != "9" {
		t.Errorf("destination slot = %s, want 9", got)
	}
}

func TestCopyToRootIsNoOp(t *testing.T) {
	f := NewForest()
	src := f.Create(&ast.NumberLit{Value: 1}, Point{})
	dst := f.Create(&ast.NumberLit{Value: 2}, Point{})

	if err := f.Copy(Location{Tree: src}, Location{Tree: dst}); err != nil {
		t.Fatal(err)
	}
	if f.Len() != 2 || src.Root.String() != "1" {
		t.Errorf("zero-length destination path must leave the forest unchanged")
	}
}

func TestOrphanDetachesIntoNewTree(t *testing.T) {
	f := NewForest()
	tree := f.Create(&ast.Sequence{Exprs: []ast.Expr{&ast.NumberLit{Value: 3}}}, Point{})

	if err := f.Orphan(Location{Tree: tree, Path: IndexPath{0}}); err != nil {
		t.Fatal(err)
	}

	left, _ := Resolve(tree, IndexPath{0})
	if !ast.IsHole(left) {
		t.Errorf("orphaned slot should be a hole, got %s", left)
	}
	if f.Len() != 2 {
		t.Fatalf("orphaned node should become a standalone tree")
	}
}

func TestOrphanRootIsNoOp(t *testing.T) {
	f := NewForest()
	tree := f.Create(&ast.NumberLit{Value: 3}, Point{})

	if err := f.Orphan(Location{Tree: tree}); err != nil {
		t.Fatal(err)
	}
	if f.Len() != 1 {
		t.Errorf("orphaning a root must leave the forest unchanged")
	}
}

func TestOrphanedHoleVanishes(t *testing.T) {
	f := NewForest()
	tree := f.Create(&ast.Sequence{Exprs: []ast.Expr{ast.NewHole()}}, Point{})

	if err := f.Orphan(Location{Tree: tree, Path: IndexPath{0}}); err != nil {
		t.Fatal(err)
	}
	if f.Len() != 1 {
		t.Errorf("detaching a hole should not create a new tree")
	}
}
