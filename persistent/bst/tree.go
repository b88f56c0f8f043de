package bst

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/bst/maybe"
	"github.com/npillmayer/bst/order"
	tp "github.com/xlab/treeprint"
)

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding
  clones of nodes.

- Modifications locate a path of slots from the root down to the position of change,
  build the replacement subtree for the bottom of the path and then fold the path
  bottom-up, cloning every node on it (see slotPath.foldR). Nodes off the path are shared.

- A new modified incarnation of a tree always is reflected by a new tree.root.

*/

// Tree is a persistent binary search tree. Trees are values; operations never
// modify a tree but return a new one.
//
// The zero value is an empty tree without an ordering predicate. It answers
// queries, but inserting more than one value will panic. Create trees with
// New or Ordered.
type Tree[T any] struct {
	comesBefore order.ComesBefore[T]
	root        *node[T]
}

// New creates an empty tree, ordered by predicate comesBefore. All trees derived
// from it will use the same predicate.
//
//	tree := bst.New(order.ByDistance())
//	tree = tree.Insert(order.Point2{X: 3, Y: 4})
func New[T any](comesBefore order.ComesBefore[T]) Tree[T] {
	assertThat(comesBefore != nil, "ordering predicate may not be nil")
	return Tree[T]{comesBefore: comesBefore}
}

// Ordered creates an empty tree for a type with a natural order.
//
//	tree := bst.Ordered[int]().Insert(5).Insert(3)
func Ordered[T cmp.Ordered]() Tree[T] {
	return New(order.Natural[T]())
}

// --- API -------------------------------------------------------------------

// IsEmpty is true if tree contains no values.
func (tree Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Insert returns a copy of tree with value inserted.
// Values equivalent to value already present in tree are kept: value will be
// inserted into the right subtree of the first equivalent node on its search path.
//
// Insert creates d+1 nodes, where d is the depth value will be inserted at.
func (tree Tree[T]) Insert(value T) Tree[T] {
	var path slotPath[T]
	for n := tree.root; n != nil; {
		s := rightChild // value comes after or is equivalent
		if tree.before(value, n.value) {
			s = leftChild
		}
		path = append(path, slot[T]{node: n, side: s})
		n = n.child(s)
	}
	tracer().Debugf("insert: slot path for %v = %s", value, path)
	return tree.withRoot(path.foldR(cloneSeam[T], leaf(value)))
}

// Lookup is true if tree contains a value equivalent to value.
func (tree Tree[T]) Lookup(value T) bool {
	_, n := tree.locate(value, false)
	return n != nil
}

// Delete returns a copy of tree with the first node holding a value equivalent to
// value removed. The node is found by the same descent as with Lookup; other
// equivalent values further down stay in the tree.
//
// If no equivalent value is present, tree is returned unchanged.
func (tree Tree[T]) Delete(value T) Tree[T] {
	path, target := tree.locate(value, true)
	if target == nil {
		tracer().Debugf("delete: %v not found", value)
		return tree // no need for modification
	}
	tracer().Debugf("delete: slot path for %v = %s", value, path)
	if path.empty() {
		tracer().Debugf("delete: removing root %v", target)
	}
	return tree.withRoot(path.foldR(cloneSeam[T], detach(target)))
}

// Height is the number of nodes on the longest path from the root to a leaf.
// The empty tree has height 0.
func (tree Tree[T]) Height() int {
	if tree.root == nil {
		return 0
	}
	type level struct {
		node  *node[T]
		depth int
	}
	var h int
	stack := []level{{node: tree.root, depth: 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h = max(h, top.depth)
		if top.node.left != nil {
			stack = append(stack, level{node: top.node.left, depth: top.depth + 1})
		}
		if top.node.right != nil {
			stack = append(stack, level{node: top.node.right, depth: top.depth + 1})
		}
	}
	return h
}

// Min returns the minimum value of tree, i.e. the value of its leftmost node.
// For an empty tree Nothing is returned.
func (tree Tree[T]) Min() maybe.Maybe[T] {
	return findMin(tree.root)
}

// String returns a drawing of the tree's structure. Left children are marked
// with '<', right children with '≥'.
func (tree Tree[T]) String() string {
	if tree.root == nil {
		return "⊥\n"
	}
	type branch struct {
		node   *node[T]
		parent tp.Tree
		meta   string
	}
	p := tp.New()
	stack := []branch{{node: tree.root, parent: p}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		label := fmt.Sprintf("%v", b.node.value)
		if b.node.left == nil && b.node.right == nil {
			addNode(b.parent, b.meta, label)
			continue
		}
		br := addBranch(b.parent, b.meta, label)
		if b.node.right != nil { // pushed first to print left child first
			stack = append(stack, branch{node: b.node.right, parent: br, meta: "≥"})
		}
		if b.node.left != nil {
			stack = append(stack, branch{node: b.node.left, parent: br, meta: "<"})
		}
	}
	return p.String()
}

// --- Internals -------------------------------------------------------------

func (tree Tree[T]) before(a, b T) bool {
	assertThat(tree.comesBefore != nil, "tree has no ordering predicate; create trees with bst.New")
	return tree.comesBefore(a, b)
}

// locate descends from the root looking for a value equivalent to value. It returns
// the node found, or nil. If trackPath is set, it returns the slots passed on
// the way down as well.
func (tree Tree[T]) locate(value T, trackPath bool) (slotPath[T], *node[T]) {
	var path slotPath[T]
	n := tree.root
	for n != nil {
		before := tree.before(value, n.value)
		if !before && !tree.before(n.value, value) {
			return path, n
		}
		s := rightChild
		if before {
			s = leftChild
		}
		if trackPath {
			path = append(path, slot[T]{node: n, side: s})
		}
		n = n.child(s)
	}
	return path, nil
}

func (tree Tree[T]) withRoot(root *node[T]) Tree[T] {
	return Tree[T]{comesBefore: tree.comesBefore, root: root}
}

// findMin returns the minimum value of the subtree starting at n.
func findMin[T any](n *node[T]) maybe.Maybe[T] {
	if n == nil {
		return maybe.Nothing[T]()
	}
	_, m := leftSpine(n)
	return maybe.Just(m.value)
}

func addNode(p tp.Tree, meta, label string) {
	if meta == "" {
		p.AddNode(label)
		return
	}
	p.AddMetaNode(meta, label)
}

func addBranch(p tp.Tree, meta, label string) tp.Tree {
	if meta == "" {
		return p.AddBranch(label)
	}
	return p.AddMetaBranch(meta, label)
}
