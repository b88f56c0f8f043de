package bst

import "fmt"

// node is the immutable building block of a tree. After construction neither
// the value nor the child links of a node change; restructuring a tree
// creates new nodes.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

func leaf[T any](value T) *node[T] {
	return &node[T]{value: value}
}

func (n *node[T]) String() string {
	if n == nil {
		return "⊥"
	}
	return fmt.Sprintf("(%v)", n.value)
}

func (n *node[T]) child(s side) *node[T] {
	if s == leftChild {
		return n.left
	}
	return n.right
}

// withChild returns a copy of n with the child at s replaced by ch.
// The other child is shared.
func (n *node[T]) withChild(s side, ch *node[T]) *node[T] {
	cow := *n
	if s == leftChild {
		cow.left = ch
	} else {
		cow.right = ch
	}
	return &cow
}

// leftSpine walks the left links starting at n. It returns the path of nodes
// passed and the leftmost node, which holds the minimum value of n's subtree.
// n must not be nil.
func leftSpine[T any](n *node[T]) (slotPath[T], *node[T]) {
	var path slotPath[T]
	for n.left != nil {
		path = append(path, slot[T]{node: n, side: leftChild})
		n = n.left
	}
	return path, n
}

// detach returns the subtree taking the place of n when n's value is removed.
//
// Leafs vanish and a node with a single child is replaced by that child. For a
// node with two children the in-order successor m, i.e. the minimum of the right
// subtree, moves up: the replacement is a new node holding m, sharing the left
// subtree of n, with m's node cut out of the right subtree.
func detach[T any](n *node[T]) *node[T] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}
	spine, succ := leftSpine(n.right)
	// succ has no left child, so succ.right takes its place
	right := spine.foldR(cloneSeam[T], succ.right)
	tracer().Debugf("delete: successor %v replaces %v", succ, n)
	return &node[T]{value: succ.value, left: n.left, right: right}
}
