package bst

import "fmt"

// TreeError is an error type for violated tree invariants.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrOrderViolation is flagged if a node's value is out of order with respect to
// one of its ancestors.
const ErrOrderViolation = TreeError("ordering invariant violated")

// ErrSharedNode is flagged if a node is reachable from more than one position
// of the same tree.
const ErrSharedNode = TreeError("node reachable from more than one position")

// Check validates the invariants of tree: every value in a left subtree comes
// before the subtree's parent value, no value in a right subtree comes before its
// parent value, and the nodes form a proper tree. Sharing of subtrees between
// different trees is fine.
//
// Trees built by Insert and Delete always pass the check, given a consistent
// ordering predicate. Check visits every node; it is meant for tests and diagnostics.
func (tree Tree[T]) Check() error {
	if tree.root == nil {
		return nil
	}
	// bounds are inherited from ancestors: lo is inclusive, hi exclusive
	type bounded struct {
		node   *node[T]
		lo, hi *node[T]
	}
	seen := make(map[*node[T]]struct{})
	stack := []bounded{{node: tree.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[b.node]; ok {
			return fmt.Errorf("%w: %v", ErrSharedNode, b.node)
		}
		seen[b.node] = struct{}{}
		if b.hi != nil && !tree.before(b.node.value, b.hi.value) {
			return fmt.Errorf("%w: %v in left subtree of %v", ErrOrderViolation, b.node, b.hi)
		}
		if b.lo != nil && tree.before(b.node.value, b.lo.value) {
			return fmt.Errorf("%w: %v in right subtree of %v", ErrOrderViolation, b.node, b.lo)
		}
		if b.node.left != nil {
			stack = append(stack, bounded{node: b.node.left, lo: b.lo, hi: b.node})
		}
		if b.node.right != nil {
			stack = append(stack, bounded{node: b.node.right, lo: b.node, hi: b.hi})
		}
	}
	tracer().Debugf("check: %d nodes ok", len(seen))
	return nil
}
