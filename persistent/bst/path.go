package bst

import (
	"fmt"
	"strings"
)

// side denotes a child link of a node.
type side uint8

const (
	leftChild side = iota
	rightChild
)

func (s side) String() string {
	if s == leftChild {
		return "L"
	}
	return "R"
}

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node and the child link the path continues with.
type slot[T any] struct {
	node *node[T]
	side side
}

func (s slot[T]) String() string {
	return s.side.String() + "@" + s.node.String()
}

// cloneSeam re-links a freshly built child subtree into a copy of the slot's node.
// It is the step function for rebuilding a path bottom-up.
func cloneSeam[T any](parent slot[T], child *node[T]) *node[T] {
	assertThat(parent.node != nil, "inconsistency: parent of a child is never nil")
	return parent.node.withChild(parent.side, child)
}

// --- Path ------------------------------------------------------------------

// slotPath is a list of slots, denoting a path from the root of a (sub-)tree
// downwards.
type slotPath[T any] []slot[T]

func (path slotPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[T]) empty() bool {
	return len(path) == 0
}

// foldR applies function f on pairs (parent,child) of path.
// Application starts from the right ('R'), which corresponds to the bottom-most slot
// of the path. zero is the subtree to apply as `child` in the rightmost call
// of f(parent,child). If path is empty, zero will be returned, otherwise the result
// of the final call to f, i.e. the new top of the path.
func (path slotPath[T]) foldR(f func(slot[T], *node[T]) *node[T], zero *node[T]) *node[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}
