/*
Package bst implements a persistent (immutable) binary search tree.

The tree is ordered by a predicate supplied at creation time, which tells
whether a value comes before another one (see package order). Values equivalent
under the predicate are treated as the same key by Lookup and Delete. Insert
retains duplicates: an equivalent value is inserted into the right subtree of
the first equivalent node on its search path.

Every “modification” returns a new tree and leaves the original untouched:

	t0 := bst.Ordered[int]()
	t1 := t0.Insert(5).Insert(3).Insert(7)
	t2 := t1.Delete(5)
	t1.Lookup(5)   // true
	t2.Lookup(5)   // false

Only the nodes on the path from the root to the position of change are copied,
all other subtrees are shared between the versions. Trees are therefore safe for
concurrent readers without any locking. Clients extending a single logical tree
from multiple goroutines have to serialize updates of their tree variable.

The tree does not re-balance. Its height depends on the order of insertions and
is linear in the worst case (e.g., for ascending insertions), logarithmic on
average for random insertion order. All operations walk the tree iteratively,
so depth is bounded by the heap, not by the goroutine stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bst.tree'.
func tracer() tracing.Trace {
	return tracing.Select("bst.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
