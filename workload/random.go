package workload

import (
	"math"
	"math/rand/v2"

	"github.com/npillmayer/bst/persistent/bst"
)

// RandomTree builds a tree from n uniformly distributed random floats in [0,1),
// ordered by '<'.
func RandomTree(rng *rand.Rand, n int) bst.Tree[float64] {
	tree := bst.Ordered[float64]()
	for i := 0; i < n; i++ {
		tree = tree.Insert(rng.Float64())
	}
	return tree
}

// BuildAndInsert returns the workload used for calibration: build cfg.TreesPerRun
// random trees of size n and insert one more random value into each.
func BuildAndInsert(cfg Config, rng *rand.Rand) func(n int) {
	return func(n int) {
		for i := 0; i < cfg.TreesPerRun; i++ {
			_ = RandomTree(rng, n).Insert(rng.Float64())
		}
	}
}

// Sizes divides [0,nMax] into the given number of intervals and returns the
// points+1 interval bounds, truncated to integers.
func Sizes(nMax, points int) []int {
	if points <= 0 {
		return []int{nMax}
	}
	sizes := make([]int, points+1)
	for i := range sizes {
		sizes[i] = i * nMax / points
	}
	return sizes
}

// Theoretical is an approximation of the average height of a random tree of
// size n: 1.39·log₂(n).
func Theoretical(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 1.39 * math.Log2(float64(n))
}
