/*
Package order provides ordering predicates for the ordered containers of this module.

An ordering predicate answers a single question: does a come before b?
It has to define a strict weak ordering over its value type. Two values a and b
are considered equivalent under a predicate iff neither comes before the other.
Containers treat equivalent values as equal keys, even if the values are not
identical.

Predicates are plain functions, so they compose. A point may be ordered by its
distance from the origin like this:

	byDist := order.By(order.Point2.Dist, order.Natural[float64]())

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package order

import (
	"cmp"
	"math"
)

// ComesBefore is an ordering predicate. It reports wether a is ordered strictly
// before b.
type ComesBefore[T any] func(a, b T) bool

// Natural returns the ordering of Go's '<' operator.
// NaNs are ordered before all other floating point values.
func Natural[T cmp.Ordered]() ComesBefore[T] {
	return cmp.Less[T]
}

// FromCompare converts a three-way comparison function into an ordering predicate.
func FromCompare[T any](compare func(a, b T) int) ComesBefore[T] {
	return func(a, b T) bool {
		return compare(a, b) < 0
	}
}

// Reverse returns the inverse ordering of cb.
func Reverse[T any](cb ComesBefore[T]) ComesBefore[T] {
	return func(a, b T) bool {
		return cb(b, a)
	}
}

// By orders values of type T by a key derived from them.
// The result is cb ∘ key, applied to both arguments.
func By[T, K any](key func(T) K, cb ComesBefore[K]) ComesBefore[T] {
	return func(a, b T) bool {
		return cb(key(a), key(b))
	}
}

// Then refines primary: values equivalent under primary are ordered by secondary.
func Then[T any](primary, secondary ComesBefore[T]) ComesBefore[T] {
	return func(a, b T) bool {
		if primary(a, b) {
			return true
		}
		if primary(b, a) {
			return false
		}
		return secondary(a, b)
	}
}

// Equivalent is true if neither a nor b comes before the other under cb.
func Equivalent[T any](cb ComesBefore[T], a, b T) bool {
	return !cb(a, b) && !cb(b, a)
}

// --- Pair ------------------------------------------------------------------

// Pair is a tuple of two values.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of a pair.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Lexicographic orders pairs by their left component first, then by their right one.
func Lexicographic[A, B any](ca ComesBefore[A], cb ComesBefore[B]) ComesBefore[Pair[A, B]] {
	left := By(func(p Pair[A, B]) A { return p.Left }, ca)
	right := By(func(p Pair[A, B]) B { return p.Right }, cb)
	return Then(left, right)
}

// --- Points ----------------------------------------------------------------

// Point2 is a point in the plane.
type Point2 struct {
	X, Y float64
}

// Dist is the Euclidean distance of p from the origin.
func (p Point2) Dist() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// ByDistance orders points by their distance from the origin. Points on the same
// circle around the origin are equivalent, e.g. (3,4) and (5,0).
func ByDistance() ComesBefore[Point2] {
	return By(Point2.Dist, Natural[float64]())
}
