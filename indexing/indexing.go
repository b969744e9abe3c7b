// Package indexing provides finite integer index sets, Cartesian products in
// odometer order, and iteration/comprehension helpers over them.
//
// Sets are lightweight values with O(1) element access; iterating a set never
// mutates it, so every sequence is restartable and multiple passes reproduce
// the same order. The multi-set helpers all share one iteration order: the
// first set varies slowest and the last set varies fastest, matching the
// nested-loop order with the first set as the outermost loop.
package indexing

// Set is a finite, ordered, restartable sequence of integers.
type Set interface {
	// Size returns the number of elements. It is never negative.
	Size() int
	// At returns the i-th element, 0 <= i < Size().
	At(i int) int
}

// span is the half-open integer range [start, end).
type span struct {
	start, end int
}

func (s span) Size() int {
	if s.end <= s.start {
		return 0
	}
	return s.end - s.start
}

func (s span) At(i int) int { return s.start + i }

// Range returns the set 0..n-1. A non-positive n yields an empty set.
func Range(n int) Set { return span{0, n} }

// Between returns the set a..b-1. An empty or inverted range yields an
// empty set.
func Between(a, b int) Set { return span{a, b} }

// values is an explicit ordered sequence of integers.
type values []int

func (v values) Size() int   { return len(v) }
func (v values) At(i int) int { return v[i] }

// Values returns a set holding the given elements in the given order.
func Values(vs ...int) Set { return values(vs) }

// ForEach invokes f once per element of s, in order.
func ForEach(s Set, f func(i int)) {
	for i := 0; i < s.Size(); i++ {
		f(s.At(i))
	}
}

// ForEach2 invokes f once per pair of the product s1 x s2, s1 varying
// slowest.
func ForEach2(s1, s2 Set, f func(i, j int)) {
	for a := 0; a < s1.Size(); a++ {
		for b := 0; b < s2.Size(); b++ {
			f(s1.At(a), s2.At(b))
		}
	}
}

// ForEach3 invokes f once per triple of the product s1 x s2 x s3, s1 varying
// slowest.
func ForEach3(s1, s2, s3 Set, f func(i, j, k int)) {
	for a := 0; a < s1.Size(); a++ {
		for b := 0; b < s2.Size(); b++ {
			for c := 0; c < s3.Size(); c++ {
				f(s1.At(a), s2.At(b), s3.At(c))
			}
		}
	}
}

// ForEachTuple invokes f once per tuple of the Cartesian product of sets, in
// odometer order. The tuple slice is reused between calls; callers that keep
// it must copy it. Beyond three dimensions this is the only iteration form.
func ForEachTuple(sets []Set, f func(tuple []int)) {
	k := len(sets)
	if k == 0 {
		return
	}
	for _, s := range sets {
		if s.Size() == 0 {
			return
		}
	}
	counter := make([]int, k)
	tuple := make([]int, k)
	for {
		for d, s := range sets {
			tuple[d] = s.At(counter[d])
		}
		f(tuple)
		// Advance the odometer, last dimension fastest.
		d := k - 1
		for ; d >= 0; d-- {
			counter[d]++
			if counter[d] < sets[d].Size() {
				break
			}
			counter[d] = 0
		}
		if d < 0 {
			return
		}
	}
}

// Product materializes the Cartesian product of sets in odometer order.
// The result has one row per tuple and length equal to the product of the
// set sizes; an empty input or any empty set yields nil.
func Product(sets ...Set) [][]int {
	n := 0
	if len(sets) > 0 {
		n = 1
		for _, s := range sets {
			n *= s.Size()
		}
	}
	if n == 0 {
		return nil
	}
	out := make([][]int, 0, n)
	ForEachTuple(sets, func(tuple []int) {
		row := make([]int, len(tuple))
		copy(row, tuple)
		out = append(out, row)
	})
	return out
}

// Collect returns f(i) for each i in s, preserving order and length.
func Collect[T any](s Set, f func(i int) T) []T {
	out := make([]T, 0, s.Size())
	ForEach(s, func(i int) { out = append(out, f(i)) })
	return out
}

// Collect2 returns the dense rectangular table of f(i, j), outer over s1 and
// inner over s2.
func Collect2[T any](s1, s2 Set, f func(i, j int) T) [][]T {
	out := make([][]T, 0, s1.Size())
	ForEach(s1, func(i int) {
		row := make([]T, 0, s2.Size())
		ForEach(s2, func(j int) { row = append(row, f(i, j)) })
		out = append(out, row)
	})
	return out
}

// CollectN returns one flat sequence of f(tuple) over the Cartesian product
// of sets, in odometer order. The flat index of a tuple follows row-major
// order, so callers can reconstruct index tuples from the set sizes.
func CollectN[T any](sets []Set, f func(tuple []int) T) []T {
	var out []T
	ForEachTuple(sets, func(tuple []int) { out = append(out, f(tuple)) })
	return out
}
