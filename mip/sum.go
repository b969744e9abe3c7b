package mip

import "github.com/miniopt/miniopt/indexing"

// Sum computes the expression sum of f(i) over i in s, evaluating f in set
// order. Over an empty set it returns the zero expression.
func Sum(s indexing.Set, f func(i int) LinearArg) *Expr {
	total := &Expr{}
	indexing.ForEach(s, func(i int) { f(i).addTo(total, 1) })
	return total
}

// Sum2 computes the sum of f(i, j) over the product s1 x s2, s1 varying
// slowest.
func Sum2(s1, s2 indexing.Set, f func(i, j int) LinearArg) *Expr {
	total := &Expr{}
	indexing.ForEach2(s1, s2, func(i, j int) { f(i, j).addTo(total, 1) })
	return total
}

// Sum3 computes the sum of f(i, j, k) over the product s1 x s2 x s3.
func Sum3(s1, s2, s3 indexing.Set, f func(i, j, k int) LinearArg) *Expr {
	total := &Expr{}
	indexing.ForEach3(s1, s2, s3, func(i, j, k int) { f(i, j, k).addTo(total, 1) })
	return total
}

// SumOver computes the sum of f(tuple) over the Cartesian product of sets in
// odometer order. Beyond three dimensions this is the only summation form;
// the tuple slice is reused between calls.
func SumOver(sets []indexing.Set, f func(tuple []int) LinearArg) *Expr {
	total := &Expr{}
	indexing.ForEachTuple(sets, func(tuple []int) { f(tuple).addTo(total, 1) })
	return total
}
