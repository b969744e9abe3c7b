package mip

import "github.com/miniopt/miniopt/indexing"

// Constraint builder helpers. Each helper composes the expression algebra
// with the summation engine and submits the result to the builder's pending
// constraint set. Name arguments are templates subject to the debug-name
// switch; pass "" for unnamed constraints.

// AddEq submits lhs == rhs.
func (b *Builder) AddEq(lhs, rhs LinearArg, name string) *Constraint {
	return b.Add(NewExpr(lhs).Eq(rhs).WithName(b.nameND(name)))
}

// AddLe submits lhs <= rhs.
func (b *Builder) AddLe(lhs, rhs LinearArg, name string) *Constraint {
	return b.Add(NewExpr(lhs).Le(rhs).WithName(b.nameND(name)))
}

// AddGe submits lhs >= rhs.
func (b *Builder) AddGe(lhs, rhs LinearArg, name string) *Constraint {
	return b.Add(NewExpr(lhs).Ge(rhs).WithName(b.nameND(name)))
}

// ForAll submits f(i) for every i in s, named name[i].
func (b *Builder) ForAll(s indexing.Set, name string, f func(i int) *Constraint) {
	indexing.ForEach(s, func(i int) {
		b.Add(f(i).WithName(b.nameND(name, i)))
	})
}

// ForAll2 submits f(i, j) over the product s1 x s2, named name[i,j].
func (b *Builder) ForAll2(s1, s2 indexing.Set, name string, f func(i, j int) *Constraint) {
	indexing.ForEach2(s1, s2, func(i, j int) {
		b.Add(f(i, j).WithName(b.nameND(name, i, j)))
	})
}

// ForAll3 submits f(i, j, k) over the product s1 x s2 x s3.
func (b *Builder) ForAll3(s1, s2, s3 indexing.Set, name string, f func(i, j, k int) *Constraint) {
	indexing.ForEach3(s1, s2, s3, func(i, j, k int) {
		b.Add(f(i, j, k).WithName(b.nameND(name, i, j, k)))
	})
}

// ForAllTuple submits f(tuple) over the Cartesian product of sets, in
// odometer order.
func (b *Builder) ForAllTuple(sets []indexing.Set, name string, f func(tuple []int) *Constraint) {
	indexing.ForEachTuple(sets, func(tuple []int) {
		b.Add(f(tuple).WithName(b.nameND(name, tuple...)))
	})
}

// AtMostOne submits sum of f(i) over s <= 1.
func (b *Builder) AtMostOne(s indexing.Set, f func(i int) LinearArg, name string) *Constraint {
	return b.Add(Sum(s, f).Le(Constant(1)).WithName(b.nameND(name)))
}

// ExactlyOne submits sum of f(i) over s == 1.
func (b *Builder) ExactlyOne(s indexing.Set, f func(i int) LinearArg, name string) *Constraint {
	return b.Add(Sum(s, f).Eq(Constant(1)).WithName(b.nameND(name)))
}

// BigMLe submits lhs <= rhs + M*(1-indicator): when the binary indicator is
// 1 the constraint binds, otherwise M relaxes it.
func (b *Builder) BigMLe(lhs, rhs LinearArg, indicator Var, m float64, name string) *Constraint {
	relaxed := NewExpr(rhs).PlusConstant(m).PlusTerm(indicator, -m)
	return b.Add(NewExpr(lhs).Le(relaxed).WithName(b.nameND(name)))
}

// BigMGe submits lhs >= rhs - M*(1-indicator), the mirrored form of BigMLe.
func (b *Builder) BigMGe(lhs, rhs LinearArg, indicator Var, m float64, name string) *Constraint {
	relaxed := NewExpr(rhs).PlusConstant(-m).PlusTerm(indicator, m)
	return b.Add(NewExpr(lhs).Ge(relaxed).WithName(b.nameND(name)))
}

// AddIndicator submits the native conditional constraint
// indicator == value => lhs <= rhs. Engines without indicator support fail
// such constraints at solve time; use the big-M helpers there.
func (b *Builder) AddIndicator(indicator Var, value int, lhs, rhs LinearArg, name string) *Constraint {
	return b.Add(NewExpr(lhs).Le(rhs).OnlyIf(indicator, value).WithName(b.nameND(name)))
}

// Implies submits indicator == 1 => lhs <= rhs.
func (b *Builder) Implies(indicator Var, lhs, rhs LinearArg, name string) *Constraint {
	return b.AddIndicator(indicator, 1, lhs, rhs, name)
}

// MaxOf links z to an upper envelope: it submits z >= f(i) for every i in s,
// so that minimizing z drives it to the maximum of the f(i).
func (b *Builder) MaxOf(z Var, s indexing.Set, f func(i int) LinearArg, name string) {
	indexing.ForEach(s, func(i int) {
		b.Add(z.Times(1).Ge(f(i)).WithName(b.nameND(name, i)))
	})
}

// MinOf links z to a lower envelope: it submits z <= f(i) for every i in s.
func (b *Builder) MinOf(z Var, s indexing.Set, f func(i int) LinearArg, name string) {
	indexing.ForEach(s, func(i int) {
		b.Add(z.Times(1).Le(f(i)).WithName(b.nameND(name, i)))
	})
}
