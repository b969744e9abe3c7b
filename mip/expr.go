// Package mip offers a builder API for mixed-integer and linear programming
// models.
//
// A Builder collects decision variables, pending constraint descriptors and
// an objective into a Model, the immutable description handed to a solving
// engine. Variables are opaque handles addressed either directly, through
// the N-dimensional Vars container, or through an enum-keyed Table of
// variable families. Expr provides the affine algebra used for constraints
// and objectives, and the Sum/ForAll helpers build both over index sets in
// odometer order.
package mip

import "sort"

// VarIndex is the index of a variable in the model description.
type VarIndex int32

// NoVar is the index of a detached variable handle, one that was created
// without registering a variable in any model.
const NoVar VarIndex = -1

// VarType is the domain class of a decision variable.
type VarType int8

const (
	// Continuous is a real-valued variable.
	Continuous VarType = iota
	// Integer is an integer-valued variable.
	Integer
	// Binary is an integer variable restricted to {0, 1}.
	Binary
)

func (t VarType) String() string {
	switch t {
	case Continuous:
		return "Continuous"
	case Integer:
		return "Integer"
	case Binary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Var is an opaque reference to a decision variable. Vars are copyable;
// the variable itself is owned by the model that created it.
type Var struct {
	ind VarIndex
}

// Index returns the variable's position in the model description, or NoVar
// for a detached handle.
func (v Var) Index() VarIndex { return v.ind }

// Valid reports whether v references a model variable.
func (v Var) Valid() bool { return v.ind >= 0 }

// Times returns the expression coeff*v.
func (v Var) Times(coeff float64) *Expr {
	return &Expr{terms: []term{{ind: v.ind, coeff: coeff}}}
}

// LinearArg is an affine operand: a Var or an *Expr.
type LinearArg interface {
	addTo(e *Expr, coeff float64)
}

func (v Var) addTo(e *Expr, coeff float64) {
	e.terms = append(e.terms, term{ind: v.ind, coeff: coeff})
}

type term struct {
	ind   VarIndex
	coeff float64
}

// Term is one canonical coefficient of an expression.
type Term struct {
	Var   Var
	Coeff float64
}

// Expr is an affine combination of variables plus a constant. All algebraic
// methods leave their operands untouched and return a new expression.
type Expr struct {
	terms  []term
	offset float64
}

// NewExpr returns the sum of the given operands, the zero expression when
// called with none.
func NewExpr(args ...LinearArg) *Expr {
	e := &Expr{}
	for _, a := range args {
		a.addTo(e, 1)
	}
	return e
}

// Constant returns the expression holding only the constant c.
func Constant(c float64) *Expr {
	return &Expr{offset: c}
}

func (e *Expr) addTo(out *Expr, coeff float64) {
	for _, t := range e.terms {
		out.terms = append(out.terms, term{ind: t.ind, coeff: t.coeff * coeff})
	}
	out.offset += e.offset * coeff
}

func (e *Expr) clone() *Expr {
	out := &Expr{terms: make([]term, 0, len(e.terms)+1), offset: e.offset}
	out.terms = append(out.terms, e.terms...)
	return out
}

// Plus returns e + o.
func (e *Expr) Plus(o LinearArg) *Expr {
	out := e.clone()
	o.addTo(out, 1)
	return out
}

// PlusConstant returns e + c.
func (e *Expr) PlusConstant(c float64) *Expr {
	out := e.clone()
	out.offset += c
	return out
}

// PlusTerm returns e + coeff*v.
func (e *Expr) PlusTerm(v Var, coeff float64) *Expr {
	out := e.clone()
	v.addTo(out, coeff)
	return out
}

// Minus returns e - o.
func (e *Expr) Minus(o LinearArg) *Expr {
	out := e.clone()
	o.addTo(out, -1)
	return out
}

// Times returns k*e.
func (e *Expr) Times(k float64) *Expr {
	out := &Expr{}
	e.addTo(out, k)
	return out
}

// Div returns e/k. k must be nonzero.
func (e *Expr) Div(k float64) *Expr {
	if k == 0 {
		usagePanic("Expr.Div", ErrIndex, "division by zero scalar")
	}
	return e.Times(1 / k)
}

// Neg returns -e.
func (e *Expr) Neg() *Expr { return e.Times(-1) }

// Terms returns the canonical coefficients of e: sorted by variable index,
// duplicates merged, zero coefficients dropped. Two expressions denote the
// same affine function iff their Terms and Constant agree.
func (e *Expr) Terms() []Term {
	if len(e.terms) == 0 {
		return nil
	}
	sorted := make([]term, len(e.terms))
	copy(sorted, e.terms)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ind < sorted[j].ind })

	out := make([]Term, 0, len(sorted))
	for _, t := range sorted {
		if n := len(out); n > 0 && out[n-1].Var.ind == t.ind {
			out[n-1].Coeff += t.coeff
			continue
		}
		out = append(out, Term{Var: Var{ind: t.ind}, Coeff: t.coeff})
	}
	keep := out[:0]
	for _, t := range out {
		if t.Coeff != 0 {
			keep = append(keep, t)
		}
	}
	if len(keep) == 0 {
		return nil
	}
	return keep
}

// Constant returns the constant part of e.
func (e *Expr) Constant() float64 { return e.offset }

// Eval computes the value of e given one solution value per model variable.
func (e *Expr) Eval(values []float64) float64 {
	result := e.offset
	for _, t := range e.terms {
		result += values[t.ind] * t.coeff
	}
	return result
}
