package mip

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoObjective is returned by Model when no objective was set.
var ErrNoObjective = errors.New("no objective was set")

// VarDef is the description of one decision variable.
type VarDef struct {
	Lb   float64
	Ub   float64
	Type VarType
	Name string
}

// Model is the finished, engine-independent model description. Variable
// handles index into Vars; Objective is minimized unless Maximize is set.
type Model struct {
	Vars      []VarDef
	Constrs   []*Constraint
	Objective Expr
	Maximize  bool
}

// Stats summarizes the size of a model description.
type Stats struct {
	Variables   int
	Constraints int
	NonZeros    int
}

// Stats returns the model's size summary. NonZeros counts canonical
// constraint coefficients.
func (m *Model) Stats() Stats {
	s := Stats{Variables: len(m.Vars), Constraints: len(m.Constrs)}
	for _, c := range m.Constrs {
		s.NonZeros += len(c.expr.Terms())
	}
	return s
}

// Option configures a Builder.
type Option func(*Builder)

// EnableDebugNames turns on deterministic name generation for variables and
// constraints, base[i,j,...]. When disabled (the default) no name is ever
// formatted.
func EnableDebugNames() Option {
	return func(b *Builder) { b.debugNames = true }
}

// Builder accumulates variables, pending constraints and the objective of
// one model. The first invalid call is recorded and reported by Model; later
// calls still run so that building code need not check errors at every step.
type Builder struct {
	vars       []VarDef
	constrs    []*Constraint
	objective  *Expr
	maximize   bool
	hasObj     bool
	debugNames bool
	// The first and only the first error is reported in Model.
	err error
}

// NewBuilder returns an empty model builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Builder) setErrorf(format string, args ...any) {
	if b.err == nil {
		b.err = fmt.Errorf(format, args...)
	}
}

// NumVars returns the number of variables created so far.
func (b *Builder) NumVars() int { return len(b.vars) }

// NumConstrs returns the number of constraints submitted so far.
func (b *Builder) NumConstrs() int { return len(b.constrs) }

// NewVar creates one variable and returns its handle.
func (b *Builder) NewVar(vt VarType, lb, ub float64, name string) Var {
	v := Var{ind: VarIndex(len(b.vars))}
	if !b.debugNames {
		name = ""
	}
	if vt == Binary {
		lb, ub = 0, 1
	}
	b.vars = append(b.vars, VarDef{Lb: lb, Ub: ub, Type: vt, Name: name})
	return v
}

// NewVars creates a variable for every cell of the given shape and returns
// the filled N-D container. With no sizes it creates a single scalar
// (rank 0). Debug names follow base[i,j,...] per cell.
func (b *Builder) NewVars(vt VarType, lb, ub float64, base string, sizes ...int) Vars {
	g := newShape(sizes)
	if len(sizes) == 0 {
		g.handles[0] = b.NewVar(vt, lb, ub, base)
		return g
	}
	idx := make([]int, len(sizes))
	for flat := range g.handles {
		rem := flat
		for d := range sizes {
			idx[d] = rem / g.strides[d]
			rem %= g.strides[d]
		}
		g.handles[flat] = b.NewVar(vt, lb, ub, b.nameND(base, idx...))
	}
	return g
}

// NewBinaryVars creates a {0,1} variable per cell of the given shape.
func (b *Builder) NewBinaryVars(base string, sizes ...int) Vars {
	return b.NewVars(Binary, 0, 1, base, sizes...)
}

// Add submits a pending constraint descriptor and returns it.
func (b *Builder) Add(c *Constraint) *Constraint {
	if c == nil {
		b.setErrorf("nil constraint submitted")
		return c
	}
	b.constrs = append(b.constrs, c)
	return c
}

// Minimize sets the objective to minimize obj. A model has exactly one
// objective; setting it twice is recorded as an error.
func (b *Builder) Minimize(obj LinearArg) { b.setObjective(obj, false) }

// Maximize sets the objective to maximize obj.
func (b *Builder) Maximize(obj LinearArg) { b.setObjective(obj, true) }

func (b *Builder) setObjective(obj LinearArg, maximize bool) {
	if b.hasObj {
		b.setErrorf("objective was set twice")
		return
	}
	b.objective = NewExpr(obj)
	b.maximize = maximize
	b.hasObj = true
}

// Model returns the finished model description. It fails when any building
// call was invalid or when no objective was set.
func (b *Builder) Model() (*Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.hasObj {
		return nil, ErrNoObjective
	}
	return &Model{
		Vars:      b.vars,
		Constrs:   b.constrs,
		Objective: *b.objective,
		Maximize:  b.maximize,
	}, nil
}

// nameND formats base[i,j,...] when debug names are enabled and base is
// nonempty; otherwise it returns "" without formatting anything.
func (b *Builder) nameND(base string, idx ...int) string {
	if !b.debugNames || base == "" {
		return ""
	}
	if len(idx) == 0 {
		return base
	}
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteByte('[')
	for d, i := range idx {
		if d > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
