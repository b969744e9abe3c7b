package mip

// Sense is the relational operator of a constraint.
type Sense int8

const (
	// LessOrEqual constrains the expression to be <= 0.
	LessOrEqual Sense = iota
	// GreaterOrEqual constrains the expression to be >= 0.
	GreaterOrEqual
	// Equal constrains the expression to be == 0.
	Equal
)

func (s Sense) String() string {
	switch s {
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	case Equal:
		return "=="
	default:
		return "?"
	}
}

// Indicator conditions a constraint on a binary variable taking a value.
type Indicator struct {
	Var   Var
	Value int
}

// Constraint is a relational statement pending submission to a model. It
// stores the normalized left-minus-right expression together with the sense,
// so that expressions produced by the comparison methods and constraints
// assembled directly both flow through one submission path.
type Constraint struct {
	expr   *Expr
	sense  Sense
	name   string
	onlyIf *Indicator
}

// Le returns the descriptor for e <= rhs. Nothing is registered until the
// descriptor is submitted to a Builder.
func (e *Expr) Le(rhs LinearArg) *Constraint {
	return &Constraint{expr: e.Minus(rhs), sense: LessOrEqual}
}

// Ge returns the descriptor for e >= rhs.
func (e *Expr) Ge(rhs LinearArg) *Constraint {
	return &Constraint{expr: e.Minus(rhs), sense: GreaterOrEqual}
}

// Eq returns the descriptor for e == rhs.
func (e *Expr) Eq(rhs LinearArg) *Constraint {
	return &Constraint{expr: e.Minus(rhs), sense: Equal}
}

// WithName sets the constraint's name and returns the constraint.
func (c *Constraint) WithName(s string) *Constraint {
	c.name = s
	return c
}

// OnlyIf makes the constraint conditional: it is enforced only when the
// binary variable v takes the given value. Engines without native indicator
// support reject such constraints; the big-M helpers are the portable form.
func (c *Constraint) OnlyIf(v Var, value int) *Constraint {
	c.onlyIf = &Indicator{Var: v, Value: value}
	return c
}

// Expr returns the normalized left-minus-right expression.
func (c *Constraint) Expr() *Expr { return c.expr }

// Sense returns the relational operator applied to Expr against zero.
func (c *Constraint) Sense() Sense { return c.sense }

// Name returns the constraint's name, empty when unnamed.
func (c *Constraint) Name() string { return c.name }

// Condition returns the indicator condition, or nil for an unconditional
// constraint.
func (c *Constraint) Condition() *Indicator { return c.onlyIf }
