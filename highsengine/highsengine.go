//go:build (linux || darwin) && (amd64 || arm64)

// Package highsengine adapts the HiGHS optimizer to the solve.Engine
// boundary through the gohighs bindings.
package highsengine

import (
	"errors"
	"fmt"
	"math"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/miniopt/miniopt/mip"
	"github.com/miniopt/miniopt/solve"
)

// Engine solves model descriptions with HiGHS. Each Solve call creates a
// fresh HiGHS instance, so an Engine is reusable across models.
type Engine struct{}

// New returns a HiGHS-backed engine.
func New() *Engine { return &Engine{} }

// Solve loads the model into HiGHS, applies the options, runs the solver and
// translates the outcome. Constraints with an indicator condition are
// rejected: HiGHS has no native indicator support, the big-M helpers are the
// supported formulation there.
func (e *Engine) Solve(m *mip.Model, opts solve.Options) (*solve.Outcome, error) {
	solver, err := highs.NewSolver()
	if err != nil {
		return nil, wrap(err)
	}
	defer solver.Close()

	if err := applyOptions(solver, opts); err != nil {
		return nil, wrap(err)
	}
	if err := loadModel(solver, m); err != nil {
		return nil, err
	}
	if opts.ModelFile != "" {
		if err := solver.WriteModel(opts.ModelFile); err != nil {
			return nil, wrap(err)
		}
	}

	sol, err := solver.Run()
	if err != nil {
		return nil, wrap(err)
	}

	outcome := &solve.Outcome{Status: statusOf(sol.Status)}
	if outcome.Status.HasSolution() {
		outcome.Objective = sol.Objective
		outcome.HasObjective = true
		outcome.Values = sol.ColValues
	}
	// Diagnostics are best effort; LP-only runs have no node count.
	if nodes, err := solver.GetInt64Info("mip_node_count"); err == nil {
		outcome.NodeCount = nodes
	}
	if gap, err := solver.GetFloatInfo("mip_gap"); err == nil && !math.IsInf(gap, 0) {
		outcome.Gap = gap
	}
	return outcome, nil
}

func applyOptions(solver *highs.Solver, opts solve.Options) error {
	if err := solver.SetBoolOption("output_flag", opts.Verbose); err != nil {
		return err
	}
	if opts.TimeLimit > 0 {
		if err := solver.SetFloatOption("time_limit", opts.TimeLimit.Seconds()); err != nil {
			return err
		}
	}
	if opts.MIPGap > 0 {
		if err := solver.SetFloatOption("mip_rel_gap", opts.MIPGap); err != nil {
			return err
		}
	}
	if opts.Threads > 0 {
		if err := solver.SetIntOption("threads", opts.Threads); err != nil {
			return err
		}
	}
	if opts.SolutionLimit > 0 {
		if err := solver.SetIntOption("mip_max_improving_sols", opts.SolutionLimit); err != nil {
			return err
		}
	}
	if opts.NodeLimit > 0 {
		if err := solver.SetIntOption("mip_max_nodes", int(opts.NodeLimit)); err != nil {
			return err
		}
	}
	return nil
}

func loadModel(solver *highs.Solver, m *mip.Model) error {
	inf := solver.Infinity()
	varTypes := make([]highs.VariableType, len(m.Vars))
	for i, v := range m.Vars {
		lb, ub := clampBound(v.Lb, -inf), clampBound(v.Ub, inf)
		if err := solver.AddVar(lb, ub); err != nil {
			return wrap(err)
		}
		varTypes[i] = highs.Continuous
		if v.Type != mip.Continuous {
			varTypes[i] = highs.Integer
		}
	}
	if err := solver.SetIntegrality(varTypes); err != nil {
		return wrap(err)
	}

	if err := solver.SetMaximize(m.Maximize); err != nil {
		return wrap(err)
	}
	for _, t := range m.Objective.Terms() {
		if err := solver.SetColCost(int(t.Var.Index()), t.Coeff); err != nil {
			return wrap(err)
		}
	}
	if err := solver.SetObjectiveOffset(m.Objective.Constant()); err != nil {
		return wrap(err)
	}

	for i, c := range m.Constrs {
		if c.Condition() != nil {
			return &solve.EngineError{Msg: "HiGHS does not support indicator constraints; use the big-M helpers"}
		}
		lower, upper := rowBounds(c, inf)
		terms := c.Expr().Terms()
		index := make([]int, len(terms))
		value := make([]float64, len(terms))
		for j, t := range terms {
			index[j] = int(t.Var.Index())
			value[j] = t.Coeff
		}
		if err := solver.AddRow(lower, upper, index, value); err != nil {
			return &solve.EngineError{Msg: fmt.Sprintf("adding constraint %d %q: %v", i, c.Name(), err)}
		}
	}
	return nil
}

// rowBounds turns a descriptor (expr sense 0, with expr = terms + k) into
// the HiGHS row form lower <= terms <= upper, moving k to the bounds.
func rowBounds(c *mip.Constraint, inf float64) (float64, float64) {
	rhs := -c.Expr().Constant()
	switch c.Sense() {
	case mip.LessOrEqual:
		return -inf, rhs
	case mip.GreaterOrEqual:
		return rhs, inf
	default:
		return rhs, rhs
	}
}

func statusOf(s highs.ModelStatus) solve.Status {
	switch s {
	case highs.ModelStatusOptimal:
		return solve.StatusOptimal
	case highs.ModelStatusInfeasible:
		return solve.StatusInfeasible
	case highs.ModelStatusUnbounded:
		return solve.StatusUnbounded
	case highs.ModelStatusUnboundedOrInfeasible:
		return solve.StatusInfeasibleOrUnbounded
	case highs.ModelStatusTimeLimit:
		return solve.StatusTimeLimit
	case highs.ModelStatusIterationLimit:
		return solve.StatusIterationLimit
	case highs.ModelStatusObjectiveBound, highs.ModelStatusObjectiveTarget:
		return solve.StatusFeasible
	case highs.ModelStatusSolveError:
		return solve.StatusNumeric
	default:
		return solve.StatusUnknown
	}
}

func clampBound(b, limit float64) float64 {
	if math.IsInf(b, -1) || b < -math.Abs(limit) {
		return -math.Abs(limit)
	}
	if math.IsInf(b, 1) || b > math.Abs(limit) {
		return math.Abs(limit)
	}
	return b
}

func wrap(err error) error {
	var he *highs.Error
	if errors.As(err, &he) {
		return &solve.EngineError{Code: int(he.Status), Msg: err.Error()}
	}
	return &solve.EngineError{Msg: err.Error()}
}
