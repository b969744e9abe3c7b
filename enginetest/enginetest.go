// Package enginetest provides a solve.Engine for tests. It enumerates every
// integer point of the bounded variable box, so it only handles tiny models
// with integer or binary variables, but it is exact, deterministic and needs
// no native solver libraries.
package enginetest

import (
	"fmt"
	"math"

	"github.com/miniopt/miniopt/mip"
	"github.com/miniopt/miniopt/solve"
)

const defaultMaxPoints = 1 << 22

// Exhaustive is the brute-force test engine. The zero value is ready to use.
type Exhaustive struct {
	// MaxPoints caps the number of enumerated assignments,
	// default 4 million.
	MaxPoints int
	// Tolerance is the constraint feasibility tolerance, default 1e-6.
	Tolerance float64
}

// Solve enumerates all assignments and returns the best feasible one. The
// model must contain only integer or binary variables with finite bounds.
func (e *Exhaustive) Solve(m *mip.Model, opts solve.Options) (*solve.Outcome, error) {
	maxPoints := e.MaxPoints
	if maxPoints == 0 {
		maxPoints = defaultMaxPoints
	}
	tol := e.Tolerance
	if tol == 0 {
		tol = 1e-6
	}

	lows := make([]int64, len(m.Vars))
	sizes := make([]int64, len(m.Vars))
	points := int64(1)
	for i, v := range m.Vars {
		if v.Type == mip.Continuous {
			return nil, &solve.EngineError{Msg: fmt.Sprintf("variable %d is continuous; the exhaustive engine handles integer variables only", i)}
		}
		if math.IsInf(v.Lb, 0) || math.IsInf(v.Ub, 0) {
			return nil, &solve.EngineError{Msg: fmt.Sprintf("variable %d has unbounded domain", i)}
		}
		lo := int64(math.Ceil(v.Lb - tol))
		hi := int64(math.Floor(v.Ub + tol))
		if hi < lo {
			return &solve.Outcome{Status: solve.StatusInfeasible}, nil
		}
		lows[i] = lo
		sizes[i] = hi - lo + 1
		points *= sizes[i]
		if points > int64(maxPoints) {
			return nil, &solve.EngineError{Msg: fmt.Sprintf("model needs %d points, budget is %d", points, maxPoints)}
		}
	}

	values := make([]float64, len(m.Vars))
	for i, lo := range lows {
		values[i] = float64(lo)
	}
	counter := make([]int64, len(m.Vars))

	var best []float64
	var bestObj float64
	improving := 0
	status := solve.StatusOptimal
	for p := int64(0); p < points; p++ {
		if feasible(m, values, tol) {
			obj := m.Objective.Eval(values)
			better := best == nil ||
				(m.Maximize && obj > bestObj) || (!m.Maximize && obj < bestObj)
			if better {
				bestObj = obj
				best = append(best[:0], values...)
				improving++
				if opts.SolutionLimit > 0 && improving >= opts.SolutionLimit {
					status = solve.StatusSolutionLimit
					break
				}
			}
		}
		// Advance the odometer, last variable fastest.
		for d := len(counter) - 1; d >= 0; d-- {
			counter[d]++
			if counter[d] < sizes[d] {
				values[d] = float64(lows[d] + counter[d])
				break
			}
			counter[d] = 0
			values[d] = float64(lows[d])
		}
	}

	if best == nil {
		return &solve.Outcome{Status: solve.StatusInfeasible, NodeCount: points}, nil
	}
	return &solve.Outcome{
		Status:       status,
		Objective:    bestObj,
		HasObjective: true,
		NodeCount:    points,
		Values:       best,
	}, nil
}

func feasible(m *mip.Model, values []float64, tol float64) bool {
	for _, c := range m.Constrs {
		if cond := c.Condition(); cond != nil {
			if int(math.Round(values[cond.Var.Index()])) != cond.Value {
				continue
			}
		}
		lhs := c.Expr().Eval(values)
		switch c.Sense() {
		case mip.LessOrEqual:
			if lhs > tol {
				return false
			}
		case mip.GreaterOrEqual:
			if lhs < -tol {
				return false
			}
		case mip.Equal:
			if math.Abs(lhs) > tol {
				return false
			}
		}
	}
	return true
}
