package solve

import (
	"time"

	"github.com/miniopt/miniopt/mip"
)

// Status classifies why the engine stopped.
type Status int

const (
	// StatusUnknown is the zero status, reported before the engine ran or
	// when the engine's own status has no mapping.
	StatusUnknown Status = iota
	// StatusOptimal means the engine proved optimality.
	StatusOptimal
	// StatusFeasible means the engine found a solution without proving
	// optimality.
	StatusFeasible
	// StatusInfeasible means no assignment satisfies the constraints.
	StatusInfeasible
	// StatusUnbounded means the objective is unbounded in the optimization
	// direction.
	StatusUnbounded
	// StatusInfeasibleOrUnbounded means the engine could not separate the
	// two causes.
	StatusInfeasibleOrUnbounded
	// StatusTimeLimit means the time budget ran out.
	StatusTimeLimit
	// StatusNodeLimit means the node budget ran out.
	StatusNodeLimit
	// StatusSolutionLimit means the solution budget ran out.
	StatusSolutionLimit
	// StatusIterationLimit means the iteration budget ran out.
	StatusIterationLimit
	// StatusInterrupted means the engine was stopped externally.
	StatusInterrupted
	// StatusNumeric means the engine hit a numerical failure.
	StatusNumeric
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	case StatusInfeasibleOrUnbounded:
		return "INF_OR_UNBD"
	case StatusTimeLimit:
		return "TIME_LIMIT"
	case StatusNodeLimit:
		return "NODE_LIMIT"
	case StatusSolutionLimit:
		return "SOLUTION_LIMIT"
	case StatusIterationLimit:
		return "ITERATION_LIMIT"
	case StatusInterrupted:
		return "INTERRUPTED"
	case StatusNumeric:
		return "NUMERIC"
	default:
		return "UNKNOWN"
	}
}

// HasSolution reports whether the status implies a usable (possibly
// non-optimal) incumbent may exist.
func (s Status) HasSolution() bool {
	switch s {
	case StatusOptimal, StatusFeasible, StatusTimeLimit, StatusNodeLimit,
		StatusSolutionLimit, StatusIterationLimit:
		return true
	default:
		return false
	}
}

// Result is the structured outcome of one Solve call. It is populated as the
// phases complete and returned by value; the Runner never mutates a returned
// Result.
type Result struct {
	// Success is true when all build phases and the engine run completed
	// without failure. A Success result can still be infeasible; check
	// Status.
	Success bool
	// Status is the engine's termination status.
	Status Status
	// Objective is the best objective value found, 0 when no solution
	// exists or the value could not be fetched.
	Objective float64
	// Runtime is the elapsed wall time of the whole solve, including the
	// build phases. It is set even for failed solves.
	Runtime time.Duration
	// NodeCount and Gap are engine diagnostics, 0 when unavailable.
	NodeCount int64
	Gap       float64
	// Values holds one solution value per model variable when the engine
	// reported an incumbent, nil otherwise.
	Values []float64
	// Err is the human-readable failure description, empty on success.
	Err string
}

// IsOptimal reports whether the engine proved optimality.
func (r Result) IsOptimal() bool { return r.Status == StatusOptimal }

// HasSolution reports whether solution values are available.
func (r Result) HasSolution() bool { return r.Status.HasSolution() && r.Values != nil }

// Value returns the solution value of v, 0 when no solution is available.
func (r Result) Value(v mip.Var) float64 {
	if !v.Valid() || int(v.Index()) >= len(r.Values) {
		return 0
	}
	return r.Values[v.Index()]
}

// ValueOf evaluates an expression against the solution values.
func (r Result) ValueOf(e *mip.Expr) float64 {
	if r.Values == nil {
		return e.Constant()
	}
	return e.Eval(r.Values)
}
