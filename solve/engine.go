package solve

import (
	"fmt"

	"github.com/miniopt/miniopt/mip"
)

// Engine is the boundary to the external optimizer. Solve is blocking and
// synchronous: it loads the finished model description, applies the options,
// runs the search on the caller's goroutine and returns the outcome. An
// engine may use worker threads internally (Options.Threads), but that is
// opaque here; the only cancellation is the budget carried in the options.
type Engine interface {
	Solve(m *mip.Model, opts Options) (*Outcome, error)
}

// Outcome is what an engine reports back from one run.
type Outcome struct {
	// Status is the translated termination status.
	Status Status
	// Objective is the incumbent objective value; meaningful only when
	// HasObjective is set.
	Objective float64
	// HasObjective reports whether the objective value could be fetched.
	HasObjective bool
	// NodeCount and Gap are optional diagnostics.
	NodeCount int64
	Gap       float64
	// Values holds one solution value per model variable when an incumbent
	// exists, nil otherwise.
	Values []float64
}

// EngineError is a failure reported by the solving engine: invalid model,
// licensing, numerical breakdown. Code is engine-specific.
type EngineError struct {
	Code int
	Msg  string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine error %d: %s", e.Code, e.Msg)
}
