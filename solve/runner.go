package solve

import (
	"errors"
	"fmt"
	"time"

	log "github.com/golang/glog"

	"github.com/miniopt/miniopt/mip"
)

// Definition supplies the model-building callbacks of one concrete problem.
// Every Solve call runs them against a fresh Builder, in this order, exactly
// once each.
type Definition interface {
	// CreateVariables populates the definition's variable families.
	CreateVariables(b *mip.Builder)
	// AddConstraints submits all constraint descriptors.
	AddConstraints(b *mip.Builder)
	// SetObjective sets exactly one objective with a direction.
	SetObjective(b *mip.Builder)
}

// Configurer is an optional extra hook for engine-specific model tuning,
// run after SetObjective.
type Configurer interface {
	Configure(b *mip.Builder)
}

// phase tracks the build lifecycle of one solve call. Phases are strictly
// ordered and none is skipped or repeated within a call.
type phase int

const (
	phaseCreated phase = iota
	phaseVariablesBuilt
	phaseConstraintsBuilt
	phaseObjectiveSet
	phaseConfigured
	phaseSolved
)

func (p phase) String() string {
	switch p {
	case phaseCreated:
		return "Created"
	case phaseVariablesBuilt:
		return "VariablesBuilt"
	case phaseConstraintsBuilt:
		return "ConstraintsBuilt"
	case phaseObjectiveSet:
		return "ObjectiveSet"
	case phaseConfigured:
		return "Configured"
	case phaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Runner sequences the model lifecycle for one Definition and Engine pair.
// It is single-threaded: Solve blocks on the caller's goroutine and the
// runner must not be shared across goroutines.
type Runner struct {
	def       Definition
	engine    Engine
	buildOpts []mip.Option
	phase     phase
}

// NewRunner pairs a problem definition with an engine. Builder options (such
// as mip.EnableDebugNames) apply to the fresh builder of every Solve call.
func NewRunner(def Definition, engine Engine, buildOpts ...mip.Option) *Runner {
	return &Runner{def: def, engine: engine, buildOpts: buildOpts}
}

func (r *Runner) enter(p phase) {
	r.phase = p
	log.V(1).Infof("solve: entering phase %v", p)
}

// Solve rebuilds the model from scratch through the definition callbacks,
// applies the options, invokes the engine and classifies the outcome. It
// always returns a Result and never panics across its boundary, except for
// mip usage errors, which are re-panicked as programming errors. Re-invoking
// Solve rebuilds everything; nothing is cached between calls.
func (r *Runner) Solve(opts Options) (result Result) {
	start := time.Now()
	defer func() {
		result.Runtime = time.Since(start)
		if rec := recover(); rec != nil {
			if err, ok := rec.(error); ok {
				var usage *mip.UsageError
				if errors.As(err, &usage) {
					panic(rec)
				}
			}
			result.Success = false
			result.Err = fmt.Sprintf("unclassified failure in phase %v: %v", r.phase, rec)
			log.Errorf("solve: %s", result.Err)
		}
	}()

	r.enter(phaseCreated)
	b := mip.NewBuilder(r.buildOpts...)

	r.def.CreateVariables(b)
	r.enter(phaseVariablesBuilt)

	r.def.AddConstraints(b)
	r.enter(phaseConstraintsBuilt)

	r.def.SetObjective(b)
	r.enter(phaseObjectiveSet)

	if c, ok := r.def.(Configurer); ok {
		c.Configure(b)
	}
	r.enter(phaseConfigured)

	m, err := b.Model()
	if err != nil {
		result.Err = fmt.Sprintf("model build failed: %v", err)
		log.Errorf("solve: %s", result.Err)
		return result
	}
	log.V(1).Infof("solve: model built, %+v", m.Stats())

	outcome, err := r.engine.Solve(m, opts)
	r.enter(phaseSolved)
	if err != nil {
		var engErr *EngineError
		if errors.As(err, &engErr) {
			result.Err = engErr.Error()
		} else {
			result.Err = fmt.Sprintf("solve failed: %v", err)
		}
		log.Errorf("solve: %s", result.Err)
		return result
	}

	result.Status = outcome.Status
	result.NodeCount = outcome.NodeCount
	result.Gap = outcome.Gap
	if outcome.Status.HasSolution() {
		result.Values = outcome.Values
		// A failed objective fetch leaves 0 rather than failing the run.
		if outcome.HasObjective {
			result.Objective = outcome.Objective
		}
	}
	result.Success = true
	return result
}
