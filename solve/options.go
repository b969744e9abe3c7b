// Package solve orchestrates the build, configure, solve and report
// lifecycle of a mip model against a solving engine.
//
// Application code implements Definition with the three model-building
// callbacks, pairs it with an Engine in a Runner, and calls Solve. The solve
// boundary never lets an engine fault escape: every failure raised while
// building or solving is classified into the returned Result. The one
// exception is mip.UsageError (wrong index arity, out-of-range component,
// unset variable family), which is a programming error and re-panics.
package solve

import "time"

// Options are the recognized solver controls for one solve call. Zero values
// defer to the engine's defaults; Options are not mutated by Solve.
type Options struct {
	// TimeLimit bounds the wall time of the engine run, 0 = unlimited.
	TimeLimit time.Duration
	// MIPGap is the relative optimality gap at which the engine may stop,
	// 0 = engine default.
	MIPGap float64
	// Threads is the engine worker thread count, 0 = engine default.
	Threads int
	// Verbose enables the engine's own log output.
	Verbose bool
	// SolutionLimit stops the engine after this many improving solutions,
	// 0 = unlimited.
	SolutionLimit int
	// NodeLimit bounds the search tree size, 0 = unlimited.
	NodeLimit int64
	// ModelFile, when nonempty, asks the engine to export the loaded model
	// to this file before solving. Pass-through only; engines that cannot
	// write the requested format report their own error.
	ModelFile string
}

// Quick returns options for a fast feasibility check: one minute, 10% gap,
// single thread, quiet.
func Quick() Options {
	return Options{TimeLimit: time.Minute, MIPGap: 0.1, Threads: 1}
}

// Precise returns options for a high-precision solve: one hour, tight gap.
func Precise() Options {
	return Options{TimeLimit: time.Hour, MIPGap: 1e-6, Verbose: true}
}
