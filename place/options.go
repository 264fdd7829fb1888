package place

import (
	"fmt"

	"github.com/sarchlab/zeonica-pnr/delay"
)

// Options is the builder-style configuration for a placement run (§6.4
// names four scalar flags at the core boundary: verbose, force, seed,
// target frequency). Seed lives on design.Context itself, since the
// PRNG is context-scoped; Options carries the other three plus the
// progress callback.
type Options struct {
	force      bool
	verbose    bool
	targetFreq float64
	progress   ProgressFunc
}

// DefaultOptions returns an Options with no target frequency (the
// engine optimises for maximum achievable frequency) and no progress
// callback.
func DefaultOptions() Options {
	return Options{}
}

// WithForce sets whether a fatal-by-default error is downgraded to a
// logged warning and a false return instead of aborting the phase.
func (o Options) WithForce(force bool) Options {
	o.force = force
	return o
}

// WithVerbose sets whether Phase B reports every cell it places through
// the ProgressFunc callback, in addition to Phase A's periodic reports.
func (o Options) WithVerbose(verbose bool) Options {
	o.verbose = verbose
	return o
}

// WithTargetFreq sets the user's target clock frequency in Hz, used by
// AssignBudgets (C9) to seed every sink's delay budget. A non-positive
// value (the default) means no target: every sink is seeded with
// delay.Unreachable and the engine optimises for maximum achievable
// frequency.
func (o Options) WithTargetFreq(freqHz float64) Options {
	o.targetFreq = freqHz
	return o
}

// WithProgress sets the callback invoked periodically during Phase A
// and, when verbose is set, after every cell in Phase B (§5:
// "Long-running phases should periodically emit progress").
func (o Options) WithProgress(fn ProgressFunc) Options {
	o.progress = fn
	return o
}

// targetBudget returns the configured target frequency as a delay.Delay,
// per delay.FromFrequencyHz's "no target" convention.
func (o Options) targetBudget() delay.Delay {
	return delay.FromFrequencyHz(o.targetFreq)
}

func (o Options) report(format string, args ...any) {
	if o.progress != nil {
		o.progress(ProgressEvent{Message: fmt.Sprintf(format, args...)})
	}
}
