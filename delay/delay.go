// Package delay provides the scalar delay algebra used by the
// architecture catalog and the budget-assignment hook. A Delay is a
// fixed-point quantity in picoseconds; addition is associative within
// the int64 domain used here.
package delay

import "math"

// Delay is a scalar timing quantity, in picoseconds.
type Delay int64

// Zero is the identity element for Add.
const Zero Delay = 0

// Unreachable is the sentinel used for a sink with no assigned
// frequency target: a deliberately large value so that cost
// comparisons against it always prefer any real delay.
const Unreachable Delay = Delay(math.MaxInt64 / 2)

// Add combines two delays. Associative: (a.Add(b)).Add(c) == a.Add(b.Add(c)).
func (d Delay) Add(other Delay) Delay {
	return d + other
}

// Info bundles the four corner delays the architecture catalog reports
// for a wire, a pip, or a cell's internal source-to-sink path.
type Info struct {
	MinRiseDelay Delay
	MaxRiseDelay Delay
	MinFallDelay Delay
	MaxFallDelay Delay
}

// Add combines two Infos component-wise, as required when chaining the
// delay of consecutive pips/wires along a routed path.
func (in Info) Add(other Info) Info {
	return Info{
		MinRiseDelay: in.MinRiseDelay.Add(other.MinRiseDelay),
		MaxRiseDelay: in.MaxRiseDelay.Add(other.MaxRiseDelay),
		MinFallDelay: in.MinFallDelay.Add(other.MinFallDelay),
		MaxFallDelay: in.MaxFallDelay.Add(other.MaxFallDelay),
	}
}

// MaxDelay returns the worst-case (maximum of rise and fall) delay,
// the figure the placer's cost function and the budget hook compare
// against a target period.
func (in Info) MaxDelay() Delay {
	if in.MaxRiseDelay > in.MaxFallDelay {
		return in.MaxRiseDelay
	}
	return in.MaxFallDelay
}

// FromFrequencyHz converts a target clock frequency in Hz into a
// picosecond period, used by the budget-assignment hook (C9) to seed
// every sink's budget with 1/f. Returns Unreachable when freqHz <= 0,
// matching "no user target" behaviour.
func FromFrequencyHz(freqHz float64) Delay {
	if freqHz <= 0 {
		return Unreachable
	}
	periodSec := 1.0 / freqHz
	return Delay(periodSec * 1e12)
}
