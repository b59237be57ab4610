package explorer

import (
	"fmt"
	"math"
)

// Schedule supplies the annealing temperature for a given step.
// Implementations must be pure: the same step always yields the same
// temperature.
type Schedule interface {
	Temperature(step int) float64
}

// Constant is a fixed-temperature schedule.
type Constant float64

// Temperature implements Schedule.
func (c Constant) Temperature(int) float64 { return float64(c) }

// Sequence is a per-step temperature table. Steps outside the table
// (on either side) clamp to the last value. An empty Sequence has no
// temperature at all: Temperature returns NaN, which Anneal rejects
// up front with ErrBadSchedule; direct callers of the interface must
// check for NaN themselves.
type Sequence []float64

// Temperature implements Schedule.
func (s Sequence) Temperature(step int) float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	if step < 0 || step >= len(s) {
		return s[len(s)-1]
	}
	return s[step]
}

// TempFn adapts a plain function to the Schedule interface.
type TempFn func(step int) float64

// Temperature implements Schedule.
func (f TempFn) Temperature(step int) float64 { return f(step) }

// ExpCooling builds the exponential schedule T(t) = t0·rᵗ with r
// chosen so that T(steps) = tmin; t ≤ 0 clamps to t0 and t ≥ steps
// clamps to tmin.
// Returns ErrBadSchedule for steps ≤ 0, negative temperatures, or
// tmin > t0.
func ExpCooling(t0, tmin float64, steps int) (Schedule, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps %d: %w", steps, ErrBadSchedule)
	}
	if t0 < 0 || tmin < 0 {
		return nil, fmt.Errorf("t0 %v tmin %v: %w", t0, tmin, ErrBadSchedule)
	}
	if tmin > t0 {
		return nil, fmt.Errorf("tmin %v exceeds t0 %v: %w", tmin, t0, ErrBadSchedule)
	}

	r := 0.0
	if t0 > 0 && tmin > 0 {
		r = math.Pow(tmin/t0, 1.0/float64(steps))
	}
	return TempFn(func(step int) float64 {
		if step <= 0 {
			return t0
		}
		if step >= steps {
			return tmin
		}
		return t0 * math.Pow(r, float64(step))
	}), nil
}
