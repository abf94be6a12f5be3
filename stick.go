package rangeslider

import (
	"fmt"
	"math"
)

// defaultStickFactor scales the step to give the tolerance used when a stick
// rule names only a target.
const defaultStickFactor = 1.5

// Stick pulls values toward multiples of Target when they are closer than
// Tolerance. It runs after step quantisation.
type Stick struct {
	Target    float64 `yaml:"target"`
	Tolerance float64 `yaml:"tolerance"`
}

// NewStick builds a rule from [target] or [target, tolerance]. A missing
// tolerance defaults to step*1.5. Extra values are ignored.
func NewStick(values []float64, step float64) (*Stick, error) {
	if len(values) == 0 {
		return nil, nil
	}
	st := &Stick{Target: values[0], Tolerance: step * defaultStickFactor}
	if len(values) > 1 {
		st.Tolerance = values[1]
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return st, nil
}

// Validate rejects non-positive targets and negative tolerances.
func (st Stick) Validate() error {
	if !(st.Target > 0) || math.IsInf(st.Target, 0) {
		return fmt.Errorf("%w: target %v must be positive", ErrInvalidStick, st.Target)
	}
	if st.Tolerance < 0 || math.IsNaN(st.Tolerance) {
		return fmt.Errorf("%w: tolerance %v must not be negative", ErrInvalidStick, st.Tolerance)
	}
	return nil
}

// Resolve snaps v to the nearest multiple of Target when within Tolerance,
// otherwise returns v unchanged. The remainder is floored (always in
// [0, Target)), so negative values snap the same way positive ones do.
func (st Stick) Resolve(v float64) float64 {
	if !(st.Target > 0) {
		return v
	}
	rest := v - st.Target*math.Floor(v/st.Target)
	switch {
	case rest < st.Tolerance:
		return v - rest
	case st.Target-rest < st.Tolerance:
		return v + (st.Target - rest)
	default:
		return v
	}
}
