// Package calc holds what the individual calculators share: the single
// error kind the formulas can produce and the rounding used where rounding
// is part of the result contract.
package calc

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned, wrapped with the offending term, whenever a
// formula denominator is zero. It is the only failure the calculators know;
// callers surface the message to the user instead of crashing.
var ErrDivisionByZero = errors.New("division by zero")

// Round3 rounds to 3 decimal places, half away from zero. IPLV and the
// required flow rate are rounded by contract; everything else is left to the
// presentation layer.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
