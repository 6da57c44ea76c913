package reconstruct

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/phasekit/phasesync/measurement"
)

// Phases converts a complex estimate vector into zero-referenced phase
// values: θ_k = atan2(Im x_k, Re x_k) − θ_0, wrapped to (−π, π] and
// optionally cast to degrees.
//
// The first entry is exactly 0 by construction — absolute phase is only
// observable up to a global rotation, so sensor 0 serves as the
// reference.  The transform is stateless and applies equally to the
// output of EigenvectorEstimate and Reconstruct.
//
// Errors: ErrEmptyEstimate on empty input, ErrNonFinite on NaN/Inf entries.
//
// Complexity: O(N).
func Phases(estimate []complex128, unit measurement.Unit) ([]float64, error) {
	if len(estimate) == 0 {
		return nil, ErrEmptyEstimate
	}
	for k, v := range estimate {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return nil, fmt.Errorf("Phases: entry %d: %w", k, ErrNonFinite)
		}
	}

	ref := cmplx.Phase(estimate[0])
	out := make([]float64, len(estimate))
	for k, v := range estimate {
		out[k] = wrapAngle(cmplx.Phase(v) - ref)
	}
	out[0] = 0 // exact, not merely within rounding

	if unit == measurement.Degrees {
		for k := range out {
			out[k] *= 180 / math.Pi
		}
	}

	return out, nil
}

// Complex is the inverse of Phases: it lifts real phase values (radians
// or degrees, per unit) back onto the unit circle as exp(i·θ_k).
// Round-tripping Phases∘Complex reproduces the input up to global phase
// and floating-point rounding.
//
// Errors: ErrEmptyEstimate on empty input, ErrNonFinite on NaN/Inf entries.
//
// Complexity: O(N).
func Complex(phases []float64, unit measurement.Unit) ([]complex128, error) {
	if len(phases) == 0 {
		return nil, ErrEmptyEstimate
	}

	scale := 1.0
	if unit == measurement.Degrees {
		scale = math.Pi / 180
	}

	out := make([]complex128, len(phases))
	for k, theta := range phases {
		if math.IsNaN(theta) || math.IsInf(theta, 0) {
			return nil, fmt.Errorf("Complex: entry %d: %w", k, ErrNonFinite)
		}
		out[k] = cmplx.Rect(1, theta*scale)
	}

	return out, nil
}

// wrapAngle maps an angle to the principal branch (−π, π].
func wrapAngle(theta float64) float64 {
	w := math.Mod(theta+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}

	return w - math.Pi
}
