// Package measurement defines units, distributions and tolerances shared
// by the matrix helpers.
package measurement

// Unit selects the angular unit of a measurement matrix or phase vector.
//
//   - Radians — entries are plain radians; used as-is.
//   - Degrees — entries are degrees; converted to radians before any
//     complex exponentiation.
type Unit int

const (
	// Radians marks angular values expressed in radians.
	Radians Unit = iota

	// Degrees marks angular values expressed in degrees.
	Degrees
)

// Distribution selects how RandomPhases spreads synthetic ground-truth
// values between its bounds.
//
//   - Linspace — evenly spaced ascending values.
//   - Uniform  — uniform random draws, sorted ascending.
//
// Either way the first value is forced to 0, matching the convention
// that sensor 0 is the phase reference.
type Distribution int

const (
	// Linspace spreads values evenly between the bounds.
	Linspace Distribution = iota

	// Uniform draws values uniformly between the bounds, then sorts them.
	Uniform
)

// DefaultTolerance is the absolute tolerance used by Synchronization when
// checking the zero diagonal and antisymmetry of a measurement matrix.
// It mirrors the numpy.allclose default the workflow was calibrated on.
const DefaultTolerance = 1e-8
