package measurement

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Synchronization builds the complex synchronization matrix of a
// validated measurement matrix:
//
//	C[i][j] = exp(i·(phase(i) − phase(j))) = exp(−i·M[i][j]),
//
// i.e. the rank-one Hermitian encoding C = z·zᴴ of the ground-truth
// phasor z_k = exp(i·phase(k)).  With this orientation the leading
// eigenvector of C aligns with z itself (not its conjugate), so the
// downstream estimators recover the phases with their measured sign.
//
// Contracts:
//   - m must pass Validate(m, DefaultTolerance); all its sentinel errors
//     propagate unchanged.
//   - unit says how m is expressed; Degrees entries are converted to
//     radians before exponentiation (the complex encoding is only
//     meaningful in radians).
//
// Properties of the result:
//   - every entry has unit modulus,
//   - the diagonal is exactly (1 + 0i),
//   - C is Hermitian because M is antisymmetric,
//
// which is precisely what reconstruct.New expects.
//
// Complexity: O(N²).
func Synchronization(m [][]float64, unit Unit) (*mat.CDense, error) {
	n, err := Validate(m, DefaultTolerance)
	if err != nil {
		return nil, fmt.Errorf("Synchronization: %w", err)
	}

	scale := 1.0
	if unit == Degrees {
		scale = math.Pi / 180
	}

	c := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		c.Set(i, i, 1) // exp(i·0), exact
		for j := i + 1; j < n; j++ {
			z := cmplx.Rect(1, -m[i][j]*scale)
			c.Set(i, j, z)
			// Mirror the conjugate so C is Hermitian to the last bit,
			// even when M[j][i] deviates within tolerance.
			c.Set(j, i, cmplx.Conj(z))
		}
	}

	return c, nil
}
