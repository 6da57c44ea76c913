package reconstruct

// Default generalized-power-method parameters.  The margin matches the
// convergence budget the estimator was calibrated with; the iteration cap
// is a deterministic upper bound on work, not a wall-clock timeout.
const (
	// DefaultTolerance is the default convergence margin ε: iteration
	// stops once max_k |x'_k − x_k| ≤ ε between successive iterates.
	DefaultTolerance = 1e-7

	// DefaultMaxIterations caps the number of power-method steps.
	DefaultMaxIterations = 1000
)

// hermitianTol bounds the allowed entrywise deviation |C[i][j] − conj(C[j][i])|
// at construction.  Matrices from measurement.Synchronization are Hermitian
// to the last bit; the tolerance only forgives rounding in caller-built input.
const hermitianTol = 1e-8

// degenerateEps is the magnitude below which a vector entry is considered
// numerically zero during unit-circle projection.  Such entries are
// substituted with 1+0i and counted in Result.Degenerate rather than
// letting a division by ~0 propagate NaN.
const degenerateEps = 1e-12

// Options configures the generalized power method.
//
// Fields:
//   - Tolerance     — convergence margin ε on the max-norm of the change
//     between successive iterates.  Must be positive.
//   - MaxIterations — hard cap on power-method steps.  Must be ≥ 1.
//   - Initial       — optional starting estimate of length N; entries are
//     projected onto the unit circle before iterating.  nil ⇒ start from
//     the eigenvector estimator (the usual, well-initialized regime).
//
// Example:
//
//	opts := reconstruct.DefaultOptions()
//	opts.Tolerance = 1e-9        // tighter margin
//	opts.MaxIterations = 5000    // larger budget
//	res, err := rec.Reconstruct(opts)
//	if errors.Is(err, reconstruct.ErrNotConverged) {
//	  // res.Estimate still holds the best iterate; res.Converged == false
//	}
type Options struct {
	Tolerance     float64
	MaxIterations int
	Initial       []complex128
}

// DefaultOptions returns the standard GPM configuration: margin 1e-7,
// 1000 iterations, eigenvector-estimator initialization.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Initial:       nil,
	}
}

// Result holds the outcome of a generalized-power-method run.
type Result struct {
	// Estimate is the final complex estimate vector; every entry has unit
	// modulus.  Valid even when Converged is false (best iterate found).
	Estimate []complex128

	// Iterations is the number of power-method steps performed.
	Iterations int

	// Objective is the synchronization objective Σ Re(conj(x)ᵀ·C·x) of
	// the final iterate.  Non-decreasing across iterations.
	Objective float64

	// Converged reports whether the margin was met within the budget.
	// A false value is always accompanied by ErrNotConverged.
	Converged bool

	// Degenerate counts unit-projection entries whose magnitude fell
	// below the numerical-zero guard and were substituted with 1+0i.
	Degenerate int
}
