package reconstruct

import (
	"fmt"
	"math/cmplx"
)

// Reconstruct runs the generalized power method (GPM) on the instance.
//
// Algorithm:
//  1. x₀ = opts.Initial projected onto the unit circle, or the
//     eigenvector estimate when opts.Initial is nil.
//  2. Repeat: y = (C + αI)·x, x' = unit-circle projection of y,
//     with α = SpectralShift() so C + αI is positive semidefinite.
//  3. Stop once max_k |x'_k − x_k| ≤ opts.Tolerance, or after
//     opts.MaxIterations steps.
//
// Each step is a fixed-point iteration on the product of N unit circles;
// with the shift the synchronization objective is non-decreasing, so the
// method converges to a stationary point (not necessarily the global
// optimum — hence "generalized" power method).
//
// Returns:
//   - on convergence: the final Result and a nil error.
//   - on budget exhaustion: the best (last) iterate in Result with
//     Converged=false, together with ErrNotConverged.  A non-converged
//     run is therefore never mistakable for a converged one.
//
// Errors: ErrBadTolerance, ErrBadMaxIterations, ErrBadInitial,
// ErrEigenFailed (from the shift/initialization), ErrNotConverged.
//
// Complexity: O(N²) per iteration after the one-off O(N³) decomposition.
func (r *Reconstructor) Reconstruct(opts Options) (Result, error) {
	if opts.Tolerance <= 0 {
		return Result{}, fmt.Errorf("Reconstruct: tolerance=%g: %w", opts.Tolerance, ErrBadTolerance)
	}
	if opts.MaxIterations < 1 {
		return Result{}, fmt.Errorf("Reconstruct: max=%d: %w", opts.MaxIterations, ErrBadMaxIterations)
	}

	x, err := r.initialIterate(opts.Initial)
	if err != nil {
		return Result{}, err
	}

	alpha, err := r.SpectralShift()
	if err != nil {
		return Result{}, err
	}

	var (
		y          = make([]complex128, r.n)
		degenerate int
		iterations int
	)
	converged := false
	for it := 1; it <= opts.MaxIterations; it++ {
		iterations = it

		// y = (C + αI)·x
		for i := 0; i < r.n; i++ {
			acc := complex(alpha, 0) * x[i]
			for j := 0; j < r.n; j++ {
				acc += r.c.At(i, j) * x[j]
			}
			y[i] = acc
		}
		degenerate += unitProject(y, y)

		// max-norm of the change between successive iterates
		diff := 0.0
		for k := range x {
			if d := cmplx.Abs(y[k] - x[k]); d > diff {
				diff = d
			}
		}
		x, y = y, x

		if diff <= opts.Tolerance {
			converged = true

			break
		}
	}

	objective, err := r.Objective(x)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Estimate:   x,
		Iterations: iterations,
		Objective:  objective,
		Converged:  converged,
		Degenerate: degenerate,
	}
	if !converged {
		return res, fmt.Errorf("Reconstruct: margin %g not met after %d iteration(s): %w",
			opts.Tolerance, iterations, ErrNotConverged)
	}

	return res, nil
}

// initialIterate validates and unit-projects the caller's initial guess,
// falling back to the eigenvector estimate when none is supplied.
func (r *Reconstructor) initialIterate(initial []complex128) ([]complex128, error) {
	if initial == nil {
		return r.EigenvectorEstimate()
	}
	if len(initial) != r.n {
		return nil, fmt.Errorf("Reconstruct: initial len=%d, want %d: %w", len(initial), r.n, ErrBadInitial)
	}
	x := make([]complex128, r.n)
	for k, v := range initial {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return nil, fmt.Errorf("Reconstruct: initial entry %d: %w", k, ErrBadInitial)
		}
		if cmplx.Abs(v) < degenerateEps {
			return nil, fmt.Errorf("Reconstruct: initial entry %d has zero magnitude: %w", k, ErrBadInitial)
		}
		x[k] = v
	}
	unitProject(x, x)

	return x, nil
}
