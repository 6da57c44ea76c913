package measurement

import (
	"fmt"
	"math"
)

// FromPhases builds the exact pairwise difference matrix of a ground-truth
// phase vector: M[i][j] = phases[j] − phases[i].
//
// The result has a zero diagonal and is exactly antisymmetric, so it passes
// Validate at any tolerance.  Units are whatever the input uses; FromPhases
// never converts.
//
// Complexity: O(N²) time and memory.
func FromPhases(phases []float64) [][]float64 {
	n := len(phases)
	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			m[i][j] = phases[j] - phases[i]
		}
	}

	return m
}

// Validate checks the structural contract of a measurement matrix and
// returns its dimension N.
//
// Checks, in order:
//  1. non-nil, non-empty, rectangular and square (ErrNilMatrix, ErrNonSquare)
//  2. N ≥ 2 (ErrTooSmall)
//  3. all entries finite (ErrNonFinite)
//  4. |M[i][i]| ≤ tol (ErrNonZeroDiagonal)
//  5. |M[i][j] + M[j][i]| ≤ tol (ErrNotAntisymmetric)
//
// tol is an absolute tolerance; pass DefaultTolerance unless the noise
// model demands otherwise.
//
// Complexity: O(N²).
func Validate(m [][]float64, tol float64) (int, error) {
	if len(m) == 0 {
		return 0, ErrNilMatrix
	}
	n := len(m)
	for i := 0; i < n; i++ {
		if len(m[i]) != n {
			return 0, fmt.Errorf("Validate: row %d has %d entries, want %d: %w", i, len(m[i]), n, ErrNonSquare)
		}
	}
	if n < 2 {
		return 0, fmt.Errorf("Validate: got %d sensor(s): %w", n, ErrTooSmall)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return 0, fmt.Errorf("Validate: entry (%d,%d): %w", i, j, ErrNonFinite)
			}
		}
	}
	for i := 0; i < n; i++ {
		if math.Abs(m[i][i]) > tol {
			return 0, fmt.Errorf("Validate: diagonal entry %d is %g: %w", i, m[i][i], ErrNonZeroDiagonal)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m[i][j]+m[j][i]) > tol {
				return 0, fmt.Errorf("Validate: entries (%d,%d)/(%d,%d): %w", i, j, j, i, ErrNotAntisymmetric)
			}
		}
	}

	return n, nil
}

// Add returns the elementwise sum of two equally sized matrices.
// Intended for composing an exact FromPhases matrix with an
// AntisymmetricNoise perturbation.
//
// Returns ErrDimensionMismatch if shapes differ, ErrNilMatrix on empty input.
//
// Complexity: O(N²).
func Add(a, b [][]float64) ([][]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrNilMatrix
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("Add: %d vs %d rows: %w", len(a), len(b), ErrDimensionMismatch)
	}
	out := make([][]float64, len(a))
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return nil, fmt.Errorf("Add: row %d: %d vs %d entries: %w", i, len(a[i]), len(b[i]), ErrDimensionMismatch)
		}
		out[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] + b[i][j]
		}
	}

	return out, nil
}

// Antisymmetrize projects a matrix onto its antisymmetric part,
// (M − Mᵀ)/2, and zeroes the diagonal.
//
// Useful when the upper and lower triangles were measured independently
// and carry uncorrelated noise: the projection is the least-squares
// antisymmetric matrix closest to M, and its output always passes the
// antisymmetry check of Validate.
//
// Returns ErrNilMatrix or ErrNonSquare on malformed input.
//
// Complexity: O(N²).
func Antisymmetrize(m [][]float64) ([][]float64, error) {
	if len(m) == 0 {
		return nil, ErrNilMatrix
	}
	n := len(m)
	for i := 0; i < n; i++ {
		if len(m[i]) != n {
			return nil, fmt.Errorf("Antisymmetrize: row %d has %d entries, want %d: %w", i, len(m[i]), n, ErrNonSquare)
		}
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := (m[i][j] - m[j][i]) / 2
			out[i][j] = d
			out[j][i] = -d
		}
	}

	return out, nil
}
