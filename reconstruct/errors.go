package reconstruct

import "errors"

var (
	// ErrNilMatrix indicates a nil synchronization matrix.
	ErrNilMatrix = errors.New("reconstruct: matrix must be non-nil")
	// ErrNonSquare indicates a non-square synchronization matrix.
	ErrNonSquare = errors.New("reconstruct: matrix must be square")
	// ErrTooSmall indicates fewer than two sensors (N < 2).
	ErrTooSmall = errors.New("reconstruct: need at least two sensors")
	// ErrNonFinite indicates a NaN or Inf entry in a matrix or vector.
	ErrNonFinite = errors.New("reconstruct: entries must be finite")
	// ErrNotHermitian indicates C deviates from conj(C)ᵀ beyond tolerance.
	ErrNotHermitian = errors.New("reconstruct: matrix must be Hermitian")
	// ErrEigenFailed indicates the symmetric eigendecomposition did not converge.
	ErrEigenFailed = errors.New("reconstruct: eigendecomposition failed")
	// ErrNotConverged indicates the power method hit MaxIterations before
	// meeting the convergence margin; the accompanying Result still holds
	// the best iterate found.
	ErrNotConverged = errors.New("reconstruct: power method did not converge")
	// ErrBadTolerance indicates a non-positive convergence margin.
	ErrBadTolerance = errors.New("reconstruct: tolerance must be positive")
	// ErrBadMaxIterations indicates a non-positive iteration budget.
	ErrBadMaxIterations = errors.New("reconstruct: max iterations must be at least 1")
	// ErrBadInitial indicates an initial guess of wrong length or with
	// non-finite or zero entries.
	ErrBadInitial = errors.New("reconstruct: invalid initial estimate")
	// ErrEmptyEstimate indicates an empty complex estimate vector.
	ErrEmptyEstimate = errors.New("reconstruct: estimate must be non-empty")
	// ErrDimensionMismatch indicates a vector whose length differs from N.
	ErrDimensionMismatch = errors.New("reconstruct: vector length must match matrix dimension")
)
