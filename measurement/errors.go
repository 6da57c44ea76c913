package measurement

import "errors"

var (
	// ErrNilMatrix indicates a nil or empty measurement matrix.
	ErrNilMatrix = errors.New("measurement: matrix must be non-nil and non-empty")
	// ErrNonSquare indicates a ragged or non-square matrix.
	ErrNonSquare = errors.New("measurement: matrix must be square")
	// ErrTooSmall indicates fewer than two sensors (N < 2).
	ErrTooSmall = errors.New("measurement: need at least two sensors")
	// ErrNonFinite indicates a NaN or Inf entry.
	ErrNonFinite = errors.New("measurement: matrix entries must be finite")
	// ErrNonZeroDiagonal indicates a self-difference entry beyond tolerance.
	ErrNonZeroDiagonal = errors.New("measurement: diagonal entries must be zero")
	// ErrNotAntisymmetric indicates M[i][j] != -M[j][i] beyond tolerance.
	ErrNotAntisymmetric = errors.New("measurement: matrix must be antisymmetric")
	// ErrDimensionMismatch indicates two matrices of differing sizes.
	ErrDimensionMismatch = errors.New("measurement: matrix dimensions must match")
	// ErrBadDistribution indicates an unknown Distribution value.
	ErrBadDistribution = errors.New("measurement: unknown distribution")
	// ErrBadBounds indicates low >= high in a synthetic-value request.
	ErrBadBounds = errors.New("measurement: lower bound must be below upper bound")
	// ErrBadStdev indicates a negative noise standard deviation.
	ErrBadStdev = errors.New("measurement: noise stdev must be non-negative")
)
