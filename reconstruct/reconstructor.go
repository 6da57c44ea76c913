package reconstruct

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/phasekit/phasesync/measurement"
)

// Reconstructor encapsulates one phase synchronization instance: the
// Hermitian N×N synchronization matrix C, held immutably, plus a lazily
// computed eigendecomposition shared by the spectral estimator and the
// power method.
//
// Concurrency: the matrix is copied at construction and never mutated;
// the eigendecomposition is computed at most once under sync.Once and is
// read-only afterwards, so a single Reconstructor may serve concurrent
// callers without external locking.
type Reconstructor struct {
	c *mat.CDense // problem matrix, read-only after New
	n int         // space dimension

	once sync.Once
	vals []float64  // eigenvalues of the real embedding, ascending
	vecs *mat.Dense // eigenvectors of the real embedding, column form
	err  error      // sticky decomposition failure
}

// New builds a Reconstructor from a synchronization matrix C, typically
// the output of measurement.Synchronization.
//
// Contracts:
//   - c non-nil (ErrNilMatrix), square (ErrNonSquare), N ≥ 2 (ErrTooSmall),
//   - all entries finite (ErrNonFinite),
//   - Hermitian within an absolute entrywise tolerance (ErrNotHermitian).
//
// The matrix is deep-copied; later mutation of c does not affect the
// instance.  No eigenwork happens here — the decomposition is computed on
// first demand and cached.
//
// Complexity: O(N²) validation and copy.
func New(c *mat.CDense) (*Reconstructor, error) {
	if c == nil {
		return nil, ErrNilMatrix
	}
	r, cols := c.Dims()
	if r != cols {
		return nil, fmt.Errorf("New: %dx%d: %w", r, cols, ErrNonSquare)
	}
	if r < 2 {
		return nil, fmt.Errorf("New: got %d sensor(s): %w", r, ErrTooSmall)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			if v := c.At(i, j); cmplx.IsNaN(v) || cmplx.IsInf(v) {
				return nil, fmt.Errorf("New: entry (%d,%d): %w", i, j, ErrNonFinite)
			}
		}
	}
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			if cmplx.Abs(c.At(i, j)-cmplx.Conj(c.At(j, i))) > hermitianTol {
				return nil, fmt.Errorf("New: entries (%d,%d)/(%d,%d): %w", i, j, j, i, ErrNotHermitian)
			}
		}
	}

	cp := mat.NewCDense(r, r, nil)
	cp.Copy(c)

	return &Reconstructor{c: cp, n: r}, nil
}

// NewFromMeasurements composes measurement.Synchronization and New:
// it validates the real pairwise-difference matrix m (expressed in unit),
// exponentiates it into the Hermitian synchronization matrix, and wraps
// the result in a Reconstructor.
func NewFromMeasurements(m [][]float64, unit measurement.Unit) (*Reconstructor, error) {
	c, err := measurement.Synchronization(m, unit)
	if err != nil {
		return nil, fmt.Errorf("NewFromMeasurements: %w", err)
	}

	return New(c)
}

// Dim returns the space dimension N (the number of sensors).
func (r *Reconstructor) Dim() int { return r.n }

// eigen lazily computes the eigendecomposition of C via its real
// symmetric embedding and caches it for the lifetime of the instance.
//
// A Hermitian C = A + iB (A symmetric, B antisymmetric) embeds into the
// 2N×2N real symmetric matrix
//
//	S = ⎡A  −B⎤
//	    ⎣B   A⎦
//
// whose spectrum is that of C with every eigenvalue doubled; an
// eigenvector (x; y) of S recovers the complex eigenvector x + iy.
func (r *Reconstructor) eigen() ([]float64, *mat.Dense, error) {
	r.once.Do(func() {
		n2 := 2 * r.n
		data := make([]float64, n2*n2)
		for i := 0; i < r.n; i++ {
			for j := 0; j < r.n; j++ {
				a := real(r.c.At(i, j))
				b := imag(r.c.At(i, j))
				data[i*n2+j] = a
				data[i*n2+j+r.n] = -b
				data[(i+r.n)*n2+j] = b
				data[(i+r.n)*n2+j+r.n] = a
			}
		}
		sym := mat.NewSymDense(n2, data)

		var es mat.EigenSym
		if !es.Factorize(sym, true) {
			r.err = fmt.Errorf("eigen: %dx%d embedding: %w", n2, n2, ErrEigenFailed)

			return
		}
		r.vals = es.Values(nil) // ascending order
		r.vecs = mat.NewDense(n2, n2, nil)
		es.VectorsTo(r.vecs)
	})

	return r.vals, r.vecs, r.err
}

// LeadingEigenvector returns the eigenvector of C whose eigenvalue has
// the largest absolute value.  The decomposition is cached, so repeated
// calls (and the power method's spectral shift) pay for it only once.
//
// The returned slice is a fresh copy with unit Euclidean norm; its global
// complex phase is arbitrary, which is harmless because downstream
// conversion zero-references sensor 0.
//
// Complexity: O(N³) on first call, O(N) afterwards.
func (r *Reconstructor) LeadingEigenvector() ([]complex128, error) {
	vals, vecs, err := r.eigen()
	if err != nil {
		return nil, err
	}

	lead := 0
	for i := 1; i < len(vals); i++ {
		if math.Abs(vals[i]) >= math.Abs(vals[lead]) {
			lead = i
		}
	}

	v := make([]complex128, r.n)
	for k := 0; k < r.n; k++ {
		v[k] = complex(vecs.At(k, lead), vecs.At(k+r.n, lead))
	}

	return v, nil
}

// EigenvectorEstimate returns the spectral (EVM) estimate: the leading
// eigenvector projected entrywise onto the unit circle.  Entries with
// numerically zero magnitude are substituted with 1+0i, keeping the
// estimate free of NaN; in the noiseless case the result is exactly
// proportional to the ground-truth complex phase vector.
//
// Complexity: O(N³) on first call (cached decomposition), O(N) afterwards.
func (r *Reconstructor) EigenvectorEstimate() ([]complex128, error) {
	v, err := r.LeadingEigenvector()
	if err != nil {
		return nil, err
	}
	unitProject(v, v)

	return v, nil
}

// SpectralShift returns α = max(0, −λ_min(C)): the smallest diagonal
// shift making C + αI positive semidefinite.  The power method iterates
// on the shifted matrix, which guarantees a non-decreasing objective;
// since every iterate has unit-modulus entries the shift only adds the
// constant αN to the objective and never changes the maximizer.
func (r *Reconstructor) SpectralShift() (float64, error) {
	vals, _, err := r.eigen()
	if err != nil {
		return 0, err
	}

	return math.Max(0, -vals[0]), nil
}

// Objective evaluates the synchronization objective
// f(x) = Σ_{i,j} Re(conj(x_i)·C[i][j]·x_j) for an estimate vector x.
// Useful as a diagnostic to compare estimates of the same instance.
//
// Errors: ErrDimensionMismatch if len(x) != N.
//
// Complexity: O(N²).
func (r *Reconstructor) Objective(x []complex128) (float64, error) {
	if len(x) != r.n {
		return 0, fmt.Errorf("Objective: len=%d, want %d: %w", len(x), r.n, ErrDimensionMismatch)
	}

	var f float64
	for i := 0; i < r.n; i++ {
		xi := cmplx.Conj(x[i])
		for j := 0; j < r.n; j++ {
			f += real(xi * r.c.At(i, j) * x[j])
		}
	}

	return f, nil
}

// unitProject writes the entrywise unit-circle projection of src into dst
// (dst and src may alias) and returns the number of entries whose
// magnitude fell below the numerical-zero guard and were substituted
// with 1+0i.
func unitProject(dst, src []complex128) int {
	degenerate := 0
	for k, v := range src {
		m := cmplx.Abs(v)
		if m < degenerateEps {
			dst[k] = 1
			degenerate++

			continue
		}
		dst[k] = complex(real(v)/m, imag(v)/m)
	}

	return degenerate
}
