package reconstruct_test

import (
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/phasekit/phasesync/measurement"
	"github.com/phasekit/phasesync/reconstruct"
)

// noiseless builds a Reconstructor for an exact instance with the given
// ground-truth phases (radians).
func noiseless(t *testing.T, phases []float64) *reconstruct.Reconstructor {
	t.Helper()

	rec, err := reconstruct.NewFromMeasurements(measurement.FromPhases(phases), measurement.Radians)
	require.NoError(t, err, "noiseless instance must construct")

	return rec
}

// TestNew_NilMatrix verifies rejection of a nil matrix.
func TestNew_NilMatrix(t *testing.T) {
	_, err := reconstruct.New(nil)
	assert.ErrorIs(t, err, reconstruct.ErrNilMatrix, "nil matrix must error")
}

// TestNew_NonSquare verifies rejection of rectangular input.
func TestNew_NonSquare(t *testing.T) {
	_, err := reconstruct.New(mat.NewCDense(2, 3, nil))
	assert.ErrorIs(t, err, reconstruct.ErrNonSquare, "2x3 matrix must error")
}

// TestNew_TooSmall verifies the N >= 2 contract.
func TestNew_TooSmall(t *testing.T) {
	c := mat.NewCDense(1, 1, []complex128{1})
	_, err := reconstruct.New(c)
	assert.ErrorIs(t, err, reconstruct.ErrTooSmall, "1x1 matrix must error")
}

// TestNew_NonFinite verifies rejection of NaN/Inf entries.
func TestNew_NonFinite(t *testing.T) {
	c := mat.NewCDense(2, 2, []complex128{1, cmplx.NaN(), cmplx.NaN(), 1})
	_, err := reconstruct.New(c)
	assert.ErrorIs(t, err, reconstruct.ErrNonFinite, "NaN entry must error")
}

// TestNew_NotHermitian verifies rejection when C deviates from conj(C)ᵀ.
func TestNew_NotHermitian(t *testing.T) {
	c := mat.NewCDense(2, 2, []complex128{1, 1, 2, 1})
	_, err := reconstruct.New(c)
	assert.ErrorIs(t, err, reconstruct.ErrNotHermitian, "asymmetric matrix must error")
}

// TestNew_CopiesInput verifies that later mutation of the caller's matrix
// does not leak into the instance.
func TestNew_CopiesInput(t *testing.T) {
	m := measurement.FromPhases([]float64{0, 1, 2})
	c, err := measurement.Synchronization(m, measurement.Radians)
	require.NoError(t, err, "synchronization must succeed")

	rec, err := reconstruct.New(c)
	require.NoError(t, err, "construction must succeed")

	before, err := rec.Objective([]complex128{1, 1, 1})
	require.NoError(t, err, "objective must evaluate")

	c.Set(0, 1, 0) // mutate the caller's copy

	after, err := rec.Objective([]complex128{1, 1, 1})
	require.NoError(t, err, "objective must evaluate after mutation")
	assert.Equal(t, before, after, "instance must be isolated from caller mutation")
}

// TestDim verifies the dimension accessor.
func TestDim(t *testing.T) {
	rec := noiseless(t, []float64{0, 0.3, 0.6, 0.9, 1.2})
	assert.Equal(t, 5, rec.Dim(), "Dim must report N")
}

// TestLeadingEigenvector_Noiseless verifies that the leading eigenvector
// of a noiseless instance is entrywise proportional to the ground-truth
// phasor: constant magnitude 1/√N and the exact relative phases.
func TestLeadingEigenvector_Noiseless(t *testing.T) {
	truth := []float64{0, 0.4, 1.1, 2.0}
	rec := noiseless(t, truth)

	v, err := rec.LeadingEigenvector()
	require.NoError(t, err, "decomposition must succeed")
	require.Len(t, v, 4, "one entry per sensor")

	for k, z := range v {
		assert.InDelta(t, 1/math.Sqrt(4), cmplx.Abs(z), 1e-9, "entry %d magnitude", k)
	}
	for k := range v {
		rel := cmplx.Phase(v[k] * cmplx.Conj(v[0]))
		assert.InDelta(t, truth[k], rel, 1e-9, "entry %d relative phase", k)
	}
}

// TestEigenvectorEstimate_UnitModulus verifies the EVM output lies on the
// product of unit circles.
func TestEigenvectorEstimate_UnitModulus(t *testing.T) {
	rec := noiseless(t, []float64{0, 0.4, 1.1, 2.0})

	est, err := rec.EigenvectorEstimate()
	require.NoError(t, err, "estimation must succeed")
	for k, z := range est {
		assert.InDelta(t, 1.0, cmplx.Abs(z), 1e-12, "entry %d must be unit modulus", k)
	}
}

// TestEigenvectorEstimate_DegenerateEntry verifies the documented
// zero-magnitude policy: an exactly zero eigenvector entry is substituted
// with 1+0i instead of propagating NaN.
func TestEigenvectorEstimate_DegenerateEntry(t *testing.T) {
	// Block matrix: sensor 0 is decoupled, so the leading eigenvector
	// (eigenvalue 2, from the coupled block) has a zero first entry.
	c := mat.NewCDense(3, 3, []complex128{
		1, 0, 0,
		0, 1, 1,
		0, 1, 1,
	})
	rec, err := reconstruct.New(c)
	require.NoError(t, err, "block matrix must construct")

	est, err := rec.EigenvectorEstimate()
	require.NoError(t, err, "estimation must succeed")
	assert.Equal(t, complex(1, 0), est[0], "zero-magnitude entry must be substituted with 1+0i")
	for k, z := range est {
		assert.False(t, cmplx.IsNaN(z), "entry %d must not be NaN", k)
		assert.InDelta(t, 1.0, cmplx.Abs(z), 1e-12, "entry %d must be unit modulus", k)
	}
}

// TestSpectralShift verifies α = max(0, −λ_min): zero for PSD instances,
// the negated smallest eigenvalue otherwise.
func TestSpectralShift(t *testing.T) {
	// Noiseless C = z·zᴴ is PSD: spectrum {N, 0, ..., 0} ⇒ α ≈ 0.
	rec := noiseless(t, []float64{0, 0.4, 1.1})
	alpha, err := rec.SpectralShift()
	require.NoError(t, err, "shift must compute")
	assert.InDelta(t, 0, alpha, 1e-9, "PSD instance needs no shift")

	// Real symmetric [[1,2],[2,1]] has eigenvalues {3, −1} ⇒ α = 1.
	c := mat.NewCDense(2, 2, []complex128{1, 2, 2, 1})
	indefinite, err := reconstruct.New(c)
	require.NoError(t, err, "indefinite matrix must construct")
	alpha, err = indefinite.SpectralShift()
	require.NoError(t, err, "shift must compute")
	assert.InDelta(t, 1, alpha, 1e-9, "α must negate the smallest eigenvalue")
}

// TestObjective verifies the synchronization objective on the noiseless
// optimum (f = N²) and the dimension contract.
func TestObjective(t *testing.T) {
	truth := []float64{0, 0.4, 1.1, 2.0}
	rec := noiseless(t, truth)

	z, err := reconstruct.Complex(truth, measurement.Radians)
	require.NoError(t, err, "truth must lift to the unit circle")

	f, err := rec.Objective(z)
	require.NoError(t, err, "objective must evaluate")
	assert.InDelta(t, 16, f, 1e-9, "noiseless optimum value is N²")

	_, err = rec.Objective([]complex128{1, 1})
	assert.ErrorIs(t, err, reconstruct.ErrDimensionMismatch, "wrong length must error")
}

// TestEigenCache_ConcurrentReaders verifies that the lazily cached
// decomposition is safe under concurrent first access.
func TestEigenCache_ConcurrentReaders(t *testing.T) {
	rec := noiseless(t, []float64{0, 0.5, 1.0, 1.5, 2.0})

	var wg sync.WaitGroup
	results := make([][]complex128, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			v, err := rec.LeadingEigenvector()
			assert.NoError(t, err, "goroutine %d", g)
			results[g] = v
		}(g)
	}
	wg.Wait()

	for g := 1; g < 8; g++ {
		assert.Equal(t, results[0], results[g], "all readers must see the same cached spectrum")
	}
}
