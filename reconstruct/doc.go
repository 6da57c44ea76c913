// Package reconstruct recovers absolute phases from a Hermitian
// synchronization matrix — the nonconvex phase synchronization problem.
//
// 🚀 What does it solve?
//
//	Given C[i][j] = exp(i·(phase(i) − phase(j))) built from noisy pairwise
//	measurements, find unit-modulus z maximizing the synchronization
//	objective
//
//	    f(z) = Σ_{i,j} Re( conj(z_i) · C[i][j] · z_j ),
//
//	whose maximizer is the maximum-likelihood phase estimate under
//	Gaussian noise.  Two estimators are provided:
//
//	  • EigenvectorEstimate — one-shot spectral method (EVM): project the
//	    leading eigenvector of C entrywise onto the unit circle.  Exact in
//	    the noiseless case, near-optimal under moderate noise.
//	  • Reconstruct — generalized power method (GPM): iterate
//	    x ← unitProject((C + αI)·x) from the EVM estimate (or a caller
//	    initial guess) until successive iterates agree within a margin.
//	    The shift α = max(0, −λ_min) keeps C + αI positive semidefinite,
//	    which makes the objective non-decreasing at every step.
//
// ✨ Key properties:
//   - Immutable problem instance; the eigendecomposition is computed
//     lazily, cached once, and safe for concurrent readers.
//   - Strict sentinel errors; non-convergence is always surfaced via
//     ErrNotConverged together with the best iterate found.
//   - Phases/Complex convert between unit-modulus complex estimates and
//     zero-referenced phase vectors in radians or degrees.
//
// ⚙️ Usage:
//
//	c, _ := measurement.Synchronization(m, measurement.Degrees)
//	rec, err := reconstruct.New(c)
//	res, err := rec.Reconstruct(reconstruct.DefaultOptions())
//	phases, err := reconstruct.Phases(res.Estimate, measurement.Degrees)
//
// Reference: Boumal, “Nonconvex phase synchronization”,
// SIAM J. Optim. 26(4), 2016 (arXiv:1601.06114).
package reconstruct
