// Package measurement builds, validates and perturbs pairwise
// phase-difference matrices — the input boundary of phase synchronization.
//
// 🚀 What is a measurement matrix?
//
//	An N×N real matrix M where M[i][j] estimates phase(j) − phase(i)
//	between sensors i and j, in radians or degrees.  Three structural
//	properties follow from the definition:
//	  • the diagonal is zero (no self-difference),
//	  • M is antisymmetric: M[i][j] = −M[j][i],
//	  • only relative phases are observable — any global offset cancels.
//
// ✨ Key features:
//   - FromPhases — exact (noiseless) matrix from a ground-truth vector
//   - Validate — square / size / finiteness / diagonal / antisymmetry checks
//   - Synchronization — the Hermitian matrix C = exp(−i·M) consumed by
//     the reconstruct package (degrees converted to radians first)
//   - AntisymmetricNoise, RandomPhases, Add — deterministic synthetic
//     instances for experiments and tests
//   - Antisymmetrize — project a noisy matrix onto its antisymmetric part
//
// ⚙️ Usage:
//
//	import "github.com/phasekit/phasesync/measurement"
//
//	truth, _ := measurement.RandomPhases(50, 0, 2, measurement.Uniform, 42)
//	m := measurement.FromPhases(truth)
//	noise, _ := measurement.AntisymmetricNoise(50, 0.01, 42)
//	noisy, _ := measurement.Add(m, noise)
//	c, err := measurement.Synchronization(noisy, measurement.Radians)
//
// All helpers are pure functions; the package holds no state.
package measurement
