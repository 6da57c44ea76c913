// Package phasesync reconstructs absolute phases from noisy pairwise
// phase-difference measurements — the nonconvex phase synchronization
// problem that shows up whenever N sensors along a line (or graph) can
// only observe relative angles between each other.
//
// 🚀 What is phasesync?
//
//	A small, dependency-light library that brings together:
//		• Measurement tooling: build, validate and perturb pairwise
//		  phase-difference matrices (radians or degrees)
//		• Spectral estimator: one-shot leading-eigenvector method (EVM)
//		• Generalized power method: iterative refinement to a stationary
//		  point of the synchronization objective
//		• Conversions: unit-modulus complex estimates ↔ zero-referenced
//		  phase vectors
//
// ✨ Why choose phasesync?
//
//   - Strict contracts – sentinel errors, explicit non-convergence signaling
//   - Deterministic – fixed-seed synthetic data helpers, no hidden randomness
//   - Pure Go – gonum for the dense eigensolve, no cgo
//   - Concurrency-safe – immutable problem instances, lazily cached spectra
//
// Everything is organized under two subpackages:
//
//	measurement/ — pairwise difference matrices: construction, validation,
//	               synchronization matrix C = exp(−i·M), synthetic noise
//	reconstruct/ — the Reconstructor: EVM estimator, generalized power
//	               method, complex ↔ phase conversion
//
// Quick ASCII example:
//
//	s0 ──Δ01── s1 ──Δ12── s2 ──Δ23── s3
//
//	Four sensors along a beamline; only the noisy differences Δij are
//	observable. phasesync recovers each sensor's absolute phase relative
//	to s0 (whose phase is pinned to 0 by convention).
//
// Dive into the package docs and example_test.go files for full
// walkthroughs, from a noiseless round-trip to a noisy 5×5 instance.
//
//	go get github.com/phasekit/phasesync
package phasesync
