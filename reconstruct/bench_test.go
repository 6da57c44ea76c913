package reconstruct_test

import (
	"testing"

	"github.com/phasekit/phasesync/measurement"
	"github.com/phasekit/phasesync/reconstruct"
)

// benchmarkReconstructor builds a deterministic noisy N-sensor instance.
func benchmarkReconstructor(b *testing.B, n int) *reconstruct.Reconstructor {
	b.Helper()

	truth, err := measurement.RandomPhases(n, 0, 6, measurement.Uniform, 42)
	if err != nil {
		b.Fatalf("RandomPhases failed: %v", err)
	}
	noise, err := measurement.AntisymmetricNoise(n, 0.01, 42)
	if err != nil {
		b.Fatalf("AntisymmetricNoise failed: %v", err)
	}
	m, err := measurement.Add(measurement.FromPhases(truth), noise)
	if err != nil {
		b.Fatalf("Add failed: %v", err)
	}
	rec, err := reconstruct.NewFromMeasurements(m, measurement.Radians)
	if err != nil {
		b.Fatalf("NewFromMeasurements failed: %v", err)
	}

	return rec
}

// BenchmarkEigenvectorEstimate_Cold benchmarks the EVM including the
// one-off eigendecomposition (fresh instance per iteration).
func BenchmarkEigenvectorEstimate_Cold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		rec := benchmarkReconstructor(b, 100)
		b.StartTimer()

		if _, err := rec.EigenvectorEstimate(); err != nil {
			b.Fatalf("EigenvectorEstimate failed: %v", err)
		}
	}
}

// BenchmarkEigenvectorEstimate_Warm benchmarks the EVM against a cached
// decomposition.
func BenchmarkEigenvectorEstimate_Warm(b *testing.B) {
	rec := benchmarkReconstructor(b, 100)
	if _, err := rec.EigenvectorEstimate(); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rec.EigenvectorEstimate(); err != nil {
			b.Fatalf("EigenvectorEstimate failed: %v", err)
		}
	}
}

// BenchmarkReconstruct_Medium benchmarks a full GPM run on 100 sensors
// with the decomposition already cached.
func BenchmarkReconstruct_Medium(b *testing.B) {
	rec := benchmarkReconstructor(b, 100)
	if _, err := rec.EigenvectorEstimate(); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rec.Reconstruct(reconstruct.DefaultOptions()); err != nil {
			b.Fatalf("Reconstruct failed: %v", err)
		}
	}
}

// BenchmarkPhases benchmarks the complex-to-phase conversion alone.
func BenchmarkPhases(b *testing.B) {
	rec := benchmarkReconstructor(b, 100)
	est, err := rec.EigenvectorEstimate()
	if err != nil {
		b.Fatalf("EigenvectorEstimate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reconstruct.Phases(est, measurement.Radians); err != nil {
			b.Fatalf("Phases failed: %v", err)
		}
	}
}
