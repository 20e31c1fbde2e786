package analysis

import (
	"testing"

	"github.com/cwbudde/algo-cube/internal/testutil"
)

func BenchmarkIntegrate(b *testing.B) {
	c := testutil.DeterministicNoise(b, 1, 1, 64, 128, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Integrate(c, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRMS(b *testing.B) {
	c := testutil.DeterministicNoise(b, 1, 1, 64, 128, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RMS(c, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSmooth(b *testing.B) {
	c := testutil.DeterministicNoise(b, 1, 1, 64, 64, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Smooth(c, 0, 2); err != nil {
			b.Fatal(err)
		}
	}
}
