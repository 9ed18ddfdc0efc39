package growth_test

import (
	"testing"

	"github.com/katalvlaran/growthgrid/growth"
)

// BenchmarkGenerate measures a 12×21 tray, the dashboard's default layout.
func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = growth.Generate(12, 21, 170, growth.WithAlertPercent(75))
	}
}

// BenchmarkGenerateLarge measures a 1000×1000 grid, half occupied.
func BenchmarkGenerateLarge(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = growth.Generate(1000, 1000, 500_000)
	}
}

func BenchmarkCounts(b *testing.B) {
	m := growth.Generate(1000, 1000, 500_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Counts()
	}
}
