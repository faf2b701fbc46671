package kruskal_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/parmst/kruskal"
)

// BenchmarkSequential measures the single-threaded reference on 5000 vertices
// and ~50000 edges.
func BenchmarkSequential(b *testing.B) {
	g := buildMediumGraph(b, 5000, 45000) // pre-build graph once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = kruskal.Sequential(g)
	}
}

// BenchmarkCompute measures both strategies over a range of worker counts.
func BenchmarkCompute(b *testing.B) {
	g := buildMediumGraph(b, 5000, 45000)
	for _, s := range strategies {
		for _, p := range []int{1, 2, 4, 8} {
			b.Run(fmt.Sprintf("%s/P=%d", s, p), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = kruskal.Compute(g, kruskal.WithWorkers(p), kruskal.WithStrategy(s))
				}
			})
		}
	}
}
