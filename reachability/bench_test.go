package reachability_test

import (
	"testing"

	"github.com/katalvlaran/lavaworld/adjacency"
	"github.com/katalvlaran/lavaworld/components"
	"github.com/katalvlaran/lavaworld/geometry"
	"github.com/katalvlaran/lavaworld/reachability"
)

// BenchmarkFromPartition_OneComponent fills the worst case: all N islands in
// one chain, so every cell of the table is set.
func BenchmarkFromPartition_OneComponent(b *testing.B) {
	const n = 1000
	rects := make([]geometry.Rect, n)
	for i := range rects {
		rects[i] = geometry.NewRect(i, 1, i+1, 0)
	}
	p, err := components.Label(adjacency.Build(rects))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reachability.FromPartition(p)
	}
}
