package laplace_test

import (
	"testing"

	"github.com/alejofig/numethods/laplace"
)

// BenchmarkSolve_20x20 measures assembly plus dense LU on a 400-node grid.
func BenchmarkSolve_20x20(b *testing.B) {
	g, err := laplace.NewGrid(20, 20, 1, 1)
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		sys, err := laplace.NewSystem(g)
		if err != nil {
			b.Fatal(err)
		}
		for _, e := range []laplace.Edge{laplace.EdgeLeft, laplace.EdgeRight, laplace.EdgeBottom, laplace.EdgeTop} {
			if err := sys.ApplyDirichletEdge(e, 1); err != nil {
				b.Fatal(err)
			}
		}
		if _, err := sys.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}
