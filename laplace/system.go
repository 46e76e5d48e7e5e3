// SPDX-License-Identifier: MIT

package laplace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Edge names one side of the plate for bulk Dirichlet application.
type Edge int

const (
	// EdgeLeft is the i = 0 column.
	EdgeLeft Edge = iota

	// EdgeRight is the i = Nx-1 column.
	EdgeRight

	// EdgeBottom is the j = 0 row.
	EdgeBottom

	// EdgeTop is the j = Ny-1 row.
	EdgeTop
)

// System is the assembled linear system A·u = b for ∇²u = f on a grid.
// Interior rows carry the 5-point stencil; boundary rows stay zero until
// a Dirichlet condition clamps them.
type System struct {
	grid Grid
	a    *mat.Dense
	b    *mat.VecDense
}

// NewSystem assembles the discrete Laplacian for grid g with f = 0.
// Use SetSource for a Poisson right-hand side.
func NewSystem(g Grid) (*System, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	n := g.Nodes()
	s := &System{
		grid: g,
		a:    mat.NewDense(n, n, nil),
		b:    mat.NewVecDense(n, nil),
	}

	invDx2 := 1 / (g.Dx() * g.Dx())
	invDy2 := 1 / (g.Dy() * g.Dy())
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			p := j*g.Nx + i
			s.a.Set(p, p, -2*(invDx2+invDy2))
			s.a.Set(p, p-1, invDx2)
			s.a.Set(p, p+1, invDx2)
			s.a.Set(p, p-g.Nx, invDy2)
			s.a.Set(p, p+g.Nx, invDy2)
		}
	}

	return s, nil
}

// SetSource fills the right-hand side at interior nodes with f(x, y).
// Dirichlet rows applied earlier keep their boundary value.
func (s *System) SetSource(f func(x, y float64) float64) error {
	if f == nil {
		return ErrNilSource
	}

	for j := 1; j < s.grid.Ny-1; j++ {
		for i := 1; i < s.grid.Nx-1; i++ {
			s.b.SetVec(j*s.grid.Nx+i, f(s.grid.X(i), s.grid.Y(j)))
		}
	}

	return nil
}

// ApplyDirichlet clamps node p to the potential u by rewriting its row
// to the identity: A[p,:] = 0, A[p,p] = 1, b[p] = u.
func (s *System) ApplyDirichlet(p int, u float64) error {
	if p < 0 || p >= s.grid.Nodes() {
		return ErrNodeOutOfRange
	}

	s.a.SetRow(p, make([]float64, s.grid.Nodes()))
	s.a.Set(p, p, 1)
	s.b.SetVec(p, u)

	return nil
}

// ApplyDirichletEdge clamps every node of the named edge to u.
// Corner nodes belong to both adjacent edges; the last application wins.
func (s *System) ApplyDirichletEdge(e Edge, u float64) error {
	g := s.grid
	var nodes []int
	switch e {
	case EdgeLeft, EdgeRight:
		i := 0
		if e == EdgeRight {
			i = g.Nx - 1
		}
		for j := 0; j < g.Ny; j++ {
			nodes = append(nodes, j*g.Nx+i)
		}
	case EdgeBottom, EdgeTop:
		j := 0
		if e == EdgeTop {
			j = g.Ny - 1
		}
		for i := 0; i < g.Nx; i++ {
			nodes = append(nodes, j*g.Nx+i)
		}
	default:
		return ErrUnknownEdge
	}

	for _, p := range nodes {
		if err := s.ApplyDirichlet(p, u); err != nil {
			return err
		}
	}

	return nil
}

// Grid returns the grid the system was assembled on.
func (s *System) Grid() Grid {
	return s.grid
}

// Solve factors the dense system with LU and returns the potential
// field. A singular system — typically boundary nodes never clamped —
// yields ErrSingular.
func (s *System) Solve() (*Field, error) {
	var u mat.VecDense
	if err := u.SolveVec(s.a, s.b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	vals := make([]float64, s.grid.Nodes())
	for p := range vals {
		vals[p] = u.AtVec(p)
	}

	return &Field{grid: s.grid, vals: vals}, nil
}
