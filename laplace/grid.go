// SPDX-License-Identifier: MIT

package laplace

// Grid is a uniform Nx×Ny node grid over the plate [0,Lx] × [0,Ly].
// Node (i, j) sits at (i·Δx, j·Δy); (0, 0) is the lower-left corner.
type Grid struct {
	Nx, Ny int
	Lx, Ly float64
}

// NewGrid validates and returns a grid. Both directions need at least
// two nodes (one spacing) and positive physical lengths.
func NewGrid(nx, ny int, lx, ly float64) (Grid, error) {
	g := Grid{Nx: nx, Ny: ny, Lx: lx, Ly: ly}
	if err := g.validate(); err != nil {
		return Grid{}, err
	}

	return g, nil
}

func (g Grid) validate() error {
	if g.Nx < 2 || g.Ny < 2 || g.Lx <= 0 || g.Ly <= 0 {
		return ErrBadGrid
	}

	return nil
}

// Nodes returns the total node count Nx·Ny.
func (g Grid) Nodes() int {
	return g.Nx * g.Ny
}

// Dx returns the horizontal spacing Lx/(Nx-1).
func (g Grid) Dx() float64 {
	return g.Lx / float64(g.Nx-1)
}

// Dy returns the vertical spacing Ly/(Ny-1).
func (g Grid) Dy() float64 {
	return g.Ly / float64(g.Ny-1)
}

// X returns the x-coordinate of column i.
func (g Grid) X(i int) float64 {
	return float64(i) * g.Dx()
}

// Y returns the y-coordinate of row j.
func (g Grid) Y(j int) float64 {
	return float64(j) * g.Dy()
}

// Index maps grid coordinates (i, j) to the row-major node index.
func (g Grid) Index(i, j int) (int, error) {
	if i < 0 || i >= g.Nx || j < 0 || j >= g.Ny {
		return 0, ErrNodeOutOfRange
	}

	return j*g.Nx + i, nil
}

// Coords maps a node index back to grid coordinates (i, j).
func (g Grid) Coords(p int) (i, j int, err error) {
	if p < 0 || p >= g.Nodes() {
		return 0, 0, ErrNodeOutOfRange
	}

	return p % g.Nx, p / g.Nx, nil
}

// Interior reports whether node (i, j) is strictly inside the plate.
func (g Grid) Interior(i, j int) bool {
	return i > 0 && i < g.Nx-1 && j > 0 && j < g.Ny-1
}
