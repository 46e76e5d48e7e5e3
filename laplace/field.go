// SPDX-License-Identifier: MIT

package laplace

import "math"

// Field is a solved potential distribution over a grid.
type Field struct {
	grid Grid
	vals []float64
}

// Grid returns the grid the field lives on.
func (f *Field) Grid() Grid {
	return f.grid
}

// At returns the potential at node (i, j). Panics on out-of-range
// coordinates, like a slice index; use Grid().Index to validate first.
func (f *Field) At(i, j int) float64 {
	if i < 0 || i >= f.grid.Nx || j < 0 || j >= f.grid.Ny {
		panic(ErrNodeOutOfRange)
	}

	return f.vals[j*f.grid.Nx+i]
}

// Values reshapes the solution into [Ny][Nx] rows, bottom row first —
// the layout heatmap renderers expect with a lower-left origin.
func (f *Field) Values() [][]float64 {
	rows := make([][]float64, f.grid.Ny)
	for j := range rows {
		rows[j] = make([]float64, f.grid.Nx)
		copy(rows[j], f.vals[j*f.grid.Nx:(j+1)*f.grid.Nx])
	}

	return rows
}

// MaxAbs returns the largest |u| over the field, used to center
// diverging color scales at zero.
func (f *Field) MaxAbs() float64 {
	var m float64
	for _, v := range f.vals {
		m = math.Max(m, math.Abs(v))
	}

	return m
}
