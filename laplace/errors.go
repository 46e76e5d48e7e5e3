// SPDX-License-Identifier: MIT
// Package laplace: sentinel error set. Algorithms return these sentinels
// and tests match them via errors.Is; nothing in this package panics on
// user input.

package laplace

import "errors"

var (
	// ErrBadGrid indicates grid dimensions below 2×2 or non-positive
	// physical lengths.
	ErrBadGrid = errors.New("laplace: grid needs nx,ny >= 2 and positive lengths")

	// ErrNodeOutOfRange indicates a node index outside [0, Nx·Ny).
	ErrNodeOutOfRange = errors.New("laplace: node index out of range")

	// ErrUnknownEdge indicates an Edge value this package does not define.
	ErrUnknownEdge = errors.New("laplace: unknown edge")

	// ErrNilSource indicates a nil source term passed to SetSource.
	ErrNilSource = errors.New("laplace: source function is nil")

	// ErrSingular indicates the assembled system cannot be solved —
	// in practice, boundary nodes left without a Dirichlet condition.
	ErrSingular = errors.New("laplace: singular system (missing boundary conditions?)")
)
