package interp

import "errors"

// Sentinel errors returned by the interp package.
var (
	// ErrTooFewPoints indicates fewer nodes than the construction needs
	// (Lagrange needs at least one, PiecewiseQuadratic at least three).
	ErrTooFewPoints = errors.New("interp: too few interpolation points")

	// ErrDuplicateNode indicates two nodes share the same x-coordinate,
	// which makes a Lagrange basis denominator vanish.
	ErrDuplicateNode = errors.New("interp: duplicate x node")

	// ErrUnsortedNodes indicates piecewise nodes are not in strictly
	// increasing x order.
	ErrUnsortedNodes = errors.New("interp: nodes must be sorted by ascending x")

	// ErrEvenPointCount indicates a piecewise-quadratic node list whose
	// size is even; 3-point segments need 2k+1 nodes.
	ErrEvenPointCount = errors.New("interp: piecewise quadratic needs an odd number of points")

	// ErrBasisIndex indicates a basis index outside [0, len(points)).
	ErrBasisIndex = errors.New("interp: basis index out of range")

	// ErrOutOfDomain indicates an evaluation point outside the piecewise
	// interpolant's node range.
	ErrOutOfDomain = errors.New("interp: evaluation point outside node range")
)
