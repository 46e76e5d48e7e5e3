// Package diff approximates first derivatives with finite-difference
// stencils on a uniform step h.
//
// Stencils:
//
//	Forward   f'(x) ≈ (f(x+h) - f(x)) / h           O(h)
//	Backward  f'(x) ≈ (f(x) - f(x-h)) / h           O(h)
//	Central   f'(x) ≈ (f(x+h) - f(x-h)) / (2h)      O(h²)
//	Weighted  f'(x) ≈ (1-θ)·backward + θ·forward
//
// Weighted recovers Backward at θ=0, Forward at θ=1 and Central at θ=½.
// The θ blend is the spatial analogue of the theta rule in package ode.
package diff
