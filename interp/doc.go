// Package interp implements Lagrange polynomial interpolation and
// piecewise-quadratic interpolation of measured profiles.
//
// 🚀 What is Lagrange interpolation?
//
//	Given n+1 nodes (x_i, y_i) with distinct x_i, the unique polynomial
//	of degree ≤ n through them is
//
//	  p(x) = Σ_i y_i · φ_i(x),   φ_i(x) = Π_{j≠i} (x - x_j) / (x_i - x_j)
//
//	The φ_i are the Lagrange basis polynomials: φ_i(x_j) = δ_ij.
//
// ✨ Key features:
//   - Lagrange: exact interpolant through any node set with distinct x
//   - Basis: individual φ_i for stencil derivations
//   - PiecewiseQuadratic: consecutive 3-point parabolas over a sorted,
//     odd-sized node list — the profile construction used for solids of
//     revolution
//
// Complexity:
//
//   - Polynomial.Eval: O(n²) per evaluation (direct product form)
//   - PiecewiseQuadratic.Eval: O(log s) segment lookup + O(1) evaluation
//
// High-degree single polynomials oscillate on equispaced nodes (Runge);
// prefer PiecewiseQuadratic for measured data with many samples.
package interp
