// Package numethods is a small numerical-methods toolkit built for a
// PDE course: interpolation, quadrature, finite differences, model-problem
// time integrators and a 2D Dirichlet solver, each in its own subpackage.
//
// 🚀 What is numethods?
//
//	A plain-Go library collecting the techniques used across the course
//	miniprojects:
//		• interp   — Lagrange interpolation & piecewise-quadratic profiles
//		• quad     — Newton–Cotes rules & Gauss–Legendre quadrature
//		• diff     — forward/backward/central/weighted difference stencils
//		• ode      — theta-rule integrators for the decay model problem
//		• laplace  — 2D finite-difference Laplace/Poisson with Dirichlet BCs
//		• points   — (x, y) sample sets loaded from CSV
//		• render   — profile plots, decay curves and potential heatmaps
//
// ✨ Why this layout?
//
//   - One package per method family – minimal APIs, clear naming
//   - Sentinel errors everywhere – match with errors.Is, never panic
//   - Reusable across miniprojects – the runnable studies live in examples/
//
// The three course deliverables are runnable programs:
//
//	examples/decay       — stability study of the theta rule on u' = -a·u
//	examples/chocolatera — volume of a solid of revolution from measured points
//	examples/potential   — electrostatic potential on a rectangular plate
//
// Dive into each subpackage's doc.go for formulas, complexity notes and
// worked examples.
package numethods
