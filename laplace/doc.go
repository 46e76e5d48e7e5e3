// SPDX-License-Identifier: MIT
// Package laplace solves the 2D Laplace/Poisson equation
//
//	∇²u = f   on a rectangular plate [0,Lx] × [0,Ly]
//
// with the 5-point finite-difference stencil and Dirichlet boundary
// conditions, the way miniproject 2 sets up the electrostatic-potential
// problem.
//
// 🚀 Discretization:
//
//	Nodes form an Nx×Ny grid, row-major index p = j·Nx + i with the
//	origin at the lower-left corner. Interior nodes carry the stencil
//
//	  (u_E + u_W)/Δx² + (u_N + u_S)/Δy² - 2(1/Δx² + 1/Δy²)·u_p = f_p
//
//	Boundary rows start empty: every boundary node must receive a
//	Dirichlet condition (ApplyDirichlet / ApplyDirichletEdge) before
//	Solve, otherwise the system is singular and Solve reports it.
//
// ApplyDirichlet clamps node p by rewriting its row to the identity:
// A[p,:] = 0, A[p,p] = 1, b[p] = u — exactly the boundary_conditions
// treatment from the course notes.
//
// The assembled system is dense (gonum/mat) and solved with LU; course
// grids are small, so O(N³) with N = Nx·Ny is perfectly fine.
//
// ⚙️ Usage:
//
//	g, _ := laplace.NewGrid(30, 20, 3.0, 2.0)
//	sys, _ := laplace.NewSystem(g)
//	_ = sys.ApplyDirichletEdge(laplace.EdgeLeft, -5)
//	_ = sys.ApplyDirichletEdge(laplace.EdgeRight, +5)
//	_ = sys.ApplyDirichletEdge(laplace.EdgeBottom, 0)
//	_ = sys.ApplyDirichletEdge(laplace.EdgeTop, 0)
//	field, err := sys.Solve()
package laplace
