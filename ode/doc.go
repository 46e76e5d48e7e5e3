// Package ode integrates the exponential-decay model problem
//
//	u'(t) = -a·u(t),  u(0) = u0,  a > 0
//
// on a uniform time mesh t_n = n·h with the classic theta-rule family.
//
// 🚀 Update formulas (per step):
//
//	Forward Euler   u_{n+1} = (1 - a·h) · u_n
//	Backward Euler  u_{n+1} = u_n / (1 + a·h)
//	Crank–Nicolson  u_{n+1} = (1 - ½a·h) / (1 + ½a·h) · u_n
//	Theta rule      u_{n+1} = (1 - (1-θ)a·h) / (1 + θa·h) · u_n
//
// Every method is a constant amplification factor A applied per step;
// Amplification exposes it directly for stability studies.
//
// Stability on this problem:
//   - Forward Euler decays monotonically only for h ≤ 1/a and remains
//     stable (|A| ≤ 1) only for h ≤ 2/a.
//   - Backward Euler and Crank–Nicolson are unconditionally stable.
//   - The theta rule is unconditionally stable for θ ≥ ½.
//
// Euler additionally integrates a general autonomous u' = f(u) with the
// explicit Euler update u_{n+1} = u_n + h·f(u_n).
package ode
