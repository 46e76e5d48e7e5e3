// Package quad approximates definite integrals with the composite
// Newton–Cotes rules and low-order Gauss–Legendre quadrature.
//
// 🚀 Rules:
//
//	Midpoint       ∫f ≈ Δx · Σ f(a + (i+½)Δx)                    O(h²)
//	Trapezoid      ∫f ≈ Σ (f(x_i) + f(x_{i+1})) · Δx / 2         O(h²)
//	Simpson 1/3    ∫f ≈ (Δx/3)(f₀ + 4f₁ + 2f₂ + … + 4f_{n-1} + f_n)  O(h⁴)
//	Simpson 3/8    ∫f ≈ (3Δx/8)(f₀ + 3f₁ + 3f₂ + 2f₃ + …)        O(h⁴)
//	Gauss–Legendre ∫f ≈ (b-a)/2 · Σ w_i f(map(ξ_i)), n ∈ 1..5
//
// Simpson 1/3 needs an even subinterval count, Simpson 3/8 a multiple of
// three; both silently round n up to the next legal value rather than
// erroring, so callers can sweep n freely.
//
// An n-point Gauss–Legendre rule is exact for polynomials of degree
// ≤ 2n-1; the nodes and weights are tabulated in closed form.
//
// ⚙️ Usage:
//
//	area, err := quad.Integrate(math.Sin, 0, math.Pi,
//	    quad.WithRule(quad.RuleSimpson), quad.WithN(100))
//
// or call a rule directly: quad.Simpson(math.Sin, 0, math.Pi, 100).
//
// RevolutionVolume combines quadrature with interp.PiecewiseQuadratic to
// compute the volume of a solid of revolution from measured profile
// points (the chocolatera computation of miniproject 1).
package quad
