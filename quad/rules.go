package quad

import "math"

// Integrate approximates ∫[a,b] f(x) dx with the configured rule.
// Reversed bounds (a > b) flip the sign, matching integral semantics;
// a == b yields zero.
func Integrate(f Func, a, b float64, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Rule {
	case RuleMidpoint:
		return Midpoint(f, a, b, o.N)
	case RuleTrapezoid:
		return Trapezoid(f, a, b, o.N)
	case RuleSimpson:
		return Simpson(f, a, b, o.N)
	case RuleSimpson38:
		return Simpson38(f, a, b, o.N)
	case RuleGaussLegendre:
		return GaussLegendre(f, a, b, o.N)
	default:
		return 0, ErrUnknownRule
	}
}

// Midpoint applies the composite midpoint rule with n subintervals:
//
//	∫[a,b] f(x) dx ≈ Δx · Σ_{i=0}^{n-1} f(a + (i+0.5)Δx),  Δx = (b-a)/n
func Midpoint(f Func, a, b float64, n int) (float64, error) {
	if err := checkRuleArgs(f, n); err != nil {
		return 0, err
	}

	dx := (b - a) / float64(n)
	var total float64
	for i := 0; i < n; i++ {
		mid := a + (float64(i)+0.5)*dx
		total += f(mid) * dx
	}

	return total, nil
}

// Trapezoid applies the composite trapezoidal rule with n subintervals:
//
//	∫[a,b] f(x) dx ≈ Σ_{i=0}^{n-1} (f(x_i) + f(x_{i+1})) · Δx / 2
func Trapezoid(f Func, a, b float64, n int) (float64, error) {
	if err := checkRuleArgs(f, n); err != nil {
		return 0, err
	}

	dx := (b - a) / float64(n)
	var total float64
	for i := 0; i < n; i++ {
		total += (f(a+float64(i)*dx) + f(a+float64(i+1)*dx)) * dx / 2
	}

	return total, nil
}

// Simpson applies composite Simpson 1/3 with n subintervals:
//
//	∫[a,b] f(x) dx ≈ (Δx/3) · [f(a) + 4f(a+Δx) + 2f(a+2Δx) + … + f(b)]
//
// The rule needs an even n; odd values are rounded up by one.
func Simpson(f Func, a, b float64, n int) (float64, error) {
	if err := checkRuleArgs(f, n); err != nil {
		return 0, err
	}
	if n%2 == 1 {
		n++
	}

	dx := (b - a) / float64(n)
	total := f(a) + f(b)
	for i := 1; i < n; i += 2 {
		total += 4 * f(a+float64(i)*dx)
	}
	for i := 2; i < n-1; i += 2 {
		total += 2 * f(a+float64(i)*dx)
	}

	return total * dx / 3, nil
}

// Simpson38 applies composite Simpson 3/8 with n subintervals:
//
//	∫[a,b] f(x) dx ≈ (3Δx/8) · [f₀ + 3f₁ + 3f₂ + 2f₃ + 3f₄ + … + fₙ]
//
// The rule needs n divisible by three; other values are rounded up.
func Simpson38(f Func, a, b float64, n int) (float64, error) {
	if err := checkRuleArgs(f, n); err != nil {
		return 0, err
	}
	if n%3 != 0 {
		n += 3 - n%3
	}

	h := (b - a) / float64(n)
	total := f(a) + f(b)
	for i := 1; i < n; i++ {
		xi := a + float64(i)*h
		if i%3 == 0 {
			total += 2 * f(xi)
		} else {
			total += 3 * f(xi)
		}
	}

	return total * 3 * h / 8, nil
}

// Gauss–Legendre nodes and weights on [-1, 1], tabulated in closed form
// for orders 1 through 5. An n-point rule is exact for degree ≤ 2n-1.
var (
	glNodes = [][]float64{
		1: {0},
		2: {-math.Sqrt(3) / 3, math.Sqrt(3) / 3},
		3: {-math.Sqrt(3.0 / 5.0), 0, math.Sqrt(3.0 / 5.0)},
		4: {
			-math.Sqrt(3.0/7.0 - 2.0/7.0*math.Sqrt(6.0/5.0)),
			math.Sqrt(3.0/7.0 - 2.0/7.0*math.Sqrt(6.0/5.0)),
			-math.Sqrt(3.0/7.0 + 2.0/7.0*math.Sqrt(6.0/5.0)),
			math.Sqrt(3.0/7.0 + 2.0/7.0*math.Sqrt(6.0/5.0)),
		},
		5: {
			-math.Sqrt(5-2*math.Sqrt(10.0/7.0)) / 3,
			-math.Sqrt(5+2*math.Sqrt(10.0/7.0)) / 3,
			0,
			math.Sqrt(5-2*math.Sqrt(10.0/7.0)) / 3,
			math.Sqrt(5+2*math.Sqrt(10.0/7.0)) / 3,
		},
	}

	glWeights = [][]float64{
		1: {2},
		2: {1, 1},
		3: {5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0},
		4: {
			(18 + math.Sqrt(30)) / 36,
			(18 + math.Sqrt(30)) / 36,
			(18 - math.Sqrt(30)) / 36,
			(18 - math.Sqrt(30)) / 36,
		},
		5: {
			(322 + 13*math.Sqrt(70)) / 900,
			(322 + 13*math.Sqrt(70)) / 900,
			128.0 / 225.0,
			(322 - 13*math.Sqrt(70)) / 900,
			(322 - 13*math.Sqrt(70)) / 900,
		},
	}
)

// GaussLegendre applies n-point Gauss–Legendre quadrature, n ∈ 1..5,
// mapping the tabulated nodes from [-1,1] onto [a,b]:
//
//	∫[a,b] f(x) dx ≈ (b-a)/2 · Σ_i w_i · f((b-a)/2·ξ_i + (a+b)/2)
func GaussLegendre(f Func, a, b float64, n int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if n < 1 || n > 5 {
		return 0, ErrBadNodeCount
	}

	half := (b - a) / 2
	mid := (a + b) / 2
	var total float64
	for i := 0; i < n; i++ {
		total += glWeights[n][i] * f(half*glNodes[n][i]+mid)
	}

	return total * half, nil
}

// checkRuleArgs validates the shared Newton–Cotes arguments.
func checkRuleArgs(f Func, n int) error {
	if f == nil {
		return ErrNilFunc
	}
	if n < 1 {
		return ErrNonPositiveN
	}

	return nil
}
