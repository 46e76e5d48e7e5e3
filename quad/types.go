package quad

import "errors"

// Sentinel errors returned by the quad package.
var (
	// ErrNilFunc indicates a nil integrand.
	ErrNilFunc = errors.New("quad: integrand is nil")

	// ErrNonPositiveN indicates a subinterval count below one.
	ErrNonPositiveN = errors.New("quad: subinterval count must be positive")

	// ErrBadNodeCount indicates a Gauss–Legendre point count outside 1..5;
	// only those orders are tabulated.
	ErrBadNodeCount = errors.New("quad: Gauss–Legendre supports 1 to 5 points")

	// ErrUnknownRule indicates a Rule value this package does not define.
	ErrUnknownRule = errors.New("quad: unknown quadrature rule")
)

// Func is an integrand y = f(x).
type Func func(x float64) float64

// Rule selects the quadrature rule used by Integrate.
type Rule int

const (
	// RuleMidpoint evaluates the integrand at subinterval midpoints.
	RuleMidpoint Rule = iota

	// RuleTrapezoid sums per-subinterval trapezoid areas.
	RuleTrapezoid

	// RuleSimpson is composite Simpson 1/3 (n rounded up to even).
	RuleSimpson

	// RuleSimpson38 is composite Simpson 3/8 (n rounded up to a multiple of 3).
	RuleSimpson38

	// RuleGaussLegendre is n-point Gauss–Legendre quadrature, n ∈ 1..5.
	RuleGaussLegendre
)

// String returns the rule name for logs and error tables.
func (r Rule) String() string {
	switch r {
	case RuleMidpoint:
		return "midpoint"
	case RuleTrapezoid:
		return "trapezoid"
	case RuleSimpson:
		return "simpson"
	case RuleSimpson38:
		return "simpson38"
	case RuleGaussLegendre:
		return "gauss-legendre"
	default:
		return "unknown"
	}
}

// Options configures Integrate.
//
// Rule – which quadrature rule to apply.
// N    – subinterval count for the Newton–Cotes rules, or the point count
// for Gauss–Legendre (1..5).
type Options struct {
	Rule Rule
	N    int
}

// Option is a functional option for Integrate.
type Option func(*Options)

// WithRule selects the quadrature rule.
func WithRule(r Rule) Option {
	return func(o *Options) {
		o.Rule = r
	}
}

// WithN sets the subinterval count (or Gauss–Legendre point count).
// Validation happens in Integrate, not here, so sweeps over candidate n
// values keep their errors at the call site.
func WithN(n int) Option {
	return func(o *Options) {
		o.N = n
	}
}

// DefaultOptions returns the defaults used by Integrate:
// composite Simpson 1/3 with 100 subintervals.
func DefaultOptions() Options {
	return Options{Rule: RuleSimpson, N: 100}
}
