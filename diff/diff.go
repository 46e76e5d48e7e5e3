package diff

import "errors"

// Sentinel errors returned by the diff package.
var (
	// ErrNilFunc indicates a nil function.
	ErrNilFunc = errors.New("diff: function is nil")

	// ErrNonPositiveStep indicates h ≤ 0.
	ErrNonPositiveStep = errors.New("diff: step must be positive")

	// ErrBadTheta indicates a weight outside [0, 1].
	ErrBadTheta = errors.New("diff: theta must lie in [0, 1]")
)

// Func is a scalar function y = f(x).
type Func func(x float64) float64

// Forward approximates f'(x) with the one-sided forward stencil:
//
//	f'(x) ≈ (f(x+h) - f(x)) / h
func Forward(f Func, x, h float64) (float64, error) {
	if err := check(f, h); err != nil {
		return 0, err
	}

	return (f(x+h) - f(x)) / h, nil
}

// Backward approximates f'(x) with the one-sided backward stencil:
//
//	f'(x) ≈ (f(x) - f(x-h)) / h
func Backward(f Func, x, h float64) (float64, error) {
	if err := check(f, h); err != nil {
		return 0, err
	}

	return (f(x) - f(x-h)) / h, nil
}

// Central approximates f'(x) with the second-order central stencil:
//
//	f'(x) ≈ (f(x+h) - f(x-h)) / (2h)
func Central(f Func, x, h float64) (float64, error) {
	if err := check(f, h); err != nil {
		return 0, err
	}

	return (f(x+h) - f(x-h)) / (2 * h), nil
}

// Weighted blends the one-sided stencils:
//
//	f'(x) ≈ (1-θ)·(f(x) - f(x-h))/h + θ·(f(x+h) - f(x))/h
//
// θ must lie in [0, 1].
func Weighted(f Func, x, h, theta float64) (float64, error) {
	if err := check(f, h); err != nil {
		return 0, err
	}
	if theta < 0 || theta > 1 {
		return 0, ErrBadTheta
	}

	back := (f(x) - f(x-h)) / h
	fwd := (f(x+h) - f(x)) / h

	return (1-theta)*back + theta*fwd, nil
}

// check validates the shared stencil arguments.
func check(f Func, h float64) error {
	if f == nil {
		return ErrNilFunc
	}
	if h <= 0 {
		return ErrNonPositiveStep
	}

	return nil
}
