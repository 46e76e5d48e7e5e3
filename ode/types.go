package ode

import "errors"

// Sentinel errors returned by the ode package.
var (
	// ErrNonPositiveStep indicates h ≤ 0.
	ErrNonPositiveStep = errors.New("ode: step must be positive")

	// ErrNegativeSteps indicates a negative step count.
	ErrNegativeSteps = errors.New("ode: step count must be non-negative")

	// ErrBadTheta indicates a theta weight outside [0, 1].
	ErrBadTheta = errors.New("ode: theta must lie in [0, 1]")

	// ErrUnknownMethod indicates a Method value this package does not define.
	ErrUnknownMethod = errors.New("ode: unknown method")

	// ErrNilFunc indicates a nil right-hand side.
	ErrNilFunc = errors.New("ode: right-hand side is nil")
)

// Method selects the time integrator used by Decay.
type Method int

const (
	// ForwardEuler is the explicit first-order method (θ = 0).
	ForwardEuler Method = iota

	// BackwardEuler is the implicit first-order method (θ = 1).
	BackwardEuler

	// CrankNicolson is the trapezoidal second-order method (θ = ½).
	CrankNicolson

	// Theta is the general theta rule; set Options.Theta.
	Theta
)

// String returns the method name for logs and error tables.
func (m Method) String() string {
	switch m {
	case ForwardEuler:
		return "forward-euler"
	case BackwardEuler:
		return "backward-euler"
	case CrankNicolson:
		return "crank-nicolson"
	case Theta:
		return "theta"
	default:
		return "unknown"
	}
}

// Options configures Decay.
//
// Method – which integrator to apply.
// Theta  – weight for Method == Theta; ignored otherwise. Must be in [0, 1].
type Options struct {
	Method Method
	Theta  float64
}

// DefaultOptions returns the defaults used by Decay: Forward Euler,
// with θ = ½ preset so switching Method to Theta gives Crank–Nicolson.
func DefaultOptions() Options {
	return Options{Method: ForwardEuler, Theta: 0.5}
}
