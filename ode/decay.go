package ode

import "math"

// Amplification returns the per-step factor A such that u_{n+1} = A·u_n
// for the configured method on u' = -a·u with step h.
func Amplification(a, h float64, opts Options) (float64, error) {
	if h <= 0 {
		return 0, ErrNonPositiveStep
	}

	switch opts.Method {
	case ForwardEuler:
		return 1 - a*h, nil
	case BackwardEuler:
		return 1 / (1 + a*h), nil
	case CrankNicolson:
		return (1 - 0.5*a*h) / (1 + 0.5*a*h), nil
	case Theta:
		if opts.Theta < 0 || opts.Theta > 1 {
			return 0, ErrBadTheta
		}

		return (1 - (1-opts.Theta)*a*h) / (1 + opts.Theta*a*h), nil
	default:
		return 0, ErrUnknownMethod
	}
}

// Decay integrates u' = -a·u, u(0) = u0 over the mesh t_n = n·h and
// returns the numerical solution u_0 .. u_steps (length steps+1).
func Decay(u0, a, h float64, steps int, opts Options) ([]float64, error) {
	if steps < 0 {
		return nil, ErrNegativeSteps
	}
	amp, err := Amplification(a, h, opts)
	if err != nil {
		return nil, err
	}

	u := make([]float64, steps+1)
	u[0] = u0
	for n := 0; n < steps; n++ {
		u[n+1] = amp * u[n]
	}

	return u, nil
}

// Exact returns the analytical solution u0·e^(-a·t_n) on the same mesh
// as Decay (length steps+1). Negative steps yield an empty slice.
func Exact(u0, a, h float64, steps int) []float64 {
	if steps < 0 {
		return nil
	}

	u := make([]float64, steps+1)
	for n := range u {
		u[n] = u0 * math.Exp(-a*float64(n)*h)
	}

	return u
}

// Mesh returns the uniform time grid t_n = n·h, n = 0..steps.
func Mesh(h float64, steps int) []float64 {
	if steps < 0 {
		return nil
	}

	t := make([]float64, steps+1)
	for n := range t {
		t[n] = float64(n) * h
	}

	return t
}

// Euler advances the general autonomous problem u' = f(u) from u0 with
// the explicit Euler update u_{n+1} = u_n + h·f(u_n) and returns the
// state after the given number of steps.
func Euler(f func(u float64) float64, u0, h float64, steps int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if h <= 0 {
		return 0, ErrNonPositiveStep
	}
	if steps < 0 {
		return 0, ErrNegativeSteps
	}

	u := u0
	for n := 0; n < steps; n++ {
		u += h * f(u)
	}

	return u, nil
}
