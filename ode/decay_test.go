package ode_test

import (
	"math"
	"testing"

	"github.com/alejofig/numethods/ode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecay_ForwardEulerSteps pins the explicit update (1-a·h)·u_n.
func TestDecay_ForwardEulerSteps(t *testing.T) {
	u, err := ode.Decay(1, 1, 0.1, 2, ode.Options{Method: ode.ForwardEuler})
	require.NoError(t, err)

	require.Len(t, u, 3)
	assert.Equal(t, 1.0, u[0])
	assert.InDelta(t, 0.9, u[1], 1e-12)
	assert.InDelta(t, 0.81, u[2], 1e-12)
}

// TestDecay_BackwardEulerSteps pins the implicit update u_n/(1+a·h).
func TestDecay_BackwardEulerSteps(t *testing.T) {
	u, err := ode.Decay(1, 1, 0.1, 2, ode.Options{Method: ode.BackwardEuler})
	require.NoError(t, err)

	assert.InDelta(t, 1/1.1, u[1], 1e-12)
	assert.InDelta(t, 1/(1.1*1.1), u[2], 1e-12)
}

// TestDecay_CrankNicolsonStep pins the trapezoidal update.
func TestDecay_CrankNicolsonStep(t *testing.T) {
	u, err := ode.Decay(1, 1, 0.1, 1, ode.Options{Method: ode.CrankNicolson})
	require.NoError(t, err)

	assert.InDelta(t, 0.95/1.05, u[1], 1e-12)
}

// TestDecay_ThetaRecoversNamedMethods verifies θ ∈ {0, 1, ½} reproduce
// Forward Euler, Backward Euler and Crank–Nicolson exactly.
func TestDecay_ThetaRecoversNamedMethods(t *testing.T) {
	cases := []struct {
		theta float64
		same  ode.Method
	}{
		{0, ode.ForwardEuler},
		{1, ode.BackwardEuler},
		{0.5, ode.CrankNicolson},
	}

	for _, tc := range cases {
		want, err := ode.Decay(2, 0.7, 0.25, 10, ode.Options{Method: tc.same})
		require.NoError(t, err)
		got, err := ode.Decay(2, 0.7, 0.25, 10, ode.Options{Method: ode.Theta, Theta: tc.theta})
		require.NoError(t, err)

		for n := range want {
			assert.InDelta(t, want[n], got[n], 1e-12, "theta=%v step %d", tc.theta, n)
		}
	}
}

// TestDecay_ForwardEulerInstability verifies the oscillating blow-up for
// h > 2/a: with a=1, h=3 the factor is -2.
func TestDecay_ForwardEulerInstability(t *testing.T) {
	u, err := ode.Decay(1, 1, 3, 3, ode.Options{Method: ode.ForwardEuler})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, -2, 4, -8}, u)
}

// TestDecay_ImplicitMethodsUnconditionallyStable verifies |u| decays for
// a large step where Forward Euler explodes.
func TestDecay_ImplicitMethodsUnconditionallyStable(t *testing.T) {
	for _, m := range []ode.Method{ode.BackwardEuler, ode.CrankNicolson} {
		u, err := ode.Decay(1, 1, 10, 5, ode.Options{Method: m})
		require.NoError(t, err)

		for n := 1; n < len(u); n++ {
			assert.Less(t, math.Abs(u[n]), math.Abs(u[n-1]), "%s step %d", m, n)
		}
	}
}

// TestAmplification_Formulas pins the closed-form factors at a=1, h=0.1.
func TestAmplification_Formulas(t *testing.T) {
	amp, err := ode.Amplification(1, 0.1, ode.Options{Method: ode.ForwardEuler})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, amp, 1e-12)

	amp, err = ode.Amplification(1, 0.1, ode.Options{Method: ode.BackwardEuler})
	require.NoError(t, err)
	assert.InDelta(t, 1/1.1, amp, 1e-12)

	amp, err = ode.Amplification(1, 0.1, ode.Options{Method: ode.Theta, Theta: 0.25})
	require.NoError(t, err)
	assert.InDelta(t, (1-0.75*0.1)/(1+0.25*0.1), amp, 1e-12)
}

// TestDecay_ConvergesToExact verifies Crank–Nicolson tracks the exact
// solution to O(h²) over a fixed horizon.
func TestDecay_ConvergesToExact(t *testing.T) {
	const (
		u0 = 1.0
		a  = 2.0
		T  = 1.0
	)

	errAt := func(steps int) float64 {
		h := T / float64(steps)
		u, err := ode.Decay(u0, a, h, steps, ode.Options{Method: ode.CrankNicolson})
		require.NoError(t, err)
		exact := ode.Exact(u0, a, h, steps)

		return math.Abs(u[steps] - exact[steps])
	}

	ratio := errAt(50) / errAt(100)
	assert.InDelta(t, 4.0, ratio, 0.2, "halving h must quarter the CN error")
}

// TestExactAndMesh verifies lengths and endpoint values.
func TestExactAndMesh(t *testing.T) {
	u := ode.Exact(3, 1, 0.5, 4)
	require.Len(t, u, 5)
	assert.Equal(t, 3.0, u[0])
	assert.InDelta(t, 3*math.Exp(-2), u[4], 1e-12)

	mesh := ode.Mesh(0.5, 4)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, mesh)
}

// TestEuler_GenericAutonomous verifies the explicit update on f(u) = -u
// matches the decay Forward Euler result.
func TestEuler_GenericAutonomous(t *testing.T) {
	got, err := ode.Euler(func(u float64) float64 { return -u }, 1, 0.1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.81, got, 1e-12)
}

// TestDecay_ArgumentErrors verifies the sentinel errors.
func TestDecay_ArgumentErrors(t *testing.T) {
	_, err := ode.Decay(1, 1, 0, 10, ode.DefaultOptions())
	assert.ErrorIs(t, err, ode.ErrNonPositiveStep)

	_, err = ode.Decay(1, 1, 0.1, -1, ode.DefaultOptions())
	assert.ErrorIs(t, err, ode.ErrNegativeSteps)

	_, err = ode.Decay(1, 1, 0.1, 10, ode.Options{Method: ode.Theta, Theta: 1.5})
	assert.ErrorIs(t, err, ode.ErrBadTheta)

	_, err = ode.Decay(1, 1, 0.1, 10, ode.Options{Method: ode.Method(42)})
	assert.ErrorIs(t, err, ode.ErrUnknownMethod)

	_, err = ode.Euler(nil, 1, 0.1, 10)
	assert.ErrorIs(t, err, ode.ErrNilFunc)

	_, err = ode.Euler(func(u float64) float64 { return -u }, 1, -1, 10)
	assert.ErrorIs(t, err, ode.ErrNonPositiveStep)
}
