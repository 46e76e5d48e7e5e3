package interp_test

import (
	"testing"

	"github.com/alejofig/numethods/interp"
	"github.com/alejofig/numethods/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fiveNodes covers two quadratic segments: [0,2] and [2,4].
var fiveNodes = points.List{
	{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 0},
	{X: 3, Y: -1}, {X: 4, Y: 3},
}

// TestPiecewiseQuadratic_TooFew verifies ErrTooFewPoints below three nodes.
func TestPiecewiseQuadratic_TooFew(t *testing.T) {
	_, err := interp.PiecewiseQuadratic(points.List{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, interp.ErrTooFewPoints)
}

// TestPiecewiseQuadratic_EvenCount verifies ErrEvenPointCount for 2k nodes.
func TestPiecewiseQuadratic_EvenCount(t *testing.T) {
	even := points.List{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}

	_, err := interp.PiecewiseQuadratic(even)
	assert.ErrorIs(t, err, interp.ErrEvenPointCount)
}

// TestPiecewiseQuadratic_Unsorted verifies ErrUnsortedNodes on out-of-order
// or duplicated x-coordinates.
func TestPiecewiseQuadratic_Unsorted(t *testing.T) {
	unsorted := points.List{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	_, err := interp.PiecewiseQuadratic(unsorted)
	assert.ErrorIs(t, err, interp.ErrUnsortedNodes)

	dup := points.List{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}}
	_, err = interp.PiecewiseQuadratic(dup)
	assert.ErrorIs(t, err, interp.ErrUnsortedNodes)
}

// TestPiecewiseQuadratic_SegmentLayout verifies segment count and bounds.
func TestPiecewiseQuadratic_SegmentLayout(t *testing.T) {
	pw, err := interp.PiecewiseQuadratic(fiveNodes)
	require.NoError(t, err)

	require.Equal(t, 2, pw.Segments())

	lo, hi, _ := pw.Segment(0)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)

	lo, hi, _ = pw.Segment(1)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 4.0, hi)

	dlo, dhi := pw.Domain()
	assert.Equal(t, 0.0, dlo)
	assert.Equal(t, 4.0, dhi)
}

// TestPiecewiseQuadratic_InterpolatesNodes verifies the interpolant passes
// through every node, including the shared boundary node.
func TestPiecewiseQuadratic_InterpolatesNodes(t *testing.T) {
	pw, err := interp.PiecewiseQuadratic(fiveNodes)
	require.NoError(t, err)

	for _, n := range fiveNodes {
		got, err := pw.Eval(n.X)
		require.NoError(t, err)
		assert.InDelta(t, n.Y, got, 1e-12, "at x=%v", n.X)
	}
}

// TestPiecewiseQuadratic_MatchesSegmentPolynomials verifies Eval picks the
// correct parabola inside each sub-interval.
func TestPiecewiseQuadratic_MatchesSegmentPolynomials(t *testing.T) {
	pw, err := interp.PiecewiseQuadratic(fiveNodes)
	require.NoError(t, err)

	left, err := interp.Lagrange(fiveNodes[0:3])
	require.NoError(t, err)
	right, err := interp.Lagrange(fiveNodes[2:5])
	require.NoError(t, err)

	got, err := pw.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, left.Eval(0.5), got, 1e-12)

	got, err = pw.Eval(3.5)
	require.NoError(t, err)
	assert.InDelta(t, right.Eval(3.5), got, 1e-12)
}

// TestPiecewiseQuadratic_OutOfDomain verifies ErrOutOfDomain beyond the
// node range.
func TestPiecewiseQuadratic_OutOfDomain(t *testing.T) {
	pw, err := interp.PiecewiseQuadratic(fiveNodes)
	require.NoError(t, err)

	_, err = pw.Eval(-0.1)
	assert.ErrorIs(t, err, interp.ErrOutOfDomain)

	_, err = pw.Eval(4.1)
	assert.ErrorIs(t, err, interp.ErrOutOfDomain)
}
