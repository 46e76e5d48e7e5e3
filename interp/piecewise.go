package interp

import (
	"sort"

	"github.com/alejofig/numethods/points"
)

// segment is one 3-point parabola of a piecewise interpolant.
type segment struct {
	lo, hi float64
	poly   *Polynomial
}

// Piecewise is a profile interpolant made of consecutive 3-point
// quadratic segments: nodes 0-1-2 form the first parabola, nodes 2-3-4
// the second, and so on. Adjacent segments share their boundary node, so
// the interpolant is continuous.
type Piecewise struct {
	segs []segment
}

// PiecewiseQuadratic builds a piecewise-quadratic interpolant over pts.
//
// Requirements:
//   - an odd node count of at least three (2k+1 nodes → k segments),
//   - strictly increasing x-coordinates (sort with List.SortedByX first).
//
// Complexity: O(n) construction, O(log s) per Eval.
func PiecewiseQuadratic(pts points.List) (*Piecewise, error) {
	if len(pts) < 3 {
		return nil, ErrTooFewPoints
	}
	if len(pts)%2 == 0 {
		return nil, ErrEvenPointCount
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X {
			return nil, ErrUnsortedNodes
		}
	}

	segs := make([]segment, 0, (len(pts)-1)/2)
	for k := 0; k+2 < len(pts); k += 2 {
		poly, err := Lagrange(pts[k : k+3])
		if err != nil {
			return nil, err
		}
		segs = append(segs, segment{lo: pts[k].X, hi: pts[k+2].X, poly: poly})
	}

	return &Piecewise{segs: segs}, nil
}

// Eval evaluates the interpolant at x. Points outside the node range
// yield ErrOutOfDomain; segment boundaries belong to the left segment.
func (pw *Piecewise) Eval(x float64) (float64, error) {
	lo, hi := pw.Domain()
	if x < lo || x > hi {
		return 0, ErrOutOfDomain
	}

	// First segment whose upper bound reaches x.
	k := sort.Search(len(pw.segs), func(i int) bool { return pw.segs[i].hi >= x })

	return pw.segs[k].poly.Eval(x), nil
}

// Segments returns the number of quadratic segments.
func (pw *Piecewise) Segments() int {
	return len(pw.segs)
}

// Segment returns the k-th parabola and its sub-interval [lo, hi].
func (pw *Piecewise) Segment(k int) (lo, hi float64, poly *Polynomial) {
	s := pw.segs[k]

	return s.lo, s.hi, s.poly
}

// Domain returns the covered x-range [lo, hi].
func (pw *Piecewise) Domain() (lo, hi float64) {
	return pw.segs[0].lo, pw.segs[len(pw.segs)-1].hi
}
