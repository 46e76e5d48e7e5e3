package quad

import (
	"math"

	"github.com/alejofig/numethods/interp"
	"github.com/alejofig/numethods/points"
)

// RevolutionVolume computes the volume of the solid obtained by rotating
// a measured profile y = r(x) around the x-axis:
//
//	V = Σ_k π ∫ p_k(x)² dx
//
// where the p_k are the parabolas of a piecewise-quadratic interpolant
// through the profile points (see interp.PiecewiseQuadratic for the node
// requirements). Each segment integrand p_k² has degree four, so 3-point
// Gauss–Legendre per segment is exact up to rounding.
func RevolutionVolume(profile points.List) (float64, error) {
	pw, err := interp.PiecewiseQuadratic(profile)
	if err != nil {
		return 0, err
	}

	var volume float64
	for k := 0; k < pw.Segments(); k++ {
		lo, hi, poly := pw.Segment(k)
		slice, err := GaussLegendre(func(x float64) float64 {
			r := poly.Eval(x)

			return math.Pi * r * r
		}, lo, hi, 3)
		if err != nil {
			return 0, err
		}
		volume += slice
	}

	return volume, nil
}
