package interp

import "github.com/alejofig/numethods/points"

// Polynomial is a Lagrange interpolant held in node form.
// Evaluation uses the direct product formula, which is numerically fine
// for the node counts this package targets (course-sized data).
type Polynomial struct {
	nodes points.List
}

// Lagrange builds the interpolating polynomial through pts.
//
// Requirements:
//   - at least one node (a single node yields the constant polynomial),
//   - pairwise distinct x-coordinates (ErrDuplicateNode otherwise).
//
// Complexity: O(n²) validation, O(n²) per Eval.
func Lagrange(pts points.List) (*Polynomial, error) {
	if len(pts) < 1 {
		return nil, ErrTooFewPoints
	}
	if err := checkDistinct(pts); err != nil {
		return nil, err
	}

	nodes := make(points.List, len(pts))
	copy(nodes, pts)

	return &Polynomial{nodes: nodes}, nil
}

// Eval evaluates the interpolant at x:
//
//	p(x) = Σ_i y_i · Π_{j≠i} (x - x_j) / (x_i - x_j)
func (p *Polynomial) Eval(x float64) float64 {
	var sum float64
	for i, ni := range p.nodes {
		term := ni.Y
		for j, nj := range p.nodes {
			if i == j {
				continue
			}
			term *= (x - nj.X) / (ni.X - nj.X)
		}
		sum += term
	}

	return sum
}

// Degree returns the maximum degree of the interpolant (node count - 1).
func (p *Polynomial) Degree() int {
	return len(p.nodes) - 1
}

// Nodes returns a copy of the interpolation nodes.
func (p *Polynomial) Nodes() points.List {
	out := make(points.List, len(p.nodes))
	copy(out, p.nodes)

	return out
}

// Basis returns the i-th Lagrange basis polynomial φ_i over pts:
// φ_i(x_j) = 1 when j == i and 0 otherwise.
func Basis(pts points.List, i int) (func(x float64) float64, error) {
	if len(pts) < 1 {
		return nil, ErrTooFewPoints
	}
	if i < 0 || i >= len(pts) {
		return nil, ErrBasisIndex
	}
	if err := checkDistinct(pts); err != nil {
		return nil, err
	}

	nodes := make(points.List, len(pts))
	copy(nodes, pts)

	return func(x float64) float64 {
		phi := 1.0
		for j, nj := range nodes {
			if j == i {
				continue
			}
			phi *= (x - nj.X) / (nodes[i].X - nj.X)
		}

		return phi
	}, nil
}

// checkDistinct reports ErrDuplicateNode if any two nodes share an x.
func checkDistinct(pts points.List) error {
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if pts[i].X == pts[j].X {
				return ErrDuplicateNode
			}
		}
	}

	return nil
}
