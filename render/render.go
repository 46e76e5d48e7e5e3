package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/alejofig/numethods/laplace"
	"github.com/alejofig/numethods/points"
)

// Sentinel errors returned by the render package.
var (
	// ErrNoData indicates an empty point list or curve set.
	ErrNoData = errors.New("render: nothing to plot")

	// ErrLengthMismatch indicates a curve whose length differs from the
	// time mesh.
	ErrLengthMismatch = errors.New("render: curve length does not match mesh")
)

// Curve is one labeled series for Series plots.
type Curve struct {
	Label  string
	Values []float64
}

// Points draws a measured profile as a connected scatter plot.
func Points(list points.List, title, path string) error {
	if len(list) == 0 {
		return ErrNoData
	}

	xys := make(plotter.XYs, len(list))
	for i, pt := range list {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLinePoints(p, xys); err != nil {
		return fmt.Errorf("render: profile plot: %w", err)
	}

	return save(p, path)
}

// Series draws labeled curves over a shared time mesh with an
// auto-colored legend; use it to overlay numerical solutions on the
// exact one.
func Series(t []float64, curves []Curve, title, path string) error {
	if len(t) == 0 || len(curves) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "u"
	p.Add(plotter.NewGrid())

	args := make([]interface{}, 0, 2*len(curves))
	for _, c := range curves {
		if len(c.Values) != len(t) {
			return fmt.Errorf("%w: %q has %d values for %d mesh points",
				ErrLengthMismatch, c.Label, len(c.Values), len(t))
		}
		xys := make(plotter.XYs, len(t))
		for i := range t {
			xys[i].X = t[i]
			xys[i].Y = c.Values[i]
		}
		args = append(args, c.Label, xys)
	}

	if err := plotutil.AddLines(p, args...); err != nil {
		return fmt.Errorf("render: series plot: %w", err)
	}

	return save(p, path)
}

// Heatmap draws a solved potential field with a diverging palette
// centered at zero (blue negative, red positive).
func Heatmap(f *laplace.Field, title, path string) error {
	if f == nil {
		return ErrNoData
	}

	scale := f.MaxAbs()
	if scale == 0 {
		scale = 1 // flat field still needs a valid color range
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-scale)
	cm.SetMax(scale)

	h := plotter.NewHeatMap(fieldGrid{f: f}, cm.Palette(255))
	h.Min = -scale
	h.Max = scale

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(h)

	return save(p, path)
}

// fieldGrid adapts a laplace.Field to plotter.GridXYZ.
type fieldGrid struct {
	f *laplace.Field
}

func (g fieldGrid) Dims() (c, r int) {
	gr := g.f.Grid()

	return gr.Nx, gr.Ny
}

func (g fieldGrid) Z(c, r int) float64 { return g.f.At(c, r) }

func (g fieldGrid) X(c int) float64 { return g.f.Grid().X(c) }

func (g fieldGrid) Y(r int) float64 { return g.f.Grid().Y(r) }

// save writes the plot at a fixed figure size.
func save(p *plot.Plot, path string) error {
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
