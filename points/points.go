package points

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Sentinel errors returned by the points package.
var (
	// ErrNoPoints indicates that the input contained no records at all.
	ErrNoPoints = errors.New("points: input contains no points")

	// ErrBadRecord indicates a CSV record that is not a pair of floats.
	ErrBadRecord = errors.New("points: malformed record")
)

// Point is a single (x, y) sample.
type Point struct {
	X float64
	Y float64
}

// List is an ordered collection of samples.
type List []Point

// Load reads "x,y" records from r, one point per line.
// Blank lines are skipped. A record that does not hold exactly two
// float fields yields ErrBadRecord wrapped with its line number.
func Load(r io.Reader) (List, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var pts List
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv errors (wrong field count, stray quotes) carry their
			// own line number in the message.
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		line, _ := cr.FieldPos(0)
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad x %q", line, ErrBadRecord, rec[0])
		}
		y, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad y %q", line, ErrBadRecord, rec[1])
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}

	return pts, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("points: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Swapped returns a copy of the list with X and Y exchanged.
// Used when the profile was measured with the axes transposed.
func (l List) Swapped() List {
	out := make(List, len(l))
	for i, p := range l {
		out[i] = Point{X: p.Y, Y: p.X}
	}

	return out
}

// SortedByX returns a copy of the list ordered by ascending X.
// The sort is stable so repeated measurements keep their relative order.
func (l List) SortedByX() List {
	out := make(List, len(l))
	copy(out, l)
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })

	return out
}

// Xs returns the x-coordinates in list order.
func (l List) Xs() []float64 {
	xs := make([]float64, len(l))
	for i, p := range l {
		xs[i] = p.X
	}

	return xs
}

// Ys returns the y-coordinates in list order.
func (l List) Ys() []float64 {
	ys := make([]float64, len(l))
	for i, p := range l {
		ys[i] = p.Y
	}

	return ys
}
