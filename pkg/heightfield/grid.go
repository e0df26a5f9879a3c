// Package heightfield provides the 2D sample grid shared by the relief
// pipeline: normalized intensities on the way in, absolute heights in
// millimeters on the way out. Grids are row-major with row 0 at the top
// edge of the design.
package heightfield

import "fmt"

// Grid is a dense row-major 2D array of float64 samples.
type Grid struct {
	rows, cols int
	data       []float64
}

// New returns a zero-filled grid of the given shape.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("heightfield: invalid shape %dx%d", rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromSlice wraps a row-major slice as a grid. The slice is used
// directly, not copied; len(data) must equal rows*cols.
func FromSlice(rows, cols int, data []float64) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("heightfield: invalid shape %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("heightfield: data length %d does not match shape %dx%d", len(data), rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the sample at row r, column c.
func (g *Grid) At(r, c int) float64 {
	return g.data[r*g.cols+c]
}

// Set stores v at row r, column c.
func (g *Grid) Set(r, c int, v float64) {
	g.data[r*g.cols+c] = v
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)
	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// MinMax returns the smallest and largest sample values.
func (g *Grid) MinMax() (min, max float64) {
	min, max = g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
