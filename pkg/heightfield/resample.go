package heightfield

import (
	"fmt"
	"math"
)

// Resample returns a new grid of the requested shape, interpolating the
// source bilinearly. Sample positions are spread so that the first and
// last rows/columns of the output coincide with those of the input,
// which preserves corner values exactly and never extrapolates outside
// the source value range. A same-shape request returns a copy.
func Resample(g *Grid, rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("heightfield: invalid target shape %dx%d", rows, cols)
	}
	if rows == g.rows && cols == g.cols {
		return g.Clone(), nil
	}

	out, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	// Map output index i in [0, n-1] onto source coordinate in
	// [0, m-1]. Multiplying before dividing keeps the endpoints exact,
	// so corners are copied rather than interpolated. A single output
	// row/column samples the source start.
	coord := func(i, n, m int) float64 {
		if n <= 1 {
			return 0
		}
		return float64(i*(m-1)) / float64(n-1)
	}

	for r := 0; r < rows; r++ {
		fy := coord(r, rows, g.rows)
		r0 := int(math.Floor(fy))
		r1 := r0 + 1
		if r1 > g.rows-1 {
			r1 = g.rows - 1
		}
		ty := fy - float64(r0)

		for c := 0; c < cols; c++ {
			fx := coord(c, cols, g.cols)
			c0 := int(math.Floor(fx))
			c1 := c0 + 1
			if c1 > g.cols-1 {
				c1 = g.cols - 1
			}
			tx := fx - float64(c0)

			top := g.At(r0, c0)*(1-tx) + g.At(r0, c1)*tx
			bot := g.At(r1, c0)*(1-tx) + g.At(r1, c1)*tx
			out.Set(r, c, top*(1-ty)+bot*ty)
		}
	}
	return out, nil
}
