package relief

import (
	"fmt"

	"github.com/chazu/reliefmill/pkg/heightfield"
	"github.com/chazu/reliefmill/pkg/mesh"
)

// Ingest converts a normalized intensity grid into a height grid of
// absolute z coordinates. Intensity 1.0 (white) maps to z = 0 (left
// uncarved); 0.0 (black) maps to z = -carve depth. Row order is kept:
// row 0 remains the top edge of the design, which the builder places at
// maximum y. The input grid is not modified.
//
// Fails with ErrInvalidInput if any value falls outside [0, 1] or the
// grid has fewer than 2 rows or columns, and with ErrInvalidSpec for
// non-positive dimensions.
func Ingest(intensity *heightfield.Grid, spec PhysicalSpec) (*heightfield.Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	rows, cols := intensity.Rows(), intensity.Cols()
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: grid %dx%d, need at least 2x2 to form a surface", ErrInvalidInput, rows, cols)
	}

	heights, err := heightfield.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := intensity.At(r, c)
			if v < 0 || v > 1 {
				return nil, fmt.Errorf("%w: value %.6g at (%d,%d) outside [0,1]", ErrInvalidInput, v, r, c)
			}
			heights.Set(r, c, -(1-v)*spec.CarveDepthMM)
		}
	}
	return heights, nil
}

// FromIntensity composes Ingest and Build: one call from a normalized
// intensity grid to a watertight solid.
func FromIntensity(intensity *heightfield.Grid, spec PhysicalSpec) (*mesh.Mesh, error) {
	heights, err := Ingest(intensity, spec)
	if err != nil {
		return nil, err
	}
	return Build(heights, spec)
}
