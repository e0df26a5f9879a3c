// Package relief turns a grayscale height field into a closed, manifold
// solid suitable for CNC milling: a relief top surface following the
// heights, a flat base, and four walls stitched into one watertight
// triangle mesh.
//
// Coordinate system: x runs along the design width, y upward along its
// height, z = 0 at the uncarved top surface and negative into the
// material. The bottom of the stock sits at z = -(carve + base).
package relief

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks intensity grids with out-of-range values
	// or too few samples to form a surface.
	ErrInvalidInput = errors.New("invalid intensity input")

	// ErrInvalidSpec marks non-positive physical dimensions.
	ErrInvalidSpec = errors.New("invalid physical spec")

	// ErrDegenerateGrid marks height grids too small to form any quad.
	ErrDegenerateGrid = errors.New("degenerate height grid")
)

// PhysicalSpec holds the physical dimensions of the stock, all in
// millimeters. The y extent is derived from the grid aspect ratio so
// that grid cells are square in x/y.
type PhysicalSpec struct {
	WidthMM         float64 // extent along x
	CarveDepthMM    float64 // maximum carving depth below the top surface
	BaseThicknessMM float64 // solid material left under the deepest cut
}

// Validate checks that all dimensions are positive.
func (s PhysicalSpec) Validate() error {
	if s.WidthMM <= 0 {
		return fmt.Errorf("%w: width %.4gmm, must be positive", ErrInvalidSpec, s.WidthMM)
	}
	if s.CarveDepthMM <= 0 {
		return fmt.Errorf("%w: carve depth %.4gmm, must be positive", ErrInvalidSpec, s.CarveDepthMM)
	}
	if s.BaseThicknessMM <= 0 {
		return fmt.Errorf("%w: base thickness %.4gmm, must be positive", ErrInvalidSpec, s.BaseThicknessMM)
	}
	return nil
}

// TotalThicknessMM returns the full stock thickness, carve depth plus
// base.
func (s PhysicalSpec) TotalThicknessMM() float64 {
	return s.CarveDepthMM + s.BaseThicknessMM
}

// HeightMM returns the y extent for a grid of the given shape. Pitch is
// identical on both axes, so the extent follows the cell counts, not
// the sample counts.
func (s PhysicalSpec) HeightMM(rows, cols int) float64 {
	return s.WidthMM * float64(rows-1) / float64(cols-1)
}
