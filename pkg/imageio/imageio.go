// Package imageio decodes depthmap images into normalized intensity
// grids. PNG, JPEG and GIF decode via the standard library; TIFF, BMP
// and WebP are registered from golang.org/x/image.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/chazu/reliefmill/pkg/heightfield"
)

// LoadIntensityGrid reads an image file and converts it to a grid of
// normalized intensities in [0, 1]. Color images are reduced to
// luminance; alpha is ignored. 8-bit and 16-bit grayscale sources keep
// their full precision.
func LoadIntensityGrid(path string) (*heightfield.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	grid, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("imageio: %s (%s): %w", path, format, err)
	}
	return grid, nil
}

// FromImage converts a decoded image to a normalized intensity grid.
// Row 0 of the grid is the top row of the image.
func FromImage(img image.Image) (*heightfield.Grid, error) {
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("image has empty bounds %v", bounds)
	}

	grid, err := heightfield.New(rows, cols)
	if err != nil {
		return nil, err
	}

	switch src := img.(type) {
	case *image.Gray:
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				px := src.GrayAt(bounds.Min.X+c, bounds.Min.Y+r)
				grid.Set(r, c, float64(px.Y)/255.0)
			}
		}
	case *image.Gray16:
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				px := src.Gray16At(bounds.Min.X+c, bounds.Min.Y+r)
				grid.Set(r, c, float64(px.Y)/65535.0)
			}
		}
	default:
		// Luminance conversion at 16-bit precision for everything else.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				px := color.Gray16Model.Convert(img.At(bounds.Min.X+c, bounds.Min.Y+r)).(color.Gray16)
				grid.Set(r, c, float64(px.Y)/65535.0)
			}
		}
	}
	return grid, nil
}
