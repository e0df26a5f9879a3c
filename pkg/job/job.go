// Package job loads relief job descriptions from TOML files. A job
// bundles the depthmap path, the output path, and the physical
// dimensions of the cut.
package job

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/chazu/reliefmill/pkg/heightfield"
	"github.com/chazu/reliefmill/pkg/relief"
)

// Job describes one depthmap-to-solid conversion.
type Job struct {
	Depthmap string  `toml:"depthmap"`
	Output   string  `toml:"output"`
	Width    float64 `toml:"width"`          // mm
	Carve    float64 `toml:"carve_depth"`    // mm
	Base     float64 `toml:"base_thickness"` // mm
	ASCII    bool    `toml:"ascii"`

	Resolution *ResolutionSpec `toml:"resolution"`
}

// ResolutionSpec selects the mesh grid resolution. Width alone derives
// the row count from the image aspect ratio; width and height together
// fix the shape. An absent table keeps the image resolution.
type ResolutionSpec struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Load reads and validates a job file.
func Load(path string) (*Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job: read %s: %w", path, err)
	}
	var j Job
	if err := toml.Unmarshal(raw, &j); err != nil {
		return nil, fmt.Errorf("job: parse %s: %w", path, err)
	}
	if err := j.Validate(); err != nil {
		return nil, fmt.Errorf("job: %s: %w", path, err)
	}
	return &j, nil
}

// Validate checks the job for missing paths and non-positive
// dimensions.
func (j *Job) Validate() error {
	if j.Depthmap == "" {
		return fmt.Errorf("missing depthmap path")
	}
	if j.Output == "" {
		return fmt.Errorf("missing output path")
	}
	if err := j.Spec().Validate(); err != nil {
		return err
	}
	if r := j.Resolution; r != nil {
		if r.Width < 2 {
			return fmt.Errorf("resolution width %d, need at least 2", r.Width)
		}
		if r.Height != 0 && r.Height < 2 {
			return fmt.Errorf("resolution height %d, need at least 2", r.Height)
		}
	}
	return nil
}

// Spec returns the physical dimensions as a relief.PhysicalSpec.
func (j *Job) Spec() relief.PhysicalSpec {
	return relief.PhysicalSpec{
		WidthMM:         j.Width,
		CarveDepthMM:    j.Carve,
		BaseThicknessMM: j.Base,
	}
}

// GridResolution returns the heightfield resolution variant for the
// job.
func (j *Job) GridResolution() heightfield.Resolution {
	switch {
	case j.Resolution == nil:
		return heightfield.Auto()
	case j.Resolution.Height == 0:
		return heightfield.ByWidth(j.Resolution.Width)
	default:
		return heightfield.ByShape(j.Resolution.Height, j.Resolution.Width)
	}
}
