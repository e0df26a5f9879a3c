package job_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/reliefmill/pkg/job"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeJobFile(t, `
depthmap = "lion.png"
output = "lion.stl"
width = 120.0
carve_depth = 8.0
base_thickness = 4.0
ascii = true

[resolution]
width = 400
`)
	j, err := job.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if j.Depthmap != "lion.png" || j.Output != "lion.stl" {
		t.Errorf("paths = %q, %q", j.Depthmap, j.Output)
	}
	spec := j.Spec()
	if spec.WidthMM != 120 || spec.CarveDepthMM != 8 || spec.BaseThicknessMM != 4 {
		t.Errorf("spec = %+v", spec)
	}
	if !j.ASCII {
		t.Error("ascii flag not parsed")
	}
	rows, cols, err := j.GridResolution().TargetShape(300, 400)
	if err != nil {
		t.Fatal(err)
	}
	if rows != 300 || cols != 400 {
		t.Errorf("resolution = %dx%d, want 300x400 (width 400 on 3:4 source)", rows, cols)
	}
}

func TestLoadRejectsBadJobs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing depthmap",
			content: `
output = "out.stl"
width = 100.0
carve_depth = 10.0
base_thickness = 5.0
`,
		},
		{
			name: "missing output",
			content: `
depthmap = "in.png"
width = 100.0
carve_depth = 10.0
base_thickness = 5.0
`,
		},
		{
			name: "zero carve depth",
			content: `
depthmap = "in.png"
output = "out.stl"
width = 100.0
carve_depth = 0.0
base_thickness = 5.0
`,
		},
		{
			name: "tiny resolution",
			content: `
depthmap = "in.png"
output = "out.stl"
width = 100.0
carve_depth = 10.0
base_thickness = 5.0

[resolution]
width = 1
`,
		},
		{
			name:    "malformed toml",
			content: `width = = 1`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := job.Load(writeJobFile(t, tt.content)); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestGridResolutionVariants(t *testing.T) {
	base := job.Job{
		Depthmap: "in.png",
		Output:   "out.stl",
		Width:    100, Carve: 10, Base: 5,
	}

	t.Run("absent resolution is auto", func(t *testing.T) {
		j := base
		rows, cols, err := j.GridResolution().TargetShape(123, 456)
		if err != nil {
			t.Fatal(err)
		}
		if rows != 123 || cols != 456 {
			t.Errorf("shape = %dx%d, want source shape", rows, cols)
		}
	})

	t.Run("width only derives rows", func(t *testing.T) {
		j := base
		j.Resolution = &job.ResolutionSpec{Width: 100}
		rows, cols, err := j.GridResolution().TargetShape(200, 400)
		if err != nil {
			t.Fatal(err)
		}
		if rows != 50 || cols != 100 {
			t.Errorf("shape = %dx%d, want 50x100", rows, cols)
		}
	})

	t.Run("explicit shape", func(t *testing.T) {
		j := base
		j.Resolution = &job.ResolutionSpec{Width: 80, Height: 60}
		rows, cols, err := j.GridResolution().TargetShape(200, 400)
		if err != nil {
			t.Fatal(err)
		}
		if rows != 60 || cols != 80 {
			t.Errorf("shape = %dx%d, want 60x80", rows, cols)
		}
	})
}
