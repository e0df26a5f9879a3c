package relief_test

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/reliefmill/pkg/heightfield"
	"github.com/chazu/reliefmill/pkg/relief"
)

// spec100 is the reference physical spec used across these tests:
// 100mm wide, 10mm carve, 5mm base.
var spec100 = relief.PhysicalSpec{WidthMM: 100, CarveDepthMM: 10, BaseThicknessMM: 5}

func mustGrid(t *testing.T, rows, cols int, data []float64) *heightfield.Grid {
	t.Helper()
	g, err := heightfield.FromSlice(rows, cols, data)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestIngestMapsIntensityToDepth(t *testing.T) {
	intensity := mustGrid(t, 2, 2, []float64{1, 0.5, 0, 0.25})
	heights, err := relief.Ingest(intensity, spec100)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		r, c int
		z    float64
	}{
		{0, 0, 0},    // white: uncarved
		{0, 1, -5},   // half gray: half depth
		{1, 0, -10},  // black: full carve depth
		{1, 1, -7.5}, // quarter intensity
	}
	for _, tc := range cases {
		if got := heights.At(tc.r, tc.c); math.Abs(got-tc.z) > 1e-12 {
			t.Errorf("height(%d,%d) = %g, want %g", tc.r, tc.c, got, tc.z)
		}
	}
}

func TestIngestKeepsRowOrder(t *testing.T) {
	// Top image row white, bottom black: row 0 of the height grid must
	// stay the shallow (top) edge.
	intensity := mustGrid(t, 2, 2, []float64{1, 1, 0, 0})
	heights, err := relief.Ingest(intensity, spec100)
	if err != nil {
		t.Fatal(err)
	}
	if heights.At(0, 0) != 0 || heights.At(1, 0) != -10 {
		t.Errorf("rows reordered: row0 z = %g (want 0), row1 z = %g (want -10)",
			heights.At(0, 0), heights.At(1, 0))
	}
}

func TestIngestDoesNotMutateInput(t *testing.T) {
	intensity := mustGrid(t, 2, 2, []float64{1, 0.5, 0, 0.25})
	if _, err := relief.Ingest(intensity, spec100); err != nil {
		t.Fatal(err)
	}
	if intensity.At(0, 1) != 0.5 {
		t.Error("Ingest mutated its input grid")
	}
}

func TestIngestRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		grid    *heightfield.Grid
		spec    relief.PhysicalSpec
		wantErr error
	}{
		{
			name:    "intensity above one",
			grid:    mustGrid(t, 2, 2, []float64{0, 0, 0, 1.5}),
			spec:    spec100,
			wantErr: relief.ErrInvalidInput,
		},
		{
			name:    "negative intensity",
			grid:    mustGrid(t, 2, 2, []float64{0, 0, 0, -0.1}),
			spec:    spec100,
			wantErr: relief.ErrInvalidInput,
		},
		{
			name:    "single row",
			grid:    mustGrid(t, 1, 5, []float64{0, 0, 0, 0, 0}),
			spec:    spec100,
			wantErr: relief.ErrInvalidInput,
		},
		{
			name:    "single column",
			grid:    mustGrid(t, 5, 1, []float64{0, 0, 0, 0, 0}),
			spec:    spec100,
			wantErr: relief.ErrInvalidInput,
		},
		{
			name:    "zero carve depth",
			grid:    mustGrid(t, 2, 2, []float64{0, 0, 0, 0}),
			spec:    relief.PhysicalSpec{WidthMM: 100, CarveDepthMM: 0, BaseThicknessMM: 5},
			wantErr: relief.ErrInvalidSpec,
		},
		{
			name:    "negative width",
			grid:    mustGrid(t, 2, 2, []float64{0, 0, 0, 0}),
			spec:    relief.PhysicalSpec{WidthMM: -1, CarveDepthMM: 10, BaseThicknessMM: 5},
			wantErr: relief.ErrInvalidSpec,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := relief.Ingest(tt.grid, tt.spec)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Ingest() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPhysicalSpecDerived(t *testing.T) {
	if got := spec100.TotalThicknessMM(); got != 15 {
		t.Errorf("TotalThicknessMM() = %g, want 15", got)
	}
	// 5 rows x 3 cols: 4 cells tall, 2 cells wide, square pitch.
	if got := spec100.HeightMM(5, 3); got != 200 {
		t.Errorf("HeightMM(5, 3) = %g, want 200", got)
	}
}
