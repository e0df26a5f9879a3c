package relief

import (
	"fmt"

	"github.com/chazu/reliefmill/pkg/heightfield"
	"github.com/chazu/reliefmill/pkg/mesh"
)

// Build constructs a watertight solid from a height grid. The top
// surface follows the grid, the bottom cap is flat at
// z = -(carve + base), and four wall strips close the sides. Every
// (surface, row, col) sample owns exactly one pooled vertex; wall
// triangles reuse the boundary vertices of the top and bottom surfaces,
// so the result has no duplicate or boundary edges.
//
// Fails with ErrDegenerateGrid if the grid is smaller than 2x2 and with
// ErrInvalidSpec for non-positive dimensions. On failure no mesh is
// returned.
func Build(heights *heightfield.Grid, spec PhysicalSpec) (*mesh.Mesh, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	rows, cols := heights.Rows(), heights.Cols()
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d cannot form a quad", ErrDegenerateGrid, rows, cols)
	}

	b := &builder{
		rows:    rows,
		cols:    cols,
		dx:      spec.WidthMM / float64(cols-1),
		dy:      spec.HeightMM(rows, cols) / float64(rows-1),
		bottomZ: -spec.TotalThicknessMM(),
	}
	b.allocateVertices(heights)
	b.triangulateTop()
	b.triangulateBottom()
	b.stitchWalls()

	return &mesh.Mesh{Vertices: b.vertices, Indices: b.indices}, nil
}

// builder accumulates the vertex pool and face list for one mesh.
type builder struct {
	rows, cols int
	dx, dy     float64
	bottomZ    float64

	vertices []mesh.Vec3
	indices  []uint32
}

// top returns the pooled index of the top-surface vertex at (r, c).
// Top vertices occupy the first rows*cols pool slots in row-major
// order; bottom vertices follow in the same order.
func (b *builder) top(r, c int) uint32 {
	return uint32(r*b.cols + c)
}

// bottom returns the pooled index of the bottom-surface vertex at (r, c).
func (b *builder) bottom(r, c int) uint32 {
	return uint32(b.rows*b.cols + r*b.cols + c)
}

// allocateVertices fills the pool: all top vertices first, then all
// bottom vertices, both row-major. Row 0 sits at maximum y so the
// design keeps its image orientation with y pointing up.
func (b *builder) allocateVertices(heights *heightfield.Grid) {
	n := b.rows * b.cols
	b.vertices = make([]mesh.Vec3, 0, 2*n)

	for r := 0; r < b.rows; r++ {
		y := float64(b.rows-1-r) * b.dy
		for c := 0; c < b.cols; c++ {
			b.vertices = append(b.vertices, mesh.Vec3{
				X: float64(c) * b.dx,
				Y: y,
				Z: heights.At(r, c),
			})
		}
	}
	for r := 0; r < b.rows; r++ {
		y := float64(b.rows-1-r) * b.dy
		for c := 0; c < b.cols; c++ {
			b.vertices = append(b.vertices, mesh.Vec3{
				X: float64(c) * b.dx,
				Y: y,
				Z: b.bottomZ,
			})
		}
	}
}

// emit appends one triangle.
func (b *builder) emit(i, j, k uint32) {
	b.indices = append(b.indices, i, j, k)
}

// triangulateTop covers every grid cell with two triangles split along
// the (r,c+1)-(r+1,c) diagonal, wound so normals point up (+z).
func (b *builder) triangulateTop() {
	for r := 0; r < b.rows-1; r++ {
		for c := 0; c < b.cols-1; c++ {
			b.emit(b.top(r, c), b.top(r+1, c), b.top(r, c+1))
			b.emit(b.top(r, c+1), b.top(r+1, c), b.top(r+1, c+1))
		}
	}
}

// triangulateBottom mirrors the top triangulation with reversed
// winding so normals point down (-z).
func (b *builder) triangulateBottom() {
	for r := 0; r < b.rows-1; r++ {
		for c := 0; c < b.cols-1; c++ {
			b.emit(b.bottom(r, c), b.bottom(r, c+1), b.bottom(r+1, c))
			b.emit(b.bottom(r, c+1), b.bottom(r+1, c+1), b.bottom(r+1, c))
		}
	}
}

// wallQuad closes one wall cell between top edge p->q and the bottom
// vertices beneath. With p->q traversing the boundary clockwise as
// seen from +z, the winding (p, q, pBot), (q, qBot, pBot) faces
// outward. The diagonal q-pBot matches the surface split policy.
func (b *builder) wallQuad(p, q, pBot, qBot uint32) {
	b.emit(p, q, pBot)
	b.emit(q, qBot, pBot)
}

// stitchWalls emits the four wall strips, walking the boundary
// clockwise as seen from +z: +x along row 0 (y = max), then down
// column C-1, -x along row R-1 (y = 0), and back up column 0.
func (b *builder) stitchWalls() {
	// y = max wall, outward +y.
	for c := 0; c < b.cols-1; c++ {
		b.wallQuad(b.top(0, c), b.top(0, c+1), b.bottom(0, c), b.bottom(0, c+1))
	}
	// x = width wall, outward +x.
	for r := 0; r < b.rows-1; r++ {
		c := b.cols - 1
		b.wallQuad(b.top(r, c), b.top(r+1, c), b.bottom(r, c), b.bottom(r+1, c))
	}
	// y = 0 wall, outward -y.
	for c := b.cols - 1; c > 0; c-- {
		r := b.rows - 1
		b.wallQuad(b.top(r, c), b.top(r, c-1), b.bottom(r, c), b.bottom(r, c-1))
	}
	// x = 0 wall, outward -x.
	for r := b.rows - 1; r > 0; r-- {
		b.wallQuad(b.top(r, 0), b.top(r-1, 0), b.bottom(r, 0), b.bottom(r-1, 0))
	}
}
