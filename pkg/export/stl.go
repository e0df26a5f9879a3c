// Package export serializes relief meshes to STL, the interchange
// format CAM tools expect. Binary output goes through the sdfx
// renderer; ASCII output is written directly since sdfx only emits
// binary STL.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/reliefmill/pkg/mesh"
)

// toTriangles converts a mesh to the sdfx triangle soup, preserving
// winding order.
func toTriangles(m *mesh.Mesh) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		tris = append(tris, &sdf.Triangle3{
			v3.Vec{X: a.X, Y: a.Y, Z: a.Z},
			v3.Vec{X: b.X, Y: b.Y, Z: b.Z},
			v3.Vec{X: c.X, Y: c.Y, Z: c.Z},
		})
	}
	return tris
}

// SaveSTL writes the mesh to path as binary STL.
func SaveSTL(path string, m *mesh.Mesh) error {
	if m.IsEmpty() {
		return fmt.Errorf("export: refusing to write empty mesh to %s", path)
	}
	if err := render.SaveSTL(path, toTriangles(m)); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

// SaveSTLAscii writes the mesh to path as ASCII STL under the given
// solid name.
func SaveSTLAscii(path, name string, m *mesh.Mesh) error {
	if m.IsEmpty() {
		return fmt.Errorf("export: refusing to write empty mesh to %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteSTLAscii(w, name, m); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// WriteSTLAscii streams the mesh as ASCII STL facets.
func WriteSTLAscii(w io.Writer, name string, m *mesh.Mesh) error {
	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return err
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		n := m.FaceNormal(i)
		_, err := fmt.Fprintf(w,
			"facet normal %g %g %g\n outer loop\n  vertex %g %g %g\n  vertex %g %g %g\n  vertex %g %g %g\n endloop\nendfacet\n",
			n.X, n.Y, n.Z, a.X, a.Y, a.Z, b.X, b.Y, b.Z, c.X, c.Y, c.Z)
		if err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "endsolid %s\n", name); err != nil {
		return err
	}
	return nil
}
