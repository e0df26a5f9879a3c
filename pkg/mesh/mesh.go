// Package mesh defines the triangle mesh produced by the relief builder.
// The mesh uses a single pooled vertex list; every triangle references
// vertices by index. Faces are wound counter-clockwise as seen from
// outside the solid.
package mesh

import "math"

// Vec3 is a point or direction in millimeters.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Mesh is a triangulated boundary representation of a solid.
// Vertices is the shared vertex pool; Indices holds 3 uint32s per
// triangle, referencing the pool.
type Mesh struct {
	Vertices []Vec3
	Indices  []uint32
}

// VertexCount returns the number of vertices in the pool.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangle returns the three corner positions of triangle i in winding
// order. It panics if i is out of range or an index escapes the pool;
// meshes built by this module always index within the pool.
func (m *Mesh) Triangle(i int) (a, b, c Vec3) {
	a = m.Vertices[m.Indices[3*i]]
	b = m.Vertices[m.Indices[3*i+1]]
	c = m.Vertices[m.Indices[3*i+2]]
	return a, b, c
}

// FaceNormal returns the unit normal of triangle i, following the
// right-hand rule over its winding order.
func (m *Mesh) FaceNormal(i int) Vec3 {
	a, b, c := m.Triangle(i)
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// BoundingBox returns the axis-aligned bounding box of the mesh.
// An empty mesh yields two zero corners.
func (m *Mesh) BoundingBox() (min, max Vec3) {
	if m.IsEmpty() {
		return Vec3{}, Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		min.Z = math.Min(min.Z, v.Z)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
		max.Z = math.Max(max.Z, v.Z)
	}
	return min, max
}
