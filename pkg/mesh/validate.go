package mesh

import "fmt"

// ValidationSeverity indicates whether a finding disqualifies the mesh
// or is merely advisory.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // mesh is not a valid solid
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single finding against a mesh.
type ValidationError struct {
	Triangle int // index of the offending triangle, -1 if mesh-level
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.Triangle < 0 {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] triangle %d: %s", e.Severity, e.Triangle, e.Message)
}

// edge is an undirected edge key with the smaller index first.
type edge struct {
	lo, hi uint32
}

func makeEdge(a, b uint32) edge {
	if a < b {
		return edge{lo: a, hi: b}
	}
	return edge{lo: b, hi: a}
}

// Validate runs structural checks over a mesh: index bounds, repeated
// corner indices, and zero-area (collinear) triangles. A mesh with no
// errors is structurally sound but not necessarily closed; use
// IsWatertight for that.
func Validate(m *Mesh) []ValidationError {
	var errs []ValidationError

	if len(m.Indices)%3 != 0 {
		errs = append(errs, ValidationError{
			Triangle: -1,
			Message:  fmt.Sprintf("index list length %d is not a multiple of 3", len(m.Indices)),
			Severity: SeverityError,
		})
		return errs
	}

	n := uint32(len(m.Vertices))
	for i := 0; i < m.TriangleCount(); i++ {
		ia, ib, ic := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]

		if ia >= n || ib >= n || ic >= n {
			errs = append(errs, ValidationError{
				Triangle: i,
				Message:  fmt.Sprintf("index out of range (pool has %d vertices)", n),
				Severity: SeverityError,
			})
			continue
		}
		if ia == ib || ib == ic || ia == ic {
			errs = append(errs, ValidationError{
				Triangle: i,
				Message:  "repeated vertex index",
				Severity: SeverityError,
			})
			continue
		}

		a, b, c := m.Triangle(i)
		if b.Sub(a).Cross(c.Sub(a)).Length() == 0 {
			errs = append(errs, ValidationError{
				Triangle: i,
				Message:  "zero-area triangle (collinear vertices)",
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// BoundaryEdgeCount returns the number of undirected edges not shared
// by exactly two triangles. A closed 2-manifold has zero.
func BoundaryEdgeCount(m *Mesh) int {
	uses := make(map[edge]int)
	for i := 0; i < m.TriangleCount(); i++ {
		ia, ib, ic := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
		uses[makeEdge(ia, ib)]++
		uses[makeEdge(ib, ic)]++
		uses[makeEdge(ic, ia)]++
	}

	boundary := 0
	for _, n := range uses {
		if n != 2 {
			boundary++
		}
	}
	return boundary
}

// IsWatertight reports whether the mesh is a closed, consistently
// oriented 2-manifold: every undirected edge is shared by exactly two
// triangles, and the two triangles traverse it in opposite directions
// (each directed edge appears exactly once).
func IsWatertight(m *Mesh) bool {
	if m.IsEmpty() || m.TriangleCount() == 0 {
		return false
	}

	directed := make(map[[2]uint32]int)
	for i := 0; i < m.TriangleCount(); i++ {
		ia, ib, ic := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
		directed[[2]uint32{ia, ib}]++
		directed[[2]uint32{ib, ic}]++
		directed[[2]uint32{ic, ia}]++
	}

	for e, n := range directed {
		if n != 1 {
			return false
		}
		if directed[[2]uint32{e[1], e[0]}] != 1 {
			return false
		}
	}
	return true
}
