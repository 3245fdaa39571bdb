// Package mesh turns staircase cross-section profiles into printable
// solid geometry: the profile polygon is triangulated for the two side
// caps and extruded along the width axis, and the resulting indexed
// triangle surface exports to Wavefront OBJ or binary STL.
package mesh

import (
	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/geometry"
)

// Mesh is an indexed triangle surface. Triangles wind
// counter-clockwise seen from outside the solid.
type Mesh struct {
	Vertices  []geometry.Point3 `json:"vertices"`
	Triangles []Triangle        `json:"triangles"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Bounds returns the axis-aligned extent of the mesh.
func (m *Mesh) Bounds() (min, max geometry.Point3) {
	if len(m.Vertices) == 0 {
		return geometry.Point3{}, geometry.Point3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}

// Volume returns the enclosed volume, summing signed tetrahedron
// volumes against the origin. Positive for outward-wound surfaces.
func (m *Mesh) Volume() float64 {
	var sum float64
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		sum += a.X*(b.Y*c.Z-b.Z*c.Y) +
			a.Y*(b.Z*c.X-b.X*c.Z) +
			a.Z*(b.X*c.Y-b.Y*c.X)
	}
	return sum / 6
}

// Extrude sweeps the profile polygon from Z = 0 to Z = width: two
// triangulated caps plus a pair of wall triangles per polygon edge.
// The polygon may wind either way; the mesh always comes out with
// outward-facing windings.
func Extrude(polygon []geometry.Point, width float64) (*Mesh, error) {
	if width <= 0 {
		return nil, errors.New(errors.ErrCodeMesh, "extrusion width must be positive")
	}
	ring, tris, err := Triangulate(polygon)
	if err != nil {
		return nil, err
	}
	n := len(ring)

	m := &Mesh{
		Vertices:  make([]geometry.Point3, 0, 2*n),
		Triangles: make([]Triangle, 0, 2*len(tris)+2*n),
	}
	for _, p := range ring {
		m.Vertices = append(m.Vertices, geometry.Pt3(p.X, p.Y, 0))
	}
	for _, p := range ring {
		m.Vertices = append(m.Vertices, geometry.Pt3(p.X, p.Y, width))
	}

	// Front cap faces -Z, so the counter-clockwise cap triangles flip.
	// The back cap keeps them as triangulated.
	for _, t := range tris {
		m.Triangles = append(m.Triangles, Triangle{t[0], t[2], t[1]})
	}
	for _, t := range tris {
		m.Triangles = append(m.Triangles, Triangle{t[0] + n, t[1] + n, t[2] + n})
	}

	// Walls: the ring is counter-clockwise in the Z = 0 plane, so
	// (i, j, j+n) already faces outward.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.Triangles = append(m.Triangles,
			Triangle{i, j, j + n},
			Triangle{i, j + n, i + n},
		)
	}
	return m, nil
}
