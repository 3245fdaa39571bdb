package mesh

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/staircast/staircast/pkg/geometry"
)

// stlFacet is the 50-byte binary STL record: facet normal, three
// vertices, attribute byte count.
type stlFacet struct {
	Normal [3]float32
	Verts  [3][3]float32
	Attr   uint16
}

// STL encodes the mesh as binary STL, little-endian: an 80-byte
// header, a uint32 facet count, then one 50-byte record per triangle.
func (m *Mesh) STL() []byte {
	var buf bytes.Buffer

	var header [80]byte
	copy(header[:], "staircast binary STL")
	buf.Write(header[:])

	binary.Write(&buf, binary.LittleEndian, uint32(m.TriangleCount()))
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		n := facetNormal(a, b, c)
		facet := stlFacet{
			Normal: [3]float32{float32(n.X), float32(n.Y), float32(n.Z)},
			Verts: [3][3]float32{
				{float32(a.X), float32(a.Y), float32(a.Z)},
				{float32(b.X), float32(b.Y), float32(b.Z)},
				{float32(c.X), float32(c.Y), float32(c.Z)},
			},
		}
		binary.Write(&buf, binary.LittleEndian, facet)
	}
	return buf.Bytes()
}

// facetNormal returns the unit normal of triangle abc, or the zero
// vector for a degenerate facet (readers recompute from vertices).
func facetNormal(a, b, c geometry.Point3) geometry.Point3 {
	ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if l < geometry.Eps {
		return geometry.Point3{}
	}
	return geometry.Pt3(nx/l, ny/l, nz/l)
}
