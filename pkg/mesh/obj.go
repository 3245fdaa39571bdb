package mesh

import (
	"bytes"
	"fmt"
)

// OBJ encodes the mesh as Wavefront OBJ text. Face indices are
// 1-based per the format.
func (m *Mesh) OBJ() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# staircast extruded staircase profile\n")
	fmt.Fprintf(&buf, "# %d vertices, %d faces\n", m.VertexCount(), m.TriangleCount())
	fmt.Fprintf(&buf, "o staircase\n")
	for _, v := range m.Vertices {
		fmt.Fprintf(&buf, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	for _, t := range m.Triangles {
		fmt.Fprintf(&buf, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	return buf.Bytes()
}
