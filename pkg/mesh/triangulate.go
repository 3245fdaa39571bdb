package mesh

import (
	"math"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/geometry"
)

// areaEps is the doubled-area threshold below which a triangle counts
// as degenerate. Profile coordinates are centimeters in the hundreds,
// so real corners clear this by many orders of magnitude.
const areaEps = 1e-7

// Triangle indexes three vertices in counter-clockwise order.
type Triangle [3]int

// Triangulate decomposes a simple polygon into triangles by ear
// clipping. The ring may wind either way and may repeat its first
// vertex at the end; the returned vertex slice is the cleaned
// counter-clockwise ring the triangle indices refer to.
//
// Collinear corners clip away silently, so a polygon whose closing
// edge touches intermediate vertices (a zero-thickness underside does
// this) still triangulates; the degenerate corners simply contribute
// no area. A ring that cannot be clipped at all is rejected.
func Triangulate(ring []geometry.Point) ([]geometry.Point, []Triangle, error) {
	verts := cleanRing(ring)
	if len(verts) < 3 {
		return nil, nil, errors.New(errors.ErrCodeMesh,
			"polygon needs at least 3 distinct vertices")
	}
	area := signedArea(verts)
	if math.Abs(area) <= areaEps {
		return nil, nil, errors.New(errors.ErrCodeMesh, "polygon has no area")
	}
	if area < 0 {
		reverseRing(verts)
	}

	idx := make([]int, len(verts))
	for i := range idx {
		idx[i] = i
	}

	tris := make([]Triangle, 0, len(verts)-2)
	for len(idx) > 3 {
		k, ok := findEar(verts, idx)
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeMesh,
				"polygon does not triangulate, ring self-intersects")
		}
		n := len(idx)
		a, b, c := idx[(k+n-1)%n], idx[k], idx[(k+1)%n]
		if doubledArea(verts[a], verts[b], verts[c]) > areaEps {
			tris = append(tris, Triangle{a, b, c})
		}
		idx = append(idx[:k], idx[k+1:]...)
	}
	if doubledArea(verts[idx[0]], verts[idx[1]], verts[idx[2]]) > areaEps {
		tris = append(tris, Triangle{idx[0], idx[1], idx[2]})
	}
	return verts, tris, nil
}

// findEar scans for a clippable corner: a straight corner (clipped
// without emitting a triangle) or a convex corner whose triangle
// contains no other remaining vertex.
func findEar(verts []geometry.Point, idx []int) (int, bool) {
	n := len(idx)
	for k := 0; k < n; k++ {
		a, b, c := idx[(k+n-1)%n], idx[k], idx[(k+1)%n]
		cross := doubledArea(verts[a], verts[b], verts[c])
		if cross < -areaEps {
			continue // reflex
		}
		if cross <= areaEps {
			return k, true // straight corner, zero-area ear
		}
		blocked := false
		for _, m := range idx {
			if m == a || m == b || m == c {
				continue
			}
			if inTriangle(verts[a], verts[b], verts[c], verts[m]) {
				blocked = true
				break
			}
		}
		if !blocked {
			return k, true
		}
	}
	return 0, false
}

// doubledArea returns twice the signed area of triangle abc, positive
// when counter-clockwise.
func doubledArea(a, b, c geometry.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// inTriangle reports whether p lies inside or on the boundary of the
// counter-clockwise triangle abc. Boundary counts: a vertex resting on
// an ear's edge must block the clip to keep the surface watertight.
func inTriangle(a, b, c, p geometry.Point) bool {
	return doubledArea(a, b, p) >= -areaEps &&
		doubledArea(b, c, p) >= -areaEps &&
		doubledArea(c, a, p) >= -areaEps
}

// signedArea is the shoelace sum over the open ring, positive when
// counter-clockwise.
func signedArea(verts []geometry.Point) float64 {
	var sum float64
	for i, v := range verts {
		w := verts[(i+1)%len(verts)]
		sum += v.Cross(w)
	}
	return sum / 2
}

// cleanRing copies the ring without the closing duplicate and without
// consecutive duplicate vertices.
func cleanRing(ring []geometry.Point) []geometry.Point {
	verts := make([]geometry.Point, 0, len(ring))
	for _, p := range ring {
		if n := len(verts); n > 0 && verts[n-1].ApproxEqual(p) {
			continue
		}
		verts = append(verts, p)
	}
	for len(verts) > 1 && verts[len(verts)-1].ApproxEqual(verts[0]) {
		verts = verts[:len(verts)-1]
	}
	return verts
}

func reverseRing(verts []geometry.Point) {
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
}
