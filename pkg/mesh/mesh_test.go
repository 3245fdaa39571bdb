package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/geometry"
	"github.com/staircast/staircast/pkg/spec"
)

func straightStairSpec() spec.Staircase {
	return spec.Staircase{
		TotalHeight:   280,
		Width:         100,
		NumSteps:      14,
		StepDepth:     25,
		SlabThickness: 20,
	}
}

func computeStraight(t *testing.T) *geometry.Profile {
	t.Helper()
	p, err := geometry.Compute(straightStairSpec())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return p
}

func extrudeCube(t *testing.T) *Mesh {
	t.Helper()
	m, err := Extrude(square(), 2)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	return m
}

func TestExtrudeCube(t *testing.T) {
	m := extrudeCube(t)

	if got := m.VertexCount(); got != 8 {
		t.Errorf("VertexCount() = %d, want 8", got)
	}
	if got := m.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount() = %d, want 12", got)
	}
	if got := m.Volume(); math.Abs(got-2) > 1e-12 {
		t.Errorf("Volume() = %v, want 2", got)
	}

	min, max := m.Bounds()
	if min != geometry.Pt3(0, 0, 0) {
		t.Errorf("Bounds() min = %v, want origin", min)
	}
	if max != geometry.Pt3(1, 1, 2) {
		t.Errorf("Bounds() max = %v, want (1, 1, 2)", max)
	}
}

func TestExtrudeProfile(t *testing.T) {
	p := computeStraight(t)

	m, err := Extrude(p.Polygon, 100)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	if got := m.VertexCount(); got != 62 {
		t.Errorf("VertexCount() = %d, want 62", got)
	}
	// 29 cap triangles per side plus 2 wall triangles per edge.
	if got := m.TriangleCount(); got != 120 {
		t.Errorf("TriangleCount() = %d, want 120", got)
	}

	ring, _, err := Triangulate(p.Polygon)
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}
	want := math.Abs(signedArea(ring)) * 100
	if got := m.Volume(); math.Abs(got-want) > 1e-3 {
		t.Errorf("Volume() = %v, want %v", got, want)
	}
}

func TestExtrudeRejectsBadWidth(t *testing.T) {
	for _, width := range []float64{0, -5} {
		_, err := Extrude(square(), width)
		if err == nil {
			t.Fatalf("Extrude(width=%v) error = nil, want mesh error", width)
		}
		if code := errors.GetCode(err); code != errors.ErrCodeMesh {
			t.Errorf("error code = %v, want %v", code, errors.ErrCodeMesh)
		}
	}
}

func TestOBJ(t *testing.T) {
	m := extrudeCube(t)
	data := m.OBJ()

	var vLines, fLines int
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			vLines++
		case strings.HasPrefix(line, "f "):
			fLines++
			var a, b, c int
			if _, err := fmt.Sscanf(line, "f %d %d %d", &a, &b, &c); err != nil {
				t.Fatalf("unparseable face line %q: %v", line, err)
			}
			for _, idx := range []int{a, b, c} {
				if idx < 1 || idx > m.VertexCount() {
					t.Errorf("face index %d out of range 1..%d", idx, m.VertexCount())
				}
			}
		}
	}
	if vLines != m.VertexCount() {
		t.Errorf("v lines = %d, want %d", vLines, m.VertexCount())
	}
	if fLines != m.TriangleCount() {
		t.Errorf("f lines = %d, want %d", fLines, m.TriangleCount())
	}
	if !bytes.HasPrefix(data, []byte("#")) {
		t.Error("OBJ output missing header comment")
	}
}

func TestSTL(t *testing.T) {
	m := extrudeCube(t)
	data := m.STL()

	wantLen := 84 + 50*m.TriangleCount()
	if len(data) != wantLen {
		t.Fatalf("len(STL) = %d, want %d", len(data), wantLen)
	}

	count := binary.LittleEndian.Uint32(data[80:84])
	if int(count) != m.TriangleCount() {
		t.Errorf("facet count = %d, want %d", count, m.TriangleCount())
	}

	// First facet belongs to the front cap, which faces -Z.
	var facet stlFacet
	r := bytes.NewReader(data[84 : 84+50])
	if err := binary.Read(r, binary.LittleEndian, &facet); err != nil {
		t.Fatalf("binary.Read() error = %v", err)
	}
	if facet.Normal != [3]float32{0, 0, -1} {
		t.Errorf("front cap normal = %v, want (0, 0, -1)", facet.Normal)
	}
	for _, v := range facet.Verts {
		if v[2] != 0 {
			t.Errorf("front cap vertex Z = %v, want 0", v[2])
		}
	}
}
