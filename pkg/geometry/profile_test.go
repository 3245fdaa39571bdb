package geometry

import (
	"math"
	"testing"

	"github.com/staircast/staircast/pkg/spec"
)

func computeFor(t *testing.T, sp spec.Staircase) *Profile {
	t.Helper()
	p, err := Compute(sp)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return p
}

func TestProfileClosed(t *testing.T) {
	specs := map[string]spec.Staircase{
		"straight":      straightSpec(),
		"mid landing":   landingSpec(),
		"zero slab":     func() spec.Staircase { s := straightSpec(); s.SlabThickness = 0; return s }(),
		"huge slab":     func() spec.Staircase { s := straightSpec(); s.SlabThickness = 1000; return s }(),
		"landing first": func() spec.Staircase { s := straightSpec(); s.Landings = []spec.Landing{{StepIndex: 1, Depth: 80}}; return s }(),
	}

	for name, sp := range specs {
		t.Run(name, func(t *testing.T) {
			p := computeFor(t, sp)
			poly := p.Polygon

			if len(poly) < 4 {
				t.Fatalf("len(polygon) = %d, want >= 4", len(poly))
			}
			if poly[0] != Pt(0, 0) {
				t.Errorf("first vertex = %v, want origin", poly[0])
			}
			if poly[len(poly)-1] != Pt(0, 0) {
				t.Errorf("last vertex = %v, want origin", poly[len(poly)-1])
			}
		})
	}
}

func TestProfileNonNegativeY(t *testing.T) {
	sp := straightSpec()
	sp.SlabThickness = 1000

	p := computeFor(t, sp)
	for i, v := range p.Polygon {
		if v.Y < 0 {
			t.Errorf("polygon[%d].Y = %v, want >= 0", i, v.Y)
		}
	}
}

func TestProfileTopChainExact(t *testing.T) {
	p := computeFor(t, straightSpec())

	if p.TotalRun != 350 {
		t.Errorf("TotalRun = %v, want 350", p.TotalRun)
	}
	if p.TotalRise != 280 {
		t.Errorf("TotalRise = %v, want 280", p.TotalRise)
	}

	// The last top-chain vertex is the exact top corner.
	var top Point
	for _, v := range p.Polygon {
		if v.Y >= top.Y && v.X >= top.X {
			top = v
		}
	}
	if top != Pt(350, 280) {
		t.Errorf("top corner = %v, want (350, 280)", top)
	}
}

func TestProfileNoDuplicateAdjacentVertices(t *testing.T) {
	sp := straightSpec()
	sp.SlabThickness = 0 // soffit starts exactly at the top corner

	p := computeFor(t, sp)
	poly := p.Polygon
	for i := 1; i < len(poly); i++ {
		if poly[i].ApproxEqual(poly[i-1]) {
			t.Errorf("polygon[%d] duplicates its predecessor %v", i, poly[i])
		}
	}
}

func TestProfileSimple(t *testing.T) {
	specs := map[string]spec.Staircase{
		"straight":    straightSpec(),
		"mid landing": landingSpec(),
		"huge slab":   func() spec.Staircase { s := straightSpec(); s.SlabThickness = 1000; return s }(),
		"two landings": func() spec.Staircase {
			s := straightSpec()
			s.Landings = []spec.Landing{{StepIndex: 4, Depth: 90}, {StepIndex: 9, Depth: 110}}
			return s
		}(),
	}

	for name, sp := range specs {
		t.Run(name, func(t *testing.T) {
			p := computeFor(t, sp)
			if !polygonIsSimple(p.Polygon) {
				t.Error("polygon self-intersects")
			}
		})
	}
}

func TestProfileFlatSpansMatchLandings(t *testing.T) {
	tests := []struct {
		name     string
		landings []spec.Landing
		want     int
	}{
		{"none", nil, 0},
		{"one mid", []spec.Landing{{StepIndex: 5, Depth: 100}}, 1},
		{"two separate", []spec.Landing{{StepIndex: 4, Depth: 90}, {StepIndex: 9, Depth: 110}}, 2},
		{"consecutive merge", []spec.Landing{{StepIndex: 5, Depth: 90}, {StepIndex: 6, Depth: 90}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := straightSpec()
			sp.Landings = tt.landings
			p := computeFor(t, sp)

			if got := flatSoffitSpans(p.Soffit); got != tt.want {
				t.Errorf("flat spans = %d, want %d", got, tt.want)
			}

			landingSegs := 0
			for _, seg := range p.Segments {
				if seg.Kind == KindLanding {
					landingSegs++
				}
			}
			if landingSegs != tt.want {
				t.Errorf("landing segments = %d, want %d", landingSegs, tt.want)
			}
		})
	}
}

// flatSoffitSpans counts horizontal runs of positive length in the
// soffit chain.
func flatSoffitSpans(soffit []Point) int {
	spans := 0
	for i := 1; i < len(soffit); i++ {
		if math.Abs(soffit[i].Y-soffit[i-1].Y) < Eps && math.Abs(soffit[i].X-soffit[i-1].X) > Eps {
			spans++
		}
	}
	return spans
}

// polygonIsSimple reports whether no two non-adjacent edges of the
// closed ring intersect.
func polygonIsSimple(poly []Point) bool {
	// The ring repeats the origin at the end; drop it so edge indices
	// wrap cleanly.
	ring := poly[:len(poly)-1]
	n := len(ring)
	for i := 0; i < n; i++ {
		a1, a2 := ring[i], ring[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if adjacentEdges(i, j, n) {
				continue
			}
			b1, b2 := ring[j], ring[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

func adjacentEdges(i, j, n int) bool {
	return j == i || (j+1)%n == i || (i+1)%n == j
}

func segmentsCross(a, b, c, d Point) bool {
	d1 := orientSign(c, d, a)
	d2 := orientSign(c, d, b)
	d3 := orientSign(a, b, c)
	d4 := orientSign(a, b, d)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	// Collinear cases: a vertex strictly inside the other edge.
	return (d1 == 0 && strictlyBetween(c, d, a)) ||
		(d2 == 0 && strictlyBetween(c, d, b)) ||
		(d3 == 0 && strictlyBetween(a, b, c)) ||
		(d4 == 0 && strictlyBetween(a, b, d))
}

func orientSign(a, b, c Point) int {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > Eps:
		return 1
	case v < -Eps:
		return -1
	default:
		return 0
	}
}

func strictlyBetween(a, b, p Point) bool {
	if p.ApproxEqual(a) || p.ApproxEqual(b) {
		return false
	}
	return math.Min(a.X, b.X)-Eps <= p.X && p.X <= math.Max(a.X, b.X)+Eps &&
		math.Min(a.Y, b.Y)-Eps <= p.Y && p.Y <= math.Max(a.Y, b.Y)+Eps
}
