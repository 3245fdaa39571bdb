package geometry

import "math"

// Slope captures the incline quantities shared by the soffit and the
// slab thickness annotation. The slab hangs VerticalOffset below the
// nosing line of a flight because the waist is measured perpendicular
// to the incline, not vertically.
type Slope struct {
	Angle          float64 `json:"angle"`           // radians, atan2(riser, stepDepth)
	M              float64 `json:"slope"`           // tan(Angle)
	VerticalOffset float64 `json:"vertical_offset"` // slab thickness projected vertically
}

// NewSlope derives the incline quantities from the per-step rise, the
// regular tread depth, and the slab thickness.
func NewSlope(riser, stepDepth, slab float64) Slope {
	angle := math.Atan2(riser, stepDepth)
	return Slope{
		Angle:          angle,
		M:              math.Tan(angle),
		VerticalOffset: slab / math.Cos(angle),
	}
}

// soffitLine is the underside boundary beneath one segment: a flat
// level under a landing, an inclined line under a flight.
type soffitLine struct {
	flat   bool
	level  float64 // flat: y level
	x0, y0 float64 // sloped: reference point on the line
	m      float64 // sloped: slope
}

// soffitLineFor selects the underside line for a segment. This switch
// is the single place segment kinds change geometry behavior.
func soffitLineFor(seg Segment, sl Slope, stepDepth, slab float64) soffitLine {
	switch seg.Kind {
	case KindLanding:
		return soffitLine{flat: true, level: seg.Start.Y - slab}
	default:
		// The flight's nosing line passes through
		// (segStartX + stepDepth, segStartY) with slope m; the soffit
		// runs parallel, VerticalOffset lower.
		return soffitLine{
			x0: seg.Start.X + stepDepth,
			y0: seg.Start.Y - sl.VerticalOffset,
			m:  sl.M,
		}
	}
}

// yAt evaluates the line at x.
func (l soffitLine) yAt(x float64) float64 {
	if l.flat {
		return l.level
	}
	return l.m*(x-l.x0) + l.y0
}

// BuildSoffit constructs the underside vertex chain, walking from the
// top of the stair down to the floor. The chain starts at the final
// segment's end, emits one junction vertex per adjacent segment pair
// (segments alternate, so each pair intersects one flat and one
// inclined line), and terminates on the floor:
//
//   - first segment a landing: straight down the back face at x = 0;
//   - first segment a flight: where the incline meets y = 0, at
//     x = (VerticalOffset − riser)/m + stepDepth.
//
// Vertices that would dip below the floor are clamped to y = 0, and x
// never moves back toward the top once clamped, so even a slab thicker
// than the stair yields a simple polygon.
func BuildSoffit(segs []Segment, sl Slope, riser, stepDepth, slab float64) []Point {
	n := len(segs)
	if n == 0 {
		return nil
	}

	lines := make([]soffitLine, n)
	for i, seg := range segs {
		lines[i] = soffitLineFor(seg, sl, stepDepth, slab)
	}

	pts := make([]Point, 0, n+2)

	// Top terminus: the last segment's line under its end corner.
	endX := segs[n-1].End.X
	pts = appendSoffit(pts, Point{X: endX, Y: lines[n-1].yAt(endX)})

	// One junction per adjacent pair, top to floor.
	for i := n - 1; i > 0; i-- {
		flat, sloped := lines[i], lines[i-1]
		if !flat.flat {
			flat, sloped = sloped, flat
		}
		x := (flat.level-sloped.y0)/sloped.m + sloped.x0
		pts = appendSoffit(pts, Point{X: x, Y: flat.level})
	}

	// Floor terminus from the first segment.
	if segs[0].Kind == KindLanding {
		pts = appendSoffit(pts, Point{X: 0, Y: lines[0].level})
		pts = appendSoffit(pts, Point{X: 0, Y: 0})
	} else {
		x := (sl.VerticalOffset-riser)/sl.M + stepDepth
		if x < 0 {
			x = 0
		}
		pts = appendSoffit(pts, Point{X: x, Y: 0})
	}

	return pts
}

// appendSoffit clamps the vertex into the first quadrant and keeps X
// monotone while the chain walks toward the floor.
func appendSoffit(pts []Point, p Point) []Point {
	if p.Y < 0 {
		p.Y = 0
	}
	if p.X < 0 {
		p.X = 0
	}
	if n := len(pts); n > 0 && p.X > pts[n-1].X {
		p.X = pts[n-1].X
	}
	return append(pts, p)
}
