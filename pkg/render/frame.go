package render

import "github.com/staircast/staircast/pkg/geometry"

// Frame maps profile coordinates (Y up, centimeters) into viewport
// coordinates (Y down, pixels). The content is scaled uniformly and
// centered.
type Frame struct {
	W, H float64

	scale      float64
	minX, minY float64
	padX, padY float64
}

// FitFrame builds a frame that fits the extent between min and max
// into a width x height viewport with the given margin on all sides.
// Degenerate extents (a point) map to the viewport center.
func FitFrame(min, max geometry.Point, width, height, margin float64) Frame {
	f := Frame{W: width, H: height, minX: min.X, minY: min.Y}

	dx, dy := max.X-min.X, max.Y-min.Y
	availW, availH := width-2*margin, height-2*margin
	if availW < 1 {
		availW = 1
	}
	if availH < 1 {
		availH = 1
	}

	f.scale = 1
	if dx > 0 || dy > 0 {
		sx, sy := availW, availH
		if dx > 0 {
			sx = availW / dx
		}
		if dy > 0 {
			sy = availH / dy
		}
		f.scale = sx
		if sy < sx {
			f.scale = sy
		}
	}

	f.padX = (width - dx*f.scale) / 2
	f.padY = (height - dy*f.scale) / 2
	return f
}

// Scale returns pixels per profile unit.
func (f Frame) Scale() float64 {
	return f.scale
}

// Map converts a profile point to viewport coordinates, flipping Y so
// the stair climbs up the image.
func (f Frame) Map(p geometry.Point) (x, y float64) {
	x = f.padX + (p.X-f.minX)*f.scale
	y = f.H - (f.padY + (p.Y-f.minY)*f.scale)
	return x, y
}

// MapXY is Map for callers holding raw coordinates.
func (f Frame) MapXY(px, py float64) (x, y float64) {
	return f.Map(geometry.Pt(px, py))
}
