package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/staircast/staircast/pkg/geometry"
)

const (
	defaultWidth  = 1000.0
	defaultHeight = 700.0
	frameMargin   = 50.0

	dimFontSize  = 12.0
	tickHalfLen  = 4.0
	labelOffset  = 14.0
	depthCueMax  = 70.0
	depthCueRate = 0.35
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	theme         Theme
	showDims      bool
	title         string
}

// WithSize sets the viewport size in pixels.
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// WithTheme selects the visual theme.
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithDimensions toggles dimension line drawing.
func WithDimensions(show bool) SVGOption { return func(r *svgRenderer) { r.showDims = show } }

// WithTitle adds a title block in the lower right corner.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG renders the profile as a standalone SVG document.
func RenderSVG(p *geometry.Profile, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	min, max := renderExtent(p, r.showDims)
	frame := FitFrame(min, max, r.width, r.height, frameMargin)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)

	renderBackground(&buf, r.theme, r.width, r.height)
	renderGrid(&buf, r.theme, r.width, r.height)
	renderPolygon(&buf, r.theme, frame, p.Polygon)

	if r.showDims {
		for _, d := range p.Annotations {
			renderDimension(&buf, r.theme, frame, d)
		}
	}
	if r.title != "" {
		renderTitle(&buf, r.theme, r.width, r.height, r.title)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		width:    defaultWidth,
		height:   defaultHeight,
		theme:    Simple{},
		showDims: true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// renderExtent is the profile extent plus, when drawn, the dimension
// line endpoints. Depth cues project onto a single point and do not
// widen the extent.
func renderExtent(p *geometry.Profile, showDims bool) (min, max geometry.Point) {
	min, max = p.Bounds()
	if !showDims {
		return min, max
	}
	for _, d := range p.Annotations {
		for _, q := range [2]geometry.Point{d.Start.XY(), d.End.XY()} {
			if q.X < min.X {
				min.X = q.X
			}
			if q.Y < min.Y {
				min.Y = q.Y
			}
			if q.X > max.X {
				max.X = q.X
			}
			if q.Y > max.Y {
				max.Y = q.Y
			}
		}
	}
	return min, max
}

func renderBackground(buf *bytes.Buffer, t Theme, w, h float64) {
	fmt.Fprintf(buf, `  <rect width="%.0f" height="%.0f" fill="%s"/>`+"\n", w, h, t.Background())
}

func renderGrid(buf *bytes.Buffer, t Theme, w, h float64) {
	spacing, color := t.Grid()
	if spacing <= 0 {
		return
	}
	fmt.Fprintf(buf, `  <g class="grid" stroke="%s" stroke-width="0.5">`+"\n", color)
	for x := spacing; x < w; x += spacing {
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="0" x2="%.1f" y2="%.0f"/>`+"\n", x, x, h)
	}
	for y := spacing; y < h; y += spacing {
		fmt.Fprintf(buf, `    <line x1="0" y1="%.1f" x2="%.0f" y2="%.1f"/>`+"\n", y, w, y)
	}
	buf.WriteString("  </g>\n")
}

func renderPolygon(buf *bytes.Buffer, t Theme, f Frame, polygon []geometry.Point) {
	if len(polygon) < 2 {
		return
	}
	// The ring repeats the origin at the end; Z closes it instead.
	ring := polygon[:len(polygon)-1]

	var d bytes.Buffer
	for i, p := range ring {
		x, y := f.Map(p)
		cmd := 'L'
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&d, "%c%.1f %.1f ", cmd, x, y)
	}
	d.WriteString("Z")

	stroke, width := t.ProfileStroke()
	fmt.Fprintf(buf, `  <path class="profile" d="%s" fill="%s" stroke="%s" stroke-width="%.1f" stroke-linejoin="round"/>`+"\n",
		d.String(), t.ProfileFill(), stroke, width)
}

func renderDimension(buf *bytes.Buffer, t Theme, f Frame, d geometry.DimensionLine) {
	color := t.DimensionColor(d.Tag)

	// The width line runs along the extrusion axis and has no extent in
	// the profile plane; it renders as a diagonal depth cue.
	if depth := math.Abs(d.End.Z - d.Start.Z); depth > geometry.Eps {
		renderDepthCue(buf, t, f, d, color, depth)
		return
	}

	x1, y1 := f.Map(d.Start.XY())
	x2, y2 := f.Map(d.End.XY())
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return
	}
	px, py := -dy/length, dx/length

	fmt.Fprintf(buf, `  <g class="dim dim-%s" stroke="%s">`+"\n", d.Tag, color)
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="1"/>`+"\n", x1, y1, x2, y2)
	renderTick(buf, x1, y1, px, py)
	renderTick(buf, x2, y2, px, py)
	renderLabel(buf, t, f, d.Label, (x1+x2)/2, (y1+y2)/2, px, py, color)
	buf.WriteString("  </g>\n")
}

func renderTick(buf *bytes.Buffer, x, y, px, py float64) {
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="1"/>`+"\n",
		x-px*tickHalfLen, y-py*tickHalfLen, x+px*tickHalfLen, y+py*tickHalfLen)
}

// renderLabel places the label at the line midpoint, pushed along the
// perpendicular away from the viewport center so it never sits on top
// of the drawing.
func renderLabel(buf *bytes.Buffer, t Theme, f Frame, label string, mx, my, px, py float64, color string) {
	ax, ay := mx+px*labelOffset, my+py*labelOffset
	bx, by := mx-px*labelOffset, my-py*labelOffset
	cx, cy := f.W/2, f.H/2
	x, y := ax, ay
	if math.Hypot(bx-cx, by-cy) > math.Hypot(ax-cx, ay-cy) {
		x, y = bx, by
	}
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="%.0f" font-family="%s" fill="%s" stroke="none">%s</text>`+"\n",
		x, y, dimFontSize, t.FontFamily(), color, EscapeXML(label))
}

// renderDepthCue draws the extrusion width as a dashed diagonal from
// its anchor point, labeled with the real depth.
func renderDepthCue(buf *bytes.Buffer, t Theme, f Frame, d geometry.DimensionLine, color string, depth float64) {
	x0, y0 := f.Map(d.Start.XY())
	l := depth * f.Scale() * depthCueRate
	if l > depthCueMax {
		l = depthCueMax
	}
	x1, y1 := x0+l*math.Sqrt2/2, y0+l*math.Sqrt2/2

	fmt.Fprintf(buf, `  <g class="dim dim-%s" stroke="%s">`+"\n", d.Tag, color)
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="1" stroke-dasharray="4 3"/>`+"\n",
		x0, y0, x1, y1)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="%.0f" font-family="%s" fill="%s" stroke="none">%s</text>`+"\n",
		x1+6, y1+12, dimFontSize, t.FontFamily(), color, EscapeXML(d.Label))
	buf.WriteString("  </g>\n")
}

func renderTitle(buf *bytes.Buffer, t Theme, w, h float64, title string) {
	fmt.Fprintf(buf, `  <text class="title" x="%.1f" y="%.1f" text-anchor="end" font-size="16" font-family="%s" fill="%s">%s</text>`+"\n",
		w-16, h-16, t.FontFamily(), t.TextColor(), EscapeXML(title))
}

// EscapeXML escapes text for embedding in SVG attributes and content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
