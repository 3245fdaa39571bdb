package render

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/fonts"
	"github.com/staircast/staircast/pkg/geometry"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	width, height int
	scale         float64
	theme         Theme
	showDims      bool
	title         string
}

// WithPNGSize sets the nominal image size in pixels (before scaling).
func WithPNGSize(w, h int) PNGOption {
	return func(r *pngRenderer) { r.width, r.height = w, h }
}

// WithPNGScale sets the resolution multiplier (default 2.0 for 2x).
func WithPNGScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// WithPNGTheme selects the visual theme.
func WithPNGTheme(t Theme) PNGOption { return func(r *pngRenderer) { r.theme = t } }

// WithPNGDimensions toggles dimension line drawing.
func WithPNGDimensions(show bool) PNGOption { return func(r *pngRenderer) { r.showDims = show } }

// WithPNGTitle adds a title block in the lower right corner.
func WithPNGTitle(title string) PNGOption { return func(r *pngRenderer) { r.title = title } }

// RenderPNG rasterizes the profile directly, with no external
// conversion tools involved.
func RenderPNG(p *geometry.Profile, opts ...PNGOption) ([]byte, error) {
	r := newPNGRenderer(opts...)
	w := float64(r.width) * r.scale
	h := float64(r.height) * r.scale

	dc := gg.NewContext(int(w), int(h))
	dc.SetHexColor(r.theme.Background())
	dc.Clear()

	drawGrid(dc, r.theme, w, h, r.scale)

	min, max := renderExtent(p, r.showDims)
	frame := FitFrame(min, max, w, h, frameMargin*r.scale)

	drawPolygon(dc, r.theme, frame, p.Polygon, r.scale)

	if r.showDims || r.title != "" {
		face, err := fonts.Face(dimFontSize * r.scale)
		if err != nil {
			return nil, err
		}
		defer face.Close()
		dc.SetFontFace(face)
	}
	if r.showDims {
		for _, d := range p.Annotations {
			drawDimension(dc, r.theme, frame, d, r.scale)
		}
	}
	if r.title != "" {
		dc.SetHexColor(r.theme.TextColor())
		dc.DrawStringAnchored(r.title, w-16*r.scale, h-16*r.scale, 1, 1)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encoding png")
	}
	return buf.Bytes(), nil
}

func newPNGRenderer(opts ...PNGOption) pngRenderer {
	r := pngRenderer{
		width:    int(defaultWidth),
		height:   int(defaultHeight),
		scale:    2.0,
		theme:    Simple{},
		showDims: true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}
	return r
}

func drawGrid(dc *gg.Context, t Theme, w, h, scale float64) {
	spacing, color := t.Grid()
	if spacing <= 0 {
		return
	}
	spacing *= scale
	dc.SetHexColor(color)
	dc.SetLineWidth(0.5 * scale)
	for x := spacing; x < w; x += spacing {
		dc.DrawLine(x, 0, x, h)
	}
	for y := spacing; y < h; y += spacing {
		dc.DrawLine(0, y, w, y)
	}
	dc.Stroke()
}

func drawPolygon(dc *gg.Context, t Theme, f Frame, polygon []geometry.Point, scale float64) {
	if len(polygon) < 2 {
		return
	}
	ring := polygon[:len(polygon)-1]
	for i, p := range ring {
		x, y := f.Map(p)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.ClosePath()

	stroke, width := t.ProfileStroke()
	dc.SetHexColor(t.ProfileFill())
	dc.FillPreserve()
	dc.SetHexColor(stroke)
	dc.SetLineWidth(width * scale)
	dc.Stroke()
}

func drawDimension(dc *gg.Context, t Theme, f Frame, d geometry.DimensionLine, scale float64) {
	color := t.DimensionColor(d.Tag)
	dc.SetHexColor(color)
	dc.SetLineWidth(1 * scale)

	if depth := math.Abs(d.End.Z - d.Start.Z); depth > geometry.Eps {
		drawDepthCue(dc, f, d, depth, scale)
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

	dc.DrawLine(x1, y1, x2, y2)
	tick := tickHalfLen * scale
	dc.DrawLine(x1-px*tick, y1-py*tick, x1+px*tick, y1+py*tick)
	dc.DrawLine(x2-px*tick, y2-py*tick, x2+px*tick, y2+py*tick)
	dc.Stroke()

	mx, my := (x1+x2)/2, (y1+y2)/2
	off := labelOffset * scale
	ax, ay := mx+px*off, my+py*off
	bx, by := mx-px*off, my-py*off
	cx, cy := f.W/2, f.H/2
	lx, ly := ax, ay
	if math.Hypot(bx-cx, by-cy) > math.Hypot(ax-cx, ay-cy) {
		lx, ly = bx, by
	}
	dc.DrawStringAnchored(d.Label, lx, ly, 0.5, 0.5)
}

func drawDepthCue(dc *gg.Context, f Frame, d geometry.DimensionLine, depth, scale float64) {
	x0, y0 := f.Map(d.Start.XY())
	l := depth * f.Scale() * depthCueRate
	if l > depthCueMax*scale {
		l = depthCueMax * scale
	}
	x1, y1 := x0+l*math.Sqrt2/2, y0+l*math.Sqrt2/2

	dc.SetDash(4*scale, 3*scale)
	dc.DrawLine(x0, y0, x1, y1)
	dc.Stroke()
	dc.SetDash()

	dc.DrawStringAnchored(d.Label, x1+6*scale, y1+12*scale, 0, 0.5)
}
