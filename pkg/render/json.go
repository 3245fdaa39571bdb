package render

import (
	"encoding/json"
	"math"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/geometry"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	theme    string
	showDims bool
	title    string
}

// WithJSONTheme records the theme name in the output for round-trip
// rendering.
func WithJSONTheme(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithJSONDimensions toggles annotation inclusion.
func WithJSONDimensions(show bool) JSONOption { return func(r *jsonRenderer) { r.showDims = show } }

// WithJSONTitle records the drawing title.
func WithJSONTitle(title string) JSONOption { return func(r *jsonRenderer) { r.title = title } }

type jsonOutput struct {
	Title       string                   `json:"title,omitempty"`
	Theme       string                   `json:"theme,omitempty"`
	RiserHeight float64                  `json:"riser_height"`
	StepDepth   float64                  `json:"step_depth"`
	TotalRun    float64                  `json:"total_run"`
	TotalRise   float64                  `json:"total_rise"`
	AngleDeg    float64                  `json:"angle_deg"`
	StepCount   int                      `json:"step_count"`
	Polygon     []geometry.Point         `json:"polygon"`
	Steps       []geometry.Step          `json:"steps"`
	Segments    []geometry.Segment       `json:"segments"`
	Soffit      []geometry.Point         `json:"soffit"`
	Annotations []geometry.DimensionLine `json:"annotations,omitempty"`
}

// RenderJSON exports the computed profile as a pretty-printed JSON
// document for programmatic consumers: external viewers, caching, or
// re-rendering without recomputation.
func RenderJSON(p *geometry.Profile, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{showDims: true}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Title:       r.title,
		Theme:       r.theme,
		RiserHeight: p.RiserHeight,
		StepDepth:   p.StepDepth,
		TotalRun:    p.TotalRun,
		TotalRise:   p.TotalRise,
		AngleDeg:    p.Slope.Angle * 180 / math.Pi,
		StepCount:   len(p.Steps),
		Polygon:     p.Polygon,
		Steps:       p.Steps,
		Segments:    p.Segments,
		Soffit:      p.Soffit,
	}
	if r.showDims {
		out.Annotations = p.Annotations
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encoding profile json")
	}
	return append(data, '\n'), nil
}
