package geometry

import (
	"math"
	"strconv"
	"strings"

	"github.com/staircast/staircast/pkg/spec"
)

// Tag identifies what a dimension line measures. Renderers map tags to
// colors; the engine attaches no visual meaning.
type Tag string

const (
	TagHeight  Tag = "height"
	TagRun     Tag = "run"
	TagWidth   Tag = "width"
	TagRiser   Tag = "riser"
	TagTread   Tag = "tread"
	TagSlab    Tag = "slab"
	TagLanding Tag = "landing"
)

// DimensionLine is a presentational measurement annotation. Start and
// End lie in the profile plane (Z = 0) for every tag except TagWidth,
// which runs along the extrusion axis.
type DimensionLine struct {
	Start Point3 `json:"start"`
	End   Point3 `json:"end"`
	Label string `json:"label"`
	Tag   Tag    `json:"tag"`
}

// Annotation placement, in spec units: overall lines stand well clear
// of the silhouette (0.2 m for centimeter specs), per-step samples sit
// just off their surfaces.
const (
	dimStandoff = 20.0
	dimInset    = 5.0
)

// Annotate produces the dimension lines for a computed layout:
// overall height, run and width, one representative riser/tread
// sample, a slab thickness indicator on the first flight, and a depth
// line per landing. Samples prefer a regular step past the first; a
// staircase with no regular step gets no sample, and one with no
// flight gets no slab indicator.
func Annotate(sp spec.Staircase, steps []Step, segs []Segment, sl Slope, totalRun, totalRise float64) []DimensionLine {
	riser := sp.RiserHeight()
	dims := make([]DimensionLine, 0, 6+len(sp.Landings))

	dims = append(dims,
		DimensionLine{
			Start: Pt3(-dimStandoff, 0, 0),
			End:   Pt3(-dimStandoff, totalRise, 0),
			Label: formatDim(totalRise),
			Tag:   TagHeight,
		},
		DimensionLine{
			Start: Pt3(0, -dimStandoff, 0),
			End:   Pt3(totalRun, -dimStandoff, 0),
			Label: formatDim(totalRun),
			Tag:   TagRun,
		},
		DimensionLine{
			Start: Pt3(-dimStandoff, 0, 0),
			End:   Pt3(-dimStandoff, 0, sp.Width),
			Label: formatDim(sp.Width),
			Tag:   TagWidth,
		},
	)

	if st, ok := sampleStep(steps); ok {
		dims = append(dims,
			DimensionLine{
				Start: Pt3(st.StartX-dimInset, st.StartY-riser, 0),
				End:   Pt3(st.StartX-dimInset, st.StartY, 0),
				Label: formatDim(riser),
				Tag:   TagRiser,
			},
			DimensionLine{
				Start: Pt3(st.StartX, st.StartY+dimInset, 0),
				End:   Pt3(st.EndX(), st.StartY+dimInset, 0),
				Label: formatDim(st.Run),
				Tag:   TagTread,
			},
		)
	}

	if d, ok := slabIndicator(segs, sl, sp.StepDepth, sp.SlabThickness); ok {
		dims = append(dims, d)
	}

	for _, st := range steps {
		if !st.IsLanding {
			continue
		}
		dims = append(dims, DimensionLine{
			Start: Pt3(st.StartX, st.StartY+dimInset, 0),
			End:   Pt3(st.EndX(), st.StartY+dimInset, 0),
			Label: formatDim(st.Run),
			Tag:   TagLanding,
		})
	}

	return dims
}

// sampleStep picks the step whose riser and tread stand in for the
// whole staircase: the first regular step past step 1, falling back to
// step 1 itself.
func sampleStep(steps []Step) (Step, bool) {
	for _, st := range steps[1:] {
		if !st.IsLanding {
			return st, true
		}
	}
	if !steps[0].IsLanding {
		return steps[0], true
	}
	return Step{}, false
}

// slabIndicator crosses the slab perpendicular to the incline at the
// midpoint of the first flight, from the soffit up to the nosing line.
func slabIndicator(segs []Segment, sl Slope, stepDepth, slab float64) (DimensionLine, bool) {
	if slab <= 0 {
		return DimensionLine{}, false
	}
	for _, seg := range segs {
		if seg.Kind != KindFlight {
			continue
		}
		line := soffitLineFor(seg, sl, stepDepth, slab)
		xm := (seg.Start.X + seg.End.X) / 2
		ys := line.yAt(xm)
		return DimensionLine{
			Start: Pt3(xm, ys, 0),
			End:   Pt3(xm-slab*math.Sin(sl.Angle), ys+slab*math.Cos(sl.Angle), 0),
			Label: formatDim(slab),
			Tag:   TagSlab,
		}, true
	}
	return DimensionLine{}, false
}

// formatDim renders a measurement with the spec's conventional unit,
// one decimal at most.
func formatDim(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + " cm"
}
