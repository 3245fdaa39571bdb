package geometry

// Profile is the computed cross-section of a staircase: the closed
// silhouette polygon, the dimension annotations, and the intermediate
// results callers read raw numbers from (riser height, total run,
// incline angle) to check against building-code limits.
type Profile struct {
	Polygon     []Point         `json:"polygon"`
	Annotations []DimensionLine `json:"annotations,omitempty"`
	Steps       []Step          `json:"steps"`
	Segments    []Segment       `json:"segments"`
	Soffit      []Point         `json:"soffit"`
	RiserHeight float64         `json:"riser_height"`
	StepDepth   float64         `json:"step_depth"`
	TotalRun    float64         `json:"total_run"`
	TotalRise   float64         `json:"total_rise"`
	Slope       Slope           `json:"slope"`
}

// Bounds returns the axis-aligned extent of the polygon.
func (p *Profile) Bounds() (min, max Point) {
	if len(p.Polygon) == 0 {
		return Point{}, Point{}
	}
	min, max = p.Polygon[0], p.Polygon[0]
	for _, v := range p.Polygon[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}

// AssembleProfile closes the silhouette: origin, riser-then-tread
// zig-zag up the steps, soffit chain back down, origin again.
// Consecutive duplicate vertices (a zero slab makes the soffit start
// exactly at the top corner) collapse to keep every edge positive
// length.
func AssembleProfile(steps []Step, soffit []Point) []Point {
	poly := make([]Point, 0, 2*len(steps)+len(soffit)+2)
	poly = append(poly, Point{})

	for _, st := range steps {
		poly = appendVertex(poly, st.Start())
		poly = appendVertex(poly, st.End())
	}
	for _, p := range soffit {
		poly = appendVertex(poly, p)
	}

	// Close at the origin exactly, replacing a terminal vertex that
	// already sits within Eps of it.
	if n := len(poly); poly[n-1].ApproxEqual(Point{}) {
		poly[n-1] = Point{}
	} else {
		poly = append(poly, Point{})
	}
	return poly
}

// appendVertex drops vertices that coincide with their predecessor.
func appendVertex(poly []Point, p Point) []Point {
	if n := len(poly); n > 0 && poly[n-1].ApproxEqual(p) {
		return poly
	}
	return append(poly, p)
}
