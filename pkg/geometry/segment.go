package geometry

// SegmentKind distinguishes the two run types a staircase is made of.
// It is a closed enum; kind-dependent geometry lives in a single
// switch (see soffitLineFor).
type SegmentKind int

const (
	// KindFlight is a run of regular steps sharing one incline.
	KindFlight SegmentKind = iota
	// KindLanding is a flat platform run.
	KindLanding
)

// String implements fmt.Stringer.
func (k SegmentKind) String() string {
	switch k {
	case KindFlight:
		return "flight"
	case KindLanding:
		return "landing"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so kinds serialize as
// their names.
func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is a maximal run of consecutive steps of one kind.
//
// Start is the start corner of the segment's first step. End is the
// start corner of the step that ended the segment (the shared nosing:
// the next segment begins at the same point), except for the final
// segment, whose End is the last step's end-of-run corner.
type Segment struct {
	Kind      SegmentKind `json:"kind"`
	FirstStep int         `json:"first_step"`
	LastStep  int         `json:"last_step"`
	Start     Point       `json:"start"`
	End       Point       `json:"end"`
}

// Steps returns the number of steps the segment spans.
func (s Segment) Steps() int {
	return s.LastStep - s.FirstStep + 1
}

// Partition splits the step sequence into alternating flight and
// landing segments in one scan. Adjacent segments share the split
// step's start corner.
func Partition(steps []Step) []Segment {
	if len(steps) == 0 {
		return nil
	}

	segs := make([]Segment, 0, 2)
	cur := openSegment(steps[0])

	for _, st := range steps[1:] {
		if kindOf(st) == cur.Kind {
			continue
		}
		cur.LastStep = st.Index - 1
		cur.End = st.Start()
		segs = append(segs, cur)
		cur = openSegment(st)
	}

	last := steps[len(steps)-1]
	cur.LastStep = last.Index
	cur.End = last.End()
	return append(segs, cur)
}

func openSegment(st Step) Segment {
	return Segment{
		Kind:      kindOf(st),
		FirstStep: st.Index,
		Start:     st.Start(),
	}
}

func kindOf(st Step) SegmentKind {
	if st.IsLanding {
		return KindLanding
	}
	return KindFlight
}
