package geometry

import (
	"testing"

	"github.com/staircast/staircast/pkg/spec"
)

func TestPartitionStraight(t *testing.T) {
	segs := Partition(BuildSteps(straightSpec()))

	if len(segs) != 1 {
		t.Fatalf("len(segs) = %d, want 1", len(segs))
	}

	seg := segs[0]
	if seg.Kind != KindFlight || seg.FirstStep != 1 || seg.LastStep != 14 {
		t.Errorf("seg = %+v, want flight 1-14", seg)
	}
	if seg.Start != Pt(0, 20) {
		t.Errorf("seg.Start = %v, want (0, 20)", seg.Start)
	}
	if seg.End != Pt(350, 280) {
		t.Errorf("seg.End = %v, want (350, 280)", seg.End)
	}
}

func TestPartitionMidLanding(t *testing.T) {
	segs := Partition(BuildSteps(landingSpec()))

	if len(segs) != 3 {
		t.Fatalf("len(segs) = %d, want 3", len(segs))
	}

	tests := []struct {
		kind        SegmentKind
		first, last int
		start, end  Point
	}{
		{KindFlight, 1, 4, Pt(0, 28), Pt(100, 140)},
		{KindLanding, 5, 5, Pt(100, 140), Pt(200, 168)},
		{KindFlight, 6, 10, Pt(200, 168), Pt(325, 280)},
	}

	for i, tt := range tests {
		seg := segs[i]
		if seg.Kind != tt.kind || seg.FirstStep != tt.first || seg.LastStep != tt.last {
			t.Errorf("segs[%d] = %s %d-%d, want %s %d-%d",
				i, seg.Kind, seg.FirstStep, seg.LastStep, tt.kind, tt.first, tt.last)
		}
		if seg.Start != tt.start || seg.End != tt.end {
			t.Errorf("segs[%d] span = %v -> %v, want %v -> %v",
				i, seg.Start, seg.End, tt.start, tt.end)
		}
	}
}

func TestPartitionSharedCorners(t *testing.T) {
	segs := Partition(BuildSteps(landingSpec()))

	for i := 1; i < len(segs); i++ {
		if segs[i].Start != segs[i-1].End {
			t.Errorf("segs[%d].Start = %v, segs[%d].End = %v, want shared corner",
				i, segs[i].Start, i-1, segs[i-1].End)
		}
	}
}

func TestPartitionAlternates(t *testing.T) {
	s := straightSpec()
	s.Landings = []spec.Landing{
		{StepIndex: 4, Depth: 90},
		{StepIndex: 9, Depth: 110},
	}

	segs := Partition(BuildSteps(s))
	if len(segs) != 5 {
		t.Fatalf("len(segs) = %d, want 5", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Kind == segs[i-1].Kind {
			t.Errorf("segs[%d] and segs[%d] share kind %s", i-1, i, segs[i].Kind)
		}
	}
}

func TestPartitionConsecutiveLandings(t *testing.T) {
	s := straightSpec()
	s.Landings = []spec.Landing{
		{StepIndex: 5, Depth: 90},
		{StepIndex: 6, Depth: 90},
	}

	segs := Partition(BuildSteps(s))
	if len(segs) != 3 {
		t.Fatalf("len(segs) = %d, want 3", len(segs))
	}
	mid := segs[1]
	if mid.Kind != KindLanding || mid.FirstStep != 5 || mid.LastStep != 6 {
		t.Errorf("segs[1] = %+v, want landing 5-6", mid)
	}
	if mid.Steps() != 2 {
		t.Errorf("Steps() = %d, want 2", mid.Steps())
	}
}

func TestPartitionLandingOnFirstStep(t *testing.T) {
	s := straightSpec()
	s.Landings = []spec.Landing{{StepIndex: 1, Depth: 80}}

	segs := Partition(BuildSteps(s))
	if len(segs) != 2 {
		t.Fatalf("len(segs) = %d, want 2", len(segs))
	}
	if segs[0].Kind != KindLanding || segs[0].LastStep != 1 {
		t.Errorf("segs[0] = %+v, want landing 1-1", segs[0])
	}
	if segs[1].Kind != KindFlight || segs[1].FirstStep != 2 {
		t.Errorf("segs[1] = %+v, want flight starting at 2", segs[1])
	}
}

func TestPartitionLandingOnLastStep(t *testing.T) {
	s := straightSpec()
	s.NumSteps = 10
	s.Landings = []spec.Landing{{StepIndex: 10, Depth: 100}}

	segs := Partition(BuildSteps(s))
	if len(segs) != 2 {
		t.Fatalf("len(segs) = %d, want 2", len(segs))
	}
	last := segs[1]
	if last.Kind != KindLanding || last.FirstStep != 10 || last.LastStep != 10 {
		t.Errorf("segs[1] = %+v, want landing 10-10", last)
	}
	// The final segment ends at the end of the landing run, not at a
	// shared nosing.
	if last.End != Pt(325, 280) {
		t.Errorf("segs[1].End = %v, want (325, 280)", last.End)
	}
}

func TestSegmentKindString(t *testing.T) {
	tests := []struct {
		kind SegmentKind
		want string
	}{
		{KindFlight, "flight"},
		{KindLanding, "landing"},
		{SegmentKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
