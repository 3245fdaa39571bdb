package geometry

import (
	"math"
	"testing"

	"github.com/staircast/staircast/pkg/spec"
)

func straightSpec() spec.Staircase {
	return spec.Staircase{
		TotalHeight:   280,
		Width:         100,
		NumSteps:      14,
		StepDepth:     25,
		SlabThickness: 20,
	}
}

func landingSpec() spec.Staircase {
	s := straightSpec()
	s.NumSteps = 10
	s.Landings = []spec.Landing{{StepIndex: 5, Depth: 100}}
	return s
}

func TestBuildStepsStraight(t *testing.T) {
	steps := BuildSteps(straightSpec())

	if len(steps) != 14 {
		t.Fatalf("len(steps) = %d, want 14", len(steps))
	}

	for i, st := range steps {
		wantX := float64(i) * 25
		wantY := float64(i+1) * 20
		if st.Index != i+1 {
			t.Errorf("steps[%d].Index = %d, want %d", i, st.Index, i+1)
		}
		if st.StartX != wantX || st.StartY != wantY {
			t.Errorf("steps[%d] start = (%g, %g), want (%g, %g)", i, st.StartX, st.StartY, wantX, wantY)
		}
		if st.Run != 25 || st.IsLanding {
			t.Errorf("steps[%d] run = %g landing = %v, want 25 false", i, st.Run, st.IsLanding)
		}
	}

	last := steps[13]
	if last.EndX() != 350 || last.StartY != 280 {
		t.Errorf("final corner = (%g, %g), want (350, 280)", last.EndX(), last.StartY)
	}
}

func TestBuildStepsWithLanding(t *testing.T) {
	steps := BuildSteps(landingSpec())

	if len(steps) != 10 {
		t.Fatalf("len(steps) = %d, want 10", len(steps))
	}

	l := steps[4]
	if !l.IsLanding || l.Run != 100 {
		t.Fatalf("steps[4] = %+v, want landing with run 100", l)
	}
	if l.StartX != 100 || l.StartY != 140 {
		t.Errorf("landing start = (%g, %g), want (100, 140)", l.StartX, l.StartY)
	}

	// The step after the landing starts where the landing run ends.
	next := steps[5]
	if next.StartX != 200 || next.StartY != 168 {
		t.Errorf("steps[5] start = (%g, %g), want (200, 168)", next.StartX, next.StartY)
	}

	if got := steps[9].EndX(); got != 325 {
		t.Errorf("total run = %g, want 325", got)
	}
}

func TestBuildStepsRiserAccumulation(t *testing.T) {
	// An uneven division: the final rise must still land on the
	// accumulated sum, not drift past the height.
	s := straightSpec()
	s.TotalHeight = 300
	s.NumSteps = 7

	steps := BuildSteps(s)
	last := steps[len(steps)-1]
	if math.Abs(last.StartY-300) > 1e-9 {
		t.Errorf("final rise = %v, want 300 within 1e-9", last.StartY)
	}
}
