package geometry

import (
	"math"
	"reflect"
	"testing"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/spec"
)

func TestComputeStraight(t *testing.T) {
	p := computeFor(t, straightSpec())

	if p.RiserHeight != 20 {
		t.Errorf("RiserHeight = %v, want 20", p.RiserHeight)
	}
	if p.StepDepth != 25 {
		t.Errorf("StepDepth = %v, want 25", p.StepDepth)
	}
	if len(p.Steps) != 14 {
		t.Errorf("len(Steps) = %d, want 14", len(p.Steps))
	}
	if len(p.Segments) != 1 {
		t.Errorf("len(Segments) = %d, want 1", len(p.Segments))
	}
	if got := len(p.Polygon); got != 32 {
		t.Errorf("len(Polygon) = %d, want 32", got)
	}
	if math.Abs(p.Slope.M-0.8) > 1e-12 {
		t.Errorf("Slope.M = %v, want 0.8", p.Slope.M)
	}

	min, max := p.Bounds()
	if min != Pt(0, 0) {
		t.Errorf("Bounds() min = %v, want (0, 0)", min)
	}
	if max != Pt(350, 280) {
		t.Errorf("Bounds() max = %v, want (350, 280)", max)
	}
}

func TestComputeRejectsInvalidSpec(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*spec.Staircase)
	}{
		{"zero steps", func(s *spec.Staircase) { s.NumSteps = 0 }},
		{"negative height", func(s *spec.Staircase) { s.TotalHeight = -1 }},
		{"landing past end", func(s *spec.Staircase) {
			s.Landings = []spec.Landing{{StepIndex: 15, Depth: 100}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := straightSpec()
			tt.mutate(&sp)

			p, err := Compute(sp)
			if err == nil {
				t.Fatal("Compute() error = nil, want invalid spec error")
			}
			if p != nil {
				t.Error("Compute() returned a profile alongside the error")
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidSpec {
				t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidSpec)
			}
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	sp := landingSpec()

	p1 := computeFor(t, sp)
	p2 := computeFor(t, sp)
	if !reflect.DeepEqual(p1, p2) {
		t.Error("repeated Compute() calls disagree")
	}
}

func TestComputeDoesNotMutateSpec(t *testing.T) {
	// Landings deliberately out of order: the engine must not sort the
	// caller's slice in place.
	landings := []spec.Landing{
		{StepIndex: 9, Depth: 110},
		{StepIndex: 4, Depth: 90},
	}
	sp := straightSpec()
	sp.Landings = landings

	p1 := computeFor(t, sp)
	p2 := computeFor(t, sp)
	if !reflect.DeepEqual(p1, p2) {
		t.Error("repeated Compute() calls disagree")
	}

	want := []spec.Landing{
		{StepIndex: 9, Depth: 110},
		{StepIndex: 4, Depth: 90},
	}
	if !reflect.DeepEqual(sp.Landings, want) {
		t.Errorf("Compute() reordered caller's landings: %v", sp.Landings)
	}
}

func TestComputeLandingOrderIrrelevant(t *testing.T) {
	a := straightSpec()
	a.Landings = []spec.Landing{{StepIndex: 4, Depth: 90}, {StepIndex: 9, Depth: 110}}
	b := straightSpec()
	b.Landings = []spec.Landing{{StepIndex: 9, Depth: 110}, {StepIndex: 4, Depth: 90}}

	pa := computeFor(t, a)
	pb := computeFor(t, b)
	if !reflect.DeepEqual(pa.Polygon, pb.Polygon) {
		t.Error("landing declaration order changed the polygon")
	}
	if !reflect.DeepEqual(pa.Annotations, pb.Annotations) {
		t.Error("landing declaration order changed the annotations")
	}
}
