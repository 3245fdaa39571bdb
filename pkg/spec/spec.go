// Package spec defines the parametric staircase description and its
// validation rules.
//
// A Staircase is the single source of truth for everything downstream:
// the geometry engine derives the profile from it, renderers and mesh
// extrusion consume that profile, and stores persist the Staircase
// value itself. All dimensions are centimeters by convention; the
// engine works in whatever unit the spec uses, so a consistently
// expressed spec in inches works just as well.
package spec

import (
	"slices"

	"github.com/staircast/staircast/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Hard limits for spec fields. These guard against absurd inputs
// (negative dimensions, zero steps), not against bad stair design:
// checking riser/tread comfort against building codes is the caller's
// job, working from the numbers the engine reports.
const (
	// MinSteps is the smallest buildable staircase.
	MinSteps = 1

	// MaxSteps bounds interactive editing surfaces. The engine itself
	// has no upper limit.
	MaxSteps = 200
)

// =============================================================================
// Landing
// =============================================================================

// Landing attaches a flat platform to one step: the step keeps its
// riser but its tread run is replaced by the landing depth.
//
// ID is an opaque identifier used by editing surfaces to address a
// landing in add/update/remove operations. It is assigned on creation
// (a UUID) and ignored by the geometry engine, which keys landings by
// StepIndex alone.
type Landing struct {
	ID        string  `json:"id,omitempty" toml:"id,omitempty" bson:"id,omitempty"`
	StepIndex int     `json:"step_index" toml:"step_index" bson:"step_index"`
	Depth     float64 `json:"depth" toml:"depth" bson:"depth"`
}

// =============================================================================
// Staircase
// =============================================================================

// Staircase is the parametric description of a straight concrete
// staircase. Dimensions are centimeters.
type Staircase struct {
	// TotalHeight is the floor-to-floor rise.
	TotalHeight float64 `json:"total_height" toml:"total_height" bson:"total_height"`

	// Width is the extent along the extrusion axis.
	Width float64 `json:"width" toml:"width" bson:"width"`

	// NumSteps is the number of risers. Each step climbs
	// TotalHeight/NumSteps.
	NumSteps int `json:"num_steps" toml:"num_steps" bson:"num_steps"`

	// StepDepth is the tread run of a regular (non-landing) step.
	StepDepth float64 `json:"step_depth" toml:"step_depth" bson:"step_depth"`

	// SlabThickness is the waist of the flight slab, measured
	// perpendicular to the soffit. Zero is allowed and produces a
	// profile with no underside offset.
	SlabThickness float64 `json:"slab_thickness" toml:"slab_thickness" bson:"slab_thickness"`

	// Landings replace the tread run of the steps they attach to.
	Landings []Landing `json:"landings,omitempty" toml:"landing,omitempty" bson:"landings,omitempty"`
}

// Default returns a plausible starter staircase: fourteen 20 cm risers
// over 25 cm treads, a 100 cm wide flight on an 18 cm slab.
func Default() Staircase {
	return Staircase{
		TotalHeight:   280,
		Width:         100,
		NumSteps:      14,
		StepDepth:     25,
		SlabThickness: 18,
	}
}

// RiserHeight returns the per-step rise. It does not validate; a spec
// with NumSteps == 0 yields +Inf.
func (s Staircase) RiserHeight() float64 {
	return s.TotalHeight / float64(s.NumSteps)
}

// LandingAt returns the landing attached to the given step, if any.
func (s Staircase) LandingAt(stepIndex int) (Landing, bool) {
	for _, l := range s.Landings {
		if l.StepIndex == stepIndex {
			return l, true
		}
	}
	return Landing{}, false
}

// RunAt returns the tread run of the given step: the landing depth
// when the step carries a landing, StepDepth otherwise.
func (s Staircase) RunAt(stepIndex int) float64 {
	if l, ok := s.LandingAt(stepIndex); ok {
		return l.Depth
	}
	return s.StepDepth
}

// TotalRun returns the horizontal extent of the staircase: the sum of
// every step's run.
func (s Staircase) TotalRun() float64 {
	run := float64(s.NumSteps) * s.StepDepth
	for _, l := range s.Landings {
		run += l.Depth - s.StepDepth
	}
	return run
}

// Normalize sorts landings by step index. Editing surfaces append in
// arbitrary order; the engine and the serialized forms want them
// ascending.
func (s *Staircase) Normalize() {
	slices.SortStableFunc(s.Landings, func(a, b Landing) int {
		return a.StepIndex - b.StepIndex
	})
}

// Validate checks the spec against the rules above and returns a
// structured INVALID_SPEC error for the first violation found, in
// declaration order. A valid spec is the precondition for all
// geometry: nothing downstream runs on an invalid one.
func (s Staircase) Validate() error {
	if s.TotalHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "total height must be positive, got %g", s.TotalHeight)
	}
	if s.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "width must be positive, got %g", s.Width)
	}
	if s.NumSteps < MinSteps {
		return errors.New(errors.ErrCodeInvalidSpec, "number of steps must be at least %d, got %d", MinSteps, s.NumSteps)
	}
	if s.StepDepth <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "step depth must be positive, got %g", s.StepDepth)
	}
	if s.SlabThickness < 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "slab thickness cannot be negative, got %g", s.SlabThickness)
	}

	seen := make(map[int]bool, len(s.Landings))
	for _, l := range s.Landings {
		if l.StepIndex < 1 || l.StepIndex > s.NumSteps {
			return errors.New(errors.ErrCodeInvalidSpec,
				"landing step index %d out of range [1, %d]", l.StepIndex, s.NumSteps)
		}
		if seen[l.StepIndex] {
			return errors.New(errors.ErrCodeInvalidSpec,
				"duplicate landing at step index %d", l.StepIndex)
		}
		seen[l.StepIndex] = true
		if l.Depth <= 0 {
			return errors.New(errors.ErrCodeInvalidSpec,
				"landing depth at step %d must be positive, got %g", l.StepIndex, l.Depth)
		}
	}

	return nil
}
