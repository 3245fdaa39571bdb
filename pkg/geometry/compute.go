// Package geometry derives staircase cross-section profiles from
// parametric specs.
//
// The engine is pure: Compute is a function of its spec argument
// alone, performs no I/O, and equal specs produce deep-equal profiles.
// Callers that want caching or logging wrap it (see pkg/pipeline).
//
// The construction runs in four passes, each visible on the Profile
// for inspection and testing: step placement (BuildSteps), flight and
// landing partitioning (Partition), underside construction
// (BuildSoffit), and assembly plus annotation.
package geometry

import "github.com/staircast/staircast/pkg/spec"

// Compute validates the spec and derives its profile. Validation
// failures return a structured INVALID_SPEC error and no geometry is
// built. Degenerate but valid geometry (a slab thicker than the stair)
// never fails: underside vertices clamp to the floor instead.
func Compute(sp spec.Staircase) (*Profile, error) {
	if err := sp.Validate(); err != nil {
		return nil, err
	}

	steps := BuildSteps(sp)
	riser := sp.RiserHeight()
	sl := NewSlope(riser, sp.StepDepth, sp.SlabThickness)
	segs := Partition(steps)
	soffit := BuildSoffit(segs, sl, riser, sp.StepDepth, sp.SlabThickness)

	last := steps[len(steps)-1]
	totalRun, totalRise := last.EndX(), last.StartY

	return &Profile{
		Polygon:     AssembleProfile(steps, soffit),
		Annotations: Annotate(sp, steps, segs, sl, totalRun, totalRise),
		Steps:       steps,
		Segments:    segs,
		Soffit:      soffit,
		RiserHeight: riser,
		StepDepth:   sp.StepDepth,
		TotalRun:    totalRun,
		TotalRise:   totalRise,
		Slope:       sl,
	}, nil
}
