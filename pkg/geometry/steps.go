package geometry

import "github.com/staircast/staircast/pkg/spec"

// Step is the resolved placement of one step in the profile plane.
// StartX/StartY locate the nosing corner where the step's riser meets
// its tread: X before the run advances, Y after the riser climbs.
type Step struct {
	Index     int     `json:"index"`
	StartX    float64 `json:"start_x"`
	StartY    float64 `json:"start_y"`
	Run       float64 `json:"run"`
	IsLanding bool    `json:"is_landing,omitempty"`
}

// Start returns the nosing corner as a point.
func (s Step) Start() Point {
	return Point{X: s.StartX, Y: s.StartY}
}

// EndX returns the X coordinate where the step's run ends.
func (s Step) EndX() float64 {
	return s.StartX + s.Run
}

// End returns the far corner of the tread surface.
func (s Step) End() Point {
	return Point{X: s.EndX(), Y: s.StartY}
}

// BuildSteps walks the spec from the origin and places every step.
// Step i climbs one riser then advances its run: the landing depth
// when a landing is attached, the regular step depth otherwise. The
// caller is responsible for validating the spec first.
func BuildSteps(sp spec.Staircase) []Step {
	riser := sp.RiserHeight()
	steps := make([]Step, 0, sp.NumSteps)

	var x, y float64
	for i := 1; i <= sp.NumSteps; i++ {
		y += riser

		run := sp.StepDepth
		landing := false
		if l, ok := sp.LandingAt(i); ok {
			run = l.Depth
			landing = true
		}

		steps = append(steps, Step{
			Index:     i,
			StartX:    x,
			StartY:    y,
			Run:       run,
			IsLanding: landing,
		})
		x += run
	}

	return steps
}
