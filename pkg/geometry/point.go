package geometry

import "math"

// Eps is the tolerance for coordinate comparisons. Profile coordinates
// are products of a handful of float operations, so anything closer
// than this is the same point.
const Eps = 1e-9

// Point is a 2D point or vector in the profile plane: X along the
// stair run, Y vertical. Units follow the spec (centimeters by
// convention).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// ApproxEqual reports whether two points coincide within Eps.
func (p Point) ApproxEqual(q Point) bool {
	return math.Abs(p.X-q.X) < Eps && math.Abs(p.Y-q.Y) < Eps
}

// Point3 is a 3D point: X and Y as in Point, Z along the extrusion
// (width) axis. The profile itself lives at Z = 0.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Pt3 is a convenience function to create a Point3.
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// InPlane reports whether the point lies in the profile plane.
func (p Point3) InPlane() bool {
	return math.Abs(p.Z) < Eps
}

// XY projects the point onto the profile plane.
func (p Point3) XY() Point {
	return Point{X: p.X, Y: p.Y}
}
