package squircle

import (
	"fmt"
	"math"
)

// Point is a position in a y-down coordinate system, with the top left
// corner of a squircle's rectangle at the origin.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{pt.X + o.X, pt.Y + o.Y}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{pt.X - o.X, pt.Y - o.Y}
}

func (pt Point) Midpoint(o Point) Point {
	return Point{(pt.X + o.X) / 2, (pt.Y + o.Y) / 2}
}

func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Vec2 is a displacement, such as the direction in which an outline travels
// along one of the sides.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecFromAngle returns the unit vector at angle th, in radians. Since y
// points down, increasing angles turn clockwise.
func VecFromAngle(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{cos, sin}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Negate() Vec2       { return Vec2{-v.X, -v.Y} }

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product. It is positive if o
// lies clockwise of v.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of v in radians, as measured by
// [VecFromAngle].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
