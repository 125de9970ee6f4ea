package squircle

import (
	"iter"
	"math"
	"slices"
)

// Arc is a circular arc, described by its center, radius, start angle, and
// signed sweep angle. Angles are in radians; positive sweeps run clockwise in
// a y-down coordinate system.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// ArcFromEndpoints converts the endpoint parameterization of a circular arc,
// as used by the SVG "a" command with equal radii and no rotation, to an
// [Arc]. See section B.2.4 of the SVG 2 specification.
//
// A radius too small to reach from p0 to p1 is scaled up as SVG requires. It
// returns false if the arc is degenerate: if p0 and p1 coincide, no arc is
// drawn, and if radius is 0, the arc is a straight line.
func ArcFromEndpoints(p0, p1 Point, radius float64, largeArc, sweep bool) (Arc, bool) {
	if p0 == p1 || radius == 0 {
		return Arc{}, false
	}
	radius = math.Abs(radius)

	// Work in a coordinate system centered on the chord's midpoint.
	half := p0.Sub(p1).Mul(0.5)
	halfChord := half.Hypot()
	radius = max(radius, halfChord)

	radicand := max(radius*radius-halfChord*halfChord, 0)
	coef := math.Sqrt(radicand) / halfChord
	if largeArc == sweep {
		coef = -coef
	}
	centerOffset := Vec(coef*half.Y, -coef*half.X)
	center := p0.Midpoint(p1).Translate(centerOffset)

	u := half.Sub(centerOffset).Mul(1 / radius)
	v := half.Negate().Sub(centerOffset).Mul(1 / radius)
	sweepAngle := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	} else if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: u.Angle(),
		SweepAngle: sweepAngle,
	}, true
}

// Start returns the point at which the arc begins.
func (a Arc) Start() Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle).Mul(a.Radius))
}

// End returns the point at which the arc ends.
func (a Arc) End() Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle + a.SweepAngle).Mul(a.Radius))
}

// PathElements implements [Shape]. The arc is approximated by cubic Béziers,
// using as many as needed to stay within tolerance, and at least one per
// quarter turn.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(a.Start())) {
			return
		}
		for el := range a.cubics(tolerance) {
			if !yield(el) {
				return
			}
		}
	}
}

// cubics returns the "cubic to" elements that approximate the arc, without
// the initial "move to".
func (a Arc) cubics(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		// Number of subdivisions per circle based on error tolerance, but
		// at least one per quadrant. Note: this may slightly underestimate
		// the error for quadrants.
		nError := 3.999_999
		if tolerance > 0 {
			nError = max(math.Pow(1.1163*a.Radius/tolerance, 1.0/6.0), nError)
		}
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			return
		}
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := a.sample(angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(a.sample(angle0 + math.Pi/2).Mul(armLen))
			p3 := a.sample(angle1)
			p2 := p3.Sub(a.sample(angle1 + math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

// sample returns the offset from the center of the point at the given angle.
func (a Arc) sample(angle float64) Vec2 {
	return VecFromAngle(angle).Mul(a.Radius)
}

func (a Arc) Path(tolerance float64) BezPath {
	return slices.Collect(a.PathElements(tolerance))
}

// BoundingBox implements [Shape]. It is the control box of the arc's Bézier
// approximation, which encloses the arc.
func (a Arc) BoundingBox() Rect {
	return a.Path(0.1).ControlBox()
}
