package squircle

import (
	"iter"
	"slices"
)

// Squircle is the computed outline of a squircle whose top left corner is at
// the origin.
type Squircle struct {
	Width   float64
	Height  float64
	Corners [4]CornerPathParams
}

// New computes the squircle described by p.
//
// If all four corners have the same radius, the corners can't compete for
// space: every corner gets half of the shorter side as its budget, and a
// single corner curve is computed and used for all corners. Otherwise, the
// budgets are computed by [Distribute].
func New(p Params) Squircle {
	sq := Squircle{
		Width:  p.Width,
		Height: p.Height,
	}
	radii := p.Radii()

	if r, ok := radii.Uniform(); ok {
		budget := minNum(p.Width, p.Height) / 2
		cp := SolveCorner(minNum(r, budget), p.CornerSmoothing, p.PreserveSmoothing, budget)
		for c := range sq.Corners {
			sq.Corners[c] = cp
		}
		return sq
	}

	for c, nc := range Distribute(radii, p.Width, p.Height) {
		sq.Corners[c] = SolveCorner(nc.Radius, p.CornerSmoothing, p.PreserveSmoothing, nc.Budget)
	}
	return sq
}

// SVGPath returns the outline of the squircle described by p in SVG path
// data syntax. It is shorthand for New(p).SVG().
func SVGPath(p Params) string {
	return New(p).SVG()
}

// Corner returns the curve parameters of corner c.
func (sq Squircle) Corner(c Corner) CornerPathParams {
	return sq.Corners[c]
}

// outline lists the corners in the order in which the outline visits them,
// together with the direction of travel when arriving at the corner and when
// leaving it.
var outline = [4]struct {
	corner  Corner
	in, out Vec2
}{
	{TopRight, Vec(1, 0), Vec(0, 1)},
	{BottomRight, Vec(0, 1), Vec(-1, 0)},
	{BottomLeft, Vec(-1, 0), Vec(0, -1)},
	{TopLeft, Vec(0, -1), Vec(1, 0)},
}

func (sq Squircle) vertex(c Corner) Point {
	switch c {
	case TopLeft:
		return Pt(0, 0)
	case TopRight:
		return Pt(sq.Width, 0)
	case BottomRight:
		return Pt(sq.Width, sq.Height)
	case BottomLeft:
		return Pt(0, sq.Height)
	default:
		panic("unreachable")
	}
}

// cornerStart returns the point at which the curve of corner c begins.
func (sq Squircle) cornerStart(c Corner, in Vec2) Point {
	return sq.vertex(c).Translate(in.Mul(-sq.Corners[c].P))
}

// PathElements implements [Shape]. It returns the same outline as
// [Squircle.SVG], but in absolute coordinates and with every circular arc
// approximated by cubic Béziers. Each arc is at most a quarter turn, so a
// tolerance that isn't positive approximates it with a single cubic.
func (sq Squircle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, f := range outline {
			cp := sq.Corners[f.corner]
			start := sq.cornerStart(f.corner, f.in)
			el := LineTo(start)
			if i == 0 {
				el = MoveTo(start)
			}
			if !yield(el) {
				return
			}
			if cp.Radius == 0 {
				continue
			}
			for el := range cornerElements(start, f.in, f.out, cp, tolerance) {
				if !yield(el) {
					return
				}
			}
		}
		yield(ClosePath())
	}
}

// cornerElements returns the elements of a corner's curve, which starts at
// start, heading in direction in, and ends heading in direction out.
func cornerElements(start Point, in, out Vec2, cp CornerPathParams, tolerance float64) iter.Seq[PathElement] {
	at := func(origin Point, along, across float64) Point {
		return origin.Translate(in.Mul(along).Add(out.Mul(across)))
	}
	a, b, c, d := cp.A, cp.B, cp.C, cp.D

	return func(yield func(PathElement) bool) {
		arcStart := at(start, a+b+c, d)
		if !yield(CubicTo(at(start, a, 0), at(start, a+b, 0), arcStart)) {
			return
		}

		arcEnd := at(arcStart, cp.ArcSectionLength, cp.ArcSectionLength)
		if arc, ok := ArcFromEndpoints(arcStart, arcEnd, cp.Radius, false, true); ok {
			for el := range arc.cubics(tolerance) {
				if !yield(el) {
					return
				}
			}
		} else if arcStart != arcEnd {
			if !yield(LineTo(arcEnd)) {
				return
			}
		}

		yield(CubicTo(at(arcEnd, d, c), at(arcEnd, d, b+c), at(arcEnd, d, a+b+c)))
	}
}

func (sq Squircle) Path(tolerance float64) BezPath {
	return slices.Collect(sq.PathElements(tolerance))
}

// BoundingBox implements [Shape]. The outline touches all four sides of the
// rectangle.
func (sq Squircle) BoundingBox() Rect {
	return NewRectFromPoints(Pt(0, 0), Pt(sq.Width, sq.Height))
}

// Area returns the area enclosed by the outline, computed from its Bézier
// approximation.
func (sq Squircle) Area(tolerance float64) float64 {
	return sq.Path(tolerance).SignedArea()
}
