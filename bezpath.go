package squircle

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// MoveToKind starts a new subpath at P0.
	MoveToKind PathElementKind = iota + 1
	// LineToKind draws a straight line to P0.
	LineToKind
	// CubicToKind draws a cubic Bézier with control points P0 and P1,
	// ending at P2.
	CubicToKind
	// ClosePathKind draws a straight line back to the start of the subpath.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
}

// PathElement is one command of a [BezPath]. Only as many points as the
// kind needs are meaningful; the rest are zero.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }
func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }
func ClosePath() PathElement      { return PathElement{Kind: ClosePathKind} }

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s(%s)", el.Kind, el.P0)
	case ClosePathKind:
		return el.Kind.String()
	default:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
	}
}

// points returns the element's meaningful points.
func (el PathElement) points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return []Point{el.P0}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

// Translate returns the element moved by v.
func (el PathElement) Translate(v Vec2) PathElement {
	out := PathElement{Kind: el.Kind}
	dst := []*Point{&out.P0, &out.P1, &out.P2}
	for i, pt := range el.points() {
		*dst[i] = pt.Translate(v)
	}
	return out
}

// EndPoint returns the point the element moves the pen to. It returns false
// for ClosePath, whose end point depends on the preceding elements.
func (el PathElement) EndPoint() (Point, bool) {
	pts := el.points()
	if len(pts) == 0 {
		return Point{}, false
	}
	return pts[len(pts)-1], true
}

func (el PathElement) IsNaN() bool {
	return slices.ContainsFunc(el.points(), Point.IsNaN)
}

// BezPath is a sequence of path elements. Each subpath begins with a
// MoveTo.
type BezPath []PathElement

// PathElements implements [Shape]. BezPath is already made of Bézier
// segments, so tolerance is ignored.
func (p BezPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return p.Elements()
}

func (p BezPath) Path(tolerance float64) BezPath {
	return p
}

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Translate returns a copy of the path, moved by v.
func (p BezPath) Translate(v Vec2) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Translate(v)
	}
	return out
}

func (p *BezPath) Push(el PathElement) { *p = append(*p, el) }

func (p *BezPath) MoveTo(pt Point)          { p.Push(MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point)          { p.Push(LineTo(pt)) }
func (p *BezPath) CubicTo(p0, p1, p2 Point) { p.Push(CubicTo(p0, p1, p2)) }
func (p *BezPath) ClosePath()               { p.Push(ClosePath()) }

// SignedArea returns the area enclosed by the path, computed with Green's
// theorem. Open subpaths count as closed.
//
// The area is positive for paths that run clockwise in a y-down coordinate
// system, such as the outline of a [Squircle].
func (p BezPath) SignedArea() float64 {
	var (
		area        float64
		start, last Point
	)
	closeSubpath := func() {
		area += lineSignedArea(last, start)
		last = start
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			closeSubpath()
			start, last = el.P0, el.P0
		case LineToKind:
			area += lineSignedArea(last, el.P0)
			last = el.P0
		case CubicToKind:
			area += cubicSignedArea(last, el.P0, el.P1, el.P2)
			last = el.P2
		case ClosePathKind:
			closeSubpath()
		}
	}
	closeSubpath()
	return area
}

func lineSignedArea(p0, p1 Point) float64 {
	return (p0.X*p1.Y - p0.Y*p1.X) / 2
}

// cubicSignedArea is the integral of x dy − y dx over the cubic Bézier,
// halved.
func cubicSignedArea(p0, p1, p2, p3 Point) float64 {
	v := p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*(p1.X*(-2*p0.Y+p2.Y+p3.Y)-p2.X*(p0.Y+p1.Y-2*p3.Y)) -
		p3.X*(p0.Y+3*p1.Y+6*p2.Y)
	return v / 20
}

// BoundingBox implements [Shape] by returning the control box.
func (p BezPath) BoundingBox() Rect {
	return p.ControlBox()
}

// ControlBox returns the bounding box of all of the path's points, including
// Bézier control points. It encloses the path, but may be larger than
// necessary.
func (p BezPath) ControlBox() Rect {
	var (
		box   Rect
		empty = true
	)
	for _, el := range p {
		for _, pt := range el.points() {
			if empty {
				box, empty = NewRectFromPoints(pt, pt), false
			} else {
				box = box.UnionPoint(pt)
			}
		}
	}
	return box
}

// SVG converts the path to SVG path data with absolute coordinates.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
