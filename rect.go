package squircle

// Rect is an axis-aligned rectangle spanning from (X0, Y0) to (X1, Y1). The
// rectangles returned by this package have X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the smallest rectangle that has p0 and p1 as
// corners.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// UnionPoint grows r just enough to include pt. Starting from the empty
// rectangle at some point and adding points one at a time produces their
// bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	r.X0 = min(r.X0, pt.X)
	r.Y0 = min(r.Y0, pt.Y)
	r.X1 = max(r.X1, pt.X)
	r.Y1 = max(r.Y1, pt.Y)
	return r
}
