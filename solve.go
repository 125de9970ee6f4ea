package squircle

import "math"

// CornerPathParams describes the curve of a single corner.
//
// Seen from the corner's first side, the curve consists of a cubic Bézier
// that starts P away from the corner, a circular arc of radius Radius whose
// chord spans ArcSectionLength in both directions, and a second, mirrored
// cubic Bézier that ends P away from the corner on the second side.
//
// A, B, C, and D are the distances between the Bézier control points as
// labeled in figure 11.1 of the article referenced in the package
// documentation. Measured along the first side, the first Bézier's control
// points lie at A and A+B, and its end point at A+B+C, D away from the side.
type CornerPathParams struct {
	A, B, C, D       float64
	P                float64
	Radius           float64
	ArcSectionLength float64
}

// Extent returns the distance along each side that the curve covers,
// computed from the individual segments. For well-formed input it equals P.
func (cp CornerPathParams) Extent() float64 {
	return cp.A + cp.B + cp.C + cp.D + cp.ArcSectionLength
}

// SolveCorner computes the curve of a corner with the given radius and
// smoothing whose curve may extend at most budget along each side.
//
// Without smoothing, the corner is a quarter circle. Smoothing s ∈ [0, 1]
// replaces 90°·s of the arc with Bézier segments, making the curve extend
// (1+s)·radius along each side. If that is more than the budget allows, the
// behavior depends on preserveSmoothing. When false, the smoothing is reduced
// until the curve fits, so that beyond a certain point, increasing the
// smoothing has no effect. When true, the requested smoothing is used as is
// and the Bézier segments are shortened to fit the budget, at the cost of a
// somewhat different curvature profile.
//
// The radius must not exceed the budget; [Distribute] takes care of that. A
// radius of zero produces a degenerate curve that [Squircle.SVG] omits.
// Inputs are not validated; negative values produce meaningless results.
func SolveCorner(radius, smoothing float64, preserveSmoothing bool, budget float64) CornerPathParams {
	// Figure 12.2 of the article: p = (1 + smoothing) · q, with q = radius
	// for a 90° corner.
	p := (1 + smoothing) * radius

	if !preserveSmoothing {
		maxSmoothing := budget/radius - 1
		smoothing = minNum(smoothing, maxSmoothing)
		p = minNum(p, budget)
	}

	// The part of the 90° turn that is a true circular arc.
	arcMeasure := 90 * (1 - smoothing)
	arcSectionLength := math.Sin(radians(arcMeasure/2)) * radius * math.Sqrt2

	// Distance between the control points P3 and P4 in the article.
	angleAlpha := (90 - arcMeasure) / 2
	p3ToP4Distance := radius * math.Tan(radians(angleAlpha/2))

	angleBeta := 45 * smoothing
	c := p3ToP4Distance * math.Cos(radians(angleBeta))
	d := c * math.Tan(radians(angleBeta))

	b := (p - arcSectionLength - c - d) / 3
	a := 2 * b

	if preserveSmoothing && p > budget {
		p1ToP3MaxDistance := budget - d - arcSectionLength - c

		// Keep some distance between P1 and P2, or the curve degenerates.
		minA := p1ToP3MaxDistance / 6
		maxB := p1ToP3MaxDistance - minA

		b = minNum(b, maxB)
		a = p1ToP3MaxDistance - b
		p = minNum(p, budget)
	}

	return CornerPathParams{
		A:                a,
		B:                b,
		C:                c,
		D:                d,
		P:                p,
		Radius:           radius,
		ArcSectionLength: arcSectionLength,
	}
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
