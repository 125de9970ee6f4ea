// Package squircle computes the outlines of squircles: rectangles whose
// corners are rounded with a smoothed profile instead of a plain circular
// fillet.
//
// Each corner is drawn as a cubic Bézier, a circular arc, and a second cubic
// Bézier. The Béziers make the curvature grow gradually from zero along the
// straight sides to 1/radius on the arc, which approximates a superellipse
// and avoids the visible "kink" of an ordinary rounded rectangle. The
// construction follows [Desperately seeking squircles].
//
// # Parameters
//
// A squircle is described by [Params]: a width and height, a shared corner
// radius, optional per-corner radii that override it, a corner smoothing
// factor, and a flag that selects how smoothing is preserved when a corner
// runs out of space. Use [NewParams] to get the documented defaults, then
// refine them with the With… methods:
//
//	p := squircle.NewParams().
//		WithSize(120).
//		WithCornerRadius(32).
//		WithCornerSmoothing(0.6)
//	d := squircle.SVGPath(p)
//
// # Corner budgets
//
// A corner's curve extends further along the sides than its radius: with
// smoothing s, a corner of radius r occupies (1+s)·r of both adjacent sides.
// When the requested corners don't fit, the available length of every side
// has to be shared between the two corners on it. [Distribute] computes that
// share, the corner's budget, by visiting corners from the largest radius to
// the smallest and splitting contested sides in proportion to the radii. A
// radius larger than its budget is clamped to it.
//
// [SolveCorner] then turns a radius, a smoothing factor, and a budget into
// the seven numbers ([CornerPathParams]) that describe one corner's curve.
// If the curve doesn't fit the budget, either the smoothing is reduced until
// it does, or, with preserve smoothing enabled, the smoothing is kept and the
// Bézier segments are compressed instead.
//
// # Output
//
// [Squircle.SVG] formats the outline in SVG path data syntax, using relative
// Bézier and arc commands with four fractional digits. The same outline is
// available as absolute path elements ([Squircle.PathElements]), with arcs
// approximated by cubic Béziers, and as a [seehuhn.de/go/geom/path.Path]
// ([Squircle.GeomPath]) for use with PDF-model graphics code.
//
// The outline starts at the top edge, next to the top right corner, and runs
// clockwise in a y-down coordinate system. The rectangle's top left corner is
// at the origin.
//
// # Invalid input
//
// None of the computations validate their input. Negative radii, smoothing
// factors outside [0, 1], and non-positive sizes produce numerically
// meaningless but well-defined output. Use [Params.Validate] to reject such
// input explicitly.
//
// [Desperately seeking squircles]: https://www.figma.com/blog/desperately-seeking-squircles/
package squircle
