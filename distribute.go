package squircle

import "slices"

// NormalizedCorner is a corner's radius after its share of the adjacent sides
// has been determined.
type NormalizedCorner struct {
	// Radius is the requested radius, clamped to Budget.
	Radius float64
	// Budget is the distance from the corner along each of its two sides
	// that the corner's curve may occupy without running into the curves of
	// the neighboring corners.
	Budget float64
}

// NormalizedCorners holds one [NormalizedCorner] per corner, indexed by
// [Corner].
type NormalizedCorners [4]NormalizedCorner

// Distribute computes the rounding and smoothing budget of every corner of a
// width×height rectangle and clamps the radii to their budgets.
//
// Corners are processed from the largest to the smallest radius; corners
// with equal radii are processed in the order TopLeft, TopRight, BottomLeft,
// BottomRight. A corner looks at both of its sides. If the neighbor on a side
// has already been processed, the corner may use whatever the neighbor left
// over. Otherwise the side is split in proportion to the two corners' radii.
// A side whose corners both have a radius of zero contributes a budget of
// zero. The corner's budget is the smaller of the two per-side values.
//
// With non-negative inputs, the budgets of the two corners on a side never
// add up to more than the side's length. Negative inputs are not rejected
// and lead to meaningless budgets.
func Distribute(radii Radii, width, height float64) NormalizedCorners {
	var (
		budgets [4]option[float64]
		current [4]float64
	)
	for _, c := range Corners {
		current[c] = radii.Get(c)
	}

	order := Corners
	slices.SortStableFunc(order[:], func(a, b Corner) int {
		// descending
		ra, rb := radii.Get(a), radii.Get(b)
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		default:
			return 0
		}
	})

	for _, c := range order {
		radius := radii.Get(c)
		var budget float64
		for i, o := range c.Adjacent() {
			side, _ := c.SharedSide(o)
			b := sideBudget(
				radius,
				current[o],
				budgets[o],
				side.Length(width, height),
			)
			if i == 0 {
				budget = b
			} else {
				budget = minNum(budget, b)
			}
		}
		budgets[c].set(budget)
		current[c] = minNum(radius, budget)
	}

	var out NormalizedCorners
	for _, c := range Corners {
		out[c] = NormalizedCorner{
			Radius: current[c],
			Budget: budgets[c].unwrap(),
		}
	}
	return out
}

// sideBudget returns how much of a side of length sideLength a corner of the
// given radius may use, given the radius and, if already known, the budget of
// the corner at the other end of the side.
func sideBudget(radius, adjacentRadius float64, adjacentBudget option[float64], sideLength float64) float64 {
	if radius == 0 && adjacentRadius == 0 {
		return 0
	}
	if adjacentBudget.isSet {
		return sideLength - adjacentBudget.value
	}
	return (radius / (radius + adjacentRadius)) * sideLength
}
