package squircle

import (
	"fmt"
)

// Corner identifies one of the four corners of a rectangle.
//
// The numeric order of the corners is significant: it breaks ties between
// equal radii in [Distribute].
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Corners lists all corners in their numeric order.
var Corners = [4]Corner{TopLeft, TopRight, BottomLeft, BottomRight}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// Side identifies one of the four sides of a rectangle.
type Side int

const (
	Top Side = iota
	Left
	Bottom
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Left:
		return "Left"
	case Bottom:
		return "Bottom"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Length returns the length of the side in a rectangle of the given size.
func (s Side) Length(width, height float64) float64 {
	if s == Top || s == Bottom {
		return width
	}
	return height
}

type adjacency struct {
	corner Corner
	side   Side
}

// adjacents maps every corner to its two neighbors and the side it shares
// with each of them. The corners form a cycle of length four.
var adjacents = [4][2]adjacency{
	TopLeft: {
		{TopRight, Top},
		{BottomLeft, Left},
	},
	TopRight: {
		{TopLeft, Top},
		{BottomRight, Right},
	},
	BottomLeft: {
		{BottomRight, Bottom},
		{TopLeft, Left},
	},
	BottomRight: {
		{BottomLeft, Bottom},
		{TopRight, Right},
	},
}

// Adjacent returns the two corners that share a side with c.
func (c Corner) Adjacent() [2]Corner {
	adj := adjacents[c]
	return [2]Corner{adj[0].corner, adj[1].corner}
}

// SharedSide returns the side that c and o have in common. It returns false
// if the corners are diagonally opposite or identical.
func (c Corner) SharedSide(o Corner) (Side, bool) {
	for _, adj := range adjacents[c] {
		if adj.corner == o {
			return adj.side, true
		}
	}
	return 0, false
}

// Radii holds one radius per corner.
type Radii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadii returns radii with the same value for all corners.
func UniformRadii(r float64) Radii {
	return Radii{r, r, r, r}
}

// Get returns the radius of corner c.
func (r Radii) Get(c Corner) float64 {
	switch c {
	case TopLeft:
		return r.TopLeft
	case TopRight:
		return r.TopRight
	case BottomLeft:
		return r.BottomLeft
	case BottomRight:
		return r.BottomRight
	default:
		panic(fmt.Sprintf("invalid corner %d", int(c)))
	}
}

// Uniform reports whether all four radii are exactly equal, and if so,
// returns that radius. NaN radii are never uniform.
func (r Radii) Uniform() (float64, bool) {
	if r.TopLeft == r.TopRight &&
		r.TopRight == r.BottomRight &&
		r.BottomRight == r.BottomLeft &&
		r.BottomLeft == r.TopLeft {
		return r.TopLeft, true
	}
	return 0, false
}

