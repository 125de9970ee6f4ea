package squircle

import (
	"fmt"
	"io"
	"strings"
)

// SVG returns the outline in SVG path data syntax.
//
// The outline is
//
//	M w−p 0 ‹top right› L w h−p ‹bottom right› L p h ‹bottom left› L 0 p ‹top left› Z
//
// where p is the extent of the respective corner. The coordinates of M and L
// use as few digits as needed. Each corner is a relative cubic Bézier, a
// relative arc, and another relative cubic Bézier, all formatted with four
// fractional digits. A corner with a radius of zero is sharp and contributes
// no commands, but the spaces around it remain: an all-sharp 100×50
// squircle is "M 100 0  L 100 50  L 0 50  L 0 0  Z".
func (sq Squircle) SVG() string {
	var sb strings.Builder
	sq.WriteSVG(&sb)
	return sb.String()
}

// WriteSVG writes the outline in SVG path data syntax to w. See
// [Squircle.SVG] for the format.
func (sq Squircle) WriteSVG(w io.Writer) error {
	tl := sq.Corners[TopLeft]
	tr := sq.Corners[TopRight]
	br := sq.Corners[BottomRight]
	bl := sq.Corners[BottomLeft]
	_, err := fmt.Fprintf(w, "M %s 0 %s L %s %s %s L %s %s %s L 0 %s %s Z",
		formatShortest(sq.Width-tr.P), topRightCommands(tr),
		formatShortest(sq.Width), formatShortest(sq.Height-br.P), bottomRightCommands(br),
		formatShortest(bl.P), formatShortest(sq.Height), bottomLeftCommands(bl),
		formatShortest(tl.P), topLeftCommands(tl),
	)
	return err
}

func topRightCommands(cp CornerPathParams) string {
	if cp.Radius == 0 {
		return ""
	}
	a, b, c, d, r, l := cp.A, cp.B, cp.C, cp.D, cp.Radius, cp.ArcSectionLength
	return fmt.Sprintf(
		"c %.4f 0 %.4f 0 %.4f %.4f a %.4f %.4f 0 0 1 %.4f %.4f c %.4f %.4f %.4f %.4f %.4f %.4f",
		a, a+b, a+b+c, d,
		r, r, l, l,
		d, c,
		d, b+c,
		d, a+b+c,
	)
}

func bottomRightCommands(cp CornerPathParams) string {
	if cp.Radius == 0 {
		return ""
	}
	a, b, c, d, r, l := cp.A, cp.B, cp.C, cp.D, cp.Radius, cp.ArcSectionLength
	return fmt.Sprintf(
		"c 0 %.4f 0 %.4f %.4f %.4f a %.4f %.4f 0 0 1 -%.4f %.4f c %.4f %.4f %.4f %.4f %.4f %.4f",
		a,
		a+b,
		-d, a+b+c,
		r, r, l, l,
		-c, d,
		-(b + c), d,
		-(a + b + c), d,
	)
}

func bottomLeftCommands(cp CornerPathParams) string {
	if cp.Radius == 0 {
		return ""
	}
	a, b, c, d, r, l := cp.A, cp.B, cp.C, cp.D, cp.Radius, cp.ArcSectionLength
	return fmt.Sprintf(
		"c %.4f 0 %.4f 0 %.4f %.4f a %.4f %.4f 0 0 1 -%.4f -%.4f c %.4f %.4f %.4f %.4f %.4f %.4f",
		-a,
		-(a + b),
		-(a + b + c), -d,
		r, r, l, l,
		-d, -c,
		-d, -(b + c),
		-d, -(a + b + c),
	)
}

func topLeftCommands(cp CornerPathParams) string {
	if cp.Radius == 0 {
		return ""
	}
	a, b, c, d, r, l := cp.A, cp.B, cp.C, cp.D, cp.Radius, cp.ArcSectionLength
	return fmt.Sprintf(
		"c 0 %.4f 0 %.4f %.4f %.4f a %.4f %.4f 0 0 1 %.4f -%.4f c %.4f %.4f %.4f %.4f %.4f %.4f",
		-a,
		-(a + b),
		d, -(a + b + c),
		r, r, l, l,
		c, -d,
		b+c, -d,
		a+b+c, -d,
	)
}
