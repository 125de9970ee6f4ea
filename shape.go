package squircle

import (
	"io"
	"iter"
	"strconv"
	"strings"
)

// Shape is implemented by everything that can be turned into a Bézier path.
type Shape interface {
	// BoundingBox returns a rectangle that encloses the shape.
	BoundingBox() Rect

	// PathElements returns the shape's outline. Circular arcs can't be
	// represented exactly by Bézier curves; tolerance is the largest
	// acceptable distance between an arc and its approximation. For display
	// purposes, 0.1 device pixels is plenty. A tolerance that isn't positive
	// selects the coarsest approximation, one cubic Bézier per quarter turn.
	PathElements(tolerance float64) iter.Seq[PathElement]

	// Path collects PathElements into a BezPath.
	Path(tolerance float64) BezPath
}

var (
	_ Shape = Squircle{}
	_ Shape = BezPath{}
	_ Shape = Arc{}
)

// SVGOptions controls [SVG] and [WriteSVG].
type SVGOptions struct {
	// MaxPrecision is the maximum number of fractional digits. Trailing
	// zeros are dropped. With 0, every number is formatted with as many
	// digits as needed to represent it exactly.
	MaxPrecision int
}

// SVG is like [WriteSVG] but returns a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	WriteSVG(&sb, seq, opts)
	return sb.String()
}

// WriteSVG writes path elements to w as SVG path data, using absolute M, L,
// C, and Z commands separated by spaces.
//
// Unlike [Squircle.WriteSVG], which describes corners with relative arc
// commands, this writes circular arcs in their Bézier approximation.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var buf []byte
	num := func(n float64) {
		if opts.MaxPrecision <= 0 {
			buf = strconv.AppendFloat(buf, n, 'f', -1, 64)
			return
		}
		start := len(buf)
		buf = strconv.AppendFloat(buf, n, 'f', opts.MaxPrecision, 64)
		trimmed := strings.TrimRight(strings.TrimRight(string(buf[start:]), "0"), ".")
		buf = append(buf[:start], trimmed...)
	}
	pt := func(p Point) {
		num(p.X)
		buf = append(buf, ',')
		num(p.Y)
	}

	for el := range seq {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		switch el.Kind {
		case MoveToKind:
			buf = append(buf, 'M')
			pt(el.P0)
		case LineToKind:
			buf = append(buf, 'L')
			pt(el.P0)
		case CubicToKind:
			buf = append(buf, 'C')
			pt(el.P0)
			buf = append(buf, ' ')
			pt(el.P1)
			buf = append(buf, ' ')
			pt(el.P2)
		case ClosePathKind:
			buf = append(buf, 'Z')
		default:
			panic("unreachable")
		}
	}
	_, err := w.Write(buf)
	return err
}
