package squircle

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// GeomPath returns the outline as a [path.Path], for use with graphics code
// built on seehuhn.de/go/geom, such as PDF content streams and rasterizers of
// the PDF imaging model. The path is the same as the one returned by
// [Squircle.PathElements].
func (sq Squircle) GeomPath(tolerance float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for el := range sq.PathElements(tolerance) {
			var ok bool
			switch el.Kind {
			case MoveToKind:
				ok = yield(path.CmdMoveTo, []vec.Vec2{geomVec(el.P0)})
			case LineToKind:
				ok = yield(path.CmdLineTo, []vec.Vec2{geomVec(el.P0)})
			case CubicToKind:
				ok = yield(path.CmdCubeTo, []vec.Vec2{geomVec(el.P0), geomVec(el.P1), geomVec(el.P2)})
			case ClosePathKind:
				ok = yield(path.CmdClose, nil)
			default:
				panic("unreachable")
			}
			if !ok {
				return
			}
		}
	}
}

func geomVec(pt Point) vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}
