package squircle

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y, epsilon float64) bool {
	return math.Abs(x-y) <= epsilon
}

func approxEqualPt(p, q Point, epsilon float64) bool {
	return approxEqual(p.X, q.X, epsilon) && approxEqual(p.Y, q.Y, epsilon)
}

// inRect reports whether pt lies in r, allowing for an error of epsilon.
func inRect(r Rect, pt Point, epsilon float64) bool {
	return r.X0-epsilon <= pt.X && pt.X <= r.X1+epsilon &&
		r.Y0-epsilon <= pt.Y && pt.Y <= r.Y1+epsilon
}

type pathCommand struct {
	op   byte
	args []float64
}

// parsePathData splits the output of Squircle.SVG into commands.
func parsePathData(t *testing.T, d string) []pathCommand {
	t.Helper()
	var cmds []pathCommand
	for _, f := range strings.Fields(d) {
		if len(f) == 1 && strings.Contains("MLcaZ", f) {
			cmds = append(cmds, pathCommand{op: f[0]})
			continue
		}
		if len(cmds) == 0 {
			t.Fatalf("number %q before first command in %q", f, d)
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			t.Fatalf("couldn't parse %q: %v", f, err)
		}
		last := &cmds[len(cmds)-1]
		last.args = append(last.args, v)
	}
	return cmds
}

// followPathData moves a pen along the commands and returns the pen's
// position right before every L and Z command, that is, the end points of
// the first three corners and of the last one.
func followPathData(t *testing.T, cmds []pathCommand) []Point {
	t.Helper()
	wantArgs := map[byte]int{'M': 2, 'L': 2, 'c': 6, 'a': 7, 'Z': 0}
	var (
		pen  Point
		ends []Point
	)
	for i, cmd := range cmds {
		if n := wantArgs[cmd.op]; len(cmd.args) != n {
			t.Fatalf("command %d (%c) has %d arguments, want %d", i, cmd.op, len(cmd.args), n)
		}
		switch cmd.op {
		case 'M':
			pen = Pt(cmd.args[0], cmd.args[1])
		case 'L':
			ends = append(ends, pen)
			pen = Pt(cmd.args[0], cmd.args[1])
		case 'c':
			pen = pen.Translate(Vec(cmd.args[4], cmd.args[5]))
		case 'a':
			if cmd.args[0] != cmd.args[1] {
				t.Errorf("arc %d has radii %v and %v, want them equal", i, cmd.args[0], cmd.args[1])
			}
			if rot, large, sweep := cmd.args[2], cmd.args[3], cmd.args[4]; rot != 0 || large != 0 || sweep != 1 {
				t.Errorf("arc %d has rotation %v, flags %v %v, want 0, 0 1", i, rot, large, sweep)
			}
			pen = pen.Translate(Vec(cmd.args[5], cmd.args[6]))
		case 'Z':
			ends = append(ends, pen)
		}
	}
	return ends
}

// svgCubics converts the relative c commands of the output of Squircle.SVG
// to absolute cubic Béziers.
func svgCubics(t *testing.T, cmds []pathCommand) []PathElement {
	t.Helper()
	var (
		pen    Point
		cubics []PathElement
	)
	for _, cmd := range cmds {
		switch cmd.op {
		case 'M', 'L':
			pen = Pt(cmd.args[0], cmd.args[1])
		case 'c':
			el := CubicTo(
				pen.Translate(Vec(cmd.args[0], cmd.args[1])),
				pen.Translate(Vec(cmd.args[2], cmd.args[3])),
				pen.Translate(Vec(cmd.args[4], cmd.args[5])),
			)
			cubics = append(cubics, el)
			pen = el.P2
		case 'a':
			pen = pen.Translate(Vec(cmd.args[5], cmd.args[6]))
		}
	}
	return cubics
}

// cornerCubics returns the first and last cubic of every run of cubics in
// p. For a squircle's outline, these are the Béziers that enter and leave a
// rounded corner; the ones in between approximate its arc.
func cornerCubics(p BezPath) []PathElement {
	var out, run []PathElement
	flush := func() {
		if len(run) > 0 {
			out = append(out, run[0], run[len(run)-1])
		}
		run = nil
	}
	for _, el := range p {
		if el.Kind == CubicToKind {
			run = append(run, el)
		} else {
			flush()
		}
	}
	flush()
	return out
}

// cubicEval evaluates the cubic Bézier p0, p1, p2, p3 at t.
func cubicEval(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Pt(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}
