package svgconv

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benoitkugler/svg2draw/drawing"
)

func parsePathData(t *testing.T, data string) []drawing.Segment {
	t.Helper()
	p := drawing.NewPaintedPath()
	if err := compilePath(p, data); err != nil {
		t.Fatalf("compilePath(%q): %s", data, err)
	}
	return p.Segments
}

func assertSegments(t *testing.T, data string, want []drawing.Segment) {
	t.Helper()
	if diff := cmp.Diff(want, parsePathData(t, data)); diff != "" {
		t.Fatalf("path %q: %s", data, diff)
	}
}

func TestPathCommands(t *testing.T) {
	assertSegments(t, "M1 2L3 4H5V6Z", []drawing.Segment{
		drawing.MoveTo{X: 1, Y: 2},
		drawing.LineTo{X: 3, Y: 4},
		drawing.HLineTo{X: 5},
		drawing.VLineTo{Y: 6},
		drawing.Close{},
	})

	assertSegments(t, "M0 0C0 10 10 10 10 0S30 -10 20 0", []drawing.Segment{
		drawing.MoveTo{},
		drawing.CubicTo{
			Control1: drawing.Point{X: 0, Y: 10},
			Control2: drawing.Point{X: 10, Y: 10},
			End:      drawing.Point{X: 10, Y: 0},
		},
		drawing.SmoothCubicTo{
			Control2: drawing.Point{X: 30, Y: -10},
			End:      drawing.Point{X: 20, Y: 0},
		},
	})

	assertSegments(t, "M0 0Q5 10 10 0T20 0", []drawing.Segment{
		drawing.MoveTo{},
		drawing.QuadTo{Control: drawing.Point{X: 5, Y: 10}, End: drawing.Point{X: 10, Y: 0}},
		drawing.SmoothQuadTo{End: drawing.Point{X: 20, Y: 0}},
	})
}

func TestRelativeCommands(t *testing.T) {
	assertSegments(t, "m1 1l2 0v3h-2z", []drawing.Segment{
		drawing.MoveTo{X: 1, Y: 1},
		drawing.LineTo{X: 3, Y: 1},
		drawing.VLineTo{Y: 4},
		drawing.HLineTo{X: 1},
		drawing.Close{},
	})
}

func TestImplicitRepetition(t *testing.T) {
	// a moveto repeats as a lineto
	assertSegments(t, "M0 0 10 10 20 20", []drawing.Segment{
		drawing.MoveTo{},
		drawing.LineTo{X: 10, Y: 10},
		drawing.LineTo{X: 20, Y: 20},
	})
	assertSegments(t, "m1 1 1 1", []drawing.Segment{
		drawing.MoveTo{X: 1, Y: 1},
		drawing.LineTo{X: 2, Y: 2},
	})
}

func TestCompactNumbers(t *testing.T) {
	assertSegments(t, "M1.5.5L-1-2", []drawing.Segment{
		drawing.MoveTo{X: 1.5, Y: 0.5},
		drawing.LineTo{X: -1, Y: -2},
	})
	assertSegments(t, "M1e1 2E-1", []drawing.Segment{
		drawing.MoveTo{X: 10, Y: 0.2},
	})
}

func TestArcCommand(t *testing.T) {
	// the two flags may abut the following coordinates
	assertSegments(t, "M0 0a5 5 0 013 3", []drawing.Segment{
		drawing.MoveTo{},
		drawing.ArcTo{Rx: 5, Ry: 5, PositiveSweep: true, End: drawing.Point{X: 3, Y: 3}},
	})
	assertSegments(t, "M0 0A5 4 30 1 0 3 3", []drawing.Segment{
		drawing.MoveTo{},
		drawing.ArcTo{Rx: 5, Ry: 4, Rotation: 30, LargeArc: true, End: drawing.Point{X: 3, Y: 3}},
	})
}

func TestPathErrors(t *testing.T) {
	// missing moveto, truncated arguments, unknown command, numbers after
	// a closepath, invalid arc flag, malformed exponent
	for _, data := range []string{
		"L10 10",
		"M0 0Q1",
		"M0 0X1 1",
		"M0 0Z5",
		"M0 0A5 5 0 2 0 1 1",
		"M1e 2",
	} {
		err := compilePath(drawing.NewPaintedPath(), data)
		var format FormatError
		if !errors.As(err, &format) {
			t.Fatalf("compilePath(%q) should fail with a format error, got %v", data, err)
		}
	}
}

func TestLeadingMoveto(t *testing.T) {
	// any explicit opening command other than a moveto is rejected
	for _, data := range []string{
		"L10 10",
		"C0 10 10 10 10 0",
		"H5",
		"Z",
		"10 10",
	} {
		err := compilePath(drawing.NewPaintedPath(), data)
		if err == nil || !strings.Contains(err.Error(), "moveto") {
			t.Fatalf("compilePath(%q) should require a leading moveto, got %v", data, err)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	err := compilePath(drawing.NewPaintedPath(), "M0 0X1 1")
	if err == nil || !strings.Contains(err.Error(), "unknown path command") {
		t.Fatalf("expected an unknown command diagnostic, got %v", err)
	}
}
