package svgconv

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benoitkugler/svg2draw/drawing"
)

func buildShapePath(t *testing.T, tag string, attrs map[string]string) *drawing.PaintedPath {
	t.Helper()
	p := drawing.NewPaintedPath()
	if err := shapeBuilders[tag](p, &node{tag: tag, attrs: attrs}); err != nil {
		t.Fatalf("<%s> %v: %s", tag, attrs, err)
	}
	return p
}

func TestRect(t *testing.T) {
	p := buildShapePath(t, "rect", map[string]string{"width": "10", "height": "5"})
	want := []drawing.Segment{
		drawing.MoveTo{},
		drawing.HLineTo{X: 10},
		drawing.VLineTo{Y: 5},
		drawing.HLineTo{X: 0},
		drawing.Close{},
	}
	if diff := cmp.Diff(want, p.Segments); diff != "" {
		t.Fatal(diff)
	}

	// a zero dimension yields an empty path, not an error
	p = buildShapePath(t, "rect", map[string]string{"width": "0", "height": "5"})
	if !p.IsEmpty() {
		t.Fatal("a zero width rect is empty")
	}
}

func TestRectRadii(t *testing.T) {
	// a single radius mirrors on the other axis
	p := buildShapePath(t, "rect", map[string]string{
		"width": "20", "height": "20", "rx": "2",
	})
	if p.Segments[0] != (drawing.MoveTo{X: 2}) {
		t.Fatalf("expected the outline to start after the corner, got %v", p.Segments[0])
	}
	arc, ok := p.Segments[2].(drawing.ArcTo)
	if !ok || arc.Rx != 2 || arc.Ry != 2 {
		t.Fatalf("unexpected corner %v", p.Segments[2])
	}

	// radii are clamped to half the dimensions
	p = buildShapePath(t, "rect", map[string]string{
		"width": "10", "height": "20", "rx": "8", "ry": "30",
	})
	arc = p.Segments[2].(drawing.ArcTo)
	if arc.Rx != 5 || arc.Ry != 10 {
		t.Fatalf("radii should be clamped, got %v", arc)
	}

	// "none" is an explicit zero, not a parse error
	p = buildShapePath(t, "rect", map[string]string{
		"width": "4", "height": "4", "rx": "none",
	})
	if p.Segments[0] != (drawing.MoveTo{}) || len(p.Segments) != 5 {
		t.Fatalf("rx=none should yield a plain rectangle, got %v", p.Segments)
	}
	p = buildShapePath(t, "rect", map[string]string{
		"width": "4", "height": "4", "rx": "none", "ry": "2",
	})
	if p.Segments[0] != (drawing.MoveTo{}) {
		t.Fatalf("a zero rx disables rounding, got %v", p.Segments)
	}
}

func TestShapeErrors(t *testing.T) {
	for _, test := range []struct {
		tag   string
		attrs map[string]string
	}{
		{"rect", map[string]string{"height": "5"}},
		{"rect", map[string]string{"width": "-1", "height": "5"}},
		{"rect", map[string]string{"width": "4", "height": "4", "rx": "-1"}},
		{"circle", map[string]string{"cx": "1"}},
		{"circle", map[string]string{"r": "-2"}},
		{"ellipse", map[string]string{"rx": "-1"}},
		{"polygon", map[string]string{"points": "0,0 10"}},
	} {
		err := shapeBuilders[test.tag](drawing.NewPaintedPath(), &node{tag: test.tag, attrs: test.attrs})
		if err == nil {
			t.Fatalf("<%s> %v should fail", test.tag, test.attrs)
		}
	}
}

func TestCircleEllipse(t *testing.T) {
	p := buildShapePath(t, "circle", map[string]string{"cx": "5", "cy": "5", "r": "3"})
	if p.Segments[0] != (drawing.MoveTo{X: 8, Y: 5}) {
		t.Fatalf("unexpected start %v", p.Segments[0])
	}

	// ry mirrors rx
	p = buildShapePath(t, "ellipse", map[string]string{"cx": "1", "rx": "4"})
	if p.Segments[0] != (drawing.MoveTo{X: 5}) {
		t.Fatalf("unexpected start %v", p.Segments[0])
	}

	// no radius at all is the empty shape
	p = buildShapePath(t, "ellipse", map[string]string{"cx": "1"})
	if !p.IsEmpty() {
		t.Fatal("an ellipse without radii is empty")
	}
	p = buildShapePath(t, "circle", map[string]string{"r": "0"})
	if !p.IsEmpty() {
		t.Fatal("a zero radius circle is empty")
	}
}

func TestLinePolyline(t *testing.T) {
	p := buildShapePath(t, "line", map[string]string{"x1": "1", "y1": "2", "x2": "3", "y2": "4"})
	want := []drawing.Segment{
		drawing.MoveTo{X: 1, Y: 2},
		drawing.LineTo{X: 3, Y: 4},
	}
	if diff := cmp.Diff(want, p.Segments); diff != "" {
		t.Fatal(diff)
	}

	p = buildShapePath(t, "polyline", map[string]string{"points": "0,0 10,0 10,10"})
	want = []drawing.Segment{
		drawing.MoveTo{},
		drawing.LineTo{X: 10},
		drawing.LineTo{X: 10, Y: 10},
	}
	if diff := cmp.Diff(want, p.Segments); diff != "" {
		t.Fatal(diff)
	}

	p = buildShapePath(t, "polygon", map[string]string{"points": "0,0 10,0 10,10"})
	if p.Segments[len(p.Segments)-1] != (drawing.Close{}) {
		t.Fatal("a polygon closes its outline")
	}
}
