package svgconv

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/benoitkugler/svg2draw/drawing"
)

func applyTransform(t *testing.T, src string, p drawing.Point) drawing.Point {
	t.Helper()
	m, err := parseTransform(src)
	if err != nil {
		t.Fatalf("parseTransform(%q): %s", src, err)
	}
	return m.Apply(p)
}

func assertClose(t *testing.T, got, want drawing.Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTransformFunctions(t *testing.T) {
	assertClose(t, applyTransform(t, "translate(10)", drawing.Point{X: 1, Y: 1}), drawing.Point{X: 11, Y: 1})
	assertClose(t, applyTransform(t, "translate(10, 5)", drawing.Point{X: 1, Y: 1}), drawing.Point{X: 11, Y: 6})
	assertClose(t, applyTransform(t, "translateX(3)", drawing.Point{X: 0, Y: 0}), drawing.Point{X: 3, Y: 0})
	assertClose(t, applyTransform(t, "translateY(3)", drawing.Point{X: 0, Y: 0}), drawing.Point{X: 0, Y: 3})
	assertClose(t, applyTransform(t, "scale(2)", drawing.Point{X: 1, Y: 2}), drawing.Point{X: 2, Y: 4})
	assertClose(t, applyTransform(t, "scale(2, 3)", drawing.Point{X: 1, Y: 2}), drawing.Point{X: 2, Y: 6})
	assertClose(t, applyTransform(t, "scaleX(2)", drawing.Point{X: 1, Y: 2}), drawing.Point{X: 2, Y: 2})
	assertClose(t, applyTransform(t, "scaleY(3)", drawing.Point{X: 1, Y: 2}), drawing.Point{X: 1, Y: 6})
	assertClose(t, applyTransform(t, "rotate(90)", drawing.Point{X: 1, Y: 0}), drawing.Point{X: 0, Y: 1})
	assertClose(t, applyTransform(t, "rotate(90, 1, 1)", drawing.Point{X: 2, Y: 1}), drawing.Point{X: 1, Y: 2})
	assertClose(t, applyTransform(t, "skewX(45)", drawing.Point{X: 0, Y: 1}), drawing.Point{X: 1, Y: 1})
	assertClose(t, applyTransform(t, "skewY(45)", drawing.Point{X: 1, Y: 0}), drawing.Point{X: 1, Y: 1})
	assertClose(t, applyTransform(t, "skew(45, 45)", drawing.Point{X: 1, Y: 1}), drawing.Point{X: 2, Y: 2})
}

func TestTransformUnits(t *testing.T) {
	assertClose(t, applyTransform(t, "translate(1cm)", drawing.Point{X: 0, Y: 0}),
		drawing.Point{X: 72 / 2.54, Y: 0})
	assertClose(t, applyTransform(t, "rotate(0.25turn)", drawing.Point{X: 1, Y: 0}),
		drawing.Point{X: 0, Y: 1})
}

func TestTransformComposition(t *testing.T) {
	// the rightmost function applies to geometry first
	assertClose(t, applyTransform(t, "translate(10, 0) scale(2)", drawing.Point{X: 1, Y: 0}),
		drawing.Point{X: 12, Y: 0})
	assertClose(t, applyTransform(t, "scale(2) translate(10, 0)", drawing.Point{X: 1, Y: 0}),
		drawing.Point{X: 22, Y: 0})
}

func TestTransformMatrix(t *testing.T) {
	m, err := parseTransform("matrix(1, 2, 3, 4, 5, 6)")
	if err != nil {
		t.Fatal(err)
	}
	want := drawing.Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	if diff := cmp.Diff(want, m, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatal(diff)
	}

	m, err = parseTransform("")
	if err != nil {
		t.Fatal(err)
	}
	if m != drawing.Identity {
		t.Fatalf("an empty transform is the identity, got %v", m)
	}
}

func TestTransformRandomized(t *testing.T) {
	// compiling a random function list matches composing the matrices by hand
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		var src strings.Builder
		want := drawing.Identity
		for j, count := 0, 2+rng.Intn(3); j < count; j++ {
			var f drawing.Matrix
			switch rng.Intn(5) {
			case 0:
				x, y := rng.Float64()*200-100, rng.Float64()*200-100
				fmt.Fprintf(&src, "translate(%g, %g) ", x, y)
				f = drawing.Translation(x, y)
			case 1:
				x, y := rng.Float64()*1.5+0.5, rng.Float64()*1.5+0.5
				fmt.Fprintf(&src, "scale(%g, %g) ", x, y)
				f = drawing.Scaling(x, y)
			case 2:
				a := rng.Float64()*360 - 180
				fmt.Fprintf(&src, "rotate(%g) ", a)
				f = drawing.Rotation(a * math.Pi / 180)
			case 3:
				a := rng.Float64()*120 - 60
				fmt.Fprintf(&src, "skewX(%g) ", a)
				f = drawing.Shearing(math.Tan(a*math.Pi/180), 0)
			case 4:
				a := rng.Float64()*120 - 60
				fmt.Fprintf(&src, "skewY(%g) ", a)
				f = drawing.Shearing(0, math.Tan(a*math.Pi/180))
			}
			want = want.Mult(f)
		}
		got, err := parseTransform(src.String())
		if err != nil {
			t.Fatalf("parseTransform(%q): %s", src.String(), err)
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-9, 1e-9)); diff != "" {
			t.Fatalf("%q: %s", src.String(), diff)
		}
	}
}

func TestTransformErrors(t *testing.T) {
	for _, src := range []string{
		"scale()",
		"scale(1, 2, 3)",
		"rotate(1, 2)",
		"matrix(1, 2, 3)",
		"frob(1)",
		"translate(2",
		"skewX(1, 2)",
		"translate(1em)",
	} {
		if _, err := parseTransform(src); err == nil {
			t.Fatalf("parseTransform(%q) should fail", src)
		}
	}
}
