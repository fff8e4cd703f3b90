package drawing

import (
	"math"
	"testing"
)

func assertPointClose(t *testing.T, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComposition(t *testing.T) {
	// Mult applies its argument first
	m := Translation(10, 0).Mult(Scaling(2, 2))
	assertPointClose(t, m.Apply(Point{1, 0}), Point{12, 0})

	m = Scaling(2, 2).Mult(Translation(10, 0))
	assertPointClose(t, m.Apply(Point{1, 0}), Point{22, 0})
}

func TestRotation(t *testing.T) {
	assertPointClose(t, Rotation(math.Pi/2).Apply(Point{1, 0}), Point{0, 1})

	// quarter turn around (1, 1)
	assertPointClose(t, RotationAbout(math.Pi/2, 1, 1).Apply(Point{2, 1}), Point{1, 2})
}

func TestChainedHelpers(t *testing.T) {
	m := Identity.Translate(3, 4).Scale(2, 2)
	assertPointClose(t, m.Apply(Point{1, 1}), Point{5, 6})
}

func TestShearing(t *testing.T) {
	assertPointClose(t, Shearing(1, 0).Apply(Point{0, 1}), Point{1, 1})
	assertPointClose(t, Shearing(0, 1).Apply(Point{1, 0}), Point{1, 1})
}

func TestIdentity(t *testing.T) {
	m := Identity.Mult(Translation(2, 3)).Mult(Translation(-2, -3))
	assertPointClose(t, m.Apply(Point{5, 7}), Point{5, 7})
}
