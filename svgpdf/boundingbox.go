package svgpdf

import (
	"math"

	"github.com/benoitkugler/svg2draw/drawing"
)

// Computes the extent of painted paths. Curve extrema are found exactly,
// from the roots of the coordinate derivatives, instead of using the
// looser control point hull.

// BoundingBox is an axis-aligned rectangle, empty when no point was added.
type BoundingBox struct {
	Min, Max drawing.Point
	valid    bool
}

// IsEmpty reports whether no point was accumulated.
func (b BoundingBox) IsEmpty() bool { return !b.valid }

func (b *BoundingBox) add(p drawing.Point) {
	if !b.valid {
		b.Min, b.Max, b.valid = p, p, true
		return
	}
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

func (b *BoundingBox) union(o BoundingBox) {
	if !o.valid {
		return
	}
	b.add(o.Min)
	b.add(o.Max)
}

// addQuad grows the box to cover the quadratic curve from a to c.
func (b *BoundingBox) addQuad(a, ctrl, c drawing.Point) {
	b.add(a)
	b.add(c)
	for _, t := range linearRoots(quadDerivative(a.X, ctrl.X, c.X)) {
		if 0 < t && t < 1 {
			b.add(drawing.Point{X: quadAt(a.X, ctrl.X, c.X, t), Y: quadAt(a.Y, ctrl.Y, c.Y, t)})
		}
	}
	for _, t := range linearRoots(quadDerivative(a.Y, ctrl.Y, c.Y)) {
		if 0 < t && t < 1 {
			b.add(drawing.Point{X: quadAt(a.X, ctrl.X, c.X, t), Y: quadAt(a.Y, ctrl.Y, c.Y, t)})
		}
	}
}

// addCubic grows the box to cover the cubic curve from a to d.
func (b *BoundingBox) addCubic(a, c1, c2, d drawing.Point) {
	b.add(a)
	b.add(d)
	roots := append(
		quadraticRoots(cubicDerivative(a.X, c1.X, c2.X, d.X)),
		quadraticRoots(cubicDerivative(a.Y, c1.Y, c2.Y, d.Y))...,
	)
	for _, t := range roots {
		if 0 < t && t < 1 {
			b.add(drawing.Point{
				X: cubicAt(a.X, c1.X, c2.X, d.X, t),
				Y: cubicAt(a.Y, c1.Y, c2.Y, d.Y, t),
			})
		}
	}
}

// quadAt evaluates the quadratic polynomial
//
//	x = (p0 + p2 - 2 p1) t^2 + 2 (p1 - p0) t + p0
func quadAt(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// quadDerivative returns the derivative of quadAt as a t + b.
func quadDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - 2*p1 + p0), 2 * (p1 - p0)
}

// cubicAt evaluates the cubic Bézier polynomial at t.
func cubicAt(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// cubicDerivative returns the derivative of cubicAt as a t^2 + b t + c.
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		return linearRoots(b, c)
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
