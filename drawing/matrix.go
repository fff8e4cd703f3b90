package drawing

import "math"

// Point is a position or vector in document space.
type Point struct {
	X, Y float64
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Matrix is a 2D affine transformation, mapping a point (x, y) to
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the neutral transformation.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Translation returns the transform moving points by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Scaling returns the transform scaling by x horizontally and y vertically.
func Scaling(x, y float64) Matrix {
	return Matrix{x, 0, 0, y, 0, 0}
}

// Rotation returns the transform rotating by theta radians around the origin.
func Rotation(theta float64) Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix{c, s, -s, c, 0, 0}
}

// RotationAbout returns the rotation by theta radians conjugated by a
// translation to and from the center (x, y).
func RotationAbout(theta, x, y float64) Matrix {
	return Translation(x, y).Mult(Rotation(theta)).Mult(Translation(-x, -y))
}

// Shearing returns the transform shearing by x horizontally and y
// vertically (the arguments are shear factors, not angles).
func Shearing(x, y float64) Matrix {
	return Matrix{1, y, x, 1, 0, 0}
}

// Mult returns the composition of m and n: the returned transform applies
// n to a point first, then m. Composition is associative, not commutative.
func (m Matrix) Mult(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// scaleFactor returns the average length scaling of m, the geometric mean
// of its two axis scales. Stroke widths are multiplied by it, since the
// transform is baked into coordinates instead of the device state.
func (m Matrix) scaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// Apply transforms the point p by m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Translate pre-composes a translation: the translation is applied to
// geometry before m.
func (m Matrix) Translate(x, y float64) Matrix { return m.Mult(Translation(x, y)) }

// Scale pre-composes a scaling.
func (m Matrix) Scale(x, y float64) Matrix { return m.Mult(Scaling(x, y)) }

// Rotate pre-composes a rotation by theta radians.
func (m Matrix) Rotate(theta float64) Matrix { return m.Mult(Rotation(theta)) }
