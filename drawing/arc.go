package drawing

import "math"

// Elliptical arcs are approximated with cubic Bézier splines by the method
// of L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
// or cubic Bezier curves", 2003
// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf

// maxEta is the maximum angular span of a single cubic spline when
// approximating an arc.
const maxEta = math.Pi / 8

// arc lowers seg to cubic splines, emitting them on the drawer, and
// returns the new running position.
func (e *emitter) arc(seg ArcTo) Point {
	start, end := e.cur, seg.End
	if start == end {
		return end
	}

	// SVG error recovery: out-of-range radii are taken in absolute value
	// and scaled up minimally when no ellipse can reach the endpoint;
	// a zero radius degrades the arc to a straight line.
	rx, ry := math.Abs(seg.Rx), math.Abs(seg.Ry)
	if rx == 0 || ry == 0 {
		e.d.Line(e.m.Apply(end))
		return end
	}

	phi := seg.Rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	// endpoint to center conversion (SVG 1.1 F.6.5)
	dx2, dy2 := (start.X-end.X)/2, (start.Y-end.Y)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	radicand := num / den
	if radicand < 0 {
		radicand = 0 // roundoff after the radii were scaled up
	}
	coef := math.Sqrt(radicand)
	if seg.LargeArc == seg.PositiveSweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	deltaTheta := theta2 - theta1
	if !seg.PositiveSweep && deltaTheta > 0 {
		deltaTheta -= 2 * math.Pi
	} else if seg.PositiveSweep && deltaTheta < 0 {
		deltaTheta += 2 * math.Pi
	}

	segs := int(math.Abs(deltaTheta)/maxEta) + 1
	dEta := deltaTheta / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	lp := start
	ldx, ldy := ellipsePrime(rx, ry, sinPhi, cosPhi, theta1)
	for i := 1; i <= segs; i++ {
		eta := theta1 + dEta*float64(i)
		var p Point
		if i == segs {
			p = end // keeps the endpoint exact, no roundoff error
		} else {
			p = ellipsePointAt(rx, ry, sinPhi, cosPhi, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, sinPhi, cosPhi, eta)
		e.d.CubeBezier(
			e.m.Apply(Point{lp.X + alpha*ldx, lp.Y + alpha*ldy}),
			e.m.Apply(Point{p.X - alpha*dx, p.Y - alpha*dy}),
			e.m.Apply(p),
		)
		lp, ldx, ldy = p, dx, dy
	}
	return end
}

// ellipsePrime gives the tangent vector of the parameterized ellipse at
// angle eta.
func ellipsePrime(a, b, sinPhi, cosPhi, eta float64) (dx, dy float64) {
	aSinEta := a * math.Sin(eta)
	bCosEta := b * math.Cos(eta)
	dx = -aSinEta*cosPhi - bCosEta*sinPhi
	dy = -aSinEta*sinPhi + bCosEta*cosPhi
	return
}

// ellipsePointAt gives the point of the parameterized ellipse at angle eta.
func ellipsePointAt(a, b, sinPhi, cosPhi, eta, cx, cy float64) Point {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	return Point{
		X: cx + aCosEta*cosPhi - bSinEta*sinPhi,
		Y: cy + aCosEta*sinPhi + bSinEta*cosPhi,
	}
}
