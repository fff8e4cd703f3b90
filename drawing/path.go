package drawing

// This file defines the basic path structure.
//
// Segments store fully resolved document-space coordinates: the relative
// appenders below translate their offsets against the running position
// before the segment is recorded. The one intentional exception is the
// leading control point of the smooth curve variants, which is derived
// from the preceding segment only when the path is replayed (see emit.go).

type segmentKind uint8

const (
	kindMoveTo segmentKind = iota
	kindLineTo
	kindHLineTo
	kindVLineTo
	kindCubicTo
	kindSmoothCubicTo
	kindQuadTo
	kindSmoothQuadTo
	kindArcTo
	kindClose
)

// Segment is one drawing instruction of a path.
type Segment interface {
	kind() segmentKind
}

// MoveTo starts a new subpath at the given point.
type MoveTo Point

// LineTo draws a straight line to the given point.
type LineTo Point

// HLineTo draws a horizontal line to the given abscissa, keeping the
// current ordinate.
type HLineTo struct {
	X float64
}

// VLineTo draws a vertical line to the given ordinate, keeping the
// current abscissa.
type VLineTo struct {
	Y float64
}

// CubicTo draws a cubic Bézier curve with both control points explicit.
type CubicTo struct {
	Control1, Control2, End Point
}

// SmoothCubicTo draws a cubic Bézier curve whose leading control point is
// implied: the reflection of the previous curve's trailing control point
// through the shared endpoint, or the current point when the previous
// segment is not a cubic.
type SmoothCubicTo struct {
	Control2, End Point
}

// QuadTo draws a quadratic Bézier curve.
type QuadTo struct {
	Control, End Point
}

// SmoothQuadTo draws a quadratic Bézier curve with an implied control
// point, derived like SmoothCubicTo but against the quadratic family.
type SmoothQuadTo struct {
	End Point
}

// ArcTo draws an elliptical arc from the current point to End.
// Rotation is the x-axis rotation in degrees, as written in path data.
type ArcTo struct {
	Rx, Ry        float64
	Rotation      float64
	LargeArc      bool
	PositiveSweep bool
	End           Point
}

// Close returns to the start of the current subpath.
type Close struct{}

func (MoveTo) kind() segmentKind        { return kindMoveTo }
func (LineTo) kind() segmentKind        { return kindLineTo }
func (HLineTo) kind() segmentKind       { return kindHLineTo }
func (VLineTo) kind() segmentKind       { return kindVLineTo }
func (CubicTo) kind() segmentKind       { return kindCubicTo }
func (SmoothCubicTo) kind() segmentKind { return kindSmoothCubicTo }
func (QuadTo) kind() segmentKind        { return kindQuadTo }
func (SmoothQuadTo) kind() segmentKind  { return kindSmoothQuadTo }
func (ArcTo) kind() segmentKind         { return kindArcTo }
func (Close) kind() segmentKind         { return kindClose }

// PaintedPath is an ordered list of segments with an attached style and
// local transform. Higher level shapes are reduced to a PaintedPath.
type PaintedPath struct {
	Segments  []Segment
	Style     GraphicsStyle
	Transform Matrix

	cur   Point // running position, used to resolve relative appenders
	start Point // start of the current subpath
}

// NewPaintedPath returns an empty path with an inheriting style and the
// identity transform.
func NewPaintedPath() *PaintedPath {
	return &PaintedPath{Transform: Identity}
}

// IsEmpty reports whether the path holds no geometry.
func (p *PaintedPath) IsEmpty() bool { return len(p.Segments) == 0 }

func (p *PaintedPath) append(s Segment) {
	p.Segments = append(p.Segments, s)
}

// MoveTo starts a new subpath at (x, y).
func (p *PaintedPath) MoveTo(x, y float64) {
	p.cur = Point{x, y}
	p.start = p.cur
	p.append(MoveTo(p.cur))
}

// MoveRelative starts a new subpath offset by (dx, dy) from the current
// position.
func (p *PaintedPath) MoveRelative(dx, dy float64) {
	p.MoveTo(p.cur.X+dx, p.cur.Y+dy)
}

// LineTo draws a line to (x, y).
func (p *PaintedPath) LineTo(x, y float64) {
	p.cur = Point{x, y}
	p.append(LineTo(p.cur))
}

// LineRelative draws a line offset by (dx, dy).
func (p *PaintedPath) LineRelative(dx, dy float64) {
	p.LineTo(p.cur.X+dx, p.cur.Y+dy)
}

// HorizontalLineTo draws a horizontal line to abscissa x.
func (p *PaintedPath) HorizontalLineTo(x float64) {
	p.cur.X = x
	p.append(HLineTo{X: x})
}

// HorizontalLineRelative draws a horizontal line offset by dx.
func (p *PaintedPath) HorizontalLineRelative(dx float64) {
	p.HorizontalLineTo(p.cur.X + dx)
}

// VerticalLineTo draws a vertical line to ordinate y.
func (p *PaintedPath) VerticalLineTo(y float64) {
	p.cur.Y = y
	p.append(VLineTo{Y: y})
}

// VerticalLineRelative draws a vertical line offset by dy.
func (p *PaintedPath) VerticalLineRelative(dy float64) {
	p.VerticalLineTo(p.cur.Y + dy)
}

// CurveTo draws a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x3, y3).
func (p *PaintedPath) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.cur = Point{x3, y3}
	p.append(CubicTo{Point{x1, y1}, Point{x2, y2}, p.cur})
}

// CurveRelative is the relative form of CurveTo.
func (p *PaintedPath) CurveRelative(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	c := p.cur
	p.CurveTo(c.X+dx1, c.Y+dy1, c.X+dx2, c.Y+dy2, c.X+dx3, c.Y+dy3)
}

// SmoothCurveTo draws a cubic Bézier curve whose leading control point is
// implied by the preceding segment.
func (p *PaintedPath) SmoothCurveTo(x2, y2, x3, y3 float64) {
	p.cur = Point{x3, y3}
	p.append(SmoothCubicTo{Control2: Point{x2, y2}, End: p.cur})
}

// SmoothCurveRelative is the relative form of SmoothCurveTo.
func (p *PaintedPath) SmoothCurveRelative(dx2, dy2, dx3, dy3 float64) {
	c := p.cur
	p.SmoothCurveTo(c.X+dx2, c.Y+dy2, c.X+dx3, c.Y+dy3)
}

// QuadraticCurveTo draws a quadratic Bézier curve with control point
// (x1, y1), ending at (x2, y2).
func (p *PaintedPath) QuadraticCurveTo(x1, y1, x2, y2 float64) {
	p.cur = Point{x2, y2}
	p.append(QuadTo{Control: Point{x1, y1}, End: p.cur})
}

// QuadraticCurveRelative is the relative form of QuadraticCurveTo.
func (p *PaintedPath) QuadraticCurveRelative(dx1, dy1, dx2, dy2 float64) {
	c := p.cur
	p.QuadraticCurveTo(c.X+dx1, c.Y+dy1, c.X+dx2, c.Y+dy2)
}

// SmoothQuadraticCurveTo draws a quadratic Bézier curve whose control
// point is implied by the preceding segment.
func (p *PaintedPath) SmoothQuadraticCurveTo(x, y float64) {
	p.cur = Point{x, y}
	p.append(SmoothQuadTo{End: p.cur})
}

// SmoothQuadraticCurveRelative is the relative form of SmoothQuadraticCurveTo.
func (p *PaintedPath) SmoothQuadraticCurveRelative(dx, dy float64) {
	p.SmoothQuadraticCurveTo(p.cur.X+dx, p.cur.Y+dy)
}

// ArcTo draws an elliptical arc to (x, y). rotation is the x-axis rotation
// in degrees; largeArc and positiveSweep select among the four candidate
// arcs.
func (p *PaintedPath) ArcTo(rx, ry, rotation float64, largeArc, positiveSweep bool, x, y float64) {
	p.cur = Point{x, y}
	p.append(ArcTo{
		Rx: rx, Ry: ry, Rotation: rotation,
		LargeArc: largeArc, PositiveSweep: positiveSweep,
		End: p.cur,
	})
}

// ArcRelative is the relative form of ArcTo.
func (p *PaintedPath) ArcRelative(rx, ry, rotation float64, largeArc, positiveSweep bool, dx, dy float64) {
	p.ArcTo(rx, ry, rotation, largeArc, positiveSweep, p.cur.X+dx, p.cur.Y+dy)
}

// ClosePath returns the current position to the start of the subpath.
func (p *PaintedPath) ClosePath() {
	p.cur = p.start
	p.append(Close{})
}

// Rectangle appends a rectangle of the given size, with elliptical corners
// of radii (rx, ry) when both are positive. The outline is wound clockwise
// starting after the top-left corner.
func (p *PaintedPath) Rectangle(x, y, w, h, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		p.MoveTo(x, y)
		p.HorizontalLineTo(x + w)
		p.VerticalLineTo(y + h)
		p.HorizontalLineTo(x)
		p.ClosePath()
		return
	}
	p.MoveTo(x+rx, y)
	p.HorizontalLineTo(x + w - rx)
	p.ArcTo(rx, ry, 0, false, true, x+w, y+ry)
	p.VerticalLineTo(y + h - ry)
	p.ArcTo(rx, ry, 0, false, true, x+w-rx, y+h)
	p.HorizontalLineTo(x + rx)
	p.ArcTo(rx, ry, 0, false, true, x, y+h-ry)
	p.VerticalLineTo(y + ry)
	p.ArcTo(rx, ry, 0, false, true, x+rx, y)
	p.ClosePath()
}

// Ellipse appends a full ellipse centered on (cx, cy), drawn as two half
// arcs.
func (p *PaintedPath) Ellipse(cx, cy, rx, ry float64) {
	p.MoveTo(cx+rx, cy)
	p.ArcTo(rx, ry, 0, false, true, cx-rx, cy)
	p.ArcTo(rx, ry, 0, false, true, cx+rx, cy)
	p.ClosePath()
}

// Circle appends a full circle centered on (cx, cy).
func (p *PaintedPath) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}
