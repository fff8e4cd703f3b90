package drawing

// Replaying a segment list on a Drawer resolves the state that was left
// deferred at build time: horizontal and vertical lines take their missing
// coordinate from the running position, smooth curves derive their leading
// control point from the segment just before them, and elliptical arcs are
// approximated with cubic Bézier splines. The derived control point of a
// smooth segment is carried forward so that chains of smooth segments
// reflect each other correctly.

type emitter struct {
	d Drawer
	m Matrix

	cur      Point // running position, document space
	start    Point // start of the current subpath
	prevKind segmentKind
	prevCtrl Point // trailing control point of the previous curve
}

// Replay plays the segment list of p on the drawer d, after applying the
// transformation m to every coordinate. The segment list must begin with
// a MoveTo.
func (p *PaintedPath) Replay(d Drawer, m Matrix) {
	e := emitter{d: d, m: m, prevKind: kindClose}
	for _, seg := range p.Segments {
		e.segment(seg)
	}
}

func (e *emitter) segment(seg Segment) {
	switch seg := seg.(type) {
	case MoveTo:
		e.d.Stop(false) // implicit stop if currently in a subpath
		e.cur = Point(seg)
		e.start = e.cur
		e.d.Start(e.m.Apply(e.cur))
	case LineTo:
		e.cur = Point(seg)
		e.d.Line(e.m.Apply(e.cur))
	case HLineTo:
		e.cur.X = seg.X
		e.d.Line(e.m.Apply(e.cur))
	case VLineTo:
		e.cur.Y = seg.Y
		e.d.Line(e.m.Apply(e.cur))
	case CubicTo:
		e.cubic(seg.Control1, seg.Control2, seg.End)
	case SmoothCubicTo:
		c1 := e.cur
		if e.prevKind == kindCubicTo || e.prevKind == kindSmoothCubicTo {
			c1 = reflect(e.prevCtrl, e.cur)
		}
		e.cubic(c1, seg.Control2, seg.End)
		e.prevKind = kindSmoothCubicTo
	case QuadTo:
		e.quad(seg.Control, seg.End)
	case SmoothQuadTo:
		ctrl := e.cur
		if e.prevKind == kindQuadTo || e.prevKind == kindSmoothQuadTo {
			ctrl = reflect(e.prevCtrl, e.cur)
		}
		e.quad(ctrl, seg.End)
		e.prevKind = kindSmoothQuadTo
	case ArcTo:
		e.cur = e.arc(seg)
	case Close:
		e.d.Stop(true)
		e.cur = e.start
	}
	switch seg.(type) {
	case CubicTo, SmoothCubicTo, QuadTo, SmoothQuadTo:
		// prevKind and prevCtrl were updated by the helpers
	default:
		e.prevKind = seg.kind()
	}
}

func (e *emitter) cubic(c1, c2, end Point) {
	e.d.CubeBezier(e.m.Apply(c1), e.m.Apply(c2), e.m.Apply(end))
	e.cur = end
	e.prevKind = kindCubicTo
	e.prevCtrl = c2
}

func (e *emitter) quad(ctrl, end Point) {
	e.d.QuadBezier(e.m.Apply(ctrl), e.m.Apply(end))
	e.cur = end
	e.prevKind = kindQuadTo
	e.prevCtrl = ctrl
}

// reflect returns the point reflection of ctrl through end.
func reflect(ctrl, end Point) Point {
	return Point{2*end.X - ctrl.X, 2*end.Y - ctrl.Y}
}
