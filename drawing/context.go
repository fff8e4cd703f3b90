// Package drawing provides the vector drawing model consumed by the
// markup converter: affine transforms, styled paths and groups, and the
// driver interfaces painting backends implement. See svgpdf and svgraster
// for two such backends.
package drawing

// Renderable is a node of the drawable tree: a *PaintedPath or a
// *GraphicsContext.
type Renderable interface {
	draw(d Driver, inherited GraphicsStyle, m Matrix, opacity float64)
}

// GraphicsContext groups an ordered list of children under a shared style
// and local transform.
type GraphicsContext struct {
	Transform Matrix
	Style     GraphicsStyle
	Items     []Renderable
}

// NewGraphicsContext returns an empty group with an inheriting style and
// the identity transform.
func NewGraphicsContext() *GraphicsContext {
	return &GraphicsContext{Transform: Identity}
}

// AddItem appends a child to the group, keeping document order.
func (g *GraphicsContext) AddItem(r Renderable) {
	g.Items = append(g.Items, r)
}

// IsEmpty reports whether the group holds no children.
func (g *GraphicsContext) IsEmpty() bool { return len(g.Items) == 0 }

// Draw paints the tree rooted at g on the driver. opacity is a global
// multiplier applied on top of the tree's own opacities.
func (g *GraphicsContext) Draw(d Driver, opacity float64) {
	g.draw(d, DefaultStyle, Identity, opacity)
}

func (g *GraphicsContext) draw(d Driver, inherited GraphicsStyle, m Matrix, opacity float64) {
	st := inherited.merge(g.Style)
	m = m.Mult(g.Transform)
	for _, item := range g.Items {
		item.draw(d, st, m, opacity)
	}
}

func (p *PaintedPath) draw(d Driver, inherited GraphicsStyle, m Matrix, opacity float64) {
	if len(p.Segments) == 0 {
		return
	}
	st := inherited.merge(p.Style)
	m = m.Mult(p.Transform)

	filler, stroker := d.SetupDrawers(st.willFill(), st.willStroke())
	if filler != nil {
		filler.Clear()
		filler.SetWinding(st.FillRule != EvenOdd)

		p.Replay(filler, m)
		filler.Stop(false)

		filler.SetColor(st.FillColor.Color, st.FillOpacity.Value*opacity)
		filler.Draw()
		filler.SetWinding(true) // restore the default
	}

	if stroker != nil {
		// stroke lengths follow the geometry scaling, since the transform
		// is baked into the replayed coordinates
		scale := m.scaleFactor()
		dash := st.StrokeDash.Pattern
		if scale != 1 && len(dash) != 0 {
			scaled := make([]float64, len(dash))
			for i, d := range dash {
				scaled[i] = d * scale
			}
			dash = scaled
		}

		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: st.StrokeWidth.Value * scale,
			Join: JoinOptions{
				MiterLimit: st.StrokeMiterLimit.Value,
				LineJoin:   st.StrokeJoin,
				LineCap:    st.StrokeCap,
			},
			Dash: DashOptions{
				Dash:       dash,
				DashOffset: st.StrokeDashPhase.Value * scale,
			},
		})

		p.Replay(stroker, m)
		stroker.Stop(false)

		stroker.SetColor(st.StrokeColor.Color, st.StrokeOpacity.Value*opacity)
		stroker.Draw()
	}
}
