package drawing

// ValueState qualifies a style attribute. The zero value defers to the
// ancestor's resolved value, which the render walk substitutes when
// cascading styles down the tree.
type ValueState uint8

const (
	Inherit ValueState = iota // defer to the ancestor
	Set                       // concrete value
	Off                       // explicit "none": the paint is disabled
)

// Paint is a color-valued style attribute.
type Paint struct {
	Color Color
	State ValueState
}

// SomePaint returns a concrete paint.
func SomePaint(c Color) Paint { return Paint{Color: c, State: Set} }

// NoPaint returns a disabled paint.
func NoPaint() Paint { return Paint{State: Off} }

// Scalar is a float-valued style attribute. Off is only meaningful for
// attributes whose markup-level "none" exists (stroke width zero).
type Scalar struct {
	Value float64
	State ValueState
}

// SomeScalar returns a concrete scalar value.
func SomeScalar(v float64) Scalar { return Scalar{Value: v, State: Set} }

// Dashes is the stroke dash pattern attribute.
type Dashes struct {
	Pattern []float64
	State   ValueState
}

// FillRule selects the path filling rule.
type FillRule uint8

const (
	InheritRule FillRule = iota
	NonZero
	EvenOdd
)

// CapMode defines how line ends are drawn.
type CapMode uint8

const (
	InheritCap CapMode = iota
	ButtCap
	RoundCap
	SquareCap
)

// JoinMode defines how stroke segments bridge the gap at a join.
type JoinMode uint8

const (
	InheritJoin JoinMode = iota
	MiterJoin
	RoundJoin
	BevelJoin
)

// GraphicsStyle is the paint state attached to a path or group. A zero
// GraphicsStyle inherits every attribute.
type GraphicsStyle struct {
	FillColor   Paint
	FillRule    FillRule
	FillOpacity Scalar

	StrokeColor      Paint
	StrokeWidth      Scalar
	StrokeDash       Dashes
	StrokeDashPhase  Scalar
	StrokeCap        CapMode
	StrokeJoin       JoinMode
	StrokeMiterLimit Scalar
	StrokeOpacity    Scalar
}

// DefaultStyle is the root of the cascade: black non-zero-winding fill,
// full opacity, no stroke, butt caps and miter joins.
var DefaultStyle = GraphicsStyle{
	FillColor:   SomePaint(NewColor(0, 0, 0)),
	FillRule:    NonZero,
	FillOpacity: SomeScalar(1),

	StrokeColor:      NoPaint(),
	StrokeWidth:      SomeScalar(1),
	StrokeDash:       Dashes{State: Off},
	StrokeDashPhase:  SomeScalar(0),
	StrokeCap:        ButtCap,
	StrokeJoin:       MiterJoin,
	StrokeMiterLimit: SomeScalar(4),
	StrokeOpacity:    SomeScalar(1),
}

// merge resolves the child style against s: attributes the child inherits
// take the ancestor's resolved value, everything else (including explicit
// "none") wins over it.
func (s GraphicsStyle) merge(child GraphicsStyle) GraphicsStyle {
	out := child
	if out.FillColor.State == Inherit {
		out.FillColor = s.FillColor
	}
	if out.FillRule == InheritRule {
		out.FillRule = s.FillRule
	}
	if out.FillOpacity.State == Inherit {
		out.FillOpacity = s.FillOpacity
	}
	if out.StrokeColor.State == Inherit {
		out.StrokeColor = s.StrokeColor
	}
	if out.StrokeWidth.State == Inherit {
		out.StrokeWidth = s.StrokeWidth
	}
	if out.StrokeDash.State == Inherit {
		out.StrokeDash = s.StrokeDash
	}
	if out.StrokeDashPhase.State == Inherit {
		out.StrokeDashPhase = s.StrokeDashPhase
	}
	if out.StrokeCap == InheritCap {
		out.StrokeCap = s.StrokeCap
	}
	if out.StrokeJoin == InheritJoin {
		out.StrokeJoin = s.StrokeJoin
	}
	if out.StrokeMiterLimit.State == Inherit {
		out.StrokeMiterLimit = s.StrokeMiterLimit
	}
	if out.StrokeOpacity.State == Inherit {
		out.StrokeOpacity = s.StrokeOpacity
	}
	return out
}

// willFill reports whether a path carrying this resolved style paints
// its interior.
func (s GraphicsStyle) willFill() bool {
	return s.FillColor.State == Set
}

// willStroke reports whether a path carrying this resolved style paints
// its outline.
func (s GraphicsStyle) willStroke() bool {
	return s.StrokeColor.State == Set && s.StrokeWidth.State == Set && s.StrokeWidth.Value > 0
}
