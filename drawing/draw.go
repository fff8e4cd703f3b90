package drawing

// Given a converted document, implements how to draw it with a painting
// driver, such as a rasterizer or a pdf writer.

// Drawer receives the basic draw operations, with transformation matrices
// already applied to every point, so it needs no knowledge of the source
// markup.
type Drawer interface {
	// Clear resets the internal state, before starting a new path.
	Clear()

	// Start starts a new subpath at the given point.
	Start(a Point)

	// Line adds a line from the current point to b.
	Line(b Point)

	// QuadBezier adds a quadratic Bézier curve to the path.
	QuadBezier(b, c Point)

	// CubeBezier adds a cubic Bézier curve to the path.
	CubeBezier(b, c, d Point)

	// Stop closes the path to the start point if closeLoop is true.
	Stop(closeLoop bool)

	// SetColor sets the color for the current path.
	SetColor(c Color, opacity float64)

	// Draw paints the accumulated path using the current settings.
	Draw()
}

// Filler fills the interior of paths.
type Filler interface {
	Drawer

	// SetWinding selects the non-zero winding rule for the current path
	// (even-odd otherwise).
	SetWinding(useNonZeroWinding bool)
}

// Stroker paints the outline of paths.
type Stroker interface {
	Drawer

	// SetStrokeOptions parametrizes the stroking of the current path.
	SetStrokeOptions(options StrokeOptions)
}

// Driver is the painting backend.
type Driver interface {
	// SetupDrawers returns the backend painters, called at the beginning
	// of every path. If one of the booleans is false, the corresponding
	// drawer should be nil to avoid useless operations. When both are
	// true, the exact same draw operations are performed on the Filler
	// first and then on the Stroker, which may enable the implementation
	// to avoid duplicating the path.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// DashOptions describes the stroke dash pattern.
type DashOptions struct {
	Dash       []float64 // nil or empty for a solid stroke
	DashOffset float64   // starting phase into the dash array
}

// JoinOptions describes how stroke segments are joined and terminated.
type JoinOptions struct {
	MiterLimit float64
	LineJoin   JoinMode
	LineCap    CapMode
}

// StrokeOptions gathers the stroking parameters of one path.
type StrokeOptions struct {
	LineWidth float64
	Join      JoinOptions
	Dash      DashOptions
}
