// Package svgraster implements a raster backend for converted documents,
// by wrapping github.com/srwiley/rasterx.
package svgraster

import (
	"image"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svg2draw/drawing"
	"github.com/benoitkugler/svg2draw/svgconv"
)

// assert interface conformance
var (
	_ drawing.Driver  = (*Renderer)(nil)
	_ drawing.Filler  = filler{}
	_ drawing.Stroker = stroker{}
)

// Renderer rasterizes draw operations on a scanner. The filling and
// stroking rasterizers are separate instances to avoid shared state.
type Renderer struct {
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

// NewRenderer returns a renderer rasterizing on the given scanner. In
// addition to lines, quadratic and cubic Bézier curves are rasterized
// directly.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
	}
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (drawing.Filler, drawing.Stroker) {
	var (
		f drawing.Filler
		s drawing.Stroker
	)
	if willFill {
		f = filler{rx: rd.filler}
	}
	if willStroke {
		s = stroker{rx: rd.dasher}
	}
	return f, s
}

func toFixed(a drawing.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(a.X * 64), Y: fixed.Int26_6(a.Y * 64)}
}

type filler struct {
	rx *rasterx.Filler
}

func (f filler) Clear()                { f.rx.Clear() }
func (f filler) Start(a drawing.Point) { f.rx.Start(toFixed(a)) }
func (f filler) Line(b drawing.Point)  { f.rx.Line(toFixed(b)) }

func (f filler) QuadBezier(b, c drawing.Point) {
	f.rx.QuadBezier(toFixed(b), toFixed(c))
}

func (f filler) CubeBezier(b, c, d drawing.Point) {
	f.rx.CubeBezier(toFixed(b), toFixed(c), toFixed(d))
}

func (f filler) Stop(closeLoop bool) { f.rx.Stop(closeLoop) }

func (f filler) SetWinding(useNonZeroWinding bool) { f.rx.SetWinding(useNonZeroWinding) }

func (f filler) Draw() { f.rx.Draw() }

func (f filler) SetColor(c drawing.Color, opacity float64) {
	f.rx.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinModes = map[drawing.JoinMode]rasterx.JoinMode{
		drawing.InheritJoin: rasterx.Miter,
		drawing.MiterJoin:   rasterx.Miter,
		drawing.RoundJoin:   rasterx.Round,
		drawing.BevelJoin:   rasterx.Bevel,
	}

	capFuncs = map[drawing.CapMode]rasterx.CapFunc{
		drawing.InheritCap: rasterx.ButtCap,
		drawing.ButtCap:    rasterx.ButtCap,
		drawing.RoundCap:   rasterx.RoundCap,
		drawing.SquareCap:  rasterx.SquareCap,
	}
)

type stroker struct {
	rx *rasterx.Dasher
}

func (s stroker) Clear()                { s.rx.Clear() }
func (s stroker) Start(a drawing.Point) { s.rx.Start(toFixed(a)) }
func (s stroker) Line(b drawing.Point)  { s.rx.Line(toFixed(b)) }
func (s stroker) QuadBezier(b, c drawing.Point) {
	s.rx.QuadBezier(toFixed(b), toFixed(c))
}
func (s stroker) CubeBezier(b, c, d drawing.Point) {
	s.rx.CubeBezier(toFixed(b), toFixed(c), toFixed(d))
}
func (s stroker) Stop(closeLoop bool) { s.rx.Stop(closeLoop) }
func (s stroker) Draw()               { s.rx.Draw() }

func (s stroker) SetColor(c drawing.Color, opacity float64) {
	s.rx.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (s stroker) SetStrokeOptions(options drawing.StrokeOptions) {
	capFn := capFuncs[options.Join.LineCap]
	s.rx.SetStroke(
		fixed.Int26_6(options.LineWidth*64),
		fixed.Int26_6(options.Join.MiterLimit*64),
		capFn, capFn, rasterx.FlatGap,
		joinModes[options.Join.LineJoin],
		options.Dash.Dash, options.Dash.DashOffset,
	)
}

// RenderToImage converts the document and rasterizes it into a new image
// of width x height pixels, ignoring the root dimension attributes.
func RenderToImage(doc io.Reader, width, height int) (*image.RGBA, error) {
	parsed, err := svgconv.Parse(doc, svgconv.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())

	_, _, tree, err := parsed.TransformToViewport(1, float64(width), float64(height), true, true)
	if err != nil {
		return nil, err
	}
	tree.Draw(NewRenderer(width, height, scanner), 1)
	return img, nil
}
