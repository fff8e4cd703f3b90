// Package svgpdf implements a PDF backend for converted documents, by
// wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/benoitkugler/svg2draw/drawing"
	"github.com/benoitkugler/svg2draw/svgconv"
)

// assert interface conformance
var (
	_ drawing.Driver  = (*Renderer)(nil)
	_ drawing.Filler  = (*filler)(nil)
	_ drawing.Stroker = (*stroker)(nil)
)

// Renderer writes draw operations as page content of a gofpdf document.
type Renderer struct {
	pdf *gofpdf.Fpdf

	bounds BoundingBox // union of the painted paths
}

// NewRenderer returns a renderer writing to the current page of pdf. The
// document unit should be the point, the unit of the drawing model.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf}
}

// DrawnBounds returns the accumulated extent of the paths painted so far,
// useful to place other content around the drawing.
func (r *Renderer) DrawnBounds() BoundingBox { return r.bounds }

func (r *Renderer) SetupDrawers(willFill, willStroke bool) (drawing.Filler, drawing.Stroker) {
	var (
		f drawing.Filler
		s drawing.Stroker
	)
	// the path is replayed on each drawer, so they need not share state
	if willFill {
		f = &filler{pather: pather{rd: r}}
	}
	if willStroke {
		s = &stroker{pather: pather{rd: r}}
	}
	return f, s
}

// pather implements the common path commands, shared by the filler and
// the stroker.
type pather struct {
	rd  *Renderer
	cur drawing.Point
	box BoundingBox
}

func (p *pather) Clear() {
	p.box = BoundingBox{}
	p.cur = drawing.Point{}
}

func (p *pather) Start(a drawing.Point) {
	p.rd.pdf.MoveTo(a.X, a.Y)
	p.box.add(a)
	p.cur = a
}

func (p *pather) Line(b drawing.Point) {
	p.rd.pdf.LineTo(b.X, b.Y)
	p.box.add(b)
	p.cur = b
}

func (p *pather) QuadBezier(b, c drawing.Point) {
	p.rd.pdf.CurveTo(b.X, b.Y, c.X, c.Y)
	p.box.addQuad(p.cur, b, c)
	p.cur = c
}

func (p *pather) CubeBezier(b, c, d drawing.Point) {
	p.rd.pdf.CurveBezierCubicTo(b.X, b.Y, c.X, c.Y, d.X, d.Y)
	p.box.addCubic(p.cur, b, c, d)
	p.cur = d
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.rd.pdf.ClosePath()
	}
}

type filler struct {
	pather
	useNonZeroWinding bool
}

func (f *filler) SetColor(c drawing.Color, opacity float64) {
	f.rd.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	f.rd.pdf.SetAlpha(opacity*float64(c.A)/255, "Normal")
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (f *filler) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.rd.pdf.DrawPath(styleStr)
	f.rd.bounds.union(f.box)
}

type stroker struct {
	pather
}

var (
	capStyles = map[drawing.CapMode]string{
		drawing.InheritCap: "butt",
		drawing.ButtCap:    "butt",
		drawing.RoundCap:   "round",
		drawing.SquareCap:  "square",
	}
	joinStyles = map[drawing.JoinMode]string{
		drawing.InheritJoin: "miter",
		drawing.MiterJoin:   "miter",
		drawing.RoundJoin:   "round",
		drawing.BevelJoin:   "bevel",
	}
)

// gofpdf exposes no miter limit operator, so options.Join.MiterLimit is
// left to the PDF default.
func (s *stroker) SetStrokeOptions(options drawing.StrokeOptions) {
	s.rd.pdf.SetLineWidth(options.LineWidth)
	s.rd.pdf.SetLineCapStyle(capStyles[options.Join.LineCap])
	s.rd.pdf.SetLineJoinStyle(joinStyles[options.Join.LineJoin])
	s.rd.pdf.SetDashPattern(options.Dash.Dash, options.Dash.DashOffset)
}

func (s *stroker) SetColor(c drawing.Color, opacity float64) {
	s.rd.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.rd.pdf.SetAlpha(opacity*float64(c.A)/255, "Normal")
}

func (s *stroker) Draw() {
	s.rd.pdf.DrawPath("D")
	s.rd.bounds.union(s.box)
}

// DrawToPage fits the document into a width x height box whose top left
// corner is at (x, y) on the current page of pdf, all in points.
func DrawToPage(doc *svgconv.SVGObject, pdf *gofpdf.Fpdf, x, y, width, height float64) error {
	_, _, tree, err := doc.TransformToViewport(1, width, height, true, false)
	if err != nil {
		return err
	}
	placed := drawing.NewGraphicsContext()
	placed.Transform = drawing.Translation(x, y)
	placed.AddItem(tree)
	placed.Draw(NewRenderer(pdf), 1)
	return nil
}

// RenderSVGToPDF converts the document and writes it, fitted to an A4
// page, into the file pdfName.
func RenderSVGToPDF(doc io.Reader, pdfName string) error {
	parsed, err := svgconv.Parse(doc, svgconv.WarnErrorMode)
	if err != nil {
		return err
	}
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	if err := DrawToPage(parsed, pdf, 0, 0, pageW, pageH); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(pdfName)
}
