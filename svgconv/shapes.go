package svgconv

import (
	"github.com/benoitkugler/svg2draw/drawing"
)

// Basic shapes are lowered to the same path primitives as path elements.
// Degenerate shapes (zero width, height or radius) yield an empty path,
// while negative dimensions are rejected.

// shapeBuilders maps a shape tag to the function appending its outline.
var shapeBuilders = map[string]func(p *drawing.PaintedPath, n *node) error{
	"rect":     buildRect,
	"circle":   buildCircle,
	"ellipse":  buildEllipse,
	"line":     buildLine,
	"path":     buildPathData,
	"polyline": buildPolyline,
	"polygon":  buildPolygon,
}

// shapeLength resolves an optional shape attribute, substituting def when
// it is absent or "auto".
func shapeLength(n *node, name string, def float64) (float64, error) {
	s := n.attr(name)
	if s == "" || s == "auto" {
		return def, nil
	}
	return resolveLength(s, "pt")
}

// radiusLength resolves an rx or ry attribute, reporting whether it was
// given at all ("auto" counts as absent, "none" as an explicit zero).
func radiusLength(n *node, name string) (value float64, set bool, err error) {
	switch s := n.attr(name); s {
	case "", "auto":
		return 0, false, nil
	case "none":
		return 0, true, nil
	default:
		value, err = resolveLength(s, "pt")
		return value, true, err
	}
}

// requiredLength resolves a shape attribute that must be present.
func requiredLength(n *node, name string) (float64, error) {
	if !n.hasAttr(name) {
		return 0, formatErrorf("<%s> is missing the %s attribute", n.tag, name)
	}
	return resolveLength(n.attr(name), "pt")
}

func buildRect(p *drawing.PaintedPath, n *node) error {
	x, err := shapeLength(n, "x", 0)
	if err != nil {
		return err
	}
	y, err := shapeLength(n, "y", 0)
	if err != nil {
		return err
	}
	w, err := requiredLength(n, "width")
	if err != nil {
		return err
	}
	h, err := requiredLength(n, "height")
	if err != nil {
		return err
	}
	if w < 0 || h < 0 {
		return formatErrorf("<rect> with negative size %g x %g", w, h)
	}
	if w == 0 || h == 0 {
		return nil
	}

	// an absent or "auto" radius mirrors the other one
	rx, rxSet, err := radiusLength(n, "rx")
	if err != nil {
		return err
	}
	ry, rySet, err := radiusLength(n, "ry")
	if err != nil {
		return err
	}
	if !rxSet {
		rx = ry
	}
	if !rySet {
		ry = rx
	}
	if rx < 0 || ry < 0 {
		return formatErrorf("<rect> with negative corner radii %g, %g", rx, ry)
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}

	p.Rectangle(x, y, w, h, rx, ry)
	return nil
}

func buildCircle(p *drawing.PaintedPath, n *node) error {
	cx, err := shapeLength(n, "cx", 0)
	if err != nil {
		return err
	}
	cy, err := shapeLength(n, "cy", 0)
	if err != nil {
		return err
	}
	r, err := requiredLength(n, "r")
	if err != nil {
		return err
	}
	if r < 0 {
		return formatErrorf("<circle> with negative radius %g", r)
	}
	if r == 0 {
		return nil
	}
	p.Circle(cx, cy, r)
	return nil
}

func buildEllipse(p *drawing.PaintedPath, n *node) error {
	cx, err := shapeLength(n, "cx", 0)
	if err != nil {
		return err
	}
	cy, err := shapeLength(n, "cy", 0)
	if err != nil {
		return err
	}
	rx, rxSet, err := radiusLength(n, "rx")
	if err != nil {
		return err
	}
	ry, rySet, err := radiusLength(n, "ry")
	if err != nil {
		return err
	}
	if !rxSet && !rySet {
		return nil // both radii default to zero
	}
	if !rxSet {
		rx = ry
	}
	if !rySet {
		ry = rx
	}
	if rx < 0 || ry < 0 {
		return formatErrorf("<ellipse> with negative radii %g, %g", rx, ry)
	}
	if rx == 0 || ry == 0 {
		return nil
	}
	p.Ellipse(cx, cy, rx, ry)
	return nil
}

func buildLine(p *drawing.PaintedPath, n *node) error {
	x1, err := shapeLength(n, "x1", 0)
	if err != nil {
		return err
	}
	y1, err := shapeLength(n, "y1", 0)
	if err != nil {
		return err
	}
	x2, err := shapeLength(n, "x2", 0)
	if err != nil {
		return err
	}
	y2, err := shapeLength(n, "y2", 0)
	if err != nil {
		return err
	}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return nil
}

func buildPathData(p *drawing.PaintedPath, n *node) error {
	data := n.attr("d")
	if data == "" {
		return nil
	}
	return compilePath(p, data)
}

// Point lists reuse the path grammar: a polyline is the moveto form of its
// points, and a polygon additionally closes the outline.

func buildPolyline(p *drawing.PaintedPath, n *node) error {
	points := n.attr("points")
	if points == "" {
		return nil
	}
	return compilePath(p, "M"+points)
}

func buildPolygon(p *drawing.PaintedPath, n *node) error {
	points := n.attr("points")
	if points == "" {
		return nil
	}
	return compilePath(p, "M"+points+"Z")
}
