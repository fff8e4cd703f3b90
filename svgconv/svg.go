// Package svgconv converts a restricted subset of SVG 1.1 markup into the
// drawing primitives of the drawing package. It is a format converter, not
// a renderer: the output is a tree of styled paths and groups that painting
// backends such as svgpdf and svgraster consume.
package svgconv

import (
	"errors"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/benoitkugler/svg2draw/drawing"
)

// ErrorMode controls how markup relying on unsupported features is
// handled: the offending element is either skipped, skipped with a log
// line, or turned into a parsing error.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

// ViewBox is the user-space rectangle mapped onto the output viewport.
type ViewBox struct {
	X, Y, W, H float64
}

// SVGObject is a converted document, ready to be fitted into a viewport
// and drawn.
type SVGObject struct {
	// Width and Height are the root dimension attributes, when present.
	Width, Height Length
	// ViewBox is nil when the document declares none.
	ViewBox *ViewBox
	// PreserveRatio is false when preserveAspectRatio is "none".
	PreserveRatio bool

	root  *drawing.GraphicsContext
	xrefs map[string]drawing.Renderable
	mode  ErrorMode
}

// Parse reads the document and converts it to drawing primitives.
func Parse(r io.Reader, mode ErrorMode) (*SVGObject, error) {
	root, err := parseTree(r)
	if err != nil {
		return nil, err
	}
	if root.tag != "svg" {
		return nil, StructuralError("root element is <" + root.tag + ">, expected <svg>")
	}

	out := &SVGObject{
		root:          drawing.NewGraphicsContext(),
		xrefs:         map[string]drawing.Renderable{},
		mode:          mode,
		PreserveRatio: true,
	}
	if out.Width, err = parseRootLength(root.attr("width")); err != nil {
		return nil, err
	}
	if out.Height, err = parseRootLength(root.attr("height")); err != nil {
		return nil, err
	}
	if out.ViewBox, err = parseViewBox(root.attr("viewBox")); err != nil {
		return nil, err
	}
	if strings.TrimSpace(root.attr("preserveAspectRatio")) == "none" {
		out.PreserveRatio = false
	}
	if out.root.Style, err = parseStyle(root); err != nil {
		return nil, err
	}

	for _, child := range root.children {
		if err := out.processNode(child, out.root); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ParseFile is a convenience wrapper around Parse reading from a file.
func ParseFile(path string, mode ErrorMode) (*SVGObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, mode)
}

func parseViewBox(s string) (*ViewBox, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := splitArgs(s)
	if len(fields) != 4 {
		return nil, formatErrorf("viewBox expects 4 numbers, got %q", s)
	}
	var vals [4]float64
	for i, f := range fields {
		v, err := resolveLength(f, "pt")
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	if vals[2] < 0 || vals[3] < 0 {
		return nil, formatErrorf("viewBox %q has a negative size", s)
	}
	return &ViewBox{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// processNode converts one element and attaches it to the parent group.
func (o *SVGObject) processNode(n *node, parent *drawing.GraphicsContext) error {
	item, err := o.buildNode(n)
	if err != nil {
		var unsupported UnsupportedFeatureError
		if !errors.As(err, &unsupported) || o.mode == StrictErrorMode {
			return err
		}
		if o.mode == WarnErrorMode {
			log.Println(err)
		}
		return nil
	}
	if item != nil {
		parent.AddItem(item)
	}
	return nil
}

// buildNode converts one element into a drawable item, registering it for
// later use references when it carries an id. Container elements that only
// define content return nil.
func (o *SVGObject) buildNode(n *node) (drawing.Renderable, error) {
	var (
		item drawing.Renderable
		err  error
	)
	switch {
	case n.tag == "g":
		item, err = o.buildGroup(n)
	case n.tag == "use":
		item, err = o.buildUse(n)
	case n.tag == "defs":
		err = o.buildDefinitions(n)
	case shapeBuilders[n.tag] != nil:
		item, err = o.buildShape(n)
	case n.tag == "title" || n.tag == "desc" || n.tag == "metadata":
		// descriptive elements have no graphical output
	default:
		err = UnsupportedFeatureError("element <" + n.tag + ">")
	}
	if err != nil {
		return nil, err
	}
	if id := n.attr("id"); id != "" && item != nil {
		o.xrefs["#"+id] = item
	}
	return item, nil
}

func (o *SVGObject) buildGroup(n *node) (drawing.Renderable, error) {
	g := drawing.NewGraphicsContext()
	var err error
	if g.Style, err = parseStyle(n); err != nil {
		return nil, err
	}
	if g.Transform, err = parseTransform(n.attr("transform")); err != nil {
		return nil, err
	}
	for _, child := range n.children {
		if err := o.processNode(child, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (o *SVGObject) buildShape(n *node) (drawing.Renderable, error) {
	p := drawing.NewPaintedPath()
	var err error
	if p.Style, err = parseStyle(n); err != nil {
		return nil, err
	}
	if p.Transform, err = parseTransform(n.attr("transform")); err != nil {
		return nil, err
	}
	if err := shapeBuilders[n.tag](p, n); err != nil {
		return nil, err
	}
	return p, nil
}

// buildDefinitions converts the children of a defs element so that their
// ids become referenceable, without attaching them to the visible tree.
func (o *SVGObject) buildDefinitions(n *node) error {
	for _, child := range n.children {
		if _, err := o.buildNode(child); err != nil {
			var unsupported UnsupportedFeatureError
			if !errors.As(err, &unsupported) || o.mode == StrictErrorMode {
				return err
			}
			if o.mode == WarnErrorMode {
				log.Println(err)
			}
		}
	}
	return nil
}

// buildUse resolves a use element against the references seen so far in
// document order: only backward references are supported. The target is
// shared, wrapped in a group carrying the use transform and offset.
func (o *SVGObject) buildUse(n *node) (drawing.Renderable, error) {
	href := strings.TrimSpace(n.attr("href"))
	if href == "" {
		return nil, ReferenceError("<use> without an href attribute")
	}
	if !strings.HasPrefix(href, "#") {
		return nil, UnsupportedFeatureError("external reference " + href)
	}
	target, ok := o.xrefs[href]
	if !ok {
		return nil, ReferenceError("reference to unknown or later-defined id " + href)
	}

	g := drawing.NewGraphicsContext()
	var err error
	if g.Style, err = parseStyle(n); err != nil {
		return nil, err
	}
	if g.Transform, err = parseTransform(n.attr("transform")); err != nil {
		return nil, err
	}
	x, err := shapeLength(n, "x", 0)
	if err != nil {
		return nil, err
	}
	y, err := shapeLength(n, "y", 0)
	if err != nil {
		return nil, err
	}
	// the offset applies to the referenced content, before the use transform
	g.Transform = g.Transform.Translate(x, y)
	g.AddItem(target)
	return g, nil
}

// TransformToViewport fits the document into a viewport of width x height
// device units, where scale is the number of device units per point. The
// returned dimensions are the viewport size in points, and the returned
// tree wraps the document content in the fitting transform.
//
// alignViewbox centers the fitted content inside the viewport when the
// aspect ratio is preserved. When ignoreDimensions is true the root
// attributes (width, height, preserveAspectRatio) are ignored and the
// content is stretched to the given viewport. A document with a zero area
// viewBox yields an empty tree and a zero size.
func (o *SVGObject) TransformToViewport(scale, width, height float64, alignViewbox, ignoreDimensions bool) (float64, float64, *drawing.GraphicsContext, error) {
	vpWidth, vpHeight := width, height
	if !ignoreDimensions {
		var err error
		if vpWidth, err = resolveRootDimension(o.Width, width, scale); err != nil {
			return 0, 0, nil, err
		}
		if vpHeight, err = resolveRootDimension(o.Height, height, scale); err != nil {
			return 0, 0, nil, err
		}
	}
	if vpWidth <= 0 || vpHeight <= 0 {
		return 0, 0, nil, FormatError("the output viewport size is undefined")
	}

	m := drawing.Scaling(scale, scale)
	if o.ViewBox != nil {
		vb := *o.ViewBox
		if vb.W == 0 || vb.H == 0 {
			return 0, 0, drawing.NewGraphicsContext(), nil
		}
		m = drawing.Translation(-vb.X, -vb.Y)
		wRatio, hRatio := vpWidth/vb.W, vpHeight/vb.H
		if o.PreserveRatio && !ignoreDimensions {
			ratio := math.Min(wRatio, hRatio)
			m = drawing.Scaling(ratio, ratio).Mult(m)
			if alignViewbox {
				m = drawing.Translation((vpWidth-vb.W*ratio)/2, (vpHeight-vb.H*ratio)/2).Mult(m)
			}
		} else {
			m = drawing.Scaling(wRatio, hRatio).Mult(m)
		}
	}

	wrapper := drawing.NewGraphicsContext()
	wrapper.Transform = m
	wrapper.AddItem(o.root)
	return vpWidth / scale, vpHeight / scale, wrapper, nil
}

// resolveRootDimension turns a root width or height attribute into device
// units, against the caller's viewport for percentages.
func resolveRootDimension(l Length, viewport, scale float64) (float64, error) {
	if !l.IsSet {
		return viewport, nil
	}
	if l.Percent {
		if viewport <= 0 {
			return 0, UnsupportedFeatureError("percentage dimension without an output viewport")
		}
		return l.Value * viewport, nil
	}
	return l.Value * scale, nil
}

// Draw paints the document on the driver after fitting it into the given
// viewport (in device units). It is a convenience wrapper around
// TransformToViewport.
func (o *SVGObject) Draw(d drawing.Driver, scale, width, height float64) error {
	_, _, tree, err := o.TransformToViewport(scale, width, height, true, false)
	if err != nil {
		return err
	}
	tree.Draw(d, 1)
	return nil
}
