package svgconv

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/svg2draw/drawing"
)

// styleSetters maps a presentation attribute to the function updating the
// style under construction. The same names are honored inside the style
// attribute, where they take precedence.
var styleSetters = map[string]func(st *drawing.GraphicsStyle, value string) error{
	"fill":              setFill,
	"fill-rule":         setFillRule,
	"fill-opacity":      setFillOpacity,
	"stroke":            setStroke,
	"stroke-width":      setStrokeWidth,
	"stroke-dasharray":  setStrokeDash,
	"stroke-dashoffset": setStrokeDashOffset,
	"stroke-linecap":    setStrokeCap,
	"stroke-linejoin":   setStrokeJoin,
	"stroke-miterlimit": setStrokeMiterLimit,
	"stroke-opacity":    setStrokeOpacity,
}

// parseStyle builds the (unresolved) style of one element from its
// presentation attributes and its style attribute. Every attribute left
// out keeps its zero, inheriting state.
func parseStyle(n *node) (drawing.GraphicsStyle, error) {
	props := map[string]string{}
	for name := range styleSetters {
		if n.hasAttr(name) {
			props[name] = n.attr(name)
		}
	}
	opacity := n.attr("opacity")

	// inline declarations override the presentation attributes
	for _, decl := range strings.Split(n.attr("style"), ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if name == "opacity" {
			opacity = value
		} else if _, known := styleSetters[name]; known {
			props[name] = value
		}
	}

	var st drawing.GraphicsStyle
	for name, value := range props {
		if err := styleSetters[name](&st, value); err != nil {
			return st, err
		}
	}
	if opacity != "" && strings.ToLower(opacity) != "inherit" {
		if err := applyGroupOpacity(&st, opacity); err != nil {
			return st, err
		}
	}
	return st, nil
}

func setFill(st *drawing.GraphicsStyle, value string) error {
	c, state, err := parsePaint(value)
	st.FillColor = drawing.Paint{Color: c, State: state}
	return err
}

func setStroke(st *drawing.GraphicsStyle, value string) error {
	c, state, err := parsePaint(value)
	st.StrokeColor = drawing.Paint{Color: c, State: state}
	return err
}

func setFillRule(st *drawing.GraphicsStyle, value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "nonzero":
		st.FillRule = drawing.NonZero
	case "evenodd":
		st.FillRule = drawing.EvenOdd
	case "inherit":
		st.FillRule = drawing.InheritRule
	default:
		return formatErrorf("invalid fill-rule %q", value)
	}
	return nil
}

func setFillOpacity(st *drawing.GraphicsStyle, value string) error {
	v, err := parseOpacity(value)
	if err != nil {
		return err
	}
	st.FillOpacity = drawing.SomeScalar(v)
	return nil
}

func setStrokeOpacity(st *drawing.GraphicsStyle, value string) error {
	v, err := parseOpacity(value)
	if err != nil {
		return err
	}
	st.StrokeOpacity = drawing.SomeScalar(v)
	return nil
}

// applyGroupOpacity sets both paint opacities to the element opacity
// attribute, which takes precedence over fill-opacity and stroke-opacity,
// so that groups and shapes fade uniformly.
func applyGroupOpacity(st *drawing.GraphicsStyle, value string) error {
	v, err := parseOpacity(value)
	if err != nil {
		return err
	}
	st.FillOpacity = drawing.SomeScalar(v)
	st.StrokeOpacity = drawing.SomeScalar(v)
	return nil
}

// parseOpacity clamps the parsed value to [0, 1] instead of erroring on
// out-of-range input.
func parseOpacity(value string) (float64, error) {
	value = strings.TrimSpace(value)
	var v float64
	var err error
	if strings.HasSuffix(value, "%") {
		v, err = strconv.ParseFloat(strings.TrimSpace(value[:len(value)-1]), 64)
		v /= 100
	} else {
		v, err = strconv.ParseFloat(value, 64)
	}
	if err != nil {
		return 0, formatErrorf("invalid opacity %q", value)
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return v, nil
}

func setStrokeWidth(st *drawing.GraphicsStyle, value string) error {
	if strings.ToLower(strings.TrimSpace(value)) == "inherit" {
		st.StrokeWidth = drawing.Scalar{}
		return nil
	}
	w, err := resolveLength(value, "pt")
	if err != nil {
		return err
	}
	if w < 0 {
		return formatErrorf("negative stroke-width %q", value)
	}
	if w == 0 {
		st.StrokeWidth = drawing.Scalar{State: drawing.Off}
	} else {
		st.StrokeWidth = drawing.SomeScalar(w)
	}
	return nil
}

func setStrokeDash(st *drawing.GraphicsStyle, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "none":
		st.StrokeDash = drawing.Dashes{State: drawing.Off}
		return nil
	case "inherit":
		st.StrokeDash = drawing.Dashes{}
		return nil
	}
	var pattern []float64
	sum := 0.
	for _, field := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' }) {
		d, err := resolveLength(field, "pt")
		if err != nil {
			return err
		}
		if d < 0 {
			return formatErrorf("negative dash length in %q", value)
		}
		pattern = append(pattern, d)
		sum += d
	}
	if len(pattern) == 0 || sum == 0 {
		st.StrokeDash = drawing.Dashes{State: drawing.Off}
		return nil
	}
	if len(pattern)%2 == 1 { // odd lists are repeated once
		pattern = append(pattern, pattern...)
	}
	st.StrokeDash = drawing.Dashes{Pattern: pattern, State: drawing.Set}
	return nil
}

func setStrokeDashOffset(st *drawing.GraphicsStyle, value string) error {
	v, err := resolveLength(value, "pt")
	if err != nil {
		return err
	}
	st.StrokeDashPhase = drawing.SomeScalar(v)
	return nil
}

func setStrokeCap(st *drawing.GraphicsStyle, value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "butt":
		st.StrokeCap = drawing.ButtCap
	case "round":
		st.StrokeCap = drawing.RoundCap
	case "square":
		st.StrokeCap = drawing.SquareCap
	case "inherit":
		st.StrokeCap = drawing.InheritCap
	default:
		return formatErrorf("invalid stroke-linecap %q", value)
	}
	return nil
}

func setStrokeJoin(st *drawing.GraphicsStyle, value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "miter":
		st.StrokeJoin = drawing.MiterJoin
	case "round":
		st.StrokeJoin = drawing.RoundJoin
	case "bevel":
		st.StrokeJoin = drawing.BevelJoin
	case "inherit":
		st.StrokeJoin = drawing.InheritJoin
	default:
		return formatErrorf("invalid stroke-linejoin %q", value)
	}
	return nil
}

func setStrokeMiterLimit(st *drawing.GraphicsStyle, value string) error {
	if strings.ToLower(strings.TrimSpace(value)) == "inherit" {
		st.StrokeMiterLimit = drawing.Scalar{}
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return formatErrorf("invalid stroke-miterlimit %q", value)
	}
	if v < 1 {
		return formatErrorf("stroke-miterlimit %q is less than 1", value)
	}
	st.StrokeMiterLimit = drawing.SomeScalar(v)
	return nil
}
