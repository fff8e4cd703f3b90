package svgconv

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/benoitkugler/svg2draw/drawing"
)

// parsePaint interprets a fill or stroke attribute value. The returned
// state is Off for "none" and "transparent", Inherit for "inherit", and
// Set otherwise.
func parsePaint(s string) (drawing.Color, drawing.ValueState, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "inherit":
		return drawing.Color{}, drawing.Inherit, nil
	case "none", "transparent":
		return drawing.Color{}, drawing.Off, nil
	}
	c, err := parseColor(s)
	if err != nil {
		return drawing.Color{}, drawing.Inherit, err
	}
	return c, drawing.Set, nil
}

// parseColor accepts hexadecimal notation, rgb()/rgba() functional
// notation and the SVG named colors.
func parseColor(s string) (drawing.Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := drawing.ColorFromHexString(s)
		if err != nil {
			return drawing.Color{}, formatErrorf("malformed color %q", s)
		}
		return c, nil
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBNotation(lower)
	}
	if c, ok := colornames.Map[lower]; ok {
		return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return drawing.Color{}, formatErrorf("unknown color %q", s)
}

func parseRGBNotation(s string) (drawing.Color, error) {
	open, close := strings.IndexByte(s, '('), strings.IndexByte(s, ')')
	if close < open {
		return drawing.Color{}, formatErrorf("malformed color %q", s)
	}
	fields := strings.Split(s[open+1:close], ",")
	if len(fields) != 3 && len(fields) != 4 {
		return drawing.Color{}, formatErrorf("malformed color %q", s)
	}
	var comps [4]uint8
	comps[3] = 0xFF
	for i, f := range fields {
		f = strings.TrimSpace(f)
		var value float64
		var err error
		if i == 3 { // alpha is a fraction, not a byte
			value, err = strconv.ParseFloat(f, 64)
			value *= 255
		} else if strings.HasSuffix(f, "%") {
			value, err = strconv.ParseFloat(f[:len(f)-1], 64)
			value = value / 100 * 255
		} else {
			value, err = strconv.ParseFloat(f, 64)
		}
		if err != nil {
			return drawing.Color{}, formatErrorf("malformed color component %q", f)
		}
		if value < 0 {
			value = 0
		} else if value > 255 {
			value = 255
		}
		comps[i] = uint8(value + 0.5)
	}
	return drawing.Color{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}
