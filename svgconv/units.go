package svgconv

import (
	"math"
	"strconv"
	"strings"
)

// All lengths are resolved to PDF points (1/72 inch), the native unit of
// the drawing model; all angles are resolved to radians.

// absoluteUnits maps a length unit to its size in points.
var absoluteUnits = map[string]float64{
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"pt": 1,
	"pc": 12,
	"px": 0.75,
	"q":  72 / 101.6, // quarter-millimeter
}

// relativeUnits are valid per the format but need a context (font metrics,
// viewport) the converter does not model.
var relativeUnits = map[string]bool{
	"%": true, "em": true, "ex": true,
	"ch": true, "rem": true, "vw": true, "vh": true, "vmin": true, "vmax": true,
}

// angleUnits maps an angle unit to its size in radians.
var angleUnits = map[string]float64{
	"deg":  2 * math.Pi / 360,
	"grad": 2 * math.Pi / 400,
	"rad":  1,
	"turn": 2 * math.Pi,
}

// splitUnit separates the trailing unit token of a dimension literal from
// its numeric part.
func splitUnit(s string) (number, unit string) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		i--
	}
	return s[:i], strings.ToLower(strings.TrimSpace(s[i:]))
}

// resolveLength parses a length literal and converts it to points.
// defaultUnit applies when the literal is a bare number; it is usually
// "pt" since user units map one to one to points before the device scale.
func resolveLength(s, defaultUnit string) (float64, error) {
	number, unit := splitUnit(s)
	if unit == "" {
		unit = defaultUnit
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, formatErrorf("invalid length %q", s)
	}
	if mult, ok := absoluteUnits[unit]; ok {
		return value * mult, nil
	}
	if relativeUnits[unit] {
		return 0, UnsupportedFeatureError("relative length unit " + unit)
	}
	return 0, formatErrorf("unknown length unit %q in %q", unit, s)
}

// resolveAngle parses an angle literal and converts it to radians.
func resolveAngle(s, defaultUnit string) (float64, error) {
	number, unit := splitUnit(s)
	if unit == "" {
		unit = defaultUnit
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, formatErrorf("invalid angle %q", s)
	}
	mult, ok := angleUnits[unit]
	if !ok {
		return 0, formatErrorf("unknown angle unit %q in %q", unit, s)
	}
	return value * mult, nil
}

// Length is a root dimension attribute, which may be a percentage of the
// output viewport instead of an absolute value.
type Length struct {
	Value   float64 // points, or a fraction in [0, 1] when Percent
	Percent bool
	IsSet   bool
}

// parseRootLength parses the width or height attribute of the root
// element, where percentages are meaningful.
func parseRootLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, nil
	}
	if strings.HasSuffix(s, "%") {
		value, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
		if err != nil {
			return Length{}, formatErrorf("invalid percentage %q", s)
		}
		return Length{Value: value / 100, Percent: true, IsSet: true}, nil
	}
	value, err := resolveLength(s, "pt")
	if err != nil {
		return Length{}, err
	}
	return Length{Value: value, IsSet: true}, nil
}
