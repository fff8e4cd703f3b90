package svgconv

import (
	"math"
	"strings"

	"github.com/benoitkugler/svg2draw/drawing"
)

// parseTransform compiles a transform attribute into a single matrix. The
// textual functions compose left to right, so the last one in the list is
// the first applied to geometry.
func parseTransform(src string) (drawing.Matrix, error) {
	acc := drawing.Identity
	src = strings.TrimSpace(src)
	for src != "" {
		open := strings.IndexByte(src, '(')
		close := strings.IndexByte(src, ')')
		if open == -1 || close < open {
			return acc, formatErrorf("malformed transform %q", src)
		}
		name := strings.TrimSpace(strings.TrimPrefix(src[:open], ","))
		args := splitArgs(src[open+1 : close])
		src = strings.TrimSpace(src[close+1:])

		m, err := compileTransformFunction(name, args)
		if err != nil {
			return acc, err
		}
		acc = acc.Mult(m)
	}
	return acc, nil
}

func splitArgs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func compileTransformFunction(name string, args []string) (drawing.Matrix, error) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			return drawing.Identity, formatErrorf("matrix expects 6 arguments, got %d", len(args))
		}
		var vals [6]float64
		for i, a := range args {
			v, err := resolveLength(a, "pt")
			if err != nil {
				return drawing.Identity, err
			}
			vals[i] = v
		}
		return drawing.Matrix{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]}, nil

	case "translate":
		x, y, err := oneOrTwoLengths(name, args, 0)
		return drawing.Translation(x, y), err
	case "translateX":
		v, err := oneLength(name, args)
		return drawing.Translation(v, 0), err
	case "translateY":
		v, err := oneLength(name, args)
		return drawing.Translation(0, v), err

	case "scale":
		if len(args) < 1 || len(args) > 2 {
			return drawing.Identity, formatErrorf("%s expects 1 or 2 arguments, got %d", name, len(args))
		}
		x, err := resolveLength(args[0], "pt")
		if err != nil {
			return drawing.Identity, err
		}
		y := x // single argument scales uniformly
		if len(args) == 2 {
			if y, err = resolveLength(args[1], "pt"); err != nil {
				return drawing.Identity, err
			}
		}
		return drawing.Scaling(x, y), nil
	case "scaleX":
		v, err := oneLength(name, args)
		return drawing.Scaling(v, 1), err
	case "scaleY":
		v, err := oneLength(name, args)
		return drawing.Scaling(1, v), err

	case "rotate":
		if len(args) != 1 && len(args) != 3 {
			return drawing.Identity, formatErrorf("rotate expects 1 or 3 arguments, got %d", len(args))
		}
		theta, err := resolveAngle(args[0], "deg")
		if err != nil {
			return drawing.Identity, err
		}
		if len(args) == 1 {
			return drawing.Rotation(theta), nil
		}
		cx, err := resolveLength(args[1], "pt")
		if err != nil {
			return drawing.Identity, err
		}
		cy, err := resolveLength(args[2], "pt")
		if err != nil {
			return drawing.Identity, err
		}
		return drawing.RotationAbout(theta, cx, cy), nil

	case "skew":
		ax, ay, err := oneOrTwoAngles(name, args)
		return drawing.Shearing(math.Tan(ax), math.Tan(ay)), err
	case "skewX":
		a, err := oneAngle(name, args)
		return drawing.Shearing(math.Tan(a), 0), err
	case "skewY":
		a, err := oneAngle(name, args)
		return drawing.Shearing(0, math.Tan(a)), err
	}
	return drawing.Identity, formatErrorf("unsupported transform function %q", name)
}

func oneLength(name string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, formatErrorf("%s expects 1 argument, got %d", name, len(args))
	}
	return resolveLength(args[0], "pt")
}

func oneOrTwoLengths(name string, args []string, defaultY float64) (x, y float64, err error) {
	if len(args) < 1 || len(args) > 2 {
		return 0, 0, formatErrorf("%s expects 1 or 2 arguments, got %d", name, len(args))
	}
	if x, err = resolveLength(args[0], "pt"); err != nil {
		return 0, 0, err
	}
	y = defaultY
	if len(args) == 2 {
		if y, err = resolveLength(args[1], "pt"); err != nil {
			return 0, 0, err
		}
	}
	return x, y, nil
}

func oneAngle(name string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, formatErrorf("%s expects 1 argument, got %d", name, len(args))
	}
	return resolveAngle(args[0], "deg")
}

func oneOrTwoAngles(name string, args []string) (x, y float64, err error) {
	if len(args) < 1 || len(args) > 2 {
		return 0, 0, formatErrorf("%s expects 1 or 2 arguments, got %d", name, len(args))
	}
	if x, err = resolveAngle(args[0], "deg"); err != nil {
		return 0, 0, err
	}
	if len(args) == 2 {
		if y, err = resolveAngle(args[1], "deg"); err != nil {
			return 0, 0, err
		}
	}
	return x, y, nil
}
