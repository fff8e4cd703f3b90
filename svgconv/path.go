package svgconv

import (
	"strconv"

	"github.com/benoitkugler/svg2draw/drawing"
)

// compilePath parses path data and appends its commands to p. The grammar
// follows the SVG 1.1 path syntax: the data must start with a moveto, and
// a command letter may be elided to repeat the previous command (a moveto
// repeats as a lineto).
func compilePath(p *drawing.PaintedPath, data string) error {
	s := pathScanner{data: data}
	var cmd byte
	for {
		s.skipCommaWS()
		if s.atEnd() {
			return nil
		}
		c := s.data[s.pos]
		switch {
		case isPathCommand(c):
			if cmd == 0 && c != 'M' && c != 'm' {
				return formatErrorf("path data must start with a moveto command, got %q", data)
			}
			cmd = c
			s.pos++
		case isLetter(c):
			return formatErrorf("unknown path command %q", c)
		default:
			switch cmd {
			case 0:
				return formatErrorf("path data must start with a moveto command, got %q", data)
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			case 'Z', 'z':
				return formatErrorf("unexpected character %q after closepath", c)
			}
		}
		if err := s.command(p, cmd); err != nil {
			return err
		}
	}
}

func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

type pathScanner struct {
	data string
	pos  int
}

func (s *pathScanner) atEnd() bool { return s.pos >= len(s.data) }

func (s *pathScanner) skipCommaWS() {
	for !s.atEnd() {
		switch s.data[s.pos] {
		case ',', ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// number scans one coordinate. A second decimal point or a sign ends the
// previous number, so that compact data like "1.5.5" or "1-2" scans as two
// coordinates.
func (s *pathScanner) number() (float64, error) {
	s.skipCommaWS()
	start := s.pos
	if !s.atEnd() && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
		s.pos++
	}
	digits, dot := false, false
	for !s.atEnd() {
		c := s.data[s.pos]
		if c >= '0' && c <= '9' {
			digits = true
		} else if c == '.' && !dot {
			dot = true
		} else {
			break
		}
		s.pos++
	}
	if !digits {
		return 0, formatErrorf("expected a number at position %d in %q", start, s.data)
	}
	if !s.atEnd() && (s.data[s.pos] == 'e' || s.data[s.pos] == 'E') {
		s.pos++
		if !s.atEnd() && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
			s.pos++
		}
		expDigits := false
		for !s.atEnd() && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
			expDigits = true
			s.pos++
		}
		if !expDigits {
			return 0, formatErrorf("malformed exponent at position %d in %q", start, s.data)
		}
	}
	v, err := strconv.ParseFloat(s.data[start:s.pos], 64)
	if err != nil {
		return 0, formatErrorf("invalid number %q in path data", s.data[start:s.pos])
	}
	return v, nil
}

func (s *pathScanner) numbers(out []float64) error {
	for i := range out {
		v, err := s.number()
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

// flag scans an arc flag, a single 0 or 1 digit which may directly abut
// the next coordinate.
func (s *pathScanner) flag() (bool, error) {
	s.skipCommaWS()
	if s.atEnd() {
		return false, FormatError("truncated arc command")
	}
	switch s.data[s.pos] {
	case '0':
		s.pos++
		return false, nil
	case '1':
		s.pos++
		return true, nil
	}
	return false, formatErrorf("invalid arc flag %q", s.data[s.pos])
}

func (s *pathScanner) command(p *drawing.PaintedPath, cmd byte) error {
	var buf [6]float64
	switch cmd {
	case 'M', 'm':
		if err := s.numbers(buf[:2]); err != nil {
			return err
		}
		if cmd == 'M' {
			p.MoveTo(buf[0], buf[1])
		} else {
			p.MoveRelative(buf[0], buf[1])
		}
	case 'L', 'l':
		if err := s.numbers(buf[:2]); err != nil {
			return err
		}
		if cmd == 'L' {
			p.LineTo(buf[0], buf[1])
		} else {
			p.LineRelative(buf[0], buf[1])
		}
	case 'H', 'h':
		if err := s.numbers(buf[:1]); err != nil {
			return err
		}
		if cmd == 'H' {
			p.HorizontalLineTo(buf[0])
		} else {
			p.HorizontalLineRelative(buf[0])
		}
	case 'V', 'v':
		if err := s.numbers(buf[:1]); err != nil {
			return err
		}
		if cmd == 'V' {
			p.VerticalLineTo(buf[0])
		} else {
			p.VerticalLineRelative(buf[0])
		}
	case 'C', 'c':
		if err := s.numbers(buf[:6]); err != nil {
			return err
		}
		if cmd == 'C' {
			p.CurveTo(buf[0], buf[1], buf[2], buf[3], buf[4], buf[5])
		} else {
			p.CurveRelative(buf[0], buf[1], buf[2], buf[3], buf[4], buf[5])
		}
	case 'S', 's':
		if err := s.numbers(buf[:4]); err != nil {
			return err
		}
		if cmd == 'S' {
			p.SmoothCurveTo(buf[0], buf[1], buf[2], buf[3])
		} else {
			p.SmoothCurveRelative(buf[0], buf[1], buf[2], buf[3])
		}
	case 'Q', 'q':
		if err := s.numbers(buf[:4]); err != nil {
			return err
		}
		if cmd == 'Q' {
			p.QuadraticCurveTo(buf[0], buf[1], buf[2], buf[3])
		} else {
			p.QuadraticCurveRelative(buf[0], buf[1], buf[2], buf[3])
		}
	case 'T', 't':
		if err := s.numbers(buf[:2]); err != nil {
			return err
		}
		if cmd == 'T' {
			p.SmoothQuadraticCurveTo(buf[0], buf[1])
		} else {
			p.SmoothQuadraticCurveRelative(buf[0], buf[1])
		}
	case 'A', 'a':
		if err := s.numbers(buf[:3]); err != nil {
			return err
		}
		largeArc, err := s.flag()
		if err != nil {
			return err
		}
		sweep, err := s.flag()
		if err != nil {
			return err
		}
		var end [2]float64
		if err := s.numbers(end[:]); err != nil {
			return err
		}
		if cmd == 'A' {
			p.ArcTo(buf[0], buf[1], buf[2], largeArc, sweep, end[0], end[1])
		} else {
			p.ArcRelative(buf[0], buf[1], buf[2], largeArc, sweep, end[0], end[1])
		}
	case 'Z', 'z':
		p.ClosePath()
	}
	return nil
}
