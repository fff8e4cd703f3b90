package drawing

import (
	"errors"
	"strconv"
)

// Color is a plain RGBA color. It implements image/color.Color so painting
// drivers may hand it directly to the standard image machinery.
type Color struct {
	R, G, B, A uint8
}

// NewColor returns an opaque color from 8-bit channels.
func NewColor(r, g, b uint8) Color { return Color{r, g, b, 0xff} }

// RGBA implements color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

var errBadHexColor = errors.New("invalid hexadecimal color")

// ColorFromHexString parses #RGB, #RGBA, #RRGGBB and #RRGGBBAA notations.
func ColorFromHexString(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, errBadHexColor
	}
	hex := s[1:]

	var chans [4]uint8
	chans[3] = 0xff
	switch len(hex) {
	case 3, 4: // single digit per channel, doubled
		for i := 0; i < len(hex); i++ {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return Color{}, errBadHexColor
			}
			chans[i] = uint8(v*16 + v)
		}
	case 6, 8:
		for i := 0; i*2 < len(hex); i++ {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return Color{}, errBadHexColor
			}
			chans[i] = uint8(v)
		}
	default:
		return Color{}, errBadHexColor
	}
	return Color{chans[0], chans[1], chans[2], chans[3]}, nil
}
