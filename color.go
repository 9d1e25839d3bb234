package studio

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned by Hex for malformed color strings.
var ErrInvalidHex = errors.New("studio: invalid hex color")

// Color is a straight (non-premultiplied) 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA8 creates a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NRGBA converts the color to the standard library's straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts a standard color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// String returns the color as "#rrggbbaa".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Colors without an alpha component are opaque.
func Hex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint32
	v[3] = 255

	switch len(s) {
	case 3, 4: // RGB, RGBA
		for i := 0; i < len(s); i++ {
			n, ok := parseHex(s[i : i+1])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			v[i] = n * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(s)/2; i++ {
			n, ok := parseHex(s[2*i : 2*i+2])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			v[i] = n
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, nil
}

// parseHex is a helper for hex parsing
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// Common colors
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Transparent = Color{}
)
