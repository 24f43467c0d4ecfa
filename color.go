package d20hist

import (
	"fmt"
	"image/color"
)

// Palette holds one bar color per face, indexed by face.
type Palette [Faces]color.RGBA

// gradientStep is the per-face increment of the green and blue channels.
const gradientStep = 0x09

// GradientPalette returns the default bar palette: a teal gradient where
// face i has green and blue set to 9*(i+1), red 0 and full alpha.
func GradientPalette() Palette {
	var p Palette
	var g, b uint8
	for i := range p {
		g += gradientStep
		b += gradientStep
		p[i] = color.RGBA{R: 0x00, G: g, B: b, A: 0xff}
	}
	return p
}

// Theme holds the non-palette colors used by the rasterizer.
type Theme struct {
	// Background fills every pixel that is not part of a bar.
	Background color.RGBA

	// Win colors the bar of the face with the highest count.
	Win color.RGBA

	// Lose colors the bar of the face with the lowest count.
	Lose color.RGBA
}

// DefaultTheme returns the dark gray background with green winner and red
// loser bars.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Win:        color.RGBA{R: 0x33, G: 0xcc, B: 0x33, A: 0xff},
		Lose:       color.RGBA{R: 0xcc, G: 0x33, B: 0x33, A: 0xff},
	}
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Colors without an alpha component are opaque.
func ParseHex(hex string) (color.RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	}
	if !ok {
		return color.RGBA{}, fmt.Errorf("d20hist: invalid hex color %q", hex)
	}

	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex accumulates the hex digits of s into val.
// Returns false on the first non-hex character.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
