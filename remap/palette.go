package remap

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Saturation and value used for generated highlight colors. High enough to
// read well over a photo at half opacity.
const (
	paletteSaturation = 0.85
	paletteValue      = 0.95
)

// Distinct returns n opaque colors with hues spread evenly around the color
// wheel, so that neighbouring masks remain distinguishable. The result is
// deterministic. n <= 0 returns nil.
func Distinct(n int) []RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]RGBA, n)
	step := 360.0 / float64(n)
	for i := range n {
		c := colorful.Hsv(float64(i)*step, paletteSaturation, paletteValue)
		r, g, b := c.Clamped().RGB255()
		out[i] = RGBA{R: int(r), G: int(g), B: int(b), A: 255}
	}
	return out
}

// ParseHex parses a "#rrggbb" or "#rrggbbaa" color. The alpha defaults to
// 255 when omitted.
func ParseHex(s string) (RGBA, error) {
	alpha := 255
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return RGBA{}, err
		}
		alpha = int(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, err
	}
	r, g, b := c.RGB255()
	return RGBA{R: int(r), G: int(g), B: int(b), A: alpha}, nil
}
