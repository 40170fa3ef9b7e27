package remap

import (
	"fmt"
	"image/color"
)

// RGBA is a straight-alpha color with 0-255 channels.
//
// Channels are plain ints so that out-of-range values coming from user
// input survive until they are validated; see Clamp.
type RGBA struct {
	R, G, B, A int
}

// Common colors.
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 255}
	White       = RGBA{R: 255, G: 255, B: 255, A: 255}
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
)

// Key returns the color as "r_g_b_a", the key format used for unique-color
// tables.
func (c RGBA) Key() string {
	return fmt.Sprintf("%d_%d_%d_%d", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Valid reports whether every channel is within 0-255.
func (c RGBA) Valid() bool {
	return inRange(c.R) && inRange(c.G) && inRange(c.B) && inRange(c.A)
}

// Clamp limits every channel to 0-255.
func (c RGBA) Clamp() RGBA {
	return RGBA{R: clamp255(c.R), G: clamp255(c.G), B: clamp255(c.B), A: clamp255(c.A)}
}

// NRGBA converts to color.NRGBA, clamping out-of-range channels.
func (c RGBA) NRGBA() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: uint8(c.A)}
}

// FromNRGBA converts a color.NRGBA.
func FromNRGBA(c color.NRGBA) RGBA {
	return RGBA{R: int(c.R), G: int(c.G), B: int(c.B), A: int(c.A)}
}

// packed returns the color as a big-endian uint32. Only valid colors pack
// losslessly.
func (c RGBA) packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func inRange(v int) bool {
	return v >= 0 && v <= 255
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Rule replaces every pixel exactly equal to Target with Replacement.
type Rule struct {
	Target      RGBA
	Replacement RGBA
}

// String implements fmt.Stringer.
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Target, r.Replacement)
}

// BackgroundToTransparent returns the rule set that makes the black
// background of a segmentation mask transparent.
func BackgroundToTransparent() []Rule {
	return []Rule{{Target: Black, Replacement: Transparent}}
}

// Highlight returns the rule set that paints the white foreground of a
// segmentation mask with c and makes the black background transparent.
func Highlight(c RGBA) []Rule {
	return []Rule{
		{Target: White, Replacement: c},
		{Target: Black, Replacement: Transparent},
	}
}
