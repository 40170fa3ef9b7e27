package split

import (
	"fmt"
	"math"
)

// Size is the tracked pane size. A nil field has not been measured yet and
// the pane keeps its natural layout size along that axis.
type Size struct {
	Height *int
	Width  *int
}

// HeightValue returns the tracked height and whether it is set.
func (s Size) HeightValue() (int, bool) {
	if s.Height == nil {
		return 0, false
	}
	return *s.Height, true
}

// WidthValue returns the tracked width and whether it is set.
func (s Size) WidthValue() (int, bool) {
	if s.Width == nil {
		return 0, false
	}
	return *s.Width, true
}

// clone returns a copy that shares no pointers with s.
func (s Size) clone() Size {
	var out Size
	if s.Height != nil {
		h := *s.Height
		out.Height = &h
	}
	if s.Width != nil {
		w := *s.Width
		out.Width = &w
	}
	return out
}

// String implements fmt.Stringer.
func (s Size) String() string {
	h, w := "unset", "unset"
	if v, ok := s.HeightValue(); ok {
		h = fmt.Sprint(v)
	}
	if v, ok := s.WidthValue(); ok {
		w = fmt.Sprint(v)
	}
	return fmt.Sprintf("Size{Height: %s, Width: %s}", h, w)
}

// Axis selects which dimension a pane follows.
type Axis uint8

const (
	// Vertical is a top/bottom split: the pane follows the tracked height.
	Vertical Axis = iota

	// Horizontal is a left/right split: the pane follows the tracked width.
	Horizontal
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Bounds limits the tracked size along one axis. Both ends are inclusive.
type Bounds struct {
	Min int
	Max int
}

// Unbounded applies no limit: sizes may become negative or exceed the
// container. This is the default.
var Unbounded = Bounds{Min: math.MinInt, Max: math.MaxInt}

// Clamp returns v limited to [b.Min, b.Max].
func (b Bounds) Clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Add returns v+d limited to [b.Min, b.Max]. A sum that would overflow int
// saturates at the matching bound.
func (b Bounds) Add(v, d int) int {
	switch {
	case d > 0 && v > math.MaxInt-d:
		return b.Max
	case d < 0 && v < math.MinInt-d:
		return b.Min
	}
	return b.Clamp(v + d)
}
