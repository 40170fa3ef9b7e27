package split

import "math"

// Layouter is the rendered element a pane binding drives.
type Layouter interface {
	// Size returns the element's current rendered size.
	Size() (width, height int)

	// SetHeight pins the element's height to [minH, maxH].
	SetHeight(minH, maxH int)

	// SetWidth pins the element's width to [minW, maxW].
	SetWidth(minW, maxW int)
}

// Pane binds a rendered element to one axis of a Controller.
type Pane struct {
	target   Layouter
	axis     Axis
	scale    float64
	measured bool
}

// Axis returns the axis the pane follows.
func (p *Pane) Axis() Axis {
	return p.axis
}

// Measured reports whether the pane has been measured since it was last
// mounted.
func (p *Pane) Measured() bool {
	return p.measured
}

// measure returns the element's rendered size along the pane's axis,
// scaled by the measure factor.
func (p *Pane) measure() int {
	w, h := p.target.Size()
	v := h
	if p.axis == Horizontal {
		v = w
	}
	if p.scale == 1 {
		return v
	}
	return int(math.Floor(float64(v) * p.scale))
}

// apply pins the element to the tracked size, if one is set.
func (p *Pane) apply(s Size) {
	switch p.axis {
	case Vertical:
		if h, ok := s.HeightValue(); ok {
			p.target.SetHeight(h, h)
		}
	case Horizontal:
		if w, ok := s.WidthValue(); ok {
			p.target.SetWidth(w, w)
		}
	}
}
