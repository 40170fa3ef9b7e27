package split

import (
	"github.com/gogpu/playground"
	"github.com/gogpu/playground/internal/drag"
)

// Controller converts a pointer drag on a divider into incremental changes
// of a shared pane size.
type Controller struct {
	size   Size
	origin drag.Origin
	panes  []*Pane
	opts   options
}

// New creates a controller with both dimensions unset.
func New(opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{opts: o}
}

// Bind attaches a rendered element to the controller along axis.
// The element is measured on the next Mount.
func (c *Controller) Bind(target Layouter, axis Axis, opts ...PaneOption) *Pane {
	p := &Pane{target: target, axis: axis, scale: 1}
	for _, opt := range opts {
		opt(p)
	}
	c.panes = append(c.panes, p)
	return p
}

// Unbind detaches a pane. It reports whether the pane was bound.
func (c *Controller) Unbind(p *Pane) bool {
	for i, q := range c.panes {
		if q == p {
			c.panes = append(c.panes[:i], c.panes[i+1:]...)
			return true
		}
	}
	return false
}

// Mount runs first measurement and lays out the bound panes.
//
// A pane that has not been mounted since the last Unmount measures its
// rendered size only while the tracked size on its axis is unset; a set
// size is kept and never re-read. Calling Mount again is cheap: mounted
// panes are only re-laid out.
func (c *Controller) Mount() {
	changed := false
	for _, p := range c.panes {
		if p.measured {
			continue
		}
		p.measured = true
		switch p.axis {
		case Vertical:
			if c.size.Height == nil {
				h := c.opts.height.Clamp(p.measure())
				c.size.Height = &h
				changed = true
			}
		case Horizontal:
			if c.size.Width == nil {
				w := c.opts.width.Clamp(p.measure())
				c.size.Width = &w
				changed = true
			}
		}
	}
	c.layout()
	if changed {
		playground.Logger().Debug("split: measured", "size", c.size)
		c.notify()
	}
}

// Unmount forgets which panes have been measured, so the next Mount
// measures them again. The tracked size is kept.
func (c *Controller) Unmount() {
	for _, p := range c.panes {
		p.measured = false
	}
	c.origin.End()
}

// BeginDrag records the pointer position at which a drag starts.
// It always succeeds.
func (c *Controller) BeginDrag(x, y int) {
	c.origin.Begin(x, y)
}

// Move applies the pointer movement since the previous position to the
// tracked size and re-lays out the panes. A set height grows by the vertical
// delta and a set width by the horizontal delta; unset dimensions stay
// unset. Without an active drag Move does nothing.
//
// Move reports whether the tracked size changed.
func (c *Controller) Move(x, y int) bool {
	dx, dy, ok := c.origin.Delta(x, y)
	if !ok {
		return false
	}

	changed := false
	if c.size.Height != nil {
		h := c.opts.height.Add(*c.size.Height, dy)
		if h != *c.size.Height {
			*c.size.Height = h
			changed = true
		}
	}
	if c.size.Width != nil {
		w := c.opts.width.Add(*c.size.Width, dx)
		if w != *c.size.Width {
			*c.size.Width = w
			changed = true
		}
	}
	if !changed {
		return false
	}

	playground.Logger().Debug("split: moved", "dx", dx, "dy", dy, "size", c.size)
	c.layout()
	c.notify()
	return true
}

// EndDrag finishes the drag. It is idempotent.
func (c *Controller) EndDrag() {
	c.origin.End()
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.origin.Active()
}

// Size returns a copy of the tracked size.
func (c *Controller) Size() Size {
	return c.size.clone()
}

// SetHeight sets the tracked height directly, clamped to the height bounds.
func (c *Controller) SetHeight(h int) {
	h = c.opts.height.Clamp(h)
	c.size.Height = &h
	c.layout()
	c.notify()
}

// SetWidth sets the tracked width directly, clamped to the width bounds.
func (c *Controller) SetWidth(w int) {
	w = c.opts.width.Clamp(w)
	c.size.Width = &w
	c.layout()
	c.notify()
}

// layout pins every bound pane to the tracked size.
func (c *Controller) layout() {
	for _, p := range c.panes {
		p.apply(c.size)
	}
}

func (c *Controller) notify() {
	if len(c.opts.onChange) == 0 {
		return
	}
	s := c.size.clone()
	for _, fn := range c.opts.onChange {
		fn(s)
	}
}
