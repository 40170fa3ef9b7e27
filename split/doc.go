// Package split implements the drag-resize controller behind a split pane.
//
// A Controller owns a shared size pair (height for a top/bottom split, width
// for a left/right split) and converts a pointer drag on the divider into
// frame-to-frame adjustments of that size. Panes bound to the controller are
// re-laid out after every change so that both sides of the divider move in
// lockstep.
//
// Sizes start unset. The first time a bound pane is mounted its rendered
// size is adopted as the baseline; until then pointer movement has nothing
// to adjust.
//
//	c := split.New(split.WithHeightBounds(100, 800))
//	c.Bind(topPane, split.Vertical)
//	c.Mount()
//
//	c.BeginDrag(x, y) // pointer down on the divider
//	c.Move(x, y)      // pointer move anywhere
//	c.EndDrag()       // pointer up
//
// Controller methods are meant to be called from a single event loop and
// are not safe for concurrent use.
package split
