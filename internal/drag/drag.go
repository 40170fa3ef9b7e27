// Package drag tracks the pointer origin of an in-progress drag gesture.
//
// Deltas are frame-local: every call to Delta reports the movement since
// the previous pointer position and then advances the origin.
package drag

// Origin is the last known pointer position of an active gesture.
// The zero value has no gesture in progress.
//
// Both coordinates are set together or cleared together, so a gesture is
// active iff Origin holds a position.
type Origin struct {
	pos *point
}

type point struct {
	x, y int
}

// Begin records the starting pointer position. It always succeeds and
// replaces any gesture already in progress.
func (o *Origin) Begin(x, y int) {
	o.pos = &point{x: x, y: y}
}

// Delta returns the movement since the last recorded position and moves the
// origin to (x, y). ok is false, and the origin untouched, when no gesture
// is active.
func (o *Origin) Delta(x, y int) (dx, dy int, ok bool) {
	if o.pos == nil {
		return 0, 0, false
	}
	dx = x - o.pos.x
	dy = y - o.pos.y
	o.pos.x = x
	o.pos.y = y
	return dx, dy, true
}

// End clears the gesture. Calling End without an active gesture is a no-op.
func (o *Origin) End() {
	o.pos = nil
}

// Active reports whether a gesture is in progress.
func (o *Origin) Active() bool {
	return o.pos != nil
}

// Position returns the current origin. ok is false without an active gesture.
func (o *Origin) Position() (x, y int, ok bool) {
	if o.pos == nil {
		return 0, 0, false
	}
	return o.pos.x, o.pos.y, true
}
