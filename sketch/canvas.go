package sketch

import (
	"sync"
)

// Point is a pointer position in canvas pixels.
type Point struct {
	X, Y float64
}

// Line is one continuous pointer stroke.
type Line struct {
	Tool   Tool
	Points []Point
}

// Canvas records lines drawn with pointer events.
// A Canvas is safe for concurrent use.
type Canvas struct {
	mu      sync.Mutex
	opts    options
	tool    Tool
	lines   []Line
	drawing bool
}

// New creates an empty canvas using the pen.
func New(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{opts: o}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.opts.width, c.opts.height
}

// SetTool selects the tool for the next line.
func (c *Canvas) SetTool(t Tool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tool = t
}

// Tool returns the selected tool.
func (c *Canvas) Tool() Tool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tool
}

// PointerDown starts a new line at (x, y) with the selected tool.
func (c *Canvas) PointerDown(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.drawing = true
	c.lines = append(c.lines, Line{Tool: c.tool, Points: []Point{{x, y}}})
}

// PointerMove extends the current line. It reports whether a point was
// recorded, which is only the case between PointerDown and PointerUp.
func (c *Canvas) PointerMove(x, y float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.drawing || len(c.lines) == 0 {
		return false
	}
	last := &c.lines[len(c.lines)-1]
	last.Points = append(last.Points, Point{x, y})
	return true
}

// PointerUp finishes the current line.
func (c *Canvas) PointerUp() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.drawing = false
}

// Clear removes all lines.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.drawing = false
}

// Lines returns a deep copy of the recorded lines.
func (c *Canvas) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = Line{Tool: l.Tool, Points: append([]Point(nil), l.Points...)}
	}
	return out
}
