package sketch

import (
	"errors"
	"fmt"
)

// ErrUnknownTool is returned by ParseTool for an undefined tool name.
var ErrUnknownTool = errors.New("sketch: unknown tool")

// Tool selects how a line is composited onto the layer.
type Tool int

const (
	// Pen paints the stroke over the layer.
	Pen Tool = iota
	// Eraser clears the layer under the stroke.
	Eraser
)

// String implements fmt.Stringer.
func (t Tool) String() string {
	switch t {
	case Pen:
		return "pen"
	case Eraser:
		return "eraser"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool parses "pen" or "eraser".
func ParseTool(s string) (Tool, error) {
	switch s {
	case "pen":
		return Pen, nil
	case "eraser":
		return Eraser, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}
