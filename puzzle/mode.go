package puzzle

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned for a Mode outside the defined constants.
var ErrUnknownMode = errors.New("puzzle: unknown mode")

// Mode selects how the generated image is presented.
type Mode int

const (
	// ModeImage shows the image as is.
	ModeImage Mode = iota
	// ModeEasy shows the pieces next to their grid.
	ModeEasy
	// ModeHard fetches a freshly cut puzzle and hides the image.
	ModeHard
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeImage:
		return "image"
	case ModeEasy:
		return "easy"
	case ModeHard:
		return "hard"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the String form of a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "image":
		return ModeImage, nil
	case "easy":
		return ModeEasy, nil
	case "hard":
		return ModeHard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Transition is the set of view changes caused by selecting a mode.
type Transition struct {
	ShowImage bool
	ShowEasy  bool
	ShowHard  bool

	// FetchPuzzle asks the caller to cut a new puzzle.
	FetchPuzzle bool
}

// Selector remembers the current mode.
type Selector struct {
	current Mode
}

// NewSelector returns a selector starting in mode m.
func NewSelector(m Mode) *Selector {
	return &Selector{current: m}
}

// Current returns the selected mode.
func (s *Selector) Current() Mode {
	return s.current
}

// Select switches to mode m. Selecting the current mode changes nothing and
// returns false.
func (s *Selector) Select(m Mode) (Transition, bool, error) {
	var t Transition
	switch m {
	case ModeImage:
		t = Transition{ShowImage: true}
	case ModeEasy:
		t = Transition{ShowEasy: true}
	case ModeHard:
		t = Transition{ShowHard: true, FetchPuzzle: true}
	default:
		return Transition{}, false, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	if m == s.current {
		return Transition{}, false, nil
	}
	s.current = m
	return t, true, nil
}
