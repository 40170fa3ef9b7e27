package puzzle

import (
	"errors"
	"fmt"
)

// Layout errors.
var (
	// ErrInvalidLayout is returned for a layout with non-positive geometry.
	ErrInvalidLayout = errors.New("puzzle: invalid layout")

	// ErrEmptyImage is returned when the source image has no pixels.
	ErrEmptyImage = errors.New("puzzle: empty image")

	// ErrUnknownPiece is returned for a piece ID that is not on the board.
	ErrUnknownPiece = errors.New("puzzle: unknown piece")

	// ErrPlaced is returned when grabbing a piece already placed on its tile.
	ErrPlaced = errors.New("puzzle: piece already placed")
)

// Layout describes the puzzle geometry in pixels.
type Layout struct {
	Cols, Rows  int
	PieceWidth  int
	PieceHeight int

	// Tolerance is the snap distance as a fraction of the piece size.
	Tolerance float64

	// ScatterWidth and ScatterHeight bound the random start positions.
	ScatterWidth  int
	ScatterHeight int
}

// DefaultLayout returns a 3×3 puzzle of 200×200 pieces.
func DefaultLayout() Layout {
	return Layout{
		Cols:          3,
		Rows:          3,
		PieceWidth:    200,
		PieceHeight:   200,
		Tolerance:     0.15,
		ScatterWidth:  600,
		ScatterHeight: 400,
	}
}

// Validate reports whether the layout can be used.
func (l Layout) Validate() error {
	switch {
	case l.Cols <= 0 || l.Rows <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidLayout, l.Cols, l.Rows)
	case l.PieceWidth <= 0 || l.PieceHeight <= 0:
		return fmt.Errorf("%w: piece %dx%d", ErrInvalidLayout, l.PieceWidth, l.PieceHeight)
	case l.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %v", ErrInvalidLayout, l.Tolerance)
	case l.ScatterWidth < 0 || l.ScatterHeight < 0:
		return fmt.Errorf("%w: scatter %dx%d", ErrInvalidLayout, l.ScatterWidth, l.ScatterHeight)
	}
	return nil
}

// Width returns the width of the assembled puzzle.
func (l Layout) Width() int { return l.Cols * l.PieceWidth }

// Height returns the height of the assembled puzzle.
func (l Layout) Height() int { return l.Rows * l.PieceHeight }

// Zone is the inclusive range of top-left positions that snap a piece into
// its tile.
type Zone struct {
	Left, Right float64
	Top, Bottom float64
}

// Contains reports whether p lies in the zone, boundaries included.
func (z Zone) Contains(p Position) bool {
	x, y := float64(p.X), float64(p.Y)
	return z.Left <= x && x <= z.Right && z.Top <= y && y <= z.Bottom
}

// AnswerZone returns the snap zone of the tile at column i, row j.
func (l Layout) AnswerZone(i, j int) Zone {
	w, h := float64(l.PieceWidth), float64(l.PieceHeight)
	left, top := float64(i)*w, float64(j)*h
	return Zone{
		Left:   left - w*l.Tolerance,
		Right:  left + w*l.Tolerance,
		Top:    top - h*l.Tolerance,
		Bottom: top + h*l.Tolerance,
	}
}

// PieceID returns the ID of the piece that belongs at column i, row j.
func PieceID(i, j int) string {
	return fmt.Sprintf("piece_%d_%d", i, j)
}

// TileID returns the ID of the tile at column i, row j.
func TileID(i, j int) string {
	return fmt.Sprintf("tile_%d_%d", i, j)
}
