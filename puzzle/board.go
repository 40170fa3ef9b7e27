package puzzle

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/gogpu/playground"
	"github.com/gogpu/playground/internal/drag"
)

// Position is the top-left corner of a piece on the board.
type Position struct {
	X, Y int
}

// PieceState is a snapshot of a piece on the board.
type PieceState struct {
	ID     string
	Tile   string
	Pos    Position
	Z      int
	Placed bool
}

type boardPiece struct {
	id     string
	tile   string
	zone   Zone
	pos    Position
	z      int
	placed bool
}

// Board tracks piece positions, stacking order and placement.
// A Board is not safe for concurrent use.
type Board struct {
	layout Layout
	pieces map[string]*boardPiece
	ids    []string

	// zTop is the highest z-order handed out so far; pieces start at 1.
	zTop int

	held   *boardPiece
	origin drag.Origin
}

// NewBoard creates a board for the pieces of layout l. Every piece starts at
// the origin with z-order 1; call Scatter to spread them out.
func NewBoard(pieces []Piece, l Layout) (*Board, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		layout: l,
		pieces: make(map[string]*boardPiece, len(pieces)),
		zTop:   1,
	}
	for _, p := range pieces {
		if _, dup := b.pieces[p.ID]; dup {
			return nil, fmt.Errorf("puzzle: duplicate piece %q", p.ID)
		}
		b.pieces[p.ID] = &boardPiece{
			id:   p.ID,
			tile: p.Tile,
			zone: l.AnswerZone(p.Col, p.Row),
			z:    1,
		}
		b.ids = append(b.ids, p.ID)
	}
	return b, nil
}

// Scatter moves every unplaced piece to a random position inside the
// layout's scatter area.
func (b *Board) Scatter(rng *rand.Rand) {
	for _, id := range b.ids {
		p := b.pieces[id]
		if p.placed {
			continue
		}
		p.pos = Position{
			X: int(rng.Float64() * float64(b.layout.ScatterWidth)),
			Y: int(rng.Float64() * float64(b.layout.ScatterHeight)),
		}
	}
}

// Grab raises the piece above all others and starts dragging it from the
// pointer position (x, y).
func (b *Board) Grab(id string, x, y int) error {
	p, ok := b.pieces[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPiece, id)
	}
	if p.placed {
		return fmt.Errorf("%w: %q", ErrPlaced, id)
	}
	b.zTop++
	p.z = b.zTop
	b.held = p
	b.origin.Begin(x, y)
	return nil
}

// Drag moves the held piece by the pointer movement since the last event.
// It reports whether a piece moved.
func (b *Board) Drag(x, y int) bool {
	dx, dy, ok := b.origin.Delta(x, y)
	if !ok || b.held == nil {
		return false
	}
	b.held.pos.X += dx
	b.held.pos.Y += dy
	return true
}

// Drop releases the held piece. If it lies in its answer zone it is placed
// on its tile, and Drop returns the tile ID and true.
func (b *Board) Drop() (string, bool) {
	b.origin.End()
	p := b.held
	b.held = nil
	if p == nil || !p.zone.Contains(p.pos) {
		return "", false
	}
	p.placed = true
	playground.Logger().Debug("puzzle: piece placed", "piece", p.id, "tile", p.tile)
	return p.tile, true
}

// Held returns the ID of the piece being dragged, or "".
func (b *Board) Held() string {
	if b.held == nil {
		return ""
	}
	return b.held.id
}

// Piece returns the state of piece id.
func (b *Board) Piece(id string) (PieceState, bool) {
	p, ok := b.pieces[id]
	if !ok {
		return PieceState{}, false
	}
	return p.state(), true
}

// Pieces returns every piece in drawing order: lowest z-order first, ties
// in slicing order.
func (b *Board) Pieces() []PieceState {
	out := make([]PieceState, 0, len(b.ids))
	for _, id := range b.ids {
		out = append(out, b.pieces[id].state())
	}
	slices.SortStableFunc(out, func(a, c PieceState) int { return a.Z - c.Z })
	return out
}

// Solved reports whether every piece is placed.
func (b *Board) Solved() bool {
	for _, p := range b.pieces {
		if !p.placed {
			return false
		}
	}
	return len(b.pieces) > 0
}

func (p *boardPiece) state() PieceState {
	return PieceState{ID: p.id, Tile: p.tile, Pos: p.pos, Z: p.z, Placed: p.placed}
}
