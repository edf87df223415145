package game

import (
	"github.com/tilegames/blokus/internal/game/core"
)

// Player holds one seat's state: its color identity, the ordered
// inventory of unplaced pieces, and whether its opening move is still
// pending. Inventory order is the catalog order; removal is positional
// and shifts later indices down.
type Player struct {
	ID        int
	Color     core.Color
	FirstMove bool
	Pieces    []*core.Piece
}

// NewPlayer creates a player with the full standard piece set.
func NewPlayer(color core.Color, id int) *Player {
	defs := core.StandardPieces()
	p := &Player{
		ID:        id,
		Color:     color,
		FirstMove: true,
		Pieces:    make([]*core.Piece, 0, len(defs)),
	}
	for _, def := range defs {
		p.Pieces = append(p.Pieces, core.NewPiece(def.Shape, color, def.ID))
	}
	return p
}

// GetPiece returns the piece at index, or nil when the index is out of
// range (including negative).
func (p *Player) GetPiece(index int) *core.Piece {
	if index < 0 || index >= len(p.Pieces) {
		return nil
	}
	return p.Pieces[index]
}

// RemovePiece removes and returns the piece at index, or nil when the
// index is out of range.
func (p *Player) RemovePiece(index int) *core.Piece {
	if index < 0 || index >= len(p.Pieces) {
		return nil
	}
	piece := p.Pieces[index]
	p.Pieces = append(p.Pieces[:index], p.Pieces[index+1:]...)
	return piece
}

// HasPiecesRemaining reports whether any pieces are left to place.
func (p *Player) HasPiecesRemaining() bool {
	return len(p.Pieces) > 0
}

// RemainingPieceCount returns the number of unplaced pieces.
func (p *Player) RemainingPieceCount() int {
	return len(p.Pieces)
}

// PiecesBySize returns all remaining pieces with the given cell count.
func (p *Player) PiecesBySize(size int) []*core.Piece {
	var out []*core.Piece
	for _, piece := range p.Pieces {
		if piece.Size() == size {
			out = append(out, piece)
		}
	}
	return out
}

// SmallestPiece returns a remaining piece with the fewest cells, the
// first encountered on ties, or nil when the inventory is empty.
func (p *Player) SmallestPiece() *core.Piece {
	var smallest *core.Piece
	for _, piece := range p.Pieces {
		if smallest == nil || piece.Size() < smallest.Size() {
			smallest = piece
		}
	}
	return smallest
}

// RemainingCellCount returns the total cell count of unplaced pieces;
// it is the player's score, lower being better.
func (p *Player) RemainingCellCount() int {
	total := 0
	for _, piece := range p.Pieces {
		total += piece.Size()
	}
	return total
}

// ToggleFirstMove clears the first-move flag. The flag transitions
// exactly once per game; calling this when it is already cleared is a
// caller contract violation and panics.
func (p *Player) ToggleFirstMove() {
	if !p.FirstMove {
		panic("game: first move flag already cleared")
	}
	p.FirstMove = false
}
