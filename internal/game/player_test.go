package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilegames/blokus/internal/game/core"
)

func TestNewPlayer(t *testing.T) {
	player := NewPlayer(core.Blue, 1)

	assert.Equal(t, 1, player.ID)
	assert.Equal(t, core.Blue, player.Color)
	assert.True(t, player.FirstMove)
	require.Len(t, player.Pieces, 21)

	// Inventory follows catalog order; the monomino always sits first.
	assert.Equal(t, "1", player.Pieces[0].ID())
	assert.Equal(t, 1, player.Pieces[0].Size())
	for _, piece := range player.Pieces {
		assert.Equal(t, core.Blue, piece.Color())
	}
}

func TestPlayer_GetPiece(t *testing.T) {
	player := NewPlayer(core.Red, 3)

	assert.NotNil(t, player.GetPiece(0))
	assert.NotNil(t, player.GetPiece(20))
	assert.Nil(t, player.GetPiece(21))
	assert.Nil(t, player.GetPiece(-1))
}

func TestPlayer_RemovePiece(t *testing.T) {
	player := NewPlayer(core.Yellow, 2)

	removed := player.RemovePiece(0)
	require.NotNil(t, removed)
	assert.Equal(t, "1", removed.ID())
	assert.Equal(t, 20, player.RemainingPieceCount())
	// Removal shifts later indices down.
	assert.Equal(t, "2", player.Pieces[0].ID())

	assert.Nil(t, player.RemovePiece(20))
	assert.Nil(t, player.RemovePiece(-1))
	assert.Equal(t, 20, player.RemainingPieceCount())
}

func TestPlayer_InventoryQueries(t *testing.T) {
	player := NewPlayer(core.Green, 4)

	assert.True(t, player.HasPiecesRemaining())
	assert.Len(t, player.PiecesBySize(5), 12)
	assert.Len(t, player.PiecesBySize(4), 5)
	assert.Empty(t, player.PiecesBySize(6))

	smallest := player.SmallestPiece()
	require.NotNil(t, smallest)
	assert.Equal(t, 1, smallest.Size())

	// Full set: 1 + 2 + 2x3 + 5x4 + 12x5 cells.
	assert.Equal(t, 89, player.RemainingCellCount())

	player.RemovePiece(0)
	assert.Equal(t, 2, player.SmallestPiece().Size())
	assert.Equal(t, 88, player.RemainingCellCount())

	for player.HasPiecesRemaining() {
		player.RemovePiece(0)
	}
	assert.Nil(t, player.SmallestPiece())
	assert.Equal(t, 0, player.RemainingCellCount())
	assert.False(t, player.HasPiecesRemaining())
}

func TestPlayer_ToggleFirstMove(t *testing.T) {
	player := NewPlayer(core.Blue, 1)

	player.ToggleFirstMove()
	assert.False(t, player.FirstMove)

	assert.Panics(t, func() { player.ToggleFirstMove() }, "clearing an already-cleared flag is a contract violation")
}
