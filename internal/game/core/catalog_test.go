package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardPieces(t *testing.T) {
	defs := StandardPieces()
	require.Len(t, defs, 21)

	seen := make(map[string]struct{})
	bySize := make(map[int]int)
	for _, def := range defs {
		_, dup := seen[def.ID]
		assert.False(t, dup, "piece id %q appears twice", def.ID)
		seen[def.ID] = struct{}{}

		size := def.Shape.CellCount()
		assert.GreaterOrEqual(t, size, 1)
		assert.LessOrEqual(t, size, 5)
		bySize[size]++

		// Every row of the bounding box must have the same width.
		_, width := def.Shape.Dimensions()
		for _, row := range def.Shape {
			assert.Len(t, row, width, "ragged shape for %q", def.ID)
		}
	}

	// One monomino, one domino, two trominoes, five tetrominoes and
	// twelve pentominoes.
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 2, 4: 5, 5: 12}, bySize)
}

func TestStandardPieces_ShapesAreDistinct(t *testing.T) {
	defs := StandardPieces()

	// No catalog entry may be an orientation of another: the free
	// polyomino set carries each shape exactly once.
	canonical := make(map[string]string)
	for _, def := range defs {
		piece := NewPiece(def.Shape, Blue, def.ID)
		for _, o := range piece.Orientations() {
			if other, ok := canonical[o.Key()]; ok {
				assert.Equal(t, def.ID, other, "%q duplicates %q up to orientation", def.ID, other)
			}
			canonical[o.Key()] = def.ID
		}
	}
}

func TestStandardPieces_InventoryOrder(t *testing.T) {
	defs := StandardPieces()

	expected := []string{
		"1", "2", "I3", "V3",
		"I4", "L4", "Z4", "O4", "T4",
		"I5", "L5", "Y5", "N5", "P5", "U5", "V5", "Z5", "T5", "W5", "F5", "X5",
	}
	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	assert.Equal(t, expected, ids)
}
