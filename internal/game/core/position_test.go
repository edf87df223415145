package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_AddSub(t *testing.T) {
	p := NewPosition(3, 4)

	assert.Equal(t, Position{4, 3}, p.Add(Position{1, -1}))
	assert.Equal(t, Position{2, 5}, p.Sub(Position{1, -1}))
	assert.Equal(t, "(3,4)", p.String())
}

func TestNeighborOffsets(t *testing.T) {
	seen := make(map[Position]struct{})
	for _, off := range OrthogonalOffsets {
		assert.Equal(t, 1, abs(off.Row)+abs(off.Col), "orthogonal offsets are one step along an axis")
		seen[off] = struct{}{}
	}
	for _, off := range DiagonalOffsets {
		assert.Equal(t, 1, abs(off.Row))
		assert.Equal(t, 1, abs(off.Col))
		seen[off] = struct{}{}
	}
	assert.Len(t, seen, 8, "the eight neighbor offsets must be distinct")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
