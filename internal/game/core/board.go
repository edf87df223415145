package core

// Board is the square placement grid. Cells are stored row-major, one
// Color tag per cell. A cell never reverts to Empty once a piece has
// been placed over it.
type Board struct {
	size  int
	cells []Color
}

// DefaultBoardSize is the side length of the standard grid.
const DefaultBoardSize = 20

// NewBoard creates an empty square board with the given side length.
func NewBoard(size int) *Board {
	return &Board{size: size, cells: make([]Color, size*size)}
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.size }

func (b *Board) idx(row, col int) int { return row*b.size + col }

// IsOnBoard reports whether (row, col) lies within the grid.
func (b *Board) IsOnBoard(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Cell returns the tag at (row, col). The second return value is false
// when the coordinates lie off the board; probing off-board neighbors
// is a normal part of the legality checks, not an error.
func (b *Board) Cell(row, col int) (Color, bool) {
	if !b.IsOnBoard(row, col) {
		return Empty, false
	}
	return b.cells[b.idx(row, col)], true
}

// SetCell writes a tag at (row, col), reporting whether the
// coordinates were on the board.
func (b *Board) SetCell(row, col int, color Color) bool {
	if !b.IsOnBoard(row, col) {
		return false
	}
	b.cells[b.idx(row, col)] = color
	return true
}

// IsEmptyCell reports whether (row, col) is on the board and unclaimed.
func (b *Board) IsEmptyCell(row, col int) bool {
	c, ok := b.Cell(row, col)
	return ok && c == Empty
}

// Reset clears every cell back to Empty.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := NewBoard(b.size)
	copy(out.cells, b.cells)
	return out
}

// Corners returns the four grid corners, the only anchor candidates
// for a first move.
func (b *Board) Corners() [4]Position {
	n := b.size - 1
	return [4]Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: n},
		{Row: n, Col: 0},
		{Row: n, Col: n},
	}
}

// hasNeighborOfColor reports whether any of the given offsets from pos
// lands on an on-board cell holding color.
func (b *Board) hasNeighborOfColor(pos Position, offsets [4]Position, color Color) bool {
	for _, off := range offsets {
		n := pos.Add(off)
		if c, ok := b.Cell(n.Row, n.Col); ok && c == color {
			return true
		}
	}
	return false
}

// IsValidPlacement decides whether placing the piece's current
// orientation with its bounding-box top-left at pos is legal for
// color. Checks run in a fixed order and short-circuit on the first
// failure:
//
//  1. the bounding box must lie entirely on the board;
//  2. every filled cell must land on an empty grid cell;
//  3. a first move must cover one of the four board corners;
//  4. any later move must touch a same-color cell diagonally and must
//     not touch one orthogonally. Contact with other colors never
//     affects legality.
func (b *Board) IsValidPlacement(piece *Piece, pos Position, color Color, isFirstMove bool) bool {
	height, width := piece.Dimensions()
	if pos.Row < 0 || pos.Col < 0 || pos.Row+height > b.size || pos.Col+width > b.size {
		return false
	}

	filled := piece.FilledCells()
	for _, cell := range filled {
		if !b.IsEmptyCell(pos.Row+cell.Row, pos.Col+cell.Col) {
			return false
		}
	}

	if isFirstMove {
		corners := b.Corners()
		for _, cell := range filled {
			abs := pos.Add(cell)
			for _, corner := range corners {
				if abs == corner {
					return true
				}
			}
		}
		return false
	}

	touchesCorner := false
	for _, cell := range filled {
		abs := pos.Add(cell)
		if b.hasNeighborOfColor(abs, OrthogonalOffsets, color) {
			return false
		}
		if !touchesCorner && b.hasNeighborOfColor(abs, DiagonalOffsets, color) {
			touchesCorner = true
		}
	}
	return touchesCorner
}

// PlacePiece writes the piece's filled cells, relative to pos, into
// the grid with the given color tag. It performs no legality checks;
// callers must have validated the placement first.
func (b *Board) PlacePiece(piece *Piece, pos Position, color Color) {
	for _, cell := range piece.FilledCells() {
		b.SetCell(pos.Row+cell.Row, pos.Col+cell.Col, color)
	}
}

// PlayerCorners returns every empty cell that is diagonally adjacent
// to at least one of color's cells and orthogonally adjacent to none.
// These anchors are the only cells a legal non-first placement can
// hook onto, so they bound the placement search.
func (b *Board) PlayerCorners(color Color) map[Position]struct{} {
	corners := make(map[Position]struct{})
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[b.idx(row, col)] != Empty {
				continue
			}
			pos := Position{Row: row, Col: col}
			if !b.hasNeighborOfColor(pos, DiagonalOffsets, color) {
				continue
			}
			if b.hasNeighborOfColor(pos, OrthogonalOffsets, color) {
				continue
			}
			corners[pos] = struct{}{}
		}
	}
	return corners
}

// FindValidPlacements returns every legal top-left position for the
// piece's current orientation. For a first move only the four board
// corners are candidates. Otherwise candidates are generated from the
// player's anchor set: for each anchor, every top-left position whose
// bounding box could cover that anchor. This keeps the search
// proportional to the anchor frontier times the piece's bounding-box
// area instead of scanning the full grid.
func (b *Board) FindValidPlacements(piece *Piece, color Color, isFirstMove bool) map[Position]struct{} {
	valid := make(map[Position]struct{})

	if isFirstMove {
		for _, corner := range b.Corners() {
			if b.IsValidPlacement(piece, corner, color, true) {
				valid[corner] = struct{}{}
			}
		}
		return valid
	}

	height, width := piece.Dimensions()
	candidates := make(map[Position]struct{})
	for anchor := range b.PlayerCorners(color) {
		rowLo := max(0, anchor.Row-height+1)
		rowHi := min(anchor.Row, b.size-height)
		colLo := max(0, anchor.Col-width+1)
		colHi := min(anchor.Col, b.size-width)
		for row := rowLo; row <= rowHi; row++ {
			for col := colLo; col <= colHi; col++ {
				candidates[Position{Row: row, Col: col}] = struct{}{}
			}
		}
	}

	for pos := range candidates {
		if b.IsValidPlacement(piece, pos, color, false) {
			valid[pos] = struct{}{}
		}
	}
	return valid
}
