package core

// Piece is a playing piece: an immutable base shape plus a mutable
// working orientation. Transform methods mutate the working matrix in
// place and return the piece for chaining; ResetOrientation restores
// the base shape.
type Piece struct {
	id       string
	color    Color
	original Shape
	current  Shape
	size     int
	height   int
	width    int
}

// NewPiece creates a piece from a shape and a color. The shape is
// defensively copied into both the base and working matrices. The id
// may be empty, in which case the piece reports itself as "Unknown".
func NewPiece(shape Shape, color Color, id string) *Piece {
	p := &Piece{
		id:       id,
		color:    color,
		original: shape.Clone(),
		current:  shape.Clone(),
	}
	p.size = p.current.CellCount()
	p.height, p.width = p.current.Dimensions()
	return p
}

// Clone returns an independent copy of the piece, including its current
// working orientation.
func (p *Piece) Clone() *Piece {
	return &Piece{
		id:       p.id,
		color:    p.color,
		original: p.original.Clone(),
		current:  p.current.Clone(),
		size:     p.size,
		height:   p.height,
		width:    p.width,
	}
}

// ID returns the piece identifier, or "Unknown" when none was given.
func (p *Piece) ID() string {
	if p.id == "" {
		return "Unknown"
	}
	return p.id
}

// Color returns the owning color.
func (p *Piece) Color() Color { return p.color }

// Size returns the number of filled cells.
func (p *Piece) Size() int { return p.size }

// Shape returns the current working matrix. Callers must not mutate it.
func (p *Piece) Shape() Shape { return p.current }

// Dimensions returns the height and width of the current bounding box.
func (p *Piece) Dimensions() (int, int) {
	return p.height, p.width
}

// FilledCells returns the (row, col) offsets within the bounding box
// where the current matrix is filled, in row-major order.
func (p *Piece) FilledCells() []Position {
	filled := make([]Position, 0, p.size)
	for r := 0; r < p.height; r++ {
		for c := 0; c < p.width; c++ {
			if p.current[r][c] != 0 {
				filled = append(filled, Position{Row: r, Col: c})
			}
		}
	}
	return filled
}

// Rotate rotates the working matrix 90 degrees clockwise, rotations
// times (taken mod 4). Returns the piece for chaining.
func (p *Piece) Rotate(rotations int) *Piece {
	k := ((rotations % 4) + 4) % 4
	for i := 0; i < k; i++ {
		p.current = p.current.RotatedCW()
	}
	p.height, p.width = p.current.Dimensions()
	return p
}

// Flip mirrors the working matrix left-to-right. Returns the piece for
// chaining.
func (p *Piece) Flip() *Piece {
	p.current = p.current.FlippedLR()
	return p
}

// ResetOrientation restores the working matrix to the base shape.
func (p *Piece) ResetOrientation() *Piece {
	p.current = p.original.Clone()
	p.height, p.width = p.current.Dimensions()
	return p
}

// Oriented returns a fresh copy of the piece reset to its base shape
// with the given transform applied: rotation clockwise first, then the
// optional flip, the same order move requests use. The receiver is not
// modified. Enumeration loops use this instead of mutating one shared
// working piece across iterations.
func (p *Piece) Oriented(rotations int, flip bool) *Piece {
	out := p.Clone()
	out.ResetOrientation()
	if rotations != 0 {
		out.Rotate(rotations)
	}
	if flip {
		out.Flip()
	}
	return out
}

// Orientations returns every distinct matrix reachable from the current
// orientation by combining an optional flip with 0-3 clockwise
// rotations. Symmetric pieces yield fewer than 8 entries; the order is
// fixed (no-flip before flip, increasing rotation count) and contains
// no structural duplicates. The piece itself is left untouched.
func (p *Piece) Orientations() []Shape {
	seen := make(map[string]struct{}, 8)
	orientations := make([]Shape, 0, 8)

	for _, flip := range []bool{false, true} {
		base := p.current.Clone()
		if flip {
			base = base.FlippedLR()
		}
		for rot := 0; rot < 4; rot++ {
			if rot > 0 {
				base = base.RotatedCW()
			}
			key := base.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			orientations = append(orientations, base.Clone())
		}
	}
	return orientations
}
