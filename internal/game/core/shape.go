package core

import "strings"

// Shape is a rectangular binary occupancy matrix describing which cells
// of a piece's bounding box are filled. Rows are row-major; every row
// has the same length.
type Shape [][]uint8

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = make([]uint8, len(row))
		copy(out[i], row)
	}
	return out
}

// Dimensions returns the height and width of the bounding box.
func (s Shape) Dimensions() (int, int) {
	if len(s) == 0 {
		return 0, 0
	}
	return len(s), len(s[0])
}

// CellCount returns the number of filled cells.
func (s Shape) CellCount() int {
	n := 0
	for _, row := range s {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// RotatedCW returns a new shape rotated 90 degrees clockwise.
func (s Shape) RotatedCW() Shape {
	h, w := s.Dimensions()
	out := make(Shape, w)
	for r := 0; r < w; r++ {
		out[r] = make([]uint8, h)
		for c := 0; c < h; c++ {
			out[r][c] = s[h-1-c][r]
		}
	}
	return out
}

// FlippedLR returns a new shape mirrored left-to-right.
func (s Shape) FlippedLR() Shape {
	h, w := s.Dimensions()
	out := make(Shape, h)
	for r := 0; r < h; r++ {
		out[r] = make([]uint8, w)
		for c := 0; c < w; c++ {
			out[r][c] = s[r][w-1-c]
		}
	}
	return out
}

// Equal reports whether two shapes have identical cell contents.
func (s Shape) Equal(other Shape) bool {
	return s.Key() == other.Key()
}

// Key returns a compact textual form of the matrix, usable as a
// deduplication key for structurally identical shapes.
func (s Shape) Key() string {
	var sb strings.Builder
	h, w := s.Dimensions()
	sb.Grow(h*w + h)
	for r, row := range s {
		if r > 0 {
			sb.WriteByte('/')
		}
		for _, v := range row {
			if v != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}
