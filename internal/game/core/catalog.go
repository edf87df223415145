package core

// PieceDefinition pairs a catalog identifier with its base shape.
type PieceDefinition struct {
	ID    string
	Shape Shape
}

// StandardPieces returns the standard 21-piece catalog in inventory
// order: the monomino, the domino, both trominoes, all five free
// tetrominoes and all twelve free pentominoes. Mirror and rotation
// duplicates are omitted since they are reachable via orientation
// transforms.
func StandardPieces() []PieceDefinition {
	return []PieceDefinition{
		{ID: "1", Shape: Shape{
			{1},
		}},
		{ID: "2", Shape: Shape{
			{1, 1},
		}},

		// Trominoes
		{ID: "I3", Shape: Shape{
			{1, 1, 1},
		}},
		{ID: "V3", Shape: Shape{
			{1, 0},
			{1, 1},
		}},

		// Tetrominoes
		{ID: "I4", Shape: Shape{
			{1, 1, 1, 1},
		}},
		{ID: "L4", Shape: Shape{
			{1, 0},
			{1, 0},
			{1, 1},
		}},
		{ID: "Z4", Shape: Shape{
			{1, 1, 0},
			{0, 1, 1},
		}},
		{ID: "O4", Shape: Shape{
			{1, 1},
			{1, 1},
		}},
		{ID: "T4", Shape: Shape{
			{1, 1, 1},
			{0, 1, 0},
		}},

		// Pentominoes
		{ID: "I5", Shape: Shape{
			{1, 1, 1, 1, 1},
		}},
		{ID: "L5", Shape: Shape{
			{1, 0},
			{1, 0},
			{1, 0},
			{1, 1},
		}},
		{ID: "Y5", Shape: Shape{
			{0, 1},
			{1, 1},
			{0, 1},
			{0, 1},
		}},
		{ID: "N5", Shape: Shape{
			{0, 1},
			{1, 1},
			{1, 0},
			{1, 0},
		}},
		{ID: "P5", Shape: Shape{
			{1, 1},
			{1, 1},
			{1, 0},
		}},
		{ID: "U5", Shape: Shape{
			{1, 0, 1},
			{1, 1, 1},
		}},
		{ID: "V5", Shape: Shape{
			{1, 0, 0},
			{1, 0, 0},
			{1, 1, 1},
		}},
		{ID: "Z5", Shape: Shape{
			{1, 1, 0},
			{0, 1, 0},
			{0, 1, 1},
		}},
		{ID: "T5", Shape: Shape{
			{1, 1, 1},
			{0, 1, 0},
			{0, 1, 0},
		}},
		{ID: "W5", Shape: Shape{
			{1, 0, 0},
			{1, 1, 0},
			{0, 1, 1},
		}},
		{ID: "F5", Shape: Shape{
			{0, 1, 1},
			{1, 1, 0},
			{0, 1, 0},
		}},
		{ID: "X5", Shape: Shape{
			{0, 1, 0},
			{1, 1, 1},
			{0, 1, 0},
		}},
	}
}
