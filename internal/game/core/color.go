package core

// Color is the ownership tag stored in a board cell.
// Empty means no piece covers the cell; the four player colors are
// assigned to seats in the order returned by PlayerColors.
type Color int8

const (
	Empty Color = iota
	Blue
	Yellow
	Red
	Green
)

// MaxPlayers is the number of seat colors the game supports.
const MaxPlayers = 4

// PlayerColors returns the four seat colors in fixed priority order.
func PlayerColors() []Color {
	return []Color{Blue, Yellow, Red, Green}
}

// IsPlayer reports whether the color is one of the four seat colors.
func (c Color) IsPlayer() bool {
	return c >= Blue && c <= Green
}

// String returns a lowercase name for logging and rendering.
func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}
