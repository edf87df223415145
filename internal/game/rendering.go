package game

import (
	"strings"

	"github.com/tilegames/blokus/internal/game/core"
)

// This file contains the text rendering of the board for the demo
// driver and debugging. The renderer only reads raw cell tags.

// ANSI color codes for board rendering
const (
	colorReset  = "\033[0m"
	colorBlue   = "\033[94m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
	colorGreen  = "\033[92m"
)

const emptySymbol = "·"

var cellSymbols = map[core.Color]string{
	core.Blue:   colorBlue + "B" + colorReset,
	core.Yellow: colorYellow + "Y" + colorReset,
	core.Red:    colorRed + "R" + colorReset,
	core.Green:  colorGreen + "G" + colorReset,
}

// BoardString returns an ANSI-colored text representation of the grid,
// one letter per claimed cell and a dot for empty cells.
func (e *Engine) BoardString() string {
	size := e.board.Size()

	var sb strings.Builder
	// Each cell is a symbol plus a space, colored cells carry ~10 bytes
	// of escape codes.
	sb.Grow(size * size * 12)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			cell, _ := e.board.Cell(row, col)
			if sym, ok := cellSymbols[cell]; ok {
				sb.WriteString(sym)
			} else {
				sb.WriteString(emptySymbol)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
