package game

// Scores returns each seat's remaining cell count in seat order.
// Lower is better; a player who placed everything scores zero.
func (e *Engine) Scores() []int {
	scores := make([]int, len(e.players))
	for i, player := range e.players {
		scores[i] = player.RemainingCellCount()
	}
	return scores
}

// Winner returns the 1-based seat ID with the lowest remaining cell
// count, ties going to the earlier seat. The second return value is
// false while the game is still in progress.
func (e *Engine) Winner() (int, bool) {
	if !e.gameOver {
		return 0, false
	}
	best := 0
	for i, player := range e.players {
		if player.RemainingCellCount() < e.players[best].RemainingCellCount() {
			best = i
		}
	}
	return e.players[best].ID, true
}
