package game

import (
	"github.com/tilegames/blokus/internal/config"
)

// Board setup functions
func BoardSize() int {
	return config.Get().Game.BoardSize
}

func NumPlayers() int {
	return config.Get().Game.NumPlayers
}

// Demo driver functions
func DemoMaxTurns() int {
	return config.Get().Demo.MaxTurns
}

func DemoSeed() int64 {
	return config.Get().Demo.Seed
}
