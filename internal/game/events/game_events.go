package events

import (
	"time"

	"github.com/tilegames/blokus/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted  = "game.started"
	TypeGameEnded    = "game.ended"
	TypeMoveExecuted = "move.executed"
	TypeMoveRejected = "move.rejected"
	TypeTurnSkipped  = "turn.skipped"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	NumPlayers int
	BoardSize  int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, numPlayers, boardSize int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameStarted,
			Time:      time.Now(),
			Game:      gameID,
		},
		NumPlayers: numPlayers,
		BoardSize:  boardSize,
	}
}

// GameEndedEvent is published when no remaining player can place a piece
type GameEndedEvent struct {
	BaseEvent
	Winner    int
	Scores    []int
	FinalTurn int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner int, scores []int, finalTurn int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameEnded,
			Time:      time.Now(),
			Game:      gameID,
		},
		Winner:    winner,
		Scores:    scores,
		FinalTurn: finalTurn,
	}
}

// MoveExecutedEvent is published after a placement has been committed
type MoveExecutedEvent struct {
	BaseEvent
	PlayerID int
	PieceID  string
	Position core.Position
	Rotation int
	Flip     bool
	Turn     int
}

// NewMoveExecutedEvent creates a new MoveExecutedEvent
func NewMoveExecutedEvent(gameID string, playerID int, pieceID string, pos core.Position, rotation int, flip bool, turn int) *MoveExecutedEvent {
	return &MoveExecutedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveExecuted,
			Time:      time.Now(),
			Game:      gameID,
		},
		PlayerID: playerID,
		PieceID:  pieceID,
		Position: pos,
		Rotation: rotation,
		Flip:     flip,
		Turn:     turn,
	}
}

// MoveRejectedEvent is published when a move request fails validation
type MoveRejectedEvent struct {
	BaseEvent
	PlayerID   int
	PieceIndex int
	Position   core.Position
	Reason     string
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, playerID, pieceIndex int, pos core.Position, reason string) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveRejected,
			Time:      time.Now(),
			Game:      gameID,
		},
		PlayerID:   playerID,
		PieceIndex: pieceIndex,
		Position:   pos,
		Reason:     reason,
	}
}

// TurnSkippedEvent is published when a player with no legal placement
// is passed over during turn advancement
type TurnSkippedEvent struct {
	BaseEvent
	PlayerID int
}

// NewTurnSkippedEvent creates a new TurnSkippedEvent
func NewTurnSkippedEvent(gameID string, playerID int) *TurnSkippedEvent {
	return &TurnSkippedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnSkipped,
			Time:      time.Now(),
			Game:      gameID,
		},
		PlayerID: playerID,
	}
}
