package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tilegames/blokus/internal/game/core"
	"github.com/tilegames/blokus/internal/game/events"
)

// MoveStatus is the closed set of outcome messages a move request can
// produce. Validation failures are reported as statuses, not errors;
// no engine state changes on any failure path.
type MoveStatus string

const (
	StatusSuccess       MoveStatus = "Success"
	StatusInvalidMove   MoveStatus = "InvalidMove"
	StatusPieceNotFound MoveStatus = "PieceNotFound"
	StatusGameOver      MoveStatus = "GameOver"
)

// MoveRequest describes one proposed placement: an inventory index,
// a top-left board position and an orientation (rotation applied
// first, then the optional flip).
type MoveRequest struct {
	PieceIndex int
	Position   core.Position
	Rotation   int
	Flip       bool
}

// MoveResult reports the outcome of a move request.
type MoveResult struct {
	OK     bool
	Status MoveStatus
}

// MoveRecord is one entry of the append-only move log.
type MoveRecord struct {
	PlayerID int
	PieceID  string
	Position core.Position
	Rotation int
	Flip     bool
}

// Engine orchestrates one game: it owns the board, the seated players
// in color priority order, the current-turn pointer, the move log and
// the terminal flag. All methods are synchronous; an Engine must not
// be shared across goroutines.
type Engine struct {
	id          string
	board       *core.Board
	players     []*Player
	current     int
	history     []MoveRecord
	turnsPlayed int
	gameOver    bool
	logger      zerolog.Logger
	bus         *events.EventBus
}

// NewEngine creates a game on a boardSize x boardSize grid with
// numPlayers seats (clamped to [2, 4]) assigned the canonical colors
// in priority order.
func NewEngine(boardSize, numPlayers int) *Engine {
	numPlayers = min(max(numPlayers, 2), core.MaxPlayers)

	e := &Engine{
		id:      uuid.NewString(),
		board:   core.NewBoard(boardSize),
		players: make([]*Player, 0, numPlayers),
	}
	e.logger = log.With().Str("component", "engine").Str("game_id", e.id).Logger()

	colors := core.PlayerColors()
	for i := 0; i < numPlayers; i++ {
		e.players = append(e.players, NewPlayer(colors[i], i+1))
	}

	e.logger.Info().
		Int("board_size", boardSize).
		Int("num_players", numPlayers).
		Msg("Game created")
	return e
}

// SetEventBus attaches an event bus; the engine publishes game
// lifecycle and move events to it. A nil bus disables publishing.
func (e *Engine) SetEventBus(bus *events.EventBus) {
	e.bus = bus
	if bus != nil {
		bus.Publish(events.NewGameStartedEvent(e.id, len(e.players), e.board.Size()))
	}
}

func (e *Engine) publish(event events.Event) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}

// ID returns the unique game identifier.
func (e *Engine) ID() string { return e.id }

// Board returns the game board.
func (e *Engine) Board() *core.Board { return e.board }

// Players returns the seated players in turn order.
func (e *Engine) Players() []*Player { return e.players }

// CurrentPlayer returns the player whose turn it is.
func (e *Engine) CurrentPlayer() *Player { return e.players[e.current] }

// CurrentPlayerIndex returns the current seat index (0-based).
func (e *Engine) CurrentPlayerIndex() int { return e.current }

// IsGameOver reports whether the game has reached its terminal state.
func (e *Engine) IsGameOver() bool { return e.gameOver }

// TurnsPlayed returns the number of successfully executed moves.
func (e *Engine) TurnsPlayed() int { return e.turnsPlayed }

// History returns the append-only move log.
func (e *Engine) History() []MoveRecord { return e.history }

// transformedPiece builds the working copy the board validates and
// commits: a fresh orientation of the inventory piece with the
// request's rotation applied first and then the optional flip.
func transformedPiece(piece *core.Piece, req MoveRequest) *core.Piece {
	return piece.Oriented(req.Rotation, req.Flip)
}

// FindValidPlacements returns every legal top-left position for the
// given piece orientation when played by the current player.
func (e *Engine) FindValidPlacements(piece *core.Piece) map[core.Position]struct{} {
	player := e.players[e.current]
	return e.board.FindValidPlacements(piece, player.Color, player.FirstMove)
}

// isValidMove checks a request against the current player's inventory
// and the board without mutating anything.
func (e *Engine) isValidMove(req MoveRequest) bool {
	player := e.players[e.current]
	piece := player.GetPiece(req.PieceIndex)
	if piece == nil {
		return false
	}
	working := transformedPiece(piece, req)
	return e.board.IsValidPlacement(working, req.Position, player.Color, player.FirstMove)
}

// MakeMove validates and executes a move for the current player. On
// success the grid, the player's inventory, the move log, the
// first-move flag and the turn pointer all update together; on any
// failure nothing changes.
func (e *Engine) MakeMove(req MoveRequest) MoveResult {
	if e.gameOver {
		return MoveResult{OK: false, Status: StatusGameOver}
	}

	player := e.players[e.current]

	if !e.isValidMove(req) {
		e.logger.Debug().
			Int("player", player.ID).
			Int("piece_index", req.PieceIndex).
			Stringer("position", req.Position).
			Msg("Move rejected")
		e.publish(events.NewMoveRejectedEvent(e.id, player.ID, req.PieceIndex, req.Position, string(StatusInvalidMove)))
		return MoveResult{OK: false, Status: StatusInvalidMove}
	}

	piece := player.GetPiece(req.PieceIndex)
	if piece == nil {
		// Unreachable after validation, but handled rather than trusted away.
		return MoveResult{OK: false, Status: StatusPieceNotFound}
	}

	working := transformedPiece(piece, req)
	e.board.PlacePiece(working, req.Position, player.Color)
	player.RemovePiece(req.PieceIndex)

	record := MoveRecord{
		PlayerID: player.ID,
		PieceID:  piece.ID(),
		Position: req.Position,
		Rotation: req.Rotation,
		Flip:     req.Flip,
	}
	e.history = append(e.history, record)

	if player.FirstMove {
		player.ToggleFirstMove()
	}
	e.turnsPlayed++

	e.logger.Info().
		Int("player", player.ID).
		Str("piece", record.PieceID).
		Stringer("position", record.Position).
		Int("rotation", record.Rotation).
		Bool("flip", record.Flip).
		Msg("Piece placed")
	e.publish(events.NewMoveExecutedEvent(e.id, record.PlayerID, record.PieceID, record.Position, record.Rotation, record.Flip, e.turnsPlayed))

	e.advanceTurn()
	return MoveResult{OK: true, Status: StatusSuccess}
}

// advanceTurn moves the turn pointer to the next player who can make a
// legal move, skipping blocked seats. If a full cycle finds nobody the
// game ends and the pointer is restored to the player whose move
// triggered the scan.
func (e *Engine) advanceTurn() {
	mover := e.current

	for checked := 0; checked < len(e.players); checked++ {
		e.current = (e.current + 1) % len(e.players)
		if e.CanPlayerMove(e.current) {
			return
		}
		e.logger.Debug().
			Int("player", e.players[e.current].ID).
			Msg("Player has no legal move, skipping")
		e.publish(events.NewTurnSkippedEvent(e.id, e.players[e.current].ID))
	}

	e.gameOver = true
	e.current = mover

	scores := e.Scores()
	winner, _ := e.Winner()
	e.logger.Info().
		Ints("scores", scores).
		Int("winner", winner).
		Int("turns_played", e.turnsPlayed).
		Msg("Game over")
	e.publish(events.NewGameEndedEvent(e.id, winner, scores, e.turnsPlayed))
}

// CanPlayerMove reports whether the seat at index has any legal
// placement. The search is exhaustive with early exit: it re-derives
// everything from current board state, since every move invalidates
// previous answers.
func (e *Engine) CanPlayerMove(index int) bool {
	if index < 0 || index >= len(e.players) {
		return false
	}
	player := e.players[index]

	if !player.HasPiecesRemaining() {
		return false
	}

	if player.FirstMove {
		for _, corner := range e.board.Corners() {
			for _, piece := range player.Pieces {
				for _, flip := range []bool{false, true} {
					for rot := 0; rot < 4; rot++ {
						working := piece.Oriented(rot, flip)
						if e.board.IsValidPlacement(working, corner, player.Color, true) {
							return true
						}
					}
				}
			}
		}
		return false
	}

	anchors := e.board.PlayerCorners(player.Color)
	if len(anchors) == 0 {
		return false
	}

	for anchor := range anchors {
		for _, piece := range player.Pieces {
			for _, flip := range []bool{false, true} {
				for rot := 0; rot < 4; rot++ {
					working := piece.Oriented(rot, flip)
					height, width := working.Dimensions()
					for dr := 0; dr < height; dr++ {
						for dc := 0; dc < width; dc++ {
							pos := core.Position{Row: anchor.Row - dr, Col: anchor.Col - dc}
							if pos.Row < 0 || pos.Col < 0 {
								continue
							}
							if e.board.IsValidPlacement(working, pos, player.Color, false) {
								return true
							}
						}
					}
				}
			}
		}
	}
	return false
}
