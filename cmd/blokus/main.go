package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tilegames/blokus/internal/config"
	"github.com/tilegames/blokus/internal/game"
	"github.com/tilegames/blokus/internal/game/core"
	"github.com/tilegames/blokus/internal/game/events"
	"github.com/tilegames/blokus/internal/game/events/subscribers"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	players := flag.Int("players", -1, "Number of players (-1 to use config default)")
	seed := flag.Int64("seed", 0, "RNG seed (0 to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	setupLogging(cfg)

	if *players == -1 {
		*players = game.NumPlayers()
	}
	if *seed == 0 {
		*seed = game.DemoSeed()
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Info().Int64("seed", *seed).Msg("Starting self-play demo")

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("demo_logger", log.Logger, zerolog.DebugLevel))

	e := game.NewEngine(game.BoardSize(), *players)
	e.SetEventBus(bus)

	runSelfPlay(e, rng, cfg.Demo)

	printResults(e)
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}

// runSelfPlay drives the game with random moves until it terminates:
// every player opens on its assigned corner, then each turn picks a
// random piece, orientation and placement from the legal set.
func runSelfPlay(e *game.Engine, rng *rand.Rand, demo config.DemoConfig) {
	// Opening moves: the monomino sits at inventory index 0 and always
	// fits a free corner.
	corners := e.Board().Corners()
	for i := range e.Players() {
		result := e.MakeMove(game.MoveRequest{PieceIndex: 0, Position: corners[i]})
		if !result.OK {
			log.Error().Str("status", string(result.Status)).Msg("Opening move failed")
			return
		}
		maybePrintBoard(e, demo)
	}

	maxTurns := game.DemoMaxTurns()
	for turn := 0; !e.IsGameOver(); turn++ {
		if maxTurns > 0 && turn >= maxTurns {
			log.Info().Int("max_turns", maxTurns).Msg("Turn cap reached, stopping demo")
			return
		}
		if !playRandomMove(e, rng) {
			// The engine only hands the turn to a player with at least
			// one legal move, so the exhaustive pass cannot miss.
			log.Error().Int("player", e.CurrentPlayer().ID).Msg("No move found for movable player")
			return
		}
		maybePrintBoard(e, demo)
	}
}

// playRandomMove walks the current player's pieces in random order and
// commits a random legal placement of the first piece that has one.
func playRandomMove(e *game.Engine, rng *rand.Rand) bool {
	player := e.CurrentPlayer()

	indices := rng.Perm(len(player.Pieces))
	for _, pieceIdx := range indices {
		piece := player.GetPiece(pieceIdx)
		flips := []bool{false, true}
		if rng.Intn(2) == 1 {
			flips[0], flips[1] = flips[1], flips[0]
		}
		for _, flip := range flips {
			for _, rotation := range rng.Perm(4) {
				working := piece.Oriented(rotation, flip)
				placements := e.FindValidPlacements(working)
				if len(placements) == 0 {
					continue
				}
				pos := pickRandomPosition(placements, rng)
				result := e.MakeMove(game.MoveRequest{
					PieceIndex: pieceIdx,
					Position:   pos,
					Rotation:   rotation,
					Flip:       flip,
				})
				if result.OK {
					return true
				}
				log.Warn().Str("status", string(result.Status)).Msg("Unexpected rejection of searched placement")
			}
		}
	}
	return false
}

func pickRandomPosition(placements map[core.Position]struct{}, rng *rand.Rand) core.Position {
	n := rng.Intn(len(placements))
	for pos := range placements {
		if n == 0 {
			return pos
		}
		n--
	}
	// Unreachable: the map is non-empty.
	return core.Position{}
}

func maybePrintBoard(e *game.Engine, demo config.DemoConfig) {
	if demo.PrintBoard {
		fmt.Println(e.BoardString())
	}
}

func printResults(e *game.Engine) {
	fmt.Println("Final board:")
	fmt.Println(e.BoardString())

	scores := e.Scores()
	for i, player := range e.Players() {
		fmt.Printf("%s: %d cells left\n", player.Color, scores[i])
	}
	if winner, ok := e.Winner(); ok {
		fmt.Printf("Winner: player %d\n", winner)
	}
	fmt.Printf("Moves played: %d\n", e.TurnsPlayed())
}
