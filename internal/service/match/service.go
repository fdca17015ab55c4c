package match

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
	"github.com/iamasit07/4-in-a-row/simulator/internal/service/bot"
)

// Outcome describes one finished game.
type Outcome struct {
	Result  domain.Result
	Starter domain.PlayerID
	Moves   int
	Board   *domain.Board
}

// Recorder receives every finished game of a run, e.g. to keep totals
// across runs.
type Recorder interface {
	Record(ctx context.Context, player1, player2 string, result domain.Result) error
}

// PlayGame plays p1 as Player1 against p2 as Player2 on a fresh board until
// the game is over. Side-aware strategies are bound before the first move.
// A strategy answering an illegal column aborts the game. p1 and p2 must be
// distinct instances.
func PlayGame(rules domain.Rules, p1, p2 bot.Strategy, starter domain.PlayerID) (Outcome, error) {
	board, err := domain.NewBoard(rules)
	if err != nil {
		return Outcome{}, err
	}
	if starter != domain.Player1 && starter != domain.Player2 {
		return Outcome{}, fmt.Errorf("starter %d is not a player", starter)
	}

	strategies := map[domain.PlayerID]bot.Strategy{
		domain.Player1: p1,
		domain.Player2: p2,
	}
	for side, s := range strategies {
		if aware, ok := s.(bot.SideAware); ok {
			aware.SetPlayerSide(side)
		}
	}

	board.SetCurrentPlayer(starter)

	moves := 0
	for !board.IsGameOver() {
		player := board.CurrentPlayer()
		strategy := strategies[player]

		column := strategy.Play(board)
		if _, err := board.MakeMove(column); err != nil {
			return Outcome{}, fmt.Errorf("%s (%s) played column %d after %d moves: %w",
				strategy.Name(), player, column, moves, err)
		}
		moves++
	}

	return Outcome{
		Result:  board.Result(),
		Starter: starter,
		Moves:   moves,
		Board:   board,
	}, nil
}

// progressSteps is how many progress lines a run logs at info level.
const progressSteps = 10

type Service struct {
	rules     domain.Rules
	recorder  Recorder
	alternate bool
}

type Option func(*Service)

// WithRecorder forwards every finished game to r. Recorder failures are
// logged and do not stop the run.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithAlternatingStart controls whether the starting side swaps after every
// game. It is on by default.
func WithAlternatingStart(alternate bool) Option {
	return func(s *Service) {
		s.alternate = alternate
	}
}

func NewService(rules domain.Rules, opts ...Option) *Service {
	s := &Service{rules: rules, alternate: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlayGames plays games between p1 (Player1) and p2 (Player2) and tallies
// the results. The context is checked between games only; a game in
// progress always runs to completion.
func (s *Service) PlayGames(ctx context.Context, games int, p1, p2 bot.Strategy) (Tally, error) {
	tally := NewTally()
	start := time.Now()

	log.Info().Msgf("starting %d games between %s and %s...", games, p1.Name(), p2.Name())

	progressEvery := max(1, games/progressSteps)
	starter := domain.Player1
	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			tally.Duration = time.Since(start)
			return tally, err
		}

		outcome, err := PlayGame(s.rules, p1, p2, starter)
		if err != nil {
			tally.Duration = time.Since(start)
			return tally, fmt.Errorf("game %d: %w", i+1, err)
		}
		tally.Add(outcome)

		log.Debug().
			Int("game", i+1).
			Int("of", games).
			Str("starter", starter.String()).
			Int("moves", outcome.Moves).
			Msgf("completed game with result: %s", outcome.Result)

		if (i+1)%progressEvery == 0 {
			log.Info().Msgf("progress: %d/%d games", i+1, games)
		}

		if s.recorder != nil {
			if err := s.recorder.Record(ctx, p1.Name(), p2.Name(), outcome.Result); err != nil {
				log.Warn().Err(err).Msg("could not record game result")
			}
		}

		if s.alternate {
			starter = starter.Opponent()
		}
	}

	tally.Duration = time.Since(start)
	log.Info().Msgf("completed %d games in %s", tally.Games, tally.Duration.Round(time.Millisecond))
	return tally, nil
}
