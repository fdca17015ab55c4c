package bot

import (
	"fmt"
	"math"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
)

const (
	DefaultMinimaxDepth = 4
	MaxMinimaxDepth     = 10

	MinimaxWin  = 1000
	MinimaxLoss = -1000
	MinimaxDraw = 0
)

// MinimaxStrategy searches every line of play up to a fixed depth and only
// scores terminal positions. Leaves cut off by the depth limit count as
// neutral.
type MinimaxStrategy struct {
	depth  int
	side   domain.PlayerID
	random Random
}

// NewMinimaxStrategy returns a strategy searching depth plies, 1 to MaxMinimaxDepth.
func NewMinimaxStrategy(depth int, rnd Random) (*MinimaxStrategy, error) {
	if depth < 1 || depth > MaxMinimaxDepth {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDepth, depth, MaxMinimaxDepth)
	}
	return &MinimaxStrategy{depth: depth, random: rnd}, nil
}

func (s *MinimaxStrategy) Name() string {
	return NameMinimax
}

func (s *MinimaxStrategy) Depth() int {
	return s.depth
}

func (s *MinimaxStrategy) SetPlayerSide(player domain.PlayerID) {
	s.side = player
}

// Play returns the column with the best minimax value. The candidates are
// shuffled first and only a strictly better value replaces the current
// choice, so equally valued columns are picked uniformly at random.
// Without a bound side the strategy plays for the side to move.
func (s *MinimaxStrategy) Play(board *domain.Board) int {
	side := s.side
	if side == domain.Empty {
		side = board.CurrentPlayer()
	}

	validColumns := board.ValidMoves()
	s.random.Shuffle(len(validColumns), func(i, j int) {
		validColumns[i], validColumns[j] = validColumns[j], validColumns[i]
	})

	bestCol := -1
	bestScore := math.MinInt
	for _, col := range validColumns {
		testBoard, _, err := domain.SimulateMove(board, col, board.CurrentPlayer())
		if err != nil {
			continue
		}

		score := s.minimax(testBoard, s.depth-1, false, side)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	return bestCol
}

// minimax scores board for side. A maximizing ply drops the disk of the
// board's current player, a minimizing ply the disk of the other player.
func (s *MinimaxStrategy) minimax(board *domain.Board, depth int, isMaximizing bool, side domain.PlayerID) int {
	if depth == 0 || board.IsGameOver() {
		return evaluate(board, side)
	}

	if isMaximizing {
		maxEval := math.MinInt
		for _, col := range board.ValidMoves() {
			testBoard, _, err := domain.SimulateMove(board, col, board.CurrentPlayer())
			if err != nil {
				continue
			}
			maxEval = max(maxEval, s.minimax(testBoard, depth-1, false, side))
		}
		return maxEval
	}

	minEval := math.MaxInt
	opponent := board.CurrentPlayer().Opponent()
	for _, col := range board.ValidMoves() {
		testBoard, _, err := domain.SimulateMove(board, col, opponent)
		if err != nil {
			continue
		}
		minEval = min(minEval, s.minimax(testBoard, depth-1, true, side))
	}
	return minEval
}

func evaluate(board *domain.Board, side domain.PlayerID) int {
	result := board.Result()
	switch {
	case result.IsWinFor(side):
		return MinimaxWin
	case result.IsWinFor(side.Opponent()):
		return MinimaxLoss
	default:
		return MinimaxDraw
	}
}
