package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
)

func mustParse(t *testing.T, rows ...string) *domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(domain.StandardRules(), rows...)
	require.NoError(t, err)
	return b
}

func newMinimax(t *testing.T, depth int, seed uint64, side domain.PlayerID) *MinimaxStrategy {
	t.Helper()
	s, err := NewMinimaxStrategy(depth, NewRandom(seed))
	require.NoError(t, err)
	s.SetPlayerSide(side)
	return s
}

func TestNewMinimaxStrategy(t *testing.T) {
	for _, depth := range []int{-1, 0, MaxMinimaxDepth + 1} {
		_, err := NewMinimaxStrategy(depth, NewRandom(1))
		assert.ErrorIs(t, err, ErrInvalidDepth, "depth %d", depth)
	}

	s, err := NewMinimaxStrategy(DefaultMinimaxDepth, NewRandom(1))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Depth())
	assert.Equal(t, NameMinimax, s.Name())
}

func TestMinimaxTakesImmediateWin(t *testing.T) {
	board := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"OOO....",
		"XXX....",
	)
	require.Equal(t, domain.Player1, board.CurrentPlayer())

	for depth := 1; depth <= DefaultMinimaxDepth; depth++ {
		for seed := uint64(0); seed < 5; seed++ {
			s := newMinimax(t, depth, seed, domain.Player1)
			assert.Equal(t, 3, s.Play(board), "depth %d seed %d", depth, seed)
		}
	}
}

func TestMinimaxMaximizingPlyMovesForSideOnTheBoard(t *testing.T) {
	// O is to move and X threatens column 3; the maximizing ply drops O
	board := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"O......",
		"XXX.O..",
	)
	require.Equal(t, domain.Player2, board.CurrentPlayer())

	s := newMinimax(t, 2, 1, domain.Player1)
	assert.Equal(t, MinimaxDraw, s.minimax(board, 1, true, domain.Player1))
}

func TestMinimaxMinimizingPlyMovesForOtherSide(t *testing.T) {
	board := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"....X..",
		"OOO.XX.",
	)
	require.Equal(t, domain.Player1, board.CurrentPlayer())
	s := newMinimax(t, 2, 1, domain.Player1)

	for _, col := range board.ValidMoves() {
		child, _, err := domain.SimulateMove(board, col, domain.Player1)
		require.NoError(t, err)
		require.Equal(t, domain.Player2, child.CurrentPlayer())

		// the reply is played as X, so O never completes its row
		assert.Equal(t, MinimaxDraw, s.minimax(child, 1, false, domain.Player1), "column %d", col)
	}
}

func TestMinimaxEqualColumnsAllGetPicked(t *testing.T) {
	board := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"....X..",
		"OOO.XX.",
	)
	s := newMinimax(t, 2, 5, domain.Player1)

	counts := make(map[int]int)
	for i := 0; i < 700; i++ {
		counts[s.Play(board)]++
	}
	assert.Len(t, counts, 7)
}

func TestMinimaxUnboundSideFollowsTurn(t *testing.T) {
	s, err := NewMinimaxStrategy(1, NewRandom(3))
	require.NoError(t, err)

	xToWin := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"OOO....",
		"XXX....",
	)
	oToWin := mustParse(t,
		".......",
		".......",
		".......",
		"X......",
		"X......",
		"XX.OOO.",
	)

	assert.Equal(t, 3, s.Play(xToWin))
	assert.Contains(t, []int{2, 6}, s.Play(oToWin))
	assert.Equal(t, domain.Empty, s.side)
}

func TestMinimaxPlaysForPlayer2(t *testing.T) {
	board := mustParse(t,
		".......",
		".......",
		".......",
		"X......",
		"X......",
		"XX.OOO.",
	)
	require.Equal(t, domain.Player2, board.CurrentPlayer())

	for depth := 1; depth <= 3; depth++ {
		s := newMinimax(t, depth, 7, domain.Player2)
		col := s.Play(board)
		assert.Contains(t, []int{2, 6}, col, "depth %d", depth)
	}
}

func TestMinimaxDoesNotModifyBoard(t *testing.T) {
	board := mustParse(t,
		".......",
		".......",
		".......",
		"...O...",
		"..XX...",
		".OXXO..",
	)
	before := board.Clone()

	s := newMinimax(t, 3, 1, domain.Player2)
	col := s.Play(board)

	assert.True(t, before.IsValidMove(col))
	assert.Equal(t, before, board)
}

func TestMinimaxIsDeterministicForASeed(t *testing.T) {
	board := domain.NewStandardBoard()

	play := func(seed uint64) []int {
		s := newMinimax(t, 2, seed, domain.Player1)
		moves := make([]int, 20)
		for i := range moves {
			moves[i] = s.Play(board)
		}
		return moves
	}

	assert.Equal(t, play(99), play(99))
}

func TestMinimaxBreaksTiesUniformly(t *testing.T) {
	// every column is worth the same on an empty board at depth 1
	board := domain.NewStandardBoard()
	s := newMinimax(t, 1, 42, domain.Player1)

	const trials = 7000
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		counts[s.Play(board)]++
	}

	require.Len(t, counts, 7)
	for col, n := range counts {
		assert.InDelta(t, trials/7, n, 200, "column %d picked %d times", col, n)
	}
}

func TestMinimaxEvaluate(t *testing.T) {
	won := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"XXX....",
		"OOOOX..",
	)
	lost := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"OOO....",
		"XXXXO..",
	)
	open := domain.NewStandardBoard()

	assert.Equal(t, MinimaxWin, evaluate(won, domain.Player2))
	assert.Equal(t, MinimaxLoss, evaluate(lost, domain.Player2))
	assert.Equal(t, MinimaxDraw, evaluate(open, domain.Player2))
}

func TestMinimaxSelfPlayFinishes(t *testing.T) {
	board := domain.NewStandardBoard()
	p1 := newMinimax(t, 2, 3, domain.Player1)
	p2 := newMinimax(t, 2, 4, domain.Player2)
	players := map[domain.PlayerID]*MinimaxStrategy{domain.Player1: p1, domain.Player2: p2}

	for moves := 0; !board.IsGameOver(); moves++ {
		require.Less(t, moves, 42)
		col := players[board.CurrentPlayer()].Play(board)
		_, err := board.MakeMove(col)
		require.NoError(t, err)
	}
}
