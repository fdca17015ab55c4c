package bot

import (
	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
)

const (
	// Score priorities (from highest to lowest)
	SCORE_WIN_NOW           = 100000 // can win immediately
	SCORE_BLOCK_WIN         = 10000  // block opponent's immediate win
	SCORE_CREATE_WIN_THREAT = 8000   // leave a position that wins next move
	SCORE_BLOCK_WIN_THREAT  = 5000   // reduce the opponent's winning threats
	SCORE_THREE_IN_ROW      = 400
	SCORE_TWO_IN_ROW        = 100
	SCORE_ONE_CONNECTION    = 25
	SCORE_CENTER            = 30
	SCORE_NEAR_CENTER       = 20
	SCORE_EDGE              = 5
)

var directions = [][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// evaluateThreats scores the lines running through (row, col) for player,
// counting only lines that can still be extended.
func evaluateThreats(board *domain.Board, row, col int, player domain.PlayerID) int {
	score := 0
	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]

		posCount := board.CountInDirection(row, col, dRow, dCol, player)
		negCount := board.CountInDirection(row, col, -dRow, -dCol, player)
		total := posCount + negCount

		if !checkSpaceForExtension(board, row, col, dRow, dCol, posCount, negCount) {
			continue
		}

		switch {
		case total >= 3:
			score += SCORE_THREE_IN_ROW
		case total == 2:
			score += SCORE_TWO_IN_ROW
		case total == 1:
			score += SCORE_ONE_CONNECTION
		}
	}
	return score
}

// evaluateWinningThreat scores how many immediate wins player has and
// whether the opponent can block them.
func evaluateWinningThreat(board *domain.Board, player, opponent domain.PlayerID) int {
	var winningMoves []int
	for _, col := range board.ValidMoves() {
		testBoard, _, err := domain.SimulateMove(board, col, player)
		if err == nil && testBoard.Result().IsWinFor(player) {
			winningMoves = append(winningMoves, col)
		}
	}

	switch len(winningMoves) {
	case 0:
		return 0
	case 1:
		blockBoard, _, err := domain.SimulateMove(board, winningMoves[0], opponent)
		if err != nil {
			return 0
		}
		if _, ok := findWinningColumn(blockBoard, blockBoard.ValidMoves(), player); ok {
			return SCORE_CREATE_WIN_THREAT / 2
		}
		return SCORE_CREATE_WIN_THREAT / 4
	default:
		// the opponent can only block one of them
		return SCORE_CREATE_WIN_THREAT
	}
}

func checkSpaceForExtension(board *domain.Board, row, col, dRow, dCol, posCount, negCount int) bool {
	posRow := row + dRow*(posCount+1)
	posCol := col + dCol*(posCount+1)
	if isPlayableSpace(board, posRow, posCol) {
		return true
	}

	negRow := row - dRow*(negCount+1)
	negCol := col - dCol*(negCount+1)
	return isPlayableSpace(board, negRow, negCol)
}

// isPlayableSpace reports whether a disk could land on (row, col) next:
// the cell is empty and rests on the bottom or on another disk.
func isPlayableSpace(board *domain.Board, row, col int) bool {
	rules := board.Rules()
	if row < 0 || row >= rules.Rows || col < 0 || col >= rules.Columns {
		return false
	}
	if board.Cell(row, col) != domain.Empty {
		return false
	}
	if row == rules.Rows-1 {
		return true
	}
	return board.Cell(row+1, col) != domain.Empty
}
