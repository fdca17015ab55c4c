package bot

import (
	"math"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
)

// ThreatStrategy scores every column one ply deep: immediate wins, blocks,
// winning threats, line building and centre preference. It is deterministic;
// ties go to the column nearest the centre.
type ThreatStrategy struct {
	side domain.PlayerID
}

func NewThreatStrategy() *ThreatStrategy {
	return &ThreatStrategy{}
}

func (s *ThreatStrategy) Name() string {
	return NameThreat
}

func (s *ThreatStrategy) SetPlayerSide(player domain.PlayerID) {
	s.side = player
}

func (s *ThreatStrategy) Play(board *domain.Board) int {
	validColumns := board.ValidMoves()
	if len(validColumns) == 0 {
		return -1
	}

	player := s.side
	if player == domain.Empty {
		player = board.CurrentPlayer()
	}
	opponent := player.Opponent()

	type simulation struct {
		board *domain.Board
		row   int
	}
	own := make(map[int]simulation, len(validColumns))
	opp := make(map[int]simulation, len(validColumns))
	for _, col := range validColumns {
		ownBoard, ownRow, _ := domain.SimulateMove(board, col, player)
		own[col] = simulation{ownBoard, ownRow}
		oppBoard, oppRow, _ := domain.SimulateMove(board, col, opponent)
		opp[col] = simulation{oppBoard, oppRow}
	}

	currentOpponentThreat := evaluateWinningThreat(board, opponent, player)
	center := board.Rules().Columns / 2

	scores := make(map[int]int, len(validColumns))
	for _, col := range validColumns {
		ownSim, oppSim := own[col], opp[col]
		score := 0

		if ownSim.board.Result().IsWinFor(player) {
			score += SCORE_WIN_NOW
		}
		if oppSim.board.Result().IsWinFor(opponent) {
			score += SCORE_BLOCK_WIN
		}

		score += evaluateWinningThreat(ownSim.board, player, opponent)
		if evaluateWinningThreat(ownSim.board, opponent, player) < currentOpponentThreat {
			score += SCORE_BLOCK_WIN_THREAT
		}

		score += evaluateThreats(ownSim.board, ownSim.row, col, player)
		// half value for blocking vs creating
		score += evaluateThreats(oppSim.board, oppSim.row, col, opponent) / 2

		switch distance(col, center) {
		case 0:
			score += SCORE_CENTER
		case 1:
			score += SCORE_NEAR_CENTER
		case 2:
			score += SCORE_EDGE
		}

		scores[col] = score
	}

	return findBestColumn(validColumns, scores, center)
}

// findBestColumn returns the highest scoring column, preferring the centre on ties.
func findBestColumn(columns []int, scores map[int]int, center int) int {
	bestColumn := columns[0]
	maxScore := math.MinInt
	for _, col := range columns {
		score := scores[col]
		if score > maxScore || (score == maxScore && distance(col, center) < distance(bestColumn, center)) {
			maxScore = score
			bestColumn = col
		}
	}
	return bestColumn
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
