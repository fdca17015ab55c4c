package bot

import "github.com/iamasit07/4-in-a-row/simulator/internal/domain"

// WinOrBlockStrategy takes an immediate win when there is one, otherwise
// blocks the opponent's immediate win, otherwise plays randomly.
type WinOrBlockStrategy struct {
	random Random
	side   domain.PlayerID
}

func NewWinOrBlockStrategy(rnd Random) *WinOrBlockStrategy {
	return &WinOrBlockStrategy{random: rnd}
}

func (s *WinOrBlockStrategy) Name() string {
	return NameWinOrBlock
}

func (s *WinOrBlockStrategy) SetPlayerSide(player domain.PlayerID) {
	s.side = player
}

func (s *WinOrBlockStrategy) Play(board *domain.Board) int {
	validColumns := board.ValidMoves()
	if len(validColumns) == 0 {
		return -1
	}

	player := s.side
	if player == domain.Empty {
		player = board.CurrentPlayer()
	}
	if col, ok := findWinningColumn(board, validColumns, player); ok {
		return col
	}

	opponent := player.Opponent()
	if col, ok := findWinningColumn(board, validColumns, opponent); ok {
		return col
	}

	return pickRandom(validColumns, s.random)
}

// findWinningColumn returns the leftmost column that wins on the spot for player.
func findWinningColumn(board *domain.Board, columns []int, player domain.PlayerID) (int, bool) {
	for _, col := range columns {
		testBoard, _, err := domain.SimulateMove(board, col, player)
		if err != nil {
			continue
		}
		if testBoard.Result().IsWinFor(player) {
			return col, true
		}
	}
	return -1, false
}
