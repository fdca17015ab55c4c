package bot

import "github.com/iamasit07/4-in-a-row/simulator/internal/domain"

// RandomStrategy plays a uniformly random valid column.
type RandomStrategy struct {
	random Random
}

func NewRandomStrategy(rnd Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

func (s *RandomStrategy) Name() string {
	return NameRandom
}

func (s *RandomStrategy) Play(board *domain.Board) int {
	return pickRandom(board.ValidMoves(), s.random)
}

func pickRandom(columns []int, rnd Random) int {
	if len(columns) == 0 {
		return -1
	}
	return columns[rnd.Intn(len(columns))]
}
