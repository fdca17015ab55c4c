package bot

import (
	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
	"golang.org/x/exp/rand"
)

// Strategy picks a column for the side to move. Play must only be called
// while the game is not over, and must not modify the board it is handed.
type Strategy interface {
	Name() string
	Play(board *domain.Board) int
}

// SideAware strategies evaluate positions from a fixed side, bound once per
// game before the first Play.
type SideAware interface {
	Strategy
	SetPlayerSide(player domain.PlayerID)
}

// Random is the source of randomness strategies draw from.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Random interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a seeded source. The same seed replays the same choices.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}
