package match

import (
	"time"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
)

// Tally aggregates the outcomes of a run.
type Tally struct {
	Games       int            `json:"games"`
	Player1Wins int            `json:"player1_wins"`
	Player2Wins int            `json:"player2_wins"`
	Draws       int            `json:"draws"`
	TotalMoves  int            `json:"total_moves"`
	Ratings     domain.Ratings `json:"ratings"`
	Duration    time.Duration  `json:"duration_ns"`
}

func NewTally() Tally {
	return Tally{Ratings: domain.NewRatings()}
}

// Add counts one finished game. Unfinished outcomes are ignored.
func (t *Tally) Add(o Outcome) {
	switch {
	case o.Result.IsWinFor(domain.Player1):
		t.Player1Wins++
	case o.Result.IsWinFor(domain.Player2):
		t.Player2Wins++
	case o.Result.Status == domain.StatusDraw:
		t.Draws++
	default:
		return
	}
	t.Games++
	t.TotalMoves += o.Moves
	t.Ratings = t.Ratings.Update(o.Result)
}

// Percent returns n as a percentage of the games played.
func (t Tally) Percent(n int) float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(n) / float64(t.Games) * 100
}

func (t Tally) AverageMoves() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.TotalMoves) / float64(t.Games)
}
