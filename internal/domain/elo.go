package domain

import "math"

const (
	KFactor       = 32.0
	InitialRating = 1200.0
)

// Ratings tracks an Elo rating per side across a series of games.
type Ratings struct {
	Player1 float64 `json:"player1"`
	Player2 float64 `json:"player2"`
}

func NewRatings() Ratings {
	return Ratings{Player1: InitialRating, Player2: InitialRating}
}

// Update applies one finished game to both ratings. An unfinished result
// leaves the ratings untouched.
func (r Ratings) Update(res Result) Ratings {
	if !res.IsOver() {
		return r
	}
	score1 := ScoreFor(res, Player1)
	return Ratings{
		Player1: CalculateElo(r.Player1, r.Player2, score1),
		Player2: CalculateElo(r.Player2, r.Player1, 1-score1),
	}
}

// ScoreFor is 1 for a win, 0.5 for a draw and 0 otherwise.
func ScoreFor(res Result, p PlayerID) float64 {
	switch {
	case res.IsWinFor(p):
		return 1
	case res.Status == StatusDraw:
		return 0.5
	default:
		return 0
	}
}

// CalculateElo returns the new rating for player A.
// score is 1.0 for a win, 0.5 for a draw, and 0.0 for a loss.
func CalculateElo(ratingA, ratingB, score float64) float64 {
	expectedScoreA := 1.0 / (1.0 + math.Pow(10.0, (ratingB-ratingA)/400.0))
	return math.Max(0, ratingA+KFactor*(score-expectedScoreA))
}
