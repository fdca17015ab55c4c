package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other side. Empty has no opponent and maps to itself.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return "."
	}
}

// Rules holds the board dimensions and the line length needed to win.
type Rules struct {
	Rows    int
	Columns int
	ToWin   int
}

// StandardRules is the classic 6x7 board with four in a row.
func StandardRules() Rules {
	return Rules{Rows: 6, Columns: 7, ToWin: 4}
}

func (r Rules) Validate() error {
	if r.Rows <= 0 || r.Columns <= 0 || r.ToWin <= 0 {
		return ErrInvalidRules
	}
	if r.ToWin > r.Rows && r.ToWin > r.Columns {
		return ErrInvalidRules
	}
	return nil
}

// Cells is the number of cells on the board, which also bounds the length of a game.
func (r Rules) Cells() int {
	return r.Rows * r.Columns
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Result is the outcome derived from a grid. Winner is only set when Status is StatusWon.
type Result struct {
	Status GameStatus
	Winner PlayerID
}

func InProgress() Result {
	return Result{Status: StatusActive}
}

func Won(p PlayerID) Result {
	return Result{Status: StatusWon, Winner: p}
}

func Drawn() Result {
	return Result{Status: StatusDraw}
}

func (r Result) IsOver() bool {
	return r.Status == StatusWon || r.Status == StatusDraw
}

// IsWinFor reports whether p won.
func (r Result) IsWinFor(p PlayerID) bool {
	return r.Status == StatusWon && r.Winner == p
}

func (r Result) String() string {
	switch r.Status {
	case StatusWon:
		return r.Winner.String() + " wins"
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrInvalidBoard Error = "invalid board"
	ErrInvalidRules Error = "invalid rules"
)
