package domain

import (
	"fmt"
	"strings"
)

// Board is the grid plus whose turn it is. Row 0 is the top row.
type Board struct {
	rules   Rules
	grid    [][]PlayerID
	current PlayerID
}

// NewBoard returns an empty board with Player1 to move. Rules that fail
// Validate are rejected.
func NewBoard(rules Rules) (*Board, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %d rows, %d columns, connect %d", err, rules.Rows, rules.Columns, rules.ToWin)
	}
	return newBoard(rules), nil
}

// NewStandardBoard returns an empty 6x7 connect-four board.
func NewStandardBoard() *Board {
	return newBoard(StandardRules())
}

func newBoard(rules Rules) *Board {
	grid := make([][]PlayerID, rules.Rows)
	for i := range grid {
		grid[i] = make([]PlayerID, rules.Columns)
	}
	return &Board{rules: rules, grid: grid, current: Player1}
}

func (b *Board) Rules() Rules {
	return b.rules
}

func (b *Board) CurrentPlayer() PlayerID {
	return b.current
}

// SetCurrentPlayer overrides the turn indicator. Used to pick who starts a
// game and by SimulateMove.
func (b *Board) SetCurrentPlayer(p PlayerID) {
	b.current = p
}

// Cell returns the occupant of (row, column), or Empty when out of range.
func (b *Board) Cell(row, column int) PlayerID {
	if !b.inBounds(row, column) {
		return Empty
	}
	return b.grid[row][column]
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= b.rules.Columns {
		return false
	}

	// here grid[0] represents the top row
	return b.grid[0][column] == Empty
}

// MakeMove drops the current player's disk into column and hands the turn
// over. It returns the row the disk landed on, or -1 and ErrInvalidMove
// without touching the board.
func (b *Board) MakeMove(column int) (int, error) {
	if !b.IsValidMove(column) {
		return -1, ErrInvalidMove
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := b.rules.Rows - 1; row >= 0; row-- {
		if b.grid[row][column] == Empty {
			b.grid[row][column] = b.current
			b.current = b.current.Opponent()
			return row, nil
		}
	}

	return -1, ErrInvalidMove
}

// ValidMoves lists the playable columns from left to right.
func (b *Board) ValidMoves() []int {
	validMoves := make([]int, 0, b.rules.Columns)
	for col := 0; col < b.rules.Columns; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.rules.Columns; c++ {
		if b.grid[0][c] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) IsGameOver() bool {
	return b.Result().IsOver()
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	grid := make([][]PlayerID, len(b.grid))
	for i := range b.grid {
		grid[i] = make([]PlayerID, len(b.grid[i]))
		copy(grid[i], b.grid[i])
	}
	return &Board{rules: b.rules, grid: grid, current: b.current}
}

// SimulateMove plays column as player on an independent copy of board.
// The copy's turn indicator is forced to player first, so callers can
// alternate sides explicitly. The source board is never modified.
func SimulateMove(board *Board, column int, player PlayerID) (*Board, int, error) {
	newBoard := board.Clone()
	newBoard.current = player
	row, err := newBoard.MakeMove(column)
	if err != nil {
		return nil, -1, err
	}
	return newBoard, row, nil
}

// CountInDirection counts player's consecutive disks starting one step
// away from (row, column) and walking by (deltaRow, deltaCol).
func (b *Board) CountInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for b.inBounds(r, c) && b.grid[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func (b *Board) inBounds(row, column int) bool {
	return row >= 0 && row < b.rules.Rows && column >= 0 && column < b.rules.Columns
}

// String renders the grid top row first, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.grid {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
		if r < len(b.grid)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard builds a board from rows written top first using '.', 'X' and
// 'O'. Spaces are ignored. The side to move is derived from the disk counts.
func ParseBoard(rules Rules, rows ...string) (*Board, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if len(rows) != rules.Rows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, rules.Rows, len(rows))
	}

	b := newBoard(rules)
	counts := map[PlayerID]int{}
	for r, line := range rows {
		cells := strings.ReplaceAll(line, " ", "")
		if len(cells) != rules.Columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, r, len(cells), rules.Columns)
		}
		for c, ch := range cells {
			switch ch {
			case '.':
				b.grid[r][c] = Empty
			case 'X':
				b.grid[r][c] = Player1
			case 'O':
				b.grid[r][c] = Player2
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrInvalidBoard, ch, r, c)
			}
			counts[b.grid[r][c]]++
		}
	}

	// a disk can never float above an empty cell
	for c := 0; c < rules.Columns; c++ {
		for r := 0; r < rules.Rows-1; r++ {
			if b.grid[r][c] != Empty && b.grid[r+1][c] == Empty {
				return nil, fmt.Errorf("%w: floating disk at row %d column %d", ErrInvalidBoard, r, c)
			}
		}
	}

	if counts[Player1] > counts[Player2] {
		b.current = Player2
	}
	return b, nil
}
