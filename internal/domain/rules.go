package domain

// Result scans the whole grid for a line of ToWin equal disks, in the order
// horizontal, vertical, diagonal \ and diagonal /. The first line found
// decides the winner. A full grid without a line is a draw.
func (b *Board) Result() Result {
	rows, cols, n := b.rules.Rows, b.rules.Columns, b.rules.ToWin

	// Check horizontal
	for row := 0; row < rows; row++ {
		for col := 0; col+n <= cols; col++ {
			if b.checkLine(row, col, 0, 1) {
				return Won(b.grid[row][col])
			}
		}
	}

	// Check vertical
	for row := 0; row+n <= rows; row++ {
		for col := 0; col < cols; col++ {
			if b.checkLine(row, col, 1, 0) {
				return Won(b.grid[row][col])
			}
		}
	}

	// Check diagonal \ (down and right)
	for row := 0; row+n <= rows; row++ {
		for col := 0; col+n <= cols; col++ {
			if b.checkLine(row, col, 1, 1) {
				return Won(b.grid[row][col])
			}
		}
	}

	// Check diagonal / (down and left)
	for row := 0; row+n <= rows; row++ {
		for col := n - 1; col < cols; col++ {
			if b.checkLine(row, col, 1, -1) {
				return Won(b.grid[row][col])
			}
		}
	}

	if b.IsFull() {
		return Drawn()
	}
	return InProgress()
}

// checkLine reports whether the ToWin cells starting at (row, col) and
// stepping by (dRow, dCol) all hold the same non-empty disk. Callers keep
// the whole line in bounds.
func (b *Board) checkLine(row, col, dRow, dCol int) bool {
	first := b.grid[row][col]
	if first == Empty {
		return false
	}
	for i := 1; i < b.rules.ToWin; i++ {
		if b.grid[row+i*dRow][col+i*dCol] != first {
			return false
		}
	}
	return true
}
