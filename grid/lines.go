package grid

// Lines is the set of completed rows and columns found by Scan.
type Lines struct {
	Rows []int
	Cols []int
}

// Count returns the number of completed lines.
func (l Lines) Count() int {
	return len(l.Rows) + len(l.Cols)
}

// Empty reports whether no line was completed.
func (l Lines) Empty() bool {
	return l.Count() == 0
}

// Scan collects every fully occupied row and column. Nothing is mutated, so
// the result reflects a single snapshot of the grid.
func Scan(g *Grid) Lines {
	var lines Lines

	for row := 0; row < g.rows; row++ {
		if g.rowFull(row) {
			lines.Rows = append(lines.Rows, row)
		}
	}
	for col := 0; col < g.cols; col++ {
		if g.colFull(col) {
			lines.Cols = append(lines.Cols, col)
		}
	}

	return lines
}

// Clear empties every scanned row, then every scanned column. Cells shared by
// a row and a column are reset twice, which is harmless.
func (l Lines) Clear(g *Grid) {
	for _, row := range l.Rows {
		for col := 0; col < g.cols; col++ {
			g.Clear(row, col)
		}
	}
	for _, col := range l.Cols {
		for row := 0; row < g.rows; row++ {
			g.Clear(row, col)
		}
	}
}

func (g *Grid) rowFull(row int) bool {
	for col := 0; col < g.cols; col++ {
		if !g.cells[row*g.cols+col].Filled {
			return false
		}
	}
	return true
}

func (g *Grid) colFull(col int) bool {
	for row := 0; row < g.rows; row++ {
		if !g.cells[row*g.cols+col].Filled {
			return false
		}
	}
	return true
}
