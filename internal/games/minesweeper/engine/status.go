package engine

// Status scans the grid: Lost if any bomb is revealed, otherwise Won when
// every non-bomb cell is revealed, otherwise Playing. Flags never count as revealed.
func (g *Grid) Status() Status {
	won := true
	for _, cell := range g.cells {
		if cell.IsBomb() {
			if cell.Status == Revealed {
				return Lost
			}
			continue
		}
		if cell.Status != Revealed {
			won = false
		}
	}
	if won {
		return Won
	}
	return Playing
}

// CountFlags returns the number of flagged cells.
func (g *Grid) CountFlags() int {
	n := 0
	for _, cell := range g.cells {
		if cell.Status == Flagged {
			n++
		}
	}
	return n
}

// State returns the flag count and the bombs left to flag.
func (g *Grid) State() State {
	flagged := g.CountFlags()
	return State{
		Flagged:   flagged,
		Remaining: g.params.Bombs - flagged,
	}
}

// SafeRevealed returns the number of revealed non-bomb cells.
func (g *Grid) SafeRevealed() int {
	n := 0
	for _, cell := range g.cells {
		if !cell.IsBomb() && cell.Status == Revealed {
			n++
		}
	}
	return n
}

// View is a read-only copy of the grid for rendering.
type View struct {
	Rows  int
	Cols  int
	Cells [][]Cell // Cells[row][col]
}

// View returns a fresh snapshot. Changes to it never reach the grid.
func (g *Grid) View() View {
	cells := make([][]Cell, g.params.Rows)
	for r := range cells {
		row := make([]Cell, g.params.Cols)
		copy(row, g.cells[r*g.params.Cols:(r+1)*g.params.Cols])
		cells[r] = row
	}
	return View{
		Rows:  g.params.Rows,
		Cols:  g.params.Cols,
		Cells: cells,
	}
}

// At returns the cell at p.
func (v View) At(p Pos) Cell {
	return v.Cells[p.Row][p.Col]
}
