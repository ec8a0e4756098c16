package engine

// Reveal uncovers the cell at p and returns how many cells changed to Revealed.
//
// Revealed and Flagged cells are left alone. A numbered cell or a bomb is
// revealed on its own. An empty cell starts a flood fill: every non-bomb
// neighbour of an empty cell in the fill is revealed, and empty neighbours
// extend the fill. Bombs are never revealed by the fill.
func (g *Grid) Reveal(p Pos) int {
	i := g.mustIndex(p)
	cell := &g.cells[i]
	if cell.Status != Covered {
		return 0
	}
	if !cell.IsEmpty() {
		cell.Status = Revealed
		return 1
	}
	return g.flood(p)
}

// flood reveals the empty region around start using a FIFO worklist.
// The visited set lives for this call only, so overlapping fills from
// separate reveals never share state.
func (g *Grid) flood(start Pos) int {
	visited := make([]bool, len(g.cells))
	queue := make([]Pos, 0, 16)
	buf := make([]Pos, 0, 8)

	si := g.index(start)
	visited[si] = true
	g.cells[si].Status = Revealed
	revealed := 1
	queue = append(queue, start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		buf = g.neighbours(buf[:0], cur)
		for _, n := range buf {
			ni := g.index(n)
			if visited[ni] {
				continue
			}
			visited[ni] = true

			cell := &g.cells[ni]
			if cell.IsBomb() {
				continue
			}
			// Flags inside the region are cleared along with the cover.
			if cell.Status != Revealed {
				cell.Status = Revealed
				revealed++
			}
			if cell.IsEmpty() {
				queue = append(queue, n)
			}
		}
	}
	return revealed
}

// ToggleFlag flips a covered cell to flagged and back. Revealed cells are left alone.
func (g *Grid) ToggleFlag(p Pos) {
	cell := &g.cells[g.mustIndex(p)]
	switch cell.Status {
	case Covered:
		cell.Status = Flagged
	case Flagged:
		cell.Status = Covered
	}
}

// RevealAll marks every cell revealed, used to disclose the board once a round ends.
func (g *Grid) RevealAll() {
	for i := range g.cells {
		g.cells[i].Status = Revealed
	}
}
