package engine

import (
	"fmt"
	"strings"
)

// Grid owns the cells of one round.
// Cells are stored in row-major order: index = row*Cols + col.
type Grid struct {
	params Params
	cells  []Cell
}

// newGrid allocates a covered grid with every value at 0.
func newGrid(p Params) *Grid {
	return &Grid{
		params: p,
		cells:  make([]Cell, p.Size()),
	}
}

// Params returns the round configuration.
func (g *Grid) Params() Params {
	return g.params
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.params.Rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.params.Cols
}

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.params.Rows && p.Col >= 0 && p.Col < g.params.Cols
}

func (g *Grid) index(p Pos) int {
	return p.Row*g.params.Cols + p.Col
}

// mustIndex panics on out-of-range positions. Callers only emit positions
// of the rendered grid, so anything else is a bug.
func (g *Grid) mustIndex(p Pos) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("engine: position %v outside %dx%d grid", p, g.params.Rows, g.params.Cols))
	}
	return g.index(p)
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Pos) Cell {
	return g.cells[g.mustIndex(p)]
}

// neighbours appends the Moore neighbours of p, clipped at the borders, to dst.
func (g *Grid) neighbours(dst []Pos, p Pos) []Pos {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Pos{Row: p.Row + dr, Col: p.Col + dc}
			if g.InBounds(n) {
				dst = append(dst, n)
			}
		}
	}
	return dst
}

// Neighbours returns the Moore neighbourhood of p.
func (g *Grid) Neighbours(p Pos) []Pos {
	g.mustIndex(p)
	return g.neighbours(make([]Pos, 0, 8), p)
}

// String renders the full board, ignoring status: '*' bomb, '.' empty, digits otherwise.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.params.Size() + g.params.Rows)
	for r := 0; r < g.params.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.params.Cols; c++ {
			cell := g.cells[g.index(P(r, c))]
			switch {
			case cell.IsBomb():
				sb.WriteByte('*')
			case cell.IsEmpty():
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + cell.Value))
			}
		}
	}
	return sb.String()
}
