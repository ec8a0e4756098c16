package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Generate creates a fresh covered grid with params.Bombs bombs placed by
// rejection sampling: random coordinates are drawn until one without a bomb
// comes up. A nil rng is seeded from the clock.
func Generate(p Params, rng *rand.Rand) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := newGrid(p)
	placed := 0
	for placed < p.Bombs {
		pos := Pos{Row: rng.Intn(p.Rows), Col: rng.Intn(p.Cols)}
		cell := &g.cells[g.index(pos)]
		if cell.IsBomb() {
			continue
		}
		cell.Value = Bomb
		placed++
	}

	g.computeValues()
	return g, nil
}

// NewGridWithBombs creates a covered grid with bombs at the given positions.
// The number of positions must match params.Bombs and every position must be
// distinct and inside the grid.
func NewGridWithBombs(p Params, bombs []Pos) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(bombs) != p.Bombs {
		return nil, fmt.Errorf("%w: %d bomb positions for %d bombs", ErrInvalidParams, len(bombs), p.Bombs)
	}

	g := newGrid(p)
	for _, pos := range bombs {
		if !g.InBounds(pos) {
			return nil, fmt.Errorf("%w: bomb %v outside %dx%d grid", ErrInvalidParams, pos, p.Rows, p.Cols)
		}
		cell := &g.cells[g.index(pos)]
		if cell.IsBomb() {
			return nil, fmt.Errorf("%w: duplicate bomb at %v", ErrInvalidParams, pos)
		}
		cell.Value = Bomb
	}

	g.computeValues()
	return g, nil
}

// computeValues sets every non-bomb cell to its adjacent bomb count.
func (g *Grid) computeValues() {
	buf := make([]Pos, 0, 8)
	for r := 0; r < g.params.Rows; r++ {
		for c := 0; c < g.params.Cols; c++ {
			pos := P(r, c)
			cell := &g.cells[g.index(pos)]
			if cell.IsBomb() {
				continue
			}
			count := 0
			buf = g.neighbours(buf[:0], pos)
			for _, n := range buf {
				if g.cells[g.index(n)].IsBomb() {
					count++
				}
			}
			cell.Value = count
		}
	}
}
