package engine_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/engine"
)

// countAdjacentBombs recomputes a cell value independently of the engine.
func countAdjacentBombs(g *engine.Grid, p engine.Pos) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := engine.P(p.Row+dr, p.Col+dc)
			if g.InBounds(n) && g.Cell(n).IsBomb() {
				count++
			}
		}
	}
	return count
}

func checkInvariant(t *testing.T, g *engine.Grid) {
	t.Helper()
	bombs := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := engine.P(r, c)
			cell := g.Cell(p)
			if cell.Status != engine.Covered {
				t.Errorf("cell %v: expected covered, got %v", p, cell.Status)
			}
			if cell.IsBomb() {
				bombs++
				continue
			}
			if want := countAdjacentBombs(g, p); cell.Value != want {
				t.Errorf("cell %v: value %d, want %d\n%s", p, cell.Value, want, g)
			}
		}
	}
	if bombs != g.Params().Bombs {
		t.Errorf("expected %d bombs, got %d", g.Params().Bombs, bombs)
	}
}

func TestGenerateInvariant(t *testing.T) {
	params := []engine.Params{
		{Rows: 1, Cols: 1, Bombs: 0},
		{Rows: 1, Cols: 1, Bombs: 1},
		{Rows: 3, Cols: 3, Bombs: 1},
		{Rows: 9, Cols: 9, Bombs: 10},
		{Rows: 16, Cols: 16, Bombs: 40},
		{Rows: 16, Cols: 30, Bombs: 99},
		{Rows: 4, Cols: 7, Bombs: 28},
		{Rows: 1, Cols: 20, Bombs: 5},
	}

	for _, p := range params {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := engine.Generate(p, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("Generate(%+v) failed: %v", p, err)
			}
			if g.Rows() != p.Rows || g.Cols() != p.Cols {
				t.Fatalf("expected %dx%d grid, got %dx%d", p.Rows, p.Cols, g.Rows(), g.Cols())
			}
			checkInvariant(t, g)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	p := engine.Params{Rows: 16, Cols: 30, Bombs: 99}

	g1, err := engine.Generate(p, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g2, err := engine.Generate(p, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if g1.String() != g2.String() {
		t.Errorf("same seed produced different boards:\n%s\n\n%s", g1, g2)
	}
}

func TestGenerateNilRNG(t *testing.T) {
	g, err := engine.Generate(engine.Params{Rows: 5, Cols: 5, Bombs: 5}, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	checkInvariant(t, g)
}

func TestGenerateInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params engine.Params
	}{
		{"zero rows", engine.Params{Rows: 0, Cols: 5, Bombs: 0}},
		{"zero cols", engine.Params{Rows: 5, Cols: 0, Bombs: 0}},
		{"negative rows", engine.Params{Rows: -1, Cols: 5, Bombs: 0}},
		{"negative bombs", engine.Params{Rows: 3, Cols: 3, Bombs: -1}},
		{"too many bombs", engine.Params{Rows: 3, Cols: 3, Bombs: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := engine.Generate(tc.params, rand.New(rand.NewSource(1)))
			if !errors.Is(err, engine.ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
			if g != nil {
				t.Error("expected nil grid on error")
			}
		})
	}
}

func TestGenerateFullBoard(t *testing.T) {
	g, err := engine.Generate(engine.Params{Rows: 3, Cols: 3, Bombs: 9}, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	checkInvariant(t, g)

	// No safe cells: nothing left to reveal.
	if s := g.Status(); s != engine.Won {
		t.Errorf("expected Won on a board without safe cells, got %v", s)
	}
}

func TestNewGridWithBombsCenter(t *testing.T) {
	g, err := engine.NewGridWithBombs(engine.Params{Rows: 3, Cols: 3, Bombs: 1}, []engine.Pos{engine.P(1, 1)})
	if err != nil {
		t.Fatalf("NewGridWithBombs failed: %v", err)
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p := engine.P(r, c)
			cell := g.Cell(p)
			if r == 1 && c == 1 {
				if !cell.IsBomb() {
					t.Errorf("expected bomb at %v", p)
				}
				continue
			}
			if cell.Value != 1 {
				t.Errorf("cell %v: value %d, want 1", p, cell.Value)
			}
		}
	}

	if got, want := g.String(), "111\n1*1\n111"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewGridWithBombsCorner(t *testing.T) {
	g, err := engine.NewGridWithBombs(engine.Params{Rows: 3, Cols: 3, Bombs: 1}, []engine.Pos{engine.P(0, 0)})
	if err != nil {
		t.Fatalf("NewGridWithBombs failed: %v", err)
	}

	if got, want := g.String(), "*1.\n11.\n..."; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	checkInvariant(t, g)
}

func TestNewGridWithBombsErrors(t *testing.T) {
	p := engine.Params{Rows: 3, Cols: 3, Bombs: 2}

	tests := []struct {
		name  string
		bombs []engine.Pos
	}{
		{"count mismatch", []engine.Pos{engine.P(0, 0)}},
		{"duplicate", []engine.Pos{engine.P(0, 0), engine.P(0, 0)}},
		{"out of range", []engine.Pos{engine.P(0, 0), engine.P(3, 0)}},
		{"negative", []engine.Pos{engine.P(0, 0), engine.P(0, -1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.NewGridWithBombs(p, tc.bombs)
			if !errors.Is(err, engine.ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestNeighbours(t *testing.T) {
	g, err := engine.NewGridWithBombs(engine.Params{Rows: 3, Cols: 4, Bombs: 0}, nil)
	if err != nil {
		t.Fatalf("NewGridWithBombs failed: %v", err)
	}

	tests := []struct {
		pos      engine.Pos
		expected int
	}{
		{engine.P(0, 0), 3},
		{engine.P(0, 3), 3},
		{engine.P(2, 3), 3},
		{engine.P(0, 1), 5},
		{engine.P(1, 0), 5},
		{engine.P(1, 1), 8},
	}

	for _, tc := range tests {
		if got := len(g.Neighbours(tc.pos)); got != tc.expected {
			t.Errorf("Neighbours(%v): expected %d, got %d", tc.pos, tc.expected, got)
		}
	}
}
