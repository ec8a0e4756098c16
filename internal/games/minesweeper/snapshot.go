package minesweeper

import "github.com/vovakirdan/tui-mines/internal/games/minesweeper/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Preset     string
	Params     engine.Params
	Board      string // bomb layout, see engine.Grid.String
	Cells      [][]engine.Cell
	Cursor     engine.Pos
	Status     engine.Status
	Flagged    int
	Remaining  int
	Revealed   int
	HintActive bool
	Elapsed    int64 // milliseconds
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.BoardState()
	return Snapshot{
		Tick:       g.tick,
		Preset:     g.preset.ID,
		Params:     g.Params(),
		Board:      g.grid.String(),
		Cells:      g.grid.View().Cells,
		Cursor:     g.cursor,
		Status:     g.status,
		Flagged:    st.Flagged,
		Remaining:  st.Remaining,
		Revealed:   g.State().Score,
		HintActive: g.hintActive,
		Elapsed:    g.Elapsed().Milliseconds(),
	}
}
