// Package minesweeper adapts the grid engine to the terminal platform: it maps
// cursor and mouse input to engine calls, keeps the round clock, runs the
// empty-area hint timer and renders the board.
package minesweeper

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/engine"
)

// Game is one minesweeper board preset.
type Game struct {
	preset   config.Preset
	hintTime time.Duration

	rng  *rand.Rand
	grid *engine.Grid
	tick uint64

	cursor   engine.Pos
	status   engine.Status
	exploded *engine.Pos // bomb that ended the round
	final    engine.State
	score    int

	// Round clock, in ticks
	tickRate  int
	started   bool
	startTick uint64
	endTick   uint64

	hint       core.DelayedTask
	hintTicks  int
	hintActive bool

	screenW int
	screenH int
}

// New creates a game for the given preset. hintTime <= 0 uses the default.
func New(preset config.Preset, hintTime time.Duration) *Game {
	if hintTime <= 0 {
		hintTime = config.DefaultHintDuration
	}
	return &Game{
		preset:   preset,
		hintTime: hintTime,
	}
}

// ID returns the preset identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset.Title != "" {
		return g.preset.Title
	}
	return g.preset.ID
}

// Params returns the board parameters of the preset.
func (g *Game) Params() engine.Params {
	return engine.Params{Rows: g.preset.Rows, Cols: g.preset.Cols, Bombs: g.preset.Bombs}
}

// Dimensions returns rows, columns and bomb count of the board.
func (g *Game) Dimensions() (rows, cols, bombs int) {
	return g.preset.Rows, g.preset.Cols, g.preset.Bombs
}

// Reset discards the current grid and starts a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	grid, err := engine.Generate(g.Params(), g.rng)
	if err != nil {
		// Presets are validated when the configuration is loaded.
		panic(fmt.Sprintf("minesweeper: preset %q: %v", g.preset.ID, err))
	}

	g.grid = grid
	g.tick = 0
	g.cursor = engine.P(grid.Rows()/2, grid.Cols()/2)
	g.status = engine.Playing
	g.exploded = nil
	g.final = engine.State{}
	g.score = 0

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.started = false
	g.startTick = 0
	g.endTick = 0

	g.hint.Cancel()
	g.hintActive = false
	g.hintTicks = cfg.TicksFor(g.hintTime)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	// A board without safe cells is already won.
	g.finish(grid.Status())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.hint.Advance()

	if g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	for _, p := range in.Pointers {
		pos, ok := g.CellAt(p.X, p.Y)
		if !ok {
			continue
		}
		g.cursor = pos
		if p.Secondary {
			g.flag(pos)
		} else {
			g.reveal(pos)
		}
		if g.status.Terminal() {
			return core.StepResult{State: g.State()}
		}
	}

	if in.Has(core.ActionFlag) {
		g.flag(g.cursor)
	}
	if in.Has(core.ActionReveal) {
		g.reveal(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor.Row = core.Clamp(g.cursor.Row+dr, 0, g.grid.Rows()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col+dc, 0, g.grid.Cols()-1)
}

func (g *Game) startClock() {
	if !g.started {
		g.started = true
		g.startTick = g.tick
	}
}

func (g *Game) flag(pos engine.Pos) {
	g.startClock()
	g.grid.ToggleFlag(pos)
}

// reveal uncovers pos and ends the round on a terminal status.
func (g *Game) reveal(pos engine.Pos) {
	g.startClock()
	if g.grid.Reveal(pos) == 0 {
		return
	}

	status := g.grid.Status()
	if status == engine.Lost {
		exploded := pos
		g.exploded = &exploded
	}
	g.finish(status)
}

// finish ends the round on a terminal status and uncovers the whole board.
func (g *Game) finish(status engine.Status) {
	if !status.Terminal() {
		return
	}
	g.status = status
	g.score = g.grid.SafeRevealed()
	g.final = g.grid.State()
	g.endTick = g.tick
	g.hint.Cancel()
	g.hintActive = false
	g.grid.RevealAll()
}

// showHint highlights covered empty cells; retriggering restarts the countdown.
func (g *Game) showHint() {
	g.hintActive = true
	g.hint.Schedule(g.hintTicks, func() {
		g.hintActive = false
	})
}

// Elapsed returns play time from the first move until the round ended.
func (g *Game) Elapsed() time.Duration {
	if !g.started {
		return 0
	}
	end := g.tick
	if g.status.Terminal() {
		end = g.endTick
	}
	return time.Duration(end-g.startTick) * time.Second / time.Duration(g.tickRate)
}

// Status returns the round outcome so far.
func (g *Game) Status() engine.Status {
	return g.status
}

// BoardState returns the flag bookkeeping, frozen once the round ends.
func (g *Game) BoardState() engine.State {
	if g.status.Terminal() {
		return g.final
	}
	return g.grid.State()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.score
	if !g.status.Terminal() && g.grid != nil {
		score = g.grid.SafeRevealed()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.status.Terminal(),
		Won:      g.status == engine.Won,
		Started:  g.started,
		Elapsed:  g.Elapsed(),
	}
}
