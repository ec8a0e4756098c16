package minesweeper

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/engine"
)

const (
	cellWidth = 2 // glyph plus one column of padding
	hudHeight = 3 // title, counters, blank line
)

const (
	glyphCovered  = '■'
	glyphFlag     = '⚑'
	glyphBomb     = '*'
	glyphExploded = 'X'
	glyphEmpty    = '·'
)

// numberColors follows the classic minesweeper palette.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorBlue,
	core.ColorBrightRed,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// layout is the board rectangle for the current screen size.
type layout struct {
	box      core.Rect
	tooSmall bool
}

func (g *Game) layout() layout {
	rows, cols := g.preset.Rows, g.preset.Cols
	w := cols*cellWidth + 3
	h := rows + 2

	l := layout{
		box: core.NewRect((g.screenW-w)/2, hudHeight, w, h),
	}
	// Board plus HUD plus the status line below it.
	if g.screenW < w || g.screenH < hudHeight+h+1 {
		l.tooSmall = true
	}
	return l
}

// cellOrigin returns the screen position of the glyph of cell p.
func (l layout) cellOrigin(p engine.Pos) (x, y int) {
	return l.box.X + 2 + p.Col*cellWidth, l.box.Y + 1 + p.Row
}

// CellAt maps screen coordinates to a board position.
// The padding column left of a glyph belongs to that cell.
func (g *Game) CellAt(x, y int) (engine.Pos, bool) {
	if g.grid == nil {
		return engine.Pos{}, false
	}
	l := g.layout()
	if l.tooSmall {
		return engine.Pos{}, false
	}

	row := y - (l.box.Y + 1)
	dx := x - (l.box.X + 1)
	if row < 0 || row >= g.grid.Rows() || dx < 0 || dx >= g.grid.Cols()*cellWidth {
		return engine.Pos{}, false
	}
	return engine.P(row, dx/cellWidth), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	l := g.layout()
	if l.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderStatus(dst, l)
}

// Resize updates the screen dimensions without touching the round.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)

	l := g.layout()
	need := fmt.Sprintf("Need %dx%d", l.box.W, hudHeight+l.box.H+1)
	dst.DrawTextCentered(y+1, need, core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, l layout) {
	dst.DrawTextCentered(0, "MINESWEEPER - "+g.Title(), core.ColorYellow)

	st := g.BoardState()
	bombs := fmt.Sprintf("Bombs: %d", st.Remaining)
	dst.DrawText(l.box.X, 1, bombs)

	clock := fmt.Sprintf("Time: %03d", int(g.Elapsed().Seconds()))
	dst.DrawText(l.box.Right()-len(clock), 1, clock)

	if g.hintActive {
		dst.DrawTextCentered(1, "HINT", core.ColorCyan)
	}
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	frame := core.ColorGray
	switch g.status {
	case engine.Won:
		frame = core.ColorGreen
	case engine.Lost:
		frame = core.ColorRed
	}
	dst.DrawBox(l.box, frame)

	view := g.grid.View()
	for r := 0; r < view.Rows; r++ {
		for c := 0; c < view.Cols; c++ {
			p := engine.P(r, c)
			x, y := l.cellOrigin(p)
			ch, color := g.glyph(p, view.At(p))
			dst.SetColored(x, y, ch, color)
		}
	}

	if g.status == engine.Playing {
		x, y := l.cellOrigin(g.cursor)
		dst.SetColored(x-1, y, '[', core.ColorYellow)
		dst.SetColored(x+1, y, ']', core.ColorYellow)
	}
}

// glyph picks the rune and color of one cell.
func (g *Game) glyph(p engine.Pos, cell engine.Cell) (rune, core.Color) {
	switch cell.Status {
	case engine.Flagged:
		return glyphFlag, core.ColorOrange
	case engine.Covered:
		if g.hintActive && cell.IsEmpty() {
			return glyphCovered, core.ColorHighlight
		}
		return glyphCovered, core.ColorDarkGray
	}

	switch {
	case cell.IsBomb():
		if g.exploded != nil && *g.exploded == p {
			return glyphExploded, core.ColorBrightRed
		}
		return glyphBomb, core.ColorRed
	case cell.IsEmpty():
		return glyphEmpty, core.ColorDarkGray
	default:
		return rune('0' + cell.Value), numberColors[cell.Value]
	}
}

func (g *Game) renderStatus(dst *core.Screen, l layout) {
	y := l.box.Bottom()
	switch g.status {
	case engine.Won:
		msg := fmt.Sprintf("CLEARED in %s! R to play again", g.Elapsed().Round(time.Second))
		dst.DrawTextCentered(y, msg, core.ColorGreen)
	case engine.Lost:
		dst.DrawTextCentered(y, "BOOM! R to try again", core.ColorBrightRed)
	default:
		dst.DrawTextCentered(y, fmt.Sprintf("Flags: %d", g.BoardState().Flagged), core.ColorGray)
	}
}
