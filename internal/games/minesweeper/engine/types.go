// Package engine implements the minesweeper grid: bomb placement, neighbour
// counts, flood-fill reveal, flag toggling and win/loss evaluation.
// It has no UI dependencies and is deterministic for a given random source.
package engine

import (
	"errors"
	"fmt"
)

// Bomb is the cell value marking a bomb.
const Bomb = -1

// ErrInvalidParams is returned when grid dimensions or bomb count are out of range.
var ErrInvalidParams = errors.New("engine: invalid params")

// CellStatus is what the player currently sees for a cell.
type CellStatus uint8

const (
	Covered CellStatus = iota
	Revealed
	Flagged
)

// String returns the status name.
func (s CellStatus) String() string {
	switch s {
	case Covered:
		return "covered"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is a single grid position.
// Value is Bomb or the number of bombs among the up to 8 neighbours.
type Cell struct {
	Value  int
	Status CellStatus
}

// IsBomb reports whether the cell holds a bomb.
func (c Cell) IsBomb() bool {
	return c.Value == Bomb
}

// IsEmpty reports whether the cell has no adjacent bombs.
func (c Cell) IsEmpty() bool {
	return c.Value == 0
}

// Status is the derived outcome of a round.
type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are meaningful.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Params is the immutable configuration of one round.
type Params struct {
	Rows  int
	Cols  int
	Bombs int
}

// Size returns the number of cells.
func (p Params) Size() int {
	return p.Rows * p.Cols
}

// Validate checks 1 <= rows, 1 <= cols and 0 <= bombs <= rows*cols.
func (p Params) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidParams, p.Rows, p.Cols)
	}
	if p.Bombs < 0 || p.Bombs > p.Size() {
		return fmt.Errorf("%w: %d bombs on %d cells", ErrInvalidParams, p.Bombs, p.Size())
	}
	return nil
}

// State is the flag bookkeeping shown to the player.
type State struct {
	Flagged   int
	Remaining int // Bombs - Flagged, negative when over-flagged
}

// Pos addresses a cell by row and column.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
