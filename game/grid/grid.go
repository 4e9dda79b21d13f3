// Package grid holds the board: a fixed-size array of cell states with no
// knowledge of what lives on it.
package grid

import (
	"fmt"

	"grid-snake/game/types"
)

// Grid is a Width x Height board of cell states.
//
// Get and Set require IsLegal(x, y). Calling them with an illegal coordinate
// is a programming error and panics.
type Grid struct {
	Width  int
	Height int
	cells  []types.CellState
	counts [3]int
}

// New returns an all-Empty grid.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", width, height))
	}
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]types.CellState, width*height),
	}
	g.counts[types.Empty] = width * height
	return g
}

// IsLegal reports whether (x, y) lies on the board.
func (g *Grid) IsLegal(x, y int) bool {
	return 0 <= x && x < g.Width && 0 <= y && y < g.Height
}

// Contains is IsLegal for a Point.
func (g *Grid) Contains(p types.Point) bool {
	return g.IsLegal(p.X, p.Y)
}

func (g *Grid) index(x, y int) int {
	if !g.IsLegal(x, y) {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %dx%d board", x, y, g.Width, g.Height))
	}
	return y*g.Width + x
}

// Get returns the state of cell (x, y).
func (g *Grid) Get(x, y int) types.CellState {
	return g.cells[g.index(x, y)]
}

// Set overwrites cell (x, y).
func (g *Grid) Set(x, y int, state types.CellState) {
	if int(state) >= len(g.counts) {
		panic(fmt.Sprintf("grid: unknown cell state %d", state))
	}
	i := g.index(x, y)
	g.counts[g.cells[i]]--
	g.counts[state]++
	g.cells[i] = state
}

// At and Put are the Point forms of Get and Set.
func (g *Grid) At(p types.Point) types.CellState {
	return g.Get(p.X, p.Y)
}

func (g *Grid) Put(p types.Point, state types.CellState) {
	g.Set(p.X, p.Y, state)
}

// Count returns how many cells are currently in state.
func (g *Grid) Count(state types.CellState) int {
	if int(state) >= len(g.counts) {
		return 0
	}
	return g.counts[state]
}

// String draws the board one row per line: '.' empty, '#' snake, '*' apple.
func (g *Grid) String() string {
	b := make([]byte, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch g.Get(x, y) {
			case types.SnakeBody:
				b = append(b, '#')
			case types.Apple:
				b = append(b, '*')
			default:
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
