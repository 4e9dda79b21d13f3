package ui

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window defaults.
const (
	ScreenWidth  = 800
	ScreenHeight = 800
	WindowTitle  = "Snake"
)

const (
	boardMargin = 2 // px between cells
	textSize    = 36
	textMarginX = 50
	textMarginY = 50
)

// Theme colours, indexed by what they paint.
var (
	SquareColor = rl.Color{R: 11, G: 36, B: 217, A: 255}
	SnakeColor  = rl.Color{R: 0, G: 240, B: 60, A: 255}
	AppleColor  = rl.Color{R: 255, G: 13, B: 23, A: 255}
	WallColor   = rl.Color{R: 217, G: 170, B: 11, A: 255}
	ScoreColor  = rl.Color{R: 217, G: 170, B: 11, A: 255}
)

// Layout is where the board lands inside the window.
type Layout struct {
	CellSize int32
	OffsetX  int32
	OffsetY  int32
	Width    int32
	Height   int32
}

// ComputeLayout fits a gridW x gridH board into a screenW x screenH window,
// keeping cells square and centring the board.
func ComputeLayout(screenW, screenH int32, gridW, gridH int) Layout {
	cellW := screenW / int32(gridW)
	cellH := screenH / int32(gridH)
	cell := min(cellW, cellH)
	if cell < 1 {
		cell = 1
	}
	l := Layout{
		CellSize: cell,
		Width:    cell * int32(gridW),
		Height:   cell * int32(gridH),
	}
	l.OffsetX = (screenW - l.Width) / 2
	l.OffsetY = (screenH - l.Height) / 2
	return l
}

// CellOrigin is the top-left pixel of cell (x, y).
func (l Layout) CellOrigin(x, y int) (int32, int32) {
	return l.OffsetX + int32(x)*l.CellSize, l.OffsetY + int32(y)*l.CellSize
}

// CellColor maps a cell state to the theme.
func CellColor(c types.CellState) rl.Color {
	switch c {
	case types.SnakeBody:
		return SnakeColor
	case types.Apple:
		return AppleColor
	default:
		return SquareColor
	}
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw paints one frame: every cell of the board, then the score.
func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	r.layout = ComputeLayout(r.screenWidth, r.screenHeight, g.Width(), g.Height())

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	inner := r.layout.CellSize - boardMargin
	if inner < 1 {
		inner = r.layout.CellSize
	}
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			px, py := r.layout.CellOrigin(x, y)
			rl.DrawRectangle(px, py, r.layout.CellSize, r.layout.CellSize, WallColor)
			rl.DrawRectangle(px+boardMargin/2, py+boardMargin/2, inner, inner, CellColor(g.Cell(x, y)))
		}
	}

	r.drawHeadMarker(g)
	r.drawScore(g)
	rl.EndDrawing()
}

// drawHeadMarker points a small triangle in the direction of travel.
func (r *Renderer) drawHeadMarker(g *game.Game) {
	snap := g.Snapshot()
	headX, headY := r.layout.CellOrigin(snap.Head.X, snap.Head.Y)
	cell := r.layout.CellSize
	half := cell / 2
	color := rl.Yellow

	switch {
	case snap.Direction.X > 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + cell), Y: float32(headY + half)},
			rl.Vector2{X: float32(headX + half), Y: float32(headY)},
			rl.Vector2{X: float32(headX + half), Y: float32(headY + cell)},
			color)
	case snap.Direction.X < 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + half)},
			rl.Vector2{X: float32(headX + half), Y: float32(headY + cell)},
			rl.Vector2{X: float32(headX + half), Y: float32(headY)},
			color)
	case snap.Direction.Y > 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + half), Y: float32(headY + cell)},
			rl.Vector2{X: float32(headX + cell), Y: float32(headY + half)},
			rl.Vector2{X: float32(headX), Y: float32(headY + half)},
			color)
	default:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + half), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + half)},
			rl.Vector2{X: float32(headX + cell), Y: float32(headY + half)},
			color)
	}
}

func (r *Renderer) drawScore(g *game.Game) {
	snap := g.Snapshot()
	rl.DrawText(fmt.Sprintf("%d", snap.Score), textMarginX, textMarginY, textSize, ScoreColor)

	small := int32(textSize / 2)
	status := fmt.Sprintf("best %d  games %d", snap.HighScore, snap.GamesPlayed)
	if snap.LastCollision != types.NoCollision {
		status += "  last: " + snap.LastCollision.String()
	}
	rl.DrawText(status, textMarginX, textMarginY+textSize+4, small, ScoreColor)
}
