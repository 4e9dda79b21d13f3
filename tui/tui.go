// Package tui is the terminal frontend: it draws the board with tcell,
// turns key presses into steering intents and paces the ticks.
package tui

import (
	"context"
	"fmt"
	"time"

	"grid-snake/game"
	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const (
	cellWidth = 2 // terminal columns per board cell
	boardTop  = 1 // first screen row of the board border
)

var (
	boardStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(11, 36, 217))
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 240, 60)).Background(tcell.NewRGBColor(11, 36, 217))
	appleStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 13, 23)).Background(tcell.NewRGBColor(11, 36, 217))
	borderStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(217, 170, 11))
	scoreStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(217, 170, 11)).Bold(true)
)

// Runes used for each cell state.
const (
	EmptyRune = ' '
	SnakeRune = '█'
	AppleRune = '●'
)

// App owns a screen and the session drawn on it. All game calls happen on
// the goroutine running Run.
type App struct {
	screen   tcell.Screen
	game     *game.Game
	interval time.Duration
	log      zerolog.Logger
}

// NewApp wraps an initialised screen.
func NewApp(screen tcell.Screen, g *game.Game, logger zerolog.Logger) *App {
	return &App{
		screen:   screen,
		game:     g,
		interval: g.Config.TickInterval,
		log:      logger.With().Str("frontend", "terminal").Logger(),
	}
}

// KeyDirection maps arrows and WASD to a steering intent.
func KeyDirection(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.UP, true
	case tcell.KeyDown:
		return types.DOWN, true
	case tcell.KeyLeft:
		return types.LEFT, true
	case tcell.KeyRight:
		return types.RIGHT, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return types.UP, true
		case 's', 'S':
			return types.DOWN, true
		case 'a', 'A':
			return types.LEFT, true
		case 'd', 'D':
			return types.RIGHT, true
		}
	}
	return types.NONE, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Run drives the session until the player quits or ctx is done. Quitting
// returns nil; cancellation returns ctx.Err().
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.log.Info().Dur("interval", a.interval).Msg("Terminal loop started")
	a.Draw()

	for {
		select {
		case <-ctx.Done():
			a.log.Info().Msg("Terminal loop stopped by context")
			return ctx.Err()
		case <-ticker.C:
			a.game.Tick()
			a.Draw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					a.log.Info().Int("score", a.game.Score()).Msg("Player quit")
					return nil
				}
				if d, ok := KeyDirection(ev); ok {
					a.game.Steer(d)
				}
			case *tcell.EventResize:
				a.screen.Sync()
				a.Draw()
			case nil:
				return nil
			}
		}
	}
}

// Draw renders the score line and the board.
func (a *App) Draw() {
	a.screen.Clear()
	Render(a.screen, a.game)
	a.screen.Show()
}

// Render writes the whole frame to s without showing it. Row 0 holds the
// score; the board follows inside a one-cell border.
func Render(s tcell.Screen, g *game.Game) {
	snap := g.Snapshot()
	status := fmt.Sprintf("Score %d  Best %d  Games %d", snap.Score, snap.HighScore, snap.GamesPlayed)
	drawText(s, 0, 0, scoreStyle, status)

	w := g.Width()*cellWidth + 2
	h := g.Height() + 2
	drawBox(s, 0, boardTop, w-1, boardTop+h-1, borderStyle)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r, style := cellGlyph(g.Cell(x, y))
			col := 1 + x*cellWidth
			row := boardTop + 1 + y
			for i := 0; i < cellWidth; i++ {
				s.SetContent(col+i, row, r, nil, style)
			}
		}
	}
}

func cellGlyph(c types.CellState) (rune, tcell.Style) {
	switch c {
	case types.SnakeBody:
		return SnakeRune, snakeStyle
	case types.Apple:
		return AppleRune, appleStyle
	default:
		return EmptyRune, boardStyle
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}
