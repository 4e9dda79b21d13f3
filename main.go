package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/tui"
	"grid-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

func main() {
	def := types.DefaultConfig()
	speed := flag.Int("speed", int(def.TickInterval/time.Millisecond), "Game speed in milliseconds per move (lower = faster)")
	width := flag.Int("width", def.Width, "Board width in cells")
	height := flag.Int("height", def.Height, "Board height in cells")
	length := flag.Int("length", def.SnakeLength, "Initial snake length")
	seed := flag.Uint64("seed", 0, "Apple placement seed (0 = random)")
	frontend := flag.String("frontend", "window", "Frontend to use: window or terminal")
	logPath := flag.String("log", "", "Write logs to this file")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	cfg := def
	cfg.Width = *width
	cfg.Height = *height
	cfg.SnakeLength = *length
	cfg.StartHead = types.Point{X: max(def.StartHead.X, *length-1), Y: min(*height/2+1, *height-1)}
	cfg.TickInterval = time.Duration(*speed) * time.Millisecond
	cfg.Seed = *seed

	logger, closeLog, err := newLogger(*logPath, *verbose)
	if err != nil {
		fatal(err)
	}
	defer closeLog()

	g, err := game.NewGame(cfg, logger)
	if err != nil {
		fatal(err)
	}

	switch *frontend {
	case "window":
		runWindow(g, logger)
	case "terminal":
		if err := runTerminal(g, logger); err != nil {
			fatal(err)
		}
	default:
		fatal(fmt.Errorf("unknown frontend %q", *frontend))
	}
}

// newLogger writes to path when given. Both frontends own the terminal, so
// without a path logs are discarded.
func newLogger(path string, verbose bool) (zerolog.Logger, func(), error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}

func runWindow(g *game.Game, logger zerolog.Logger) {
	rl.InitWindow(ui.ScreenWidth, ui.ScreenHeight, ui.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()
	updateInterval := g.Config.TickInterval

	logger.Info().Str("frontend", "window").Msg("Window opened")
	for !rl.WindowShouldClose() {
		for _, d := range ui.PollDirections() {
			g.Steer(d)
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= updateInterval {
			g.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(g)
	}
	logger.Info().Int("high_score", g.Snapshot().HighScore).Msg("Window closed")
}

func runTerminal(g *game.Game, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tui.NewApp(screen, g, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "snake:", err)
	os.Exit(1)
}
