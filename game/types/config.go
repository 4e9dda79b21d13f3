package types

import (
	"errors"
	"fmt"
	"time"
)

// Game constants
const (
	DefaultBoardWidth  = 40
	DefaultBoardHeight = 40
	DefaultSnakeLength = 5
	DefaultTickSpeed   = 55 * time.Millisecond
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrInvalidLength     = errors.New("snake length must be at least 1")
	ErrInvalidDirection  = errors.New("direction must be a unit vector")
	ErrStartOutOfBounds  = errors.New("starting snake does not fit on the board")
	ErrInvalidInterval   = errors.New("tick interval must be positive")
)

// ConfigError reports which Config field failed validation.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Config is fixed for the lifetime of a session.
type Config struct {
	Width  int
	Height int

	// The snake is laid out from StartHead backwards, opposite to
	// StartDirection, for SnakeLength cells.
	SnakeLength    int
	StartHead      Point
	StartDirection Point

	TickInterval time.Duration

	// Seed for apple placement. Zero means seed from the clock.
	Seed uint64
}

// DefaultConfig returns the classic 40x40 board with a five cell snake
// heading right.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultBoardWidth,
		Height:         DefaultBoardHeight,
		SnakeLength:    DefaultSnakeLength,
		StartHead:      Point{X: 5, Y: DefaultBoardHeight/2 + 1},
		StartDirection: RIGHT.ToPoint(),
		TickInterval:   DefaultTickSpeed,
	}
}

// StartTail is the last body cell of a freshly created snake.
func (c Config) StartTail() Point {
	n := c.SnakeLength - 1
	return Point{
		X: c.StartHead.X - c.StartDirection.X*n,
		Y: c.StartHead.Y - c.StartDirection.Y*n,
	}
}

func (c Config) contains(p Point) bool {
	return 0 <= p.X && p.X < c.Width && 0 <= p.Y && p.Y < c.Height
}

// Validate checks that a session can be started with c.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &ConfigError{Field: "size", Err: fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)}
	}
	if c.SnakeLength < 1 {
		return &ConfigError{Field: "length", Err: fmt.Errorf("%w: got %d", ErrInvalidLength, c.SnakeLength)}
	}
	if !c.StartDirection.IsUnit() {
		return &ConfigError{Field: "direction", Err: fmt.Errorf("%w: got %v", ErrInvalidDirection, c.StartDirection)}
	}
	if !c.contains(c.StartHead) || !c.contains(c.StartTail()) {
		return &ConfigError{Field: "start", Err: fmt.Errorf("%w: head %v tail %v on %dx%d",
			ErrStartOutOfBounds, c.StartHead, c.StartTail(), c.Width, c.Height)}
	}
	// The head needs at least one cell to move into or the session resets forever.
	if c.Width*c.Height <= c.SnakeLength {
		return &ConfigError{Field: "length", Err: fmt.Errorf("%w: %d cells cannot hold a %d cell snake and an apple",
			ErrStartOutOfBounds, c.Width*c.Height, c.SnakeLength)}
	}
	if c.TickInterval <= 0 {
		return &ConfigError{Field: "speed", Err: fmt.Errorf("%w: got %v", ErrInvalidInterval, c.TickInterval)}
	}
	return nil
}
