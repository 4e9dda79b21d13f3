package types

import "fmt"

// Point is a cell coordinate or a unit direction vector.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsUnit reports whether p is one of the four axis-aligned unit vectors.
func (p Point) IsUnit() bool {
	return (p.X == 0 && (p.Y == 1 || p.Y == -1)) || (p.Y == 0 && (p.X == 1 || p.X == -1))
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a player intent.
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// ToPoint converts a Direction into its movement vector. Y grows downwards.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// CellState is the content of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota
	SnakeBody
	Apple
)

func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case SnakeBody:
		return "snake"
	case Apple:
		return "apple"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(c))
	}
}

// Outcome classifies what a single snake step did.
type Outcome int

const (
	Nothing Outcome = iota
	Grown
	Died
)

func (o Outcome) String() string {
	switch o {
	case Nothing:
		return "nothing"
	case Grown:
		return "grown"
	case Died:
		return "died"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall-collision"
	case SelfCollision:
		return "self-collision"
	default:
		return "none"
	}
}
