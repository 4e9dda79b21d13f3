package entity

import (
	"fmt"

	"grid-snake/game/grid"
	"grid-snake/game/types"
)

// Snake is the player controlled body. Body[0] is the head and the last
// element is the tail. The snake never keeps the grid it lives on; callers
// pass the same grid to NewSnake and to every Advance.
type Snake struct {
	Body              []types.Point
	Direction         types.Point
	LastCollisionType types.CollisionType
}

// NewSnake lays a straight snake of the given length on g, head first, with
// the body trailing away from dir. Every body cell must be legal and Empty.
func NewSnake(g *grid.Grid, head, dir types.Point, length int) *Snake {
	if length < 1 {
		panic(fmt.Sprintf("snake: length %d", length))
	}
	if !dir.IsUnit() {
		panic(fmt.Sprintf("snake: direction %v is not a unit vector", dir))
	}

	s := &Snake{
		Body:      make([]types.Point, 0, length),
		Direction: dir,
	}
	p := head
	for i := 0; i < length; i++ {
		if !g.Contains(p) || g.At(p) != types.Empty {
			panic(fmt.Sprintf("snake: cannot place segment %d at %v", i, p))
		}
		g.Put(p, types.SnakeBody)
		s.Body = append(s.Body, p)
		p = p.Add(dir.Neg())
	}
	return s
}

// Advance moves the snake one cell along its direction.
//
// Moving off the board or onto any body cell, including the current tail,
// returns Died and leaves both the snake and g untouched. Moving onto an
// apple keeps the tail and returns Grown. Otherwise the tail cell is freed
// and Nothing is returned.
func (s *Snake) Advance(g *grid.Grid) types.Outcome {
	head := s.GetHead()
	tail := s.GetTail()
	goal := head.Add(s.Direction)

	if !g.Contains(goal) {
		s.LastCollisionType = types.WallCollision
		return types.Died
	}

	element := g.At(goal)
	if element == types.SnakeBody {
		s.LastCollisionType = types.SelfCollision
		return types.Died
	}
	grow := element == types.Apple

	s.Move(goal)
	g.Put(goal, types.SnakeBody)

	if !grow {
		s.RemoveTail()
		g.Put(tail, types.Empty)
		return types.Nothing
	}
	return types.Grown
}

// Move pushes a new head. It does not touch the grid.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last segment, never the head.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// SetDirX turns the snake horizontally. v must be 1 or -1. A request that
// would reverse the current horizontal motion is ignored.
func (s *Snake) SetDirX(v int) {
	checkAxis(v)
	if -v != s.Direction.X {
		s.Direction = types.Point{X: v, Y: 0}
	}
}

// SetDirY is SetDirX for the vertical axis.
func (s *Snake) SetDirY(v int) {
	checkAxis(v)
	if -v != s.Direction.Y {
		s.Direction = types.Point{X: 0, Y: v}
	}
}

// SetDirection applies an intent through SetDirX or SetDirY.
func (s *Snake) SetDirection(d types.Direction) {
	switch d {
	case types.UP:
		s.SetDirY(-1)
	case types.DOWN:
		s.SetDirY(1)
	case types.LEFT:
		s.SetDirX(-1)
	case types.RIGHT:
		s.SetDirX(1)
	}
}

func checkAxis(v int) {
	if v != 1 && v != -1 {
		panic(fmt.Sprintf("snake: axis value %d, want 1 or -1", v))
	}
}
