package ui

import (
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyBindings maps WASD and the arrow keys to steering intents.
var keyBindings = map[int32]types.Direction{
	rl.KeyW:     types.UP,
	rl.KeyUp:    types.UP,
	rl.KeyS:     types.DOWN,
	rl.KeyDown:  types.DOWN,
	rl.KeyA:     types.LEFT,
	rl.KeyLeft:  types.LEFT,
	rl.KeyD:     types.RIGHT,
	rl.KeyRight: types.RIGHT,
}

// DirectionForKey returns the intent bound to key.
func DirectionForKey(key int32) (types.Direction, bool) {
	d, ok := keyBindings[key]
	return d, ok
}

// PollDirections drains this frame's key queue and returns the bound intents
// in the order they were pressed.
func PollDirections() []types.Direction {
	var dirs []types.Direction
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, ok := DirectionForKey(key); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
