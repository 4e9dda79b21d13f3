package manager

import (
	"time"

	"grid-snake/game/grid"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places apples. It owns the only random source of a session.
type FoodManager struct {
	rng      *rand.Rand
	attempts int
}

// NewFoodManager seeds a private generator. A zero seed uses the clock.
func NewFoodManager(seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GenerateFood picks uniformly random cells until one is Empty, marks it
// Apple and returns it. When g has no Empty cell it returns false without
// sampling.
func (fm *FoodManager) GenerateFood(g *grid.Grid) (types.Point, bool) {
	if g.Count(types.Empty) == 0 {
		return types.Point{}, false
	}
	fm.attempts = 0
	for {
		fm.attempts++
		food := types.Point{
			X: fm.rng.Intn(g.Width),
			Y: fm.rng.Intn(g.Height),
		}
		if g.At(food) == types.Empty {
			g.Put(food, types.Apple)
			return food, true
		}
	}
}

// LastAttempts is how many samples the previous GenerateFood needed.
func (fm *FoodManager) LastAttempts() int {
	return fm.attempts
}
