package game

import (
	"errors"
	"strings"
	"testing"
	"time"

	"grid-snake/game/types"

	"github.com/rs/zerolog"
)

func newTestGame(t *testing.T, cfg types.Config) *Game {
	t.Helper()
	g, err := NewGame(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame() = %v", err)
	}
	return g
}

func seeded(seed uint64) types.Config {
	cfg := types.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// boardWithoutApples hides apple placement so two boards can be compared on
// everything that is deterministic.
func boardWithoutApples(g *Game) string {
	return strings.ReplaceAll(g.GetGrid().String(), "*", ".")
}

// moveAppleTo relocates the single apple on the board.
func moveAppleTo(t *testing.T, g *Game, p types.Point) {
	t.Helper()
	snap := g.Snapshot()
	if snap.HasFood {
		g.GetGrid().Put(snap.Food, types.Empty)
	}
	if g.GetGrid().At(p) != types.Empty {
		t.Fatalf("cannot place apple on %v: %v", p, g.GetGrid().At(p))
	}
	g.GetGrid().Put(p, types.Apple)
	g.food = p
	g.hasFood = true
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, seeded(1))

	if g.UUID == "" {
		t.Error("UUID is empty")
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}
	if g.Width() != 40 || g.Height() != 40 {
		t.Errorf("size = %dx%d, want 40x40", g.Width(), g.Height())
	}
	snake := g.GetSnake()
	if snake.Len() != 5 || snake.GetHead() != (types.Point{X: 5, Y: 21}) {
		t.Errorf("snake = len %d head %v, want len 5 head (5,21)", snake.Len(), snake.GetHead())
	}
	if got := g.GetGrid().Count(types.SnakeBody); got != 5 {
		t.Errorf("snake cells = %d, want 5", got)
	}
	if got := g.GetGrid().Count(types.Apple); got != 1 {
		t.Errorf("apples = %d, want 1", got)
	}
	snap := g.Snapshot()
	if !snap.HasFood || g.Cell(snap.Food.X, snap.Food.Y) != types.Apple {
		t.Errorf("snapshot food %v (has=%v) does not match the board", snap.Food, snap.HasFood)
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.SnakeLength = 0

	g, err := NewGame(cfg, zerolog.Nop())
	if g != nil {
		t.Error("NewGame() returned a game for an invalid config")
	}
	if !errors.Is(err, types.ErrInvalidLength) {
		t.Errorf("NewGame() error = %v, want ErrInvalidLength", err)
	}
}

func TestTickWithoutAppleShifts(t *testing.T) {
	g := newTestGame(t, seeded(2))
	moveAppleTo(t, g, types.Point{X: 30, Y: 30})

	if got := g.Tick(); got != types.Nothing {
		t.Fatalf("Tick() = %v, want nothing", got)
	}
	if head := g.GetSnake().GetHead(); head != (types.Point{X: 6, Y: 21}) {
		t.Errorf("head = %v, want (6,21)", head)
	}
	if g.Cell(1, 21) != types.Empty {
		t.Errorf("old tail cell is %v, want empty", g.Cell(1, 21))
	}
	if g.Score() != 0 || g.GetSnake().Len() != 5 {
		t.Errorf("score/len = %d/%d, want 0/5", g.Score(), g.GetSnake().Len())
	}
	if g.Steps != 1 {
		t.Errorf("Steps = %d, want 1", g.Steps)
	}
}

func TestTickEatingAppleScoresAndRespawns(t *testing.T) {
	g := newTestGame(t, seeded(3))
	moveAppleTo(t, g, types.Point{X: 6, Y: 21})

	if got := g.Tick(); got != types.Grown {
		t.Fatalf("Tick() = %v, want grown", got)
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, want 1", g.Score())
	}
	if g.GetSnake().Len() != 6 {
		t.Errorf("Len() = %d, want 6", g.GetSnake().Len())
	}
	if g.GetSnake().GetTail() != (types.Point{X: 1, Y: 21}) {
		t.Errorf("tail = %v, want (1,21)", g.GetSnake().GetTail())
	}
	if g.Cell(6, 21) != types.SnakeBody {
		t.Errorf("eaten cell is %v, want snake", g.Cell(6, 21))
	}
	if got := g.GetGrid().Count(types.Apple); got != 1 {
		t.Errorf("apples after eating = %d, want 1", got)
	}
	snap := g.Snapshot()
	if !snap.HasFood || g.Cell(snap.Food.X, snap.Food.Y) != types.Apple {
		t.Errorf("new apple %v not on the board", snap.Food)
	}
	if snap.HighScore != 1 {
		t.Errorf("HighScore = %d, want 1", snap.HighScore)
	}
}

func TestTickIntoWallResets(t *testing.T) {
	g := newTestGame(t, seeded(4))
	moveAppleTo(t, g, types.Point{X: 30, Y: 30})
	g.Steer(types.UP)

	var died bool
	for i := 0; i < 100 && !died; i++ {
		died = g.Tick() == types.Died
	}
	if !died {
		t.Fatal("snake never hit the top wall")
	}

	snap := g.Snapshot()
	if snap.Score != 0 {
		t.Errorf("Score = %d after reset, want 0", snap.Score)
	}
	if snap.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", snap.GamesPlayed)
	}
	if snap.LastCollision != types.WallCollision {
		t.Errorf("LastCollision = %v, want wall", snap.LastCollision)
	}
	if snap.Head != g.Config.StartHead || snap.Length != g.Config.SnakeLength {
		t.Errorf("snake not back at start: head %v len %d", snap.Head, snap.Length)
	}
	if snap.Direction != g.Config.StartDirection {
		t.Errorf("direction = %v, want %v", snap.Direction, g.Config.StartDirection)
	}
	if got := g.GetGrid().Count(types.Apple); got != 1 {
		t.Errorf("apples after reset = %d, want 1", got)
	}
	if got := g.GetGrid().Count(types.SnakeBody); got != g.Config.SnakeLength {
		t.Errorf("snake cells after reset = %d, want %d", got, g.Config.SnakeLength)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	g := newTestGame(t, seeded(5))
	for i := 0; i < 7; i++ {
		g.Tick()
	}

	g.Reset()
	first := boardWithoutApples(g)
	firstBody := g.GetSnake().Segments()
	firstDir := g.GetSnake().Direction

	g.Reset()
	if got := boardWithoutApples(g); got != first {
		t.Errorf("second reset board differs:\n%s\nwant\n%s", got, first)
	}
	body := g.GetSnake().Segments()
	if len(body) != len(firstBody) {
		t.Fatalf("body length %d, want %d", len(body), len(firstBody))
	}
	for i := range body {
		if body[i] != firstBody[i] {
			t.Errorf("segment %d = %v, want %v", i, body[i], firstBody[i])
		}
	}
	if g.GetSnake().Direction != firstDir {
		t.Errorf("direction = %v, want %v", g.GetSnake().Direction, firstDir)
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}
	if got := g.GetGrid().Count(types.Apple); got != 1 {
		t.Errorf("apples = %d, want 1", got)
	}
}

func TestSteerAppliesOnNextTick(t *testing.T) {
	g := newTestGame(t, seeded(6))
	moveAppleTo(t, g, types.Point{X: 30, Y: 30})

	g.Steer(types.LEFT)
	if g.GetSnake().Direction != (types.Point{X: 1, Y: 0}) {
		t.Errorf("reverse intent changed direction to %v", g.GetSnake().Direction)
	}

	g.Steer(types.DOWN)
	if head := g.GetSnake().GetHead(); head != (types.Point{X: 5, Y: 21}) {
		t.Fatalf("head moved before Tick: %v", head)
	}
	g.Tick()
	if head := g.GetSnake().GetHead(); head != (types.Point{X: 5, Y: 22}) {
		t.Errorf("head = %v, want (5,22)", head)
	}
}

func TestSameSeedSameSession(t *testing.T) {
	a := newTestGame(t, seeded(77))
	b := newTestGame(t, seeded(77))
	intents := []types.Direction{types.UP, types.LEFT, types.DOWN, types.RIGHT}

	for i := 0; i < 400; i++ {
		if i%9 == 0 {
			d := intents[(i/9)%len(intents)]
			a.Steer(d)
			b.Steer(d)
		}
		oa, ob := a.Tick(), b.Tick()
		if oa != ob {
			t.Fatalf("tick %d: outcomes %v and %v", i, oa, ob)
		}
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	sa.UUID, sb.UUID = "", ""
	if sa != sb {
		t.Errorf("snapshots differ:\n%+v\n%+v", sa, sb)
	}
	if a.GetGrid().String() != b.GetGrid().String() {
		t.Error("boards differ")
	}
}

func TestFullBoardStopsSpawning(t *testing.T) {
	cfg := types.Config{
		Width:          3,
		Height:         1,
		SnakeLength:    2,
		StartHead:      types.Point{X: 1, Y: 0},
		StartDirection: types.Point{X: 1, Y: 0},
		TickInterval:   time.Millisecond,
		Seed:           7,
	}
	g := newTestGame(t, cfg)

	// Only (2,0) is free, so the first apple must be there.
	if snap := g.Snapshot(); !snap.HasFood || snap.Food != (types.Point{X: 2, Y: 0}) {
		t.Fatalf("apple at %v (has=%v), want (2,0)", snap.Food, snap.HasFood)
	}

	if got := g.Tick(); got != types.Grown {
		t.Fatalf("Tick() = %v, want grown", got)
	}
	if g.GetGrid().Count(types.Empty) != 0 {
		t.Fatalf("board not full:\n%s", g.GetGrid())
	}
	if g.Snapshot().HasFood {
		t.Error("apple reported on a full board")
	}
	if g.SpawnApple() {
		t.Error("SpawnApple() succeeded on a full board")
	}

	if got := g.Tick(); got != types.Died {
		t.Fatalf("Tick() = %v, want died", got)
	}
	snap := g.Snapshot()
	if snap.Length != 2 || !snap.HasFood || snap.HighScore != 1 {
		t.Errorf("after reset: %+v", snap)
	}
}
