package game

import (
	"errors"
	"testing"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

type fixedSource struct {
	vals  []int
	calls int
}

func (s *fixedSource) Intn(n int) int {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v % n
}

func cells(coords ...[2]int) []types.Point {
	out := make([]types.Point, len(coords))
	for i, c := range coords {
		out[i] = types.Point{X: c[0], Y: c[1]}
	}
	return out
}

func newTestGame(t *testing.T, snake *entity.Snake, rng manager.RandSource) *Game {
	t.Helper()
	g, err := NewGame(Options{Snake: snake, Rand: rng})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, nil, &fixedSource{vals: []int{0}})
	if g.Grid != types.DefaultGrid() {
		t.Fatalf("grid = %+v", g.Grid)
	}
	s := g.GetSnake()
	if s.Len() != 1 || s.Head() != (types.Point{X: 10, Y: 10}) || s.Direction != types.Right {
		t.Fatalf("unexpected starting snake %v heading %s", s.Body, s.Direction)
	}
	if _, ok := g.Food(); ok {
		t.Fatal("food should be unset before the first tick")
	}
	if g.IsGameOver() || g.UUID == "" {
		t.Fatalf("game over=%v uuid=%q", g.IsGameOver(), g.UUID)
	}
}

func TestNewGameRejectsBadGrid(t *testing.T) {
	_, err := NewGame(Options{Grid: types.Grid{Width: 0, Height: 5}})
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestFirstTickPlacesFood(t *testing.T) {
	g := newTestGame(t, nil, &fixedSource{vals: []int{3, 4}})
	res := g.Tick()
	if res.Ate || !res.Respawned {
		t.Fatalf("result = %+v", res)
	}
	food, ok := g.Food()
	if !ok || food != (types.Point{X: 3, Y: 4}) {
		t.Fatalf("food = %v ok=%v", food, ok)
	}
}

func TestEatAndRespawnEndToEnd(t *testing.T) {
	g := newTestGame(t, nil, &fixedSource{vals: []int{2, 17}})
	if err := g.SetFood(types.Point{X: 11, Y: 10}); err != nil {
		t.Fatal(err)
	}

	res := g.Tick()
	if !res.Ate || !res.Respawned || res.Outcome != manager.NoCollision {
		t.Fatalf("result = %+v", res)
	}

	s := g.GetSnake()
	want := cells([2]int{11, 10}, [2]int{11, 10})
	if s.Len() != 2 || s.Body[0] != want[0] || s.Body[1] != want[1] {
		t.Fatalf("body = %v, expected %v", s.Body, want)
	}

	food, ok := g.Food()
	if !ok || !g.Grid.Contains(food) {
		t.Fatalf("food = %v ok=%v", food, ok)
	}
	if food != (types.Point{X: 2, Y: 17}) {
		t.Fatalf("food = %v, expected the drawn cell (2,17)", food)
	}

	g.Tick()
	want = cells([2]int{12, 10}, [2]int{11, 10})
	if s.Body[0] != want[0] || s.Body[1] != want[1] {
		t.Fatalf("after growing move body = %v, expected %v", s.Body, want)
	}
}

func TestFoodStaysUntilEaten(t *testing.T) {
	g := newTestGame(t, nil, &fixedSource{vals: []int{0}})
	target := types.Point{X: 15, Y: 10}
	if err := g.SetFood(target); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		res := g.Tick()
		if res.Respawned {
			t.Fatalf("tick %d respawned food", i)
		}
		if food, _ := g.Food(); food != target {
			t.Fatalf("tick %d moved food to %v", i, food)
		}
	}
	if res := g.Tick(); !res.Ate {
		t.Fatalf("fifth tick should reach %v, head at %v", target, g.GetSnake().Head())
	}
}

func TestWallCollision(t *testing.T) {
	snake := entity.NewSnakeFromBody(cells([2]int{19, 4}, [2]int{18, 4}, [2]int{17, 4}), types.Right)
	g := newTestGame(t, snake, &fixedSource{vals: []int{0}})

	res := g.Tick()
	if !g.IsGameOver() || res.Outcome != manager.WallCollision || g.Outcome() != manager.WallCollision {
		t.Fatalf("over=%v result=%+v", g.IsGameOver(), res)
	}
	want := cells([2]int{20, 4}, [2]int{19, 4}, [2]int{18, 4})
	for i := range want {
		if snake.Body[i] != want[i] {
			t.Fatalf("body = %v, expected %v", snake.Body, want)
		}
	}
	if _, ok := g.Food(); ok {
		t.Fatal("no food should be placed on the terminating tick")
	}
}

func TestSelfCollision(t *testing.T) {
	snake := entity.NewSnakeFromBody(cells([2]int{5, 5}, [2]int{4, 5}, [2]int{4, 6}, [2]int{5, 6}), types.Left)
	g := newTestGame(t, snake, &fixedSource{vals: []int{0}})

	res := g.Tick()
	if !g.IsGameOver() || res.Outcome != manager.SelfCollision {
		t.Fatalf("over=%v result=%+v body=%v", g.IsGameOver(), res, snake.Body)
	}
}

func TestReversalCollidesWithinTwoTicks(t *testing.T) {
	snake := entity.NewSnakeFromBody(cells([2]int{6, 5}, [2]int{5, 5}, [2]int{4, 5}), types.Right)
	g := newTestGame(t, snake, &fixedSource{vals: []int{0}})
	g.SetDirection(types.Left)

	for i := 0; i < 2 && !g.IsGameOver(); i++ {
		g.Tick()
	}
	if g.Outcome() != manager.SelfCollision {
		t.Fatalf("outcome = %s, body = %v", g.Outcome(), snake.Body)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	snake := entity.NewSnake(types.Point{X: 0, Y: 0}, types.Up)
	g := newTestGame(t, snake, &fixedSource{vals: []int{0}})
	g.Tick()
	if !g.IsGameOver() {
		t.Fatal("expected game over")
	}

	steps := g.Steps()
	head := snake.Head()
	g.SetDirection(types.Down)
	for i := 0; i < 3; i++ {
		res := g.Tick()
		if res.Outcome != manager.WallCollision || res.Ate || res.Respawned {
			t.Fatalf("terminal tick result = %+v", res)
		}
	}
	if g.Steps() != steps || snake.Head() != head {
		t.Fatalf("game changed after game over: steps %d->%d head %v->%v", steps, g.Steps(), head, snake.Head())
	}
}

func TestLastDirectionWins(t *testing.T) {
	g := newTestGame(t, nil, &fixedSource{vals: []int{0}})
	g.SetDirection(types.Up)
	g.SetDirection(types.Left)
	g.SetDirection(types.Down)
	g.Tick()
	if head := g.GetSnake().Head(); head != (types.Point{X: 10, Y: 11}) {
		t.Fatalf("head = %v, expected (10,11)", head)
	}
}

func TestSetFoodOutOfBounds(t *testing.T) {
	g := newTestGame(t, nil, &fixedSource{vals: []int{0}})
	if err := g.SetFood(types.Point{X: 20, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, ok := g.Food(); ok {
		t.Fatal("rejected food should not be placed")
	}
}

func TestLengthChangesOnlyOnFood(t *testing.T) {
	g := newTestGame(t, nil, rand.New(rand.NewSource(7)))
	turns := []types.Direction{types.Down, types.Left, types.Up, types.Right}

	for i := 0; i < 400 && !g.IsGameOver(); i++ {
		if i%5 == 0 {
			g.SetDirection(turns[(i/5)%len(turns)])
		}
		before := g.GetSnake().Len()
		res := g.Tick()
		after := g.GetSnake().Len()
		switch {
		case res.Ate && after != before+1:
			t.Fatalf("tick %d ate but length %d -> %d", i, before, after)
		case !res.Ate && after != before:
			t.Fatalf("tick %d length changed %d -> %d without food", i, before, after)
		}
		if food, ok := g.Food(); !g.IsGameOver() && (!ok || !g.Grid.Contains(food)) {
			t.Fatalf("tick %d food = %v ok=%v", i, food, ok)
		}
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() []types.Point {
		g := newTestGame(t, nil, rand.New(rand.NewSource(42)))
		var foods []types.Point
		for i := 0; i < 9 && !g.IsGameOver(); i++ {
			g.Tick()
			f, _ := g.Food()
			foods = append(foods, f)
		}
		return foods
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("food %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
