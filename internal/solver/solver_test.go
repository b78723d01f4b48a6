package solver

import (
	"testing"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/game"
	"github.com/vovakirdan/tui-serpent/internal/level"
)

func makeLevel(t *testing.T, rows []string, startLength int) *level.Level {
	t.Helper()
	b := board.New(len([]rune(rows[0])), len(rows))
	var spawn core.Point
	for y, row := range rows {
		for x, r := range []rune(row) {
			tile, ok := board.TileFromRune(r)
			if !ok {
				t.Fatalf("unknown symbol %q at (%d,%d)", r, x, y)
			}
			p := core.Point{X: x, Y: y}
			if tile == board.TileSpawn {
				spawn = p
				tile = board.TileEmpty
			}
			b.Set(p, tile)
		}
	}
	return &level.Level{
		World:       1,
		Stage:       1,
		Title:       "test 1-1",
		StartLength: startLength,
		Seed:        1,
		Spawn:       spawn,
		Board:       b,
	}
}

func TestSolveCorridor(t *testing.T) {
	s := New(game.DefaultRules(), 0)
	res := s.Solve(makeLevel(t, []string{
		"#####",
		"#S.E#",
		"#####",
	}, 1))
	if !res.Solved {
		t.Fatalf("corridor unsolved: %+v", res)
	}
	if res.Steps != 2 {
		t.Errorf("steps = %d, want 2", res.Steps)
	}
}

func TestSolveObstacleWithoutStarFails(t *testing.T) {
	s := New(game.DefaultRules(), 0)
	res := s.Solve(makeLevel(t, []string{
		"######",
		"#S.XE#",
		"######",
	}, 1))
	if res.Solved {
		t.Fatal("obstacle crossed without star power")
	}
	if res.TimedOut {
		t.Error("tiny search reported a timeout")
	}
}

func TestSolveStarOpensObstacle(t *testing.T) {
	s := New(game.DefaultRules(), 0)
	res := s.Solve(makeLevel(t, []string{
		"#######",
		"#S*.XE#",
		"#######",
	}, 1))
	if !res.Solved {
		t.Fatalf("star-gated level unsolved: %+v", res)
	}
}

func TestSolveRequiresPortal(t *testing.T) {
	s := New(game.DefaultRules(), 0)
	res := s.Solve(makeLevel(t, []string{
		"#######",
		"#S.A###",
		"####B.#",
		"####.E#",
		"#######",
	}, 1))
	if !res.Solved {
		t.Fatalf("portal level unsolved: %+v", res)
	}
}

func TestSolveBudgetExhaustion(t *testing.T) {
	s := New(game.DefaultRules(), 2)
	res := s.Solve(makeLevel(t, []string{
		"#########",
		"#S.....E#",
		"#########",
	}, 1))
	if res.Solved {
		t.Fatal("solved within a two-state budget")
	}
	if !res.TimedOut {
		t.Errorf("expected timeout, got %+v", res)
	}
}

// A collected item cell must stay empty for the rest of that line of play.
// The dead-end item corridor here can be re-entered at will; if every pass
// grew the chain again, the chains would lengthen without bound and the
// search would exhaust any budget before reaching the distant exit.
func TestSolveCollectedItemDoesNotRegrow(t *testing.T) {
	s := New(game.DefaultRules(), 30_000)
	res := s.Solve(makeLevel(t, []string{
		"###########",
		"#S..o.o.o.#",
		"#.#########",
		"#.........#",
		"#########.#",
		"#E........#",
		"###########",
	}, 1))
	if !res.Solved {
		t.Fatalf("item corridor unsolved: %+v", res)
	}
	if res.TimedOut {
		t.Error("bounded search reported a timeout")
	}
	if res.Steps != 20 {
		t.Errorf("steps = %d, want the 20-move direct route", res.Steps)
	}
}

func TestSolveNoExit(t *testing.T) {
	s := New(game.DefaultRules(), 0)
	res := s.Solve(makeLevel(t, []string{
		"####",
		"#S.#",
		"####",
	}, 1))
	if res.Solved || res.TimedOut || res.Visited != 0 {
		t.Errorf("exitless board: %+v", res)
	}
}

// Every generated campaign level must be solvable within the default budget.
// The generator keeps the carved safe path free of walls and obstacles, so a
// failure here means the generator regressed.
func TestAllCampaignLevelsSolvable(t *testing.T) {
	levels, err := level.GenerateAll(level.DefaultGenParams())
	if err != nil {
		t.Fatalf("generate campaign: %v", err)
	}
	s := New(game.DefaultRules(), DefaultBudget)
	for i, res := range s.SolveAll(levels) {
		if !res.Solved {
			t.Errorf("level %s: unsolved (visited %d, timed out %v)", levels[i].Title, res.Visited, res.TimedOut)
		}
	}
}
