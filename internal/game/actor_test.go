package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
)

// parseTestBoard builds a board from template-symbol rows, resolving a spawn
// marker to an empty tile. Shared by the tests in this package.
func parseTestBoard(t *testing.T, rows []string) (*board.Board, core.Point) {
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
	return b, spawn
}

func TestPlaceActorChainIsValid(t *testing.T) {
	b, spawn := parseTestBoard(t, []string{
		"#######",
		"#S....#",
		"#.....#",
		"#.....#",
		"#######",
	})
	a := PlaceActor(b, spawn, 4, rand.New(rand.NewSource(7)))

	segs := a.Segments()
	if len(segs) != 4 {
		t.Fatalf("length = %d, want 4", len(segs))
	}
	if segs[0] != spawn {
		t.Errorf("head = %v, want spawn %v", segs[0], spawn)
	}
	seen := map[core.Point]bool{}
	for i, s := range segs {
		if seen[s] {
			t.Errorf("segment %d repeats cell %v", i, s)
		}
		seen[s] = true
		if !b.At(s).Walkable() {
			t.Errorf("segment %d on non-walkable cell %v", i, s)
		}
		if i > 0 && core.Manhattan(segs[i-1], s) != 1 {
			t.Errorf("segments %d and %d not adjacent: %v %v", i-1, i, segs[i-1], s)
		}
	}
}

func TestPlaceActorDeterministic(t *testing.T) {
	b, spawn := parseTestBoard(t, []string{
		"#######",
		"#S....#",
		"#.....#",
		"#######",
	})
	a1 := PlaceActor(b, spawn, 5, rand.New(rand.NewSource(42)))
	a2 := PlaceActor(b, spawn, 5, rand.New(rand.NewSource(42)))
	s1, s2 := a1.Segments(), a2.Segments()
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("segment %d differs: %v vs %v", i, s1[i], s2[i])
		}
	}
}

func TestPlaceActorPadsWhenAreaTooSmall(t *testing.T) {
	b, spawn := parseTestBoard(t, []string{
		"####",
		"#S.#",
		"####",
	})
	a := PlaceActor(b, spawn, 5, rand.New(rand.NewSource(1)))
	if a.Len() != 5 {
		t.Fatalf("length = %d, want 5", a.Len())
	}
	segs := a.Segments()
	last := segs[len(segs)-1]
	if segs[len(segs)-2] != last {
		t.Errorf("expected duplicated tail cells, got %v", segs)
	}
}

func TestActorMoveShiftsSegments(t *testing.T) {
	a := NewActor([]core.Point{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}}, core.DirRight)
	a.Move(core.DirUp)

	want := []core.Point{{X: 3, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 2}}
	got := a.Segments()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
	if a.Facing() != core.DirUp {
		t.Errorf("facing = %v, want up", a.Facing())
	}
}

func TestActorGrowAppends(t *testing.T) {
	a := NewActor([]core.Point{{X: 2, Y: 1}, {X: 1, Y: 1}}, core.DirRight)
	a.Grow(core.Point{X: 1, Y: 2})
	if a.Len() != 3 {
		t.Fatalf("length = %d, want 3", a.Len())
	}
	if tail := a.Segments()[2]; tail != (core.Point{X: 1, Y: 2}) {
		t.Errorf("tail = %v, want (1,2)", tail)
	}
}

func TestActorSnapshotRestoreIndependent(t *testing.T) {
	a := NewActor([]core.Point{{X: 2, Y: 1}, {X: 1, Y: 1}}, core.DirRight)
	snap := a.Snapshot()

	a.Move(core.DirDown)
	a.Grow(core.Point{X: 5, Y: 5})
	if snap.Segments[0] != (core.Point{X: 2, Y: 1}) {
		t.Fatal("snapshot aliases live segments")
	}

	a.Restore(snap)
	if a.Len() != 2 || a.Head() != (core.Point{X: 2, Y: 1}) || a.Facing() != core.DirRight {
		t.Errorf("restore mismatch: segs=%v facing=%v", a.Segments(), a.Facing())
	}
}
