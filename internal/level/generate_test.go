package level

import (
	"testing"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
)

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultGenParams()

	a, err := Generate(4, 6, p)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := Generate(4, 6, p)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if a.Board.String() != b.Board.String() {
		t.Error("same world/stage produced different boards")
	}
	if a.Character != b.Character {
		t.Errorf("character not deterministic: %q vs %q", a.Character, b.Character)
	}
	if a.Title != b.Title {
		t.Errorf("title not deterministic: %q vs %q", a.Title, b.Title)
	}
}

func TestGenerateAllStructure(t *testing.T) {
	levels, err := GenerateAll(DefaultGenParams())
	if err != nil {
		t.Fatalf("GenerateAll() failed: %v", err)
	}
	if len(levels) != WorldCount*StageCount {
		t.Fatalf("expected %d levels, got %d", WorldCount*StageCount, len(levels))
	}

	for _, lvl := range levels {
		if lvl.Board.W != board.Width || lvl.Board.H != board.Height {
			t.Errorf("level %s: dimensions %dx%d", lvl.Title, lvl.Board.W, lvl.Board.H)
		}
		if lvl.Board.Count(board.TileSpawn) != 0 {
			t.Errorf("level %s: spawn tile not resolved", lvl.Title)
		}
		if lvl.Board.Count(board.TileExit) == 0 {
			t.Errorf("level %s: missing exit", lvl.Title)
		}
		if !lvl.Board.InBounds(lvl.Spawn) || !lvl.Board.At(lvl.Spawn).Walkable() {
			t.Errorf("level %s: bad spawn %v", lvl.Title, lvl.Spawn)
		}
		if lvl.Metrics.Score < 1 || lvl.Metrics.Score > 10 {
			t.Errorf("level %s: score %d out of 1..10", lvl.Title, lvl.Metrics.Score)
		}
	}
}

func TestGenerateSafePathStaysWalkable(t *testing.T) {
	levels, err := GenerateAll(DefaultGenParams())
	if err != nil {
		t.Fatalf("GenerateAll() failed: %v", err)
	}

	for _, lvl := range levels {
		exit, _ := lvl.Board.First(board.TileExit)
		path := SafePath(lvl.Board, lvl.Spawn, exit)
		if path == nil {
			t.Errorf("level %s: no safe path after augmentation", lvl.Title)
			continue
		}
		for _, p := range path {
			if tile := lvl.Board.At(p); tile == board.TileObstacle || tile == board.TileWall {
				t.Errorf("level %s: blocking tile %v on safe path at %v", lvl.Title, tile, p)
			}
		}
	}
}

func TestPortalPlacementConstraints(t *testing.T) {
	p := DefaultGenParams()
	levels, err := GenerateAll(p)
	if err != nil {
		t.Fatalf("GenerateAll() failed: %v", err)
	}

	for _, lvl := range levels {
		portalsA := lvl.Board.Find(board.TilePortalA)
		portalsB := lvl.Board.Find(board.TilePortalB)

		if len(portalsA) != len(portalsB) {
			t.Errorf("level %s: unpaired portals (%d A, %d B)", lvl.Title, len(portalsA), len(portalsB))
			continue
		}
		if len(portalsA) == 0 {
			continue
		}
		if !portalsEligible(lvl.World, lvl.Stage) {
			t.Errorf("level %s: portals placed outside the schedule", lvl.Title)
		}

		exit, _ := lvl.Board.First(board.TileExit)
		a, b := portalsA[0], portalsB[0]
		if core.Manhattan(a, b) < p.PortalMinSpacing {
			t.Errorf("level %s: portal separation %d < %d", lvl.Title, core.Manhattan(a, b), p.PortalMinSpacing)
		}
		for _, pt := range []core.Point{a, b} {
			if core.Manhattan(pt, lvl.Spawn) < p.PortalMinEndDist || core.Manhattan(pt, exit) < p.PortalMinEndDist {
				t.Errorf("level %s: portal %v too close to spawn or exit", lvl.Title, pt)
			}
		}
	}
}

func TestContentKeepsClearOfEndpoints(t *testing.T) {
	levels, err := GenerateAll(DefaultGenParams())
	if err != nil {
		t.Fatalf("GenerateAll() failed: %v", err)
	}

	content := map[board.Tile]bool{
		board.TileItem:     true,
		board.TileBigItem:  true,
		board.TileStarItem: true,
		board.TileObstacle: true,
	}

	for _, lvl := range levels {
		exit, _ := lvl.Board.First(board.TileExit)
		for y := 0; y < lvl.Board.H; y++ {
			for x := 0; x < lvl.Board.W; x++ {
				pt := core.Point{X: x, Y: y}
				if !content[lvl.Board.At(pt)] {
					continue
				}
				if core.Manhattan(pt, lvl.Spawn) <= 2 || core.Manhattan(pt, exit) <= 2 {
					t.Errorf("level %s: %v at %v too close to spawn/exit", lvl.Title, lvl.Board.At(pt), pt)
				}
			}
		}
	}
}

func TestDifficultyTrendsUpward(t *testing.T) {
	p := DefaultGenParams()

	early, err := Generate(1, 1, p)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	late, err := Generate(10, 10, p)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if late.Metrics.Pickups+late.Metrics.Obstacles <= early.Metrics.Pickups+early.Metrics.Obstacles {
		t.Errorf("world 10 content (%d) not above world 1 content (%d)",
			late.Metrics.Pickups+late.Metrics.Obstacles,
			early.Metrics.Pickups+early.Metrics.Obstacles)
	}
}
