package board

import (
	"testing"

	"github.com/vovakirdan/tui-serpent/internal/core"
)

func TestAtOutOfBoundsIsWall(t *testing.T) {
	b := New(3, 3)
	if got := b.At(core.Point{X: -1, Y: 0}); got != TileWall {
		t.Errorf("out-of-bounds read = %v, want wall", got)
	}
	if got := b.At(core.Point{X: 3, Y: 3}); got != TileWall {
		t.Errorf("out-of-bounds read = %v, want wall", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	b := New(3, 3)
	b.Set(core.Point{X: 1, Y: 1}, TileItem)

	c := b.Clone()
	c.Set(core.Point{X: 1, Y: 1}, TileEmpty)

	if b.At(core.Point{X: 1, Y: 1}) != TileItem {
		t.Error("mutating clone changed the original board")
	}
}

func TestLinksSymmetric(t *testing.T) {
	b := New(5, 5)
	a := core.Point{X: 1, Y: 1}
	bb := core.Point{X: 3, Y: 3}
	b.Set(a, TilePortalA)
	b.Set(bb, TilePortalB)

	links := b.Links()
	if links[a] != bb || links[bb] != a {
		t.Errorf("links not symmetric: %v", links)
	}
}

func TestLinksFirstPairOnly(t *testing.T) {
	b := New(5, 5)
	a1 := core.Point{X: 1, Y: 1}
	a2 := core.Point{X: 3, Y: 1}
	b1 := core.Point{X: 1, Y: 3}
	b.Set(a1, TilePortalA)
	b.Set(a2, TilePortalA)
	b.Set(b1, TilePortalB)

	links := b.Links()
	if len(links) != 2 {
		t.Fatalf("expected 2 link entries, got %d", len(links))
	}
	if links[a1] != b1 {
		t.Errorf("first PortalA should link to first PortalB, got %v", links[a1])
	}
	if _, ok := links[a2]; ok {
		t.Error("second PortalA should not be linked")
	}
}

func TestLinksUnpaired(t *testing.T) {
	b := New(5, 5)
	b.Set(core.Point{X: 1, Y: 1}, TilePortalA)

	if links := b.Links(); len(links) != 0 {
		t.Errorf("unpaired portal should yield empty table, got %v", links)
	}
}

func TestTileRuneRoundTrip(t *testing.T) {
	kinds := []Tile{
		TileEmpty, TileWall, TileExit, TileObstacle, TileSpawn,
		TileItem, TileBigItem, TileStarItem, TilePortalA, TilePortalB,
	}
	for _, k := range kinds {
		got, ok := TileFromRune(k.Rune())
		if !ok || got != k {
			t.Errorf("rune round trip failed for %v", k)
		}
	}
	if _, ok := TileFromRune('?'); ok {
		t.Error("unknown symbol should not parse")
	}
}

func TestWalkability(t *testing.T) {
	if TileWall.Walkable() || TileObstacle.Walkable() {
		t.Error("wall and obstacle must not be statically walkable")
	}
	for _, k := range []Tile{TileEmpty, TileExit, TileItem, TileBigItem, TileStarItem, TilePortalA, TilePortalB, TileSpawn} {
		if !k.Walkable() {
			t.Errorf("%v should be walkable", k)
		}
	}
}
