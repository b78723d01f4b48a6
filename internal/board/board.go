package board

import (
	"strings"

	"github.com/vovakirdan/tui-serpent/internal/core"
)

// Fixed level dimensions. Every template and every generated level uses them.
const (
	Width  = 15
	Height = 11
)

// Board is a rectangular tile grid.
// Tiles are stored in row-major order: index = y*W + x.
type Board struct {
	W, H  int
	Tiles []Tile
}

// New creates a board of the given dimensions, all cells empty.
func New(w, h int) *Board {
	return &Board{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
}

func (b *Board) index(p core.Point) int {
	return p.Y*b.W + p.X
}

// InBounds reports whether the point lies within the board.
func (b *Board) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// At returns the tile at the given point.
// Out-of-bounds reads return TileWall so movement checks treat the border
// and the outside world the same way.
func (b *Board) At(p core.Point) Tile {
	if !b.InBounds(p) {
		return TileWall
	}
	return b.Tiles[b.index(p)]
}

// Set writes the tile at the given point. Out-of-bounds writes are ignored.
func (b *Board) Set(p core.Point, t Tile) {
	if b.InBounds(p) {
		b.Tiles[b.index(p)] = t
	}
}

// Clone returns a deep copy of the board. Play sessions mutate a clone so
// the parsed level stays pristine.
func (b *Board) Clone() *Board {
	tiles := make([]Tile, len(b.Tiles))
	copy(tiles, b.Tiles)
	return &Board{W: b.W, H: b.H, Tiles: tiles}
}

// Count returns the number of cells holding the given tile kind.
func (b *Board) Count(t Tile) int {
	n := 0
	for _, cell := range b.Tiles {
		if cell == t {
			n++
		}
	}
	return n
}

// Find returns all coordinates holding the given tile kind, row-major order.
func (b *Board) Find(t Tile) []core.Point {
	var pts []core.Point
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := core.Point{X: x, Y: y}
			if b.Tiles[b.index(p)] == t {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// First returns the first coordinate holding the tile kind, row-major order.
func (b *Board) First(t Tile) (core.Point, bool) {
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := core.Point{X: x, Y: y}
			if b.Tiles[b.index(p)] == t {
				return p, true
			}
		}
	}
	return core.Point{}, false
}

// WalkableCount returns the number of statically walkable cells.
func (b *Board) WalkableCount() int {
	n := 0
	for _, cell := range b.Tiles {
		if cell.Walkable() {
			n++
		}
	}
	return n
}

// Rows renders the board as template-symbol strings, one per row.
// Used for level-select thumbnails and debugging.
func (b *Board) Rows() []string {
	rows := make([]string, b.H)
	var sb strings.Builder
	for y := 0; y < b.H; y++ {
		sb.Reset()
		for x := 0; x < b.W; x++ {
			sb.WriteRune(b.At(core.Point{X: x, Y: y}).Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the board as a newline-joined symbol block.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// PortalLinks is a symmetric mapping from a portal tile's coordinate to its
// partner's coordinate.
type PortalLinks map[core.Point]core.Point

// Links builds the portal table from the first PortalA and first PortalB on
// the board. Levels with more than one pair only honor the first of each
// kind; an unpaired portal yields an empty table.
func (b *Board) Links() PortalLinks {
	a, okA := b.First(TilePortalA)
	bb, okB := b.First(TilePortalB)
	if !okA || !okB {
		return PortalLinks{}
	}
	return PortalLinks{a: bb, bb: a}
}
