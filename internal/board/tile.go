// Package board models the tile grid a level is played on: tile kinds,
// walkability, and the portal link table. It is the shared vocabulary of the
// generator, the engine, and the solvability checker.
package board

// Tile is the semantic kind of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileExit
	TileObstacle
	TileSpawn
	TileItem
	TileBigItem
	TileStarItem
	TilePortalA
	TilePortalB
)

// Walkable reports the static walkability of the tile kind.
// Obstacle is not statically walkable; star power overrides that at move
// resolution, not here.
func (t Tile) Walkable() bool {
	switch t {
	case TileWall, TileObstacle:
		return false
	default:
		return true
	}
}

// Rune returns the template symbol for the tile kind.
func (t Tile) Rune() rune {
	switch t {
	case TileEmpty:
		return '.'
	case TileWall:
		return '#'
	case TileExit:
		return 'E'
	case TileObstacle:
		return 'X'
	case TileSpawn:
		return 'S'
	case TileItem:
		return 'o'
	case TileBigItem:
		return 'O'
	case TileStarItem:
		return '*'
	case TilePortalA:
		return 'A'
	case TilePortalB:
		return 'B'
	default:
		return '?'
	}
}

// TileFromRune maps a template symbol back to its tile kind.
func TileFromRune(r rune) (Tile, bool) {
	switch r {
	case '.':
		return TileEmpty, true
	case '#':
		return TileWall, true
	case 'E':
		return TileExit, true
	case 'X':
		return TileObstacle, true
	case 'S':
		return TileSpawn, true
	case 'o':
		return TileItem, true
	case 'O':
		return TileBigItem, true
	case '*':
		return TileStarItem, true
	case 'A':
		return TilePortalA, true
	case 'B':
		return TilePortalB, true
	default:
		return TileEmpty, false
	}
}

// String returns a human-readable name for the tile kind.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileExit:
		return "exit"
	case TileObstacle:
		return "obstacle"
	case TileSpawn:
		return "spawn"
	case TileItem:
		return "item"
	case TileBigItem:
		return "big_item"
	case TileStarItem:
		return "star_item"
	case TilePortalA:
		return "portal_a"
	case TilePortalB:
		return "portal_b"
	default:
		return "unknown"
	}
}
