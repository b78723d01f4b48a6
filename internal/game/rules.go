package game

import (
	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
)

// DefaultStarPowerMoves is how many moves of obstacle passage a star grants.
const DefaultStarPowerMoves = 10

// BlockReason tags why a move was rejected.
type BlockReason uint8

const (
	BlockNone BlockReason = iota
	BlockWall
	BlockObstacle
)

// String returns the notification tag for the reason.
func (r BlockReason) String() string {
	switch r {
	case BlockWall:
		return "wall"
	case BlockObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Pickup records a consumed item: where it was, what it was, and how much
// growth it granted. The original tile kind is what undo restores.
type Pickup struct {
	Pos    core.Point
	Tile   board.Tile
	Growth int
}

// PortalJump records a warp taken during a move.
type PortalJump struct {
	From, To core.Point
}

// Outcome is the full effect of one resolved move. The engine commits it
// and the solvability checker expands it; neither re-implements the rules.
type Outcome struct {
	Moved   bool
	Blocked BlockReason

	State         ActorState
	TailBefore    core.Point
	Star          int
	StarActivated bool
	StarEnded     bool
	Pickup        *Pickup
	Portal        *PortalJump
}

// Rules carries the tunable rule constants.
type Rules struct {
	StarMoves int // Star counter value set on activation
}

// DefaultRules returns the stock rule constants.
func DefaultRules() Rules {
	return Rules{StarMoves: DefaultStarPowerMoves}
}

// Enterable reports whether the serpent's head may occupy the tile at p:
// walls never, obstacles only while star power is active.
func Enterable(b *board.Board, p core.Point, star int) bool {
	switch b.At(p) {
	case board.TileWall:
		return false
	case board.TileObstacle:
		return star > 0
	default:
		return true
	}
}

// Resolve applies one move to an actor state against a board. It does not
// mutate the board: a consumed item is reported in the outcome and committed
// by the caller. Resolution order is fixed: legality, translation, item
// collection, portal warp, star tick.
func (r Rules) Resolve(b *board.Board, links board.PortalLinks, st ActorState, star int, dir core.Direction) Outcome {
	if !dir.Valid() || len(st.Segments) == 0 {
		return Outcome{Blocked: BlockNone}
	}

	candidate := st.Segments[0].Add(dir.Delta())
	switch b.At(candidate) {
	case board.TileWall:
		return Outcome{Blocked: BlockWall}
	case board.TileObstacle:
		if star == 0 {
			return Outcome{Blocked: BlockObstacle}
		}
	}

	actor := NewActor(st.Segments, st.Facing)
	tailBefore := st.Segments[len(st.Segments)-1]
	actor.Move(dir)

	out := Outcome{
		Moved:      true,
		TailBefore: tailBefore,
		Star:       star,
	}

	// Item collection at the candidate tile.
	switch b.At(candidate) {
	case board.TileItem:
		actor.Grow(tailBefore)
		out.Pickup = &Pickup{Pos: candidate, Tile: board.TileItem, Growth: 1}
	case board.TileBigItem:
		actor.Grow(tailBefore)
		actor.Grow(tailBefore)
		out.Pickup = &Pickup{Pos: candidate, Tile: board.TileBigItem, Growth: 2}
	case board.TileStarItem:
		out.Star = r.StarMoves
		out.StarActivated = true
		out.Pickup = &Pickup{Pos: candidate, Tile: board.TileStarItem}
	}

	// Portal warp: head only, and only when the destination is itself
	// enterable under the current obstacle/star rules. Otherwise the actor
	// simply stands on the portal tile.
	if tile := b.At(candidate); tile == board.TilePortalA || tile == board.TilePortalB {
		if dest, ok := links[candidate]; ok && Enterable(b, dest, out.Star) {
			actor.SetHead(dest)
			out.Portal = &PortalJump{From: candidate, To: dest}
		}
	}

	// Star tick: the activation move does not decrement.
	if out.Star > 0 && !out.StarActivated {
		out.Star--
		if out.Star == 0 {
			out.StarEnded = true
		}
	}

	out.State = actor.Snapshot()
	return out
}
