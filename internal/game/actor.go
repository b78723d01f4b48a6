// Package game implements the play-session core: the serpent actor, the
// single move-resolution rule set, the move/undo engine and its state
// machine, the bounded history, and the engine-owned event queue.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
)

// Actor is the serpent: an ordered list of grid coordinates, head first,
// plus a facing direction.
type Actor struct {
	segments []core.Point
	facing   core.Direction
}

// ActorState is a verbatim capture of an actor's full state. It is the
// primitive undo and portal rollback rely on.
type ActorState struct {
	Segments []core.Point
	Facing   core.Direction
}

// NewActor creates an actor from an explicit segment chain.
func NewActor(segments []core.Point, facing core.Direction) *Actor {
	segs := make([]core.Point, len(segments))
	copy(segs, segments)
	return &Actor{segments: segs, facing: facing}
}

// PlaceActor builds the initial chain of the required length starting at
// spawn. It runs a stack-based depth-first search that prefers, at each
// branch, the neighbor with the most open neighbors, which favors long
// winding chains over coiling into dead ends. Ties fall back to the fixed
// direction order with a seeded random pick among equals. When the reachable
// area is smaller than the required length the last cell is duplicated to
// pad the chain.
func PlaceActor(b *board.Board, spawn core.Point, length int, rng *rand.Rand) *Actor {
	if length < 1 {
		length = 1
	}

	type frame struct {
		pos   core.Point
		cands []core.Point
	}

	onChain := map[core.Point]bool{spawn: true}
	stack := []frame{{pos: spawn, cands: placementCandidates(b, spawn, onChain, rng)}}
	expansions := 0
	maxExpansions := b.W * b.H * 4

	for len(stack) < length && len(stack) > 0 && expansions < maxExpansions {
		top := &stack[len(stack)-1]
		if len(top.cands) == 0 {
			// Dead end: backtrack.
			onChain[top.pos] = false
			stack = stack[:len(stack)-1]
			continue
		}
		next := top.cands[0]
		top.cands = top.cands[1:]
		if onChain[next] {
			continue
		}
		expansions++
		onChain[next] = true
		stack = append(stack, frame{pos: next, cands: placementCandidates(b, next, onChain, rng)})
	}

	segments := make([]core.Point, 0, length)
	if len(stack) == 0 {
		segments = append(segments, spawn)
	}
	for _, f := range stack {
		segments = append(segments, f.pos)
	}
	// Pad by duplicating the last cell; co-located segments are legitimate
	// only in this fallback.
	for len(segments) < length {
		segments = append(segments, segments[len(segments)-1])
	}

	return &Actor{segments: segments, facing: core.DirRight}
}

// placementCandidates orders the walkable unoccupied neighbors of pos by
// descending open-neighbor count. Equal counts keep the fixed direction
// order except for a seeded random choice of which equal candidate leads.
func placementCandidates(b *board.Board, pos core.Point, onChain map[core.Point]bool, rng *rand.Rand) []core.Point {
	var cands []core.Point
	for _, d := range core.Directions {
		next := pos.Add(d.Delta())
		if !b.At(next).Walkable() || onChain[next] {
			continue
		}
		cands = append(cands, next)
	}
	if len(cands) < 2 {
		return cands
	}

	openness := func(p core.Point) int {
		n := 0
		for _, d := range core.Directions {
			q := p.Add(d.Delta())
			if b.At(q).Walkable() && !onChain[q] {
				n++
			}
		}
		return n
	}

	// Stable insertion sort by openness keeps the fixed direction order
	// among ties.
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && openness(cands[j]) > openness(cands[j-1]); j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}

	// Seeded tie-break: rotate the leading group of equally open candidates.
	lead := 1
	for lead < len(cands) && openness(cands[lead]) == openness(cands[0]) {
		lead++
	}
	if lead > 1 {
		pick := rng.Intn(lead)
		cands[0], cands[pick] = cands[pick], cands[0]
	}
	return cands
}

// Head returns the head coordinate (segment 0).
func (a *Actor) Head() core.Point {
	return a.segments[0]
}

// Len returns the segment count.
func (a *Actor) Len() int {
	return len(a.segments)
}

// Facing returns the current facing direction.
func (a *Actor) Facing() core.Direction {
	return a.facing
}

// Segments returns a copy of the segment chain, head first.
func (a *Actor) Segments() []core.Point {
	segs := make([]core.Point, len(a.segments))
	copy(segs, a.segments)
	return segs
}

// Move shifts the actor one cell in the given direction: the head advances,
// every other segment moves toward the head, the old tail cell is vacated.
// Unrecognized directions are a no-op.
func (a *Actor) Move(dir core.Direction) {
	if !dir.Valid() || len(a.segments) == 0 {
		return
	}
	newHead := a.segments[0].Add(dir.Delta())
	copy(a.segments[1:], a.segments[:len(a.segments)-1])
	a.segments[0] = newHead
	a.facing = dir
}

// Grow appends a new segment at the given position, conceptually "growing
// from where the tail used to be". Growth is separate from Move so the two
// stay independent and composable.
func (a *Actor) Grow(at core.Point) {
	a.segments = append(a.segments, at)
}

// SetHead rewrites only the head coordinate. Used by portal warps; trailing
// segments are not retroactively moved.
func (a *Actor) SetHead(p core.Point) {
	if len(a.segments) > 0 {
		a.segments[0] = p
	}
}

// Snapshot captures the actor's full state.
func (a *Actor) Snapshot() ActorState {
	return ActorState{Segments: a.Segments(), Facing: a.facing}
}

// Restore sets the actor's state verbatim from a snapshot.
func (a *Actor) Restore(st ActorState) {
	a.segments = make([]core.Point, len(st.Segments))
	copy(a.segments, st.Segments)
	a.facing = st.Facing
}
