// Package solver implements the offline solvability checker: a breadth-first
// search over serpent states driven by the exact same move resolution the
// play engine uses. It backs the release-gate verify command.
package solver

import (
	"encoding/binary"
	"math/rand"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/game"
	"github.com/vovakirdan/tui-serpent/internal/level"
)

// DefaultBudget caps how many distinct states one search may visit before
// giving up. Campaign levels finish well under it; the cap exists so a
// pathological hand-authored level cannot hang the verifier.
const DefaultBudget = 350_000

// Result is the outcome of one solvability search.
type Result struct {
	Solved   bool
	Steps    int // Length of the shortest solution when solved
	Visited  int // Distinct states expanded
	TimedOut bool
}

// Solver runs solvability searches with a fixed rule set and state budget.
type Solver struct {
	rules  game.Rules
	budget int
}

// New creates a solver. A non-positive budget falls back to the default.
func New(rules game.Rules, budget int) *Solver {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Solver{rules: rules, budget: budget}
}

// node is one search state plus its depth.
type node struct {
	segments []core.Point
	star     int
	consumed uint64
	steps    int
}

// pickupCell pairs a consumable tile with its coordinate.
type pickupCell struct {
	pos  core.Point
	tile board.Tile
}

// pickupCells lists the level's consumable tiles in scan order. The fixed
// board holds far fewer than 64 of them, so one word indexes the set.
func pickupCells(b *board.Board) ([]pickupCell, map[core.Point]int) {
	var cells []pickupCell
	index := make(map[core.Point]int)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := core.Point{X: x, Y: y}
			switch b.At(p) {
			case board.TileItem, board.TileBigItem, board.TileStarItem:
				index[p] = len(cells)
				cells = append(cells, pickupCell{pos: p, tile: b.At(p)})
			}
		}
	}
	return cells, index
}

// Solve searches for any move sequence from the level's initial placement to
// the exit. State identity is the segment chain, the star counter, and the
// set of consumed pickups: a collected cell stays empty for the rest of that
// line of play, exactly as the engine empties it. Without the consumed set a
// chain can re-grow from the same item cell on every revisit and the state
// space never closes.
func (s *Solver) Solve(lvl *level.Level) Result {
	grid := lvl.Board.Clone()
	links := grid.Links()
	exit, ok := grid.First(board.TileExit)
	if !ok {
		return Result{}
	}

	pickups, pickupIndex := pickupCells(grid)
	start := game.PlaceActor(grid, lvl.Spawn, lvl.StartLength, rand.New(rand.NewSource(lvl.Seed)))

	seen := make(map[string]bool, 1024)
	queue := []node{{segments: start.Segments()}}
	seen[encode(start.Segments(), 0, 0)] = true

	res := Result{}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		res.Visited++

		if n.segments[0] == exit {
			res.Solved = true
			res.Steps = n.steps
			return res
		}
		if res.Visited >= s.budget {
			res.TimedOut = true
			return res
		}

		// Rewrite the pickup cells to match this state's consumed set before
		// resolving moves from it.
		for i, c := range pickups {
			if n.consumed&(1<<uint(i)) != 0 {
				grid.Set(c.pos, board.TileEmpty)
			} else {
				grid.Set(c.pos, c.tile)
			}
		}

		st := game.ActorState{Segments: n.segments, Facing: core.DirRight}
		for _, dir := range core.Directions {
			out := s.rules.Resolve(grid, links, st, n.star, dir)
			if !out.Moved {
				continue
			}
			consumed := n.consumed
			if out.Pickup != nil {
				consumed |= 1 << uint(pickupIndex[out.Pickup.Pos])
			}
			key := encode(out.State.Segments, out.Star, consumed)
			if seen[key] {
				continue
			}
			seen[key] = true
			queue = append(queue, node{
				segments: out.State.Segments,
				star:     out.Star,
				consumed: consumed,
				steps:    n.steps + 1,
			})
		}
	}
	return res
}

// SolveAll verifies a whole campaign, returning per-level results in order.
func (s *Solver) SolveAll(levels []*level.Level) []Result {
	results := make([]Result, len(levels))
	for i, lvl := range levels {
		results[i] = s.Solve(lvl)
	}
	return results
}

// encode packs a state into a map key. Coordinates and the star counter fit
// in a byte each on the fixed board; the consumed set takes one word.
func encode(segments []core.Point, star int, consumed uint64) string {
	buf := make([]byte, 0, len(segments)*2+9)
	for _, p := range segments {
		buf = append(buf, byte(p.X), byte(p.Y))
	}
	buf = append(buf, byte(star))
	buf = binary.LittleEndian.AppendUint64(buf, consumed)
	return string(buf)
}
