package level

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
)

// Campaign dimensions: 10 worlds of 10 stages each.
const (
	WorldCount = 10
	StageCount = 10
)

// Level is one parsed, generated stage. Treated as read-only after creation;
// play clones the board because item collection rewrites tiles.
type Level struct {
	ID          int // Index into the campaign, 0..99
	World       int // 1..10
	Stage       int // 1..10
	Title       string
	Character   string // Generated descriptor shown in level select
	Theme       int
	StartLength int
	Seed        int64 // Drives actor placement so restarts are reproducible
	Spawn       core.Point
	Board       *board.Board
	Metrics     Metrics
}

// GenParams tunes the procedural augmentation. Weights scale the per-world
// content counts; the difficulty preset layer adjusts them.
type GenParams struct {
	BranchBase        int     // Branch budget at world 1
	BranchPerWorld    int     // Extra budget per two worlds
	BranchLenBase     int     // Max branch length at world 1
	ItemWeight        float64 // Scales growth item count
	BigItemWeight     float64 // Scales big growth item count
	StarWeight        float64 // Scales star item count
	ObstacleWeight    float64 // Scales obstacle count
	PortalMinSpacing  int     // Minimum accepted portal separation
	PortalMinEndDist  int     // Minimum portal distance from spawn and exit
	PortalSampleLimit int     // Candidate cells sampled for the portal pair
}

// DefaultGenParams returns the stock campaign tuning.
func DefaultGenParams() GenParams {
	return GenParams{
		BranchBase:        2,
		BranchPerWorld:    1,
		BranchLenBase:     2,
		ItemWeight:        1.0,
		BigItemWeight:     1.0,
		StarWeight:        1.0,
		ObstacleWeight:    1.0,
		PortalMinSpacing:  8,
		PortalMinEndDist:  6,
		PortalSampleLimit: 10,
	}
}

// Seed derives the deterministic generator seed for a world/stage pair.
// Regenerating the same pair always yields the same level.
func Seed(world, stage int) int64 {
	return int64(world)*1_000_003 + int64(stage)*7919
}

// Generate builds the level for one world/stage pair.
func Generate(world, stage int, p GenParams) (*Level, error) {
	tmpl := GetTemplate(stage)
	if tmpl == nil {
		return nil, ParseError{
			Code:    "BAD_STAGE",
			Message: fmt.Sprintf("stage %d out of range 1..%d", stage, TemplateCount()),
		}
	}

	b, spawn, err := ParseRows(tmpl.Rows)
	if err != nil {
		return nil, fmt.Errorf("level %d-%d: %w", world, stage, err)
	}

	rng := rand.New(rand.NewSource(Seed(world, stage)))
	augment(b, spawn, world, stage, p, rng)

	lvl := &Level{
		ID:          (world-1)*StageCount + (stage - 1),
		World:       world,
		Stage:       stage,
		Title:       fmt.Sprintf("%s %d-%d", tmpl.Name, world, stage),
		Character:   Character(rng),
		Theme:       tmpl.Theme,
		StartLength: tmpl.StartLength,
		Seed:        Seed(world, stage),
		Spawn:       spawn,
		Board:       b,
		Metrics:     Compute(b),
	}
	return lvl, nil
}

// GenerateAll builds the full campaign in world-major order.
func GenerateAll(p GenParams) ([]*Level, error) {
	levels := make([]*Level, 0, WorldCount*StageCount)
	for world := 1; world <= WorldCount; world++ {
		for stage := 1; stage <= StageCount; stage++ {
			lvl, err := Generate(world, stage, p)
			if err != nil {
				return nil, err
			}
			levels = append(levels, lvl)
		}
	}
	return levels, nil
}

// augment carves branches off the safe path and scatters content onto them.
// The safe path itself is never blocked, which is what keeps every generated
// level completable.
func augment(b *board.Board, spawn core.Point, world, stage int, p GenParams, rng *rand.Rand) {
	exit, ok := b.First(board.TileExit)
	if !ok {
		return
	}

	path := SafePath(b, spawn, exit)
	if path == nil {
		// Defensive fallback: use the raw template unmodified.
		return
	}

	side := carveBranches(b, path, world, p, rng)

	// Carving only adds empty cells, but recompute defensively.
	path = SafePath(b, spawn, exit)
	if path == nil {
		return
	}
	onPath := make(map[core.Point]bool, len(path))
	for _, pt := range path {
		onPath[pt] = true
	}

	placeContent(b, side, onPath, spawn, exit, world, stage, p, rng)
	placePortals(b, side, onPath, spawn, exit, world, stage, p, rng)
}

// SafePath returns the breadth-first shortest walkable route between two
// points, inclusive of both ends, or nil when no route exists.
func SafePath(b *board.Board, from, to core.Point) []core.Point {
	prev := make(map[core.Point]core.Point)
	visited := map[core.Point]bool{from: true}
	queue := []core.Point{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			// Walk predecessors back to the start.
			var path []core.Point
			for p := to; ; p = prev[p] {
				path = append([]core.Point{p}, path...)
				if p == from {
					return path
				}
			}
		}
		for _, d := range core.Directions {
			next := cur.Add(d.Delta())
			if visited[next] || !b.At(next).Walkable() {
				continue
			}
			visited[next] = true
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	return nil
}

// carveBranches digs short corridors off random safe-path cells into wall
// mass, returning the carved cells. Branches that carve nothing do not
// consume the budget; total attempts are bounded.
func carveBranches(b *board.Board, path []core.Point, world int, p GenParams, rng *rand.Rand) []core.Point {
	budget := p.BranchBase + (world*p.BranchPerWorld)/2
	maxLen := p.BranchLenBase + world/3
	attempts := budget * 6

	var carved []core.Point
	for attempts > 0 && budget > 0 {
		attempts--
		cells := carveOne(b, path[rng.Intn(len(path))], maxLen, rng)
		if len(cells) == 0 {
			continue
		}
		budget--
		carved = append(carved, cells...)
	}
	return carved
}

// carveOne digs a single corridor from a path cell. Carving stops at the
// border ring or at any non-wall cell; an occasional random turn keeps
// branches from being straight lines.
func carveOne(b *board.Board, start core.Point, maxLen int, rng *rand.Rand) []core.Point {
	dir := core.Directions[rng.Intn(len(core.Directions))]
	cur := start

	var cells []core.Point
	for len(cells) < maxLen {
		next := cur.Add(dir.Delta())
		if !carvable(b, next) {
			// One chance to turn before giving up.
			dir = core.Directions[rng.Intn(len(core.Directions))]
			next = cur.Add(dir.Delta())
			if !carvable(b, next) {
				break
			}
		}
		b.Set(next, board.TileEmpty)
		cells = append(cells, next)
		cur = next
		if rng.Intn(3) == 0 {
			dir = core.Directions[rng.Intn(len(core.Directions))]
		}
	}
	return cells
}

// carvable reports whether the cell is interior wall mass.
func carvable(b *board.Board, p core.Point) bool {
	if p.X < 1 || p.X >= b.W-1 || p.Y < 1 || p.Y >= b.H-1 {
		return false
	}
	return b.At(p) == board.TileWall
}

// placeContent scatters obstacles and pickups onto carved side cells that
// are off the safe path and away from the spawn and exit. Placement is
// randomized-then-greedy: shuffle candidates, consume from the end, skip
// cells that are no longer empty.
func placeContent(b *board.Board, side []core.Point, onPath map[core.Point]bool, spawn, exit core.Point, world, stage int, p GenParams, rng *rand.Rand) {
	cands := make([]core.Point, 0, len(side))
	for _, c := range side {
		if onPath[c] {
			continue
		}
		if core.Manhattan(c, spawn) <= 2 || core.Manhattan(c, exit) <= 2 {
			continue
		}
		cands = append(cands, c)
	}
	rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})

	place := func(t board.Tile, count int) {
		for count > 0 && len(cands) > 0 {
			c := cands[len(cands)-1]
			cands = cands[:len(cands)-1]
			if b.At(c) != board.TileEmpty {
				continue
			}
			b.Set(c, t)
			count--
		}
	}

	place(board.TileObstacle, scaled(p.ObstacleWeight, world/2+stage/5))
	place(board.TileBigItem, scaled(p.BigItemWeight, (world+stage)/6))
	place(board.TileStarItem, scaled(p.StarWeight, starCount(world, stage)))
	place(board.TileItem, scaled(p.ItemWeight, 2+(world+stage)/4))
}

func scaled(weight float64, base int) int {
	if base <= 0 {
		return 0
	}
	n := int(weight * float64(base))
	if n < 0 {
		return 0
	}
	return n
}

func starCount(world, stage int) int {
	if world < 3 && stage < 8 {
		return 0
	}
	return 1 + world/6
}

// portalsEligible implements the portal schedule: even stages from world 2,
// every stage from world 5, and always stage 10.
func portalsEligible(world, stage int) bool {
	if stage == StageCount {
		return true
	}
	if world >= 5 {
		return true
	}
	return world >= 2 && stage%2 == 0
}

// placePortals picks two far-apart side cells for the portal pair. When no
// eligible pair exists the level simply ships without portals.
func placePortals(b *board.Board, side []core.Point, onPath map[core.Point]bool, spawn, exit core.Point, world, stage int, p GenParams, rng *rand.Rand) {
	if !portalsEligible(world, stage) {
		return
	}

	var cands []core.Point
	for _, c := range side {
		if onPath[c] || b.At(c) != board.TileEmpty {
			continue
		}
		if core.Manhattan(c, spawn) < p.PortalMinEndDist || core.Manhattan(c, exit) < p.PortalMinEndDist {
			continue
		}
		cands = append(cands, c)
	}
	if len(cands) < 2 {
		return
	}

	rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})
	sample := cands
	if len(sample) > p.PortalSampleLimit {
		sample = sample[:p.PortalSampleLimit]
	}

	bestSep := -1
	var bestA, bestB core.Point
	for i := 0; i < len(sample); i++ {
		for j := i + 1; j < len(sample); j++ {
			if sep := core.Manhattan(sample[i], sample[j]); sep > bestSep {
				bestSep = sep
				bestA, bestB = sample[i], sample[j]
			}
		}
	}
	if bestSep < p.PortalMinSpacing {
		return
	}

	b.Set(bestA, board.TilePortalA)
	b.Set(bestB, board.TilePortalB)
}
