package level

import (
	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
)

// Metrics holds the derived difficulty measurements for a generated level.
// The score is display-only; solvability is certified separately.
type Metrics struct {
	WalkableCells int
	DeadEnds      int
	Junctions     int
	Pickups       int
	Portals       int
	Obstacles     int
	Density       float64
	Score         int // 1..10
}

// Compute derives the metrics from a finished board.
func Compute(b *board.Board) Metrics {
	m := Metrics{
		WalkableCells: b.WalkableCount(),
		Pickups:       b.Count(board.TileItem) + b.Count(board.TileBigItem) + b.Count(board.TileStarItem),
		Portals:       b.Count(board.TilePortalA) + b.Count(board.TilePortalB),
		Obstacles:     b.Count(board.TileObstacle),
	}
	m.Density = float64(m.WalkableCells) / float64(b.W*b.H)

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := core.Point{X: x, Y: y}
			if !b.At(p).Walkable() {
				continue
			}
			open := 0
			for _, d := range core.Directions {
				if b.At(p.Add(d.Delta())).Walkable() {
					open++
				}
			}
			switch {
			case open == 1:
				m.DeadEnds++
			case open >= 3:
				m.Junctions++
			}
		}
	}

	raw := m.DeadEnds/2 + m.Junctions/3 + m.Pickups + 2*m.Obstacles + 3*m.Portals
	m.Score = core.Clamp(1+raw/4, 1, 10)
	return m
}
