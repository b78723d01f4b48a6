package game

import "github.com/vovakirdan/tui-serpent/internal/core"

// Snapshot is a flat capture of the observable session state, used by
// determinism tests and debug overlays.
type Snapshot struct {
	State      State
	LevelID    int
	MoveCount  int
	Star       int
	Items      int
	ItemsTotal int
	Length     int
	Head       core.Point
	Segments   []core.Point
	Facing     core.Direction
	HistoryLen int
	Discarded  int
}

// Snapshot captures the current session state. Before a level is loaded only
// the state field is meaningful.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{State: e.state, LevelID: -1}
	if e.lvl == nil || e.actor == nil {
		return s
	}
	s.LevelID = e.lvl.ID
	s.MoveCount = e.moveCount
	s.Star = e.star
	s.Items = e.itemsGot
	s.ItemsTotal = e.itemsTotal
	s.Length = e.actor.Len()
	s.Head = e.actor.Head()
	s.Segments = e.actor.Segments()
	s.Facing = e.actor.Facing()
	s.HistoryLen = e.history.Len()
	s.Discarded = e.history.Discarded()
	return s
}
