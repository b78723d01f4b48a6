package game

import (
	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
)

// EventKind discriminates engine notifications.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventMove
	EventBlocked
	EventItemCollected
	EventPowerStart
	EventPowerEnd
	EventPortalUsed
	EventLevelClear
	EventGameComplete
	EventDeadlock
	EventStorageError
	EventUndo
	EventRestart
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state_changed"
	case EventMove:
		return "move"
	case EventBlocked:
		return "blocked"
	case EventItemCollected:
		return "item_collected"
	case EventPowerStart:
		return "power_start"
	case EventPowerEnd:
		return "power_end"
	case EventPortalUsed:
		return "portal_used"
	case EventLevelClear:
		return "level_clear"
	case EventGameComplete:
		return "game_complete"
	case EventDeadlock:
		return "deadlock"
	case EventStorageError:
		return "storage_error"
	case EventUndo:
		return "undo"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is one queued one-shot notification. Only the fields relevant to
// the kind are populated.
type Event struct {
	Kind EventKind

	From, To State // state_changed

	Dir    core.Direction // move, blocked
	Reason BlockReason    // blocked

	Tile           board.Tile // item_collected
	Growth         int        // item_collected
	Pos            core.Point // item_collected
	ItemsCollected int        // item_collected
	ItemsTotal     int        // item_collected

	PortalFrom, PortalTo core.Point // portal_used

	Moves int // level_clear
	Best  int // level_clear

	Err string // storage_error
}

// eventQueue is the engine-owned notification queue. The caller drains it
// once per frame; drained events are not re-delivered.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(e Event) {
	q.events = append(q.events, e)
}

// drain returns all queued events and clears the queue.
func (q *eventQueue) drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
