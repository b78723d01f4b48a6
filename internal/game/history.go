package game

import "github.com/vovakirdan/tui-serpent/internal/core"

// DefaultHistoryCap bounds the undo log.
const DefaultHistoryCap = 300

// Delta is the minimal record needed to exactly invert one move.
type Delta struct {
	MoveCount   int            // Move counter before the move
	PrevFacing  core.Direction // Facing before the move
	TailBefore  core.Point     // Tail position before the move
	Growth      int            // 0, 1 or 2 segments appended
	Consumed    *Pickup        // Item restored on undo, nil if none
	ItemsBefore int            // Per-level item counter before the move
	StarBefore  int            // Star counter before the move
	Portal      *PortalJump    // Warp taken during the move, nil if none
}

// History is a fixed-capacity ring of move deltas. When full, the oldest
// entry is discarded and counted; the discard count is kept for diagnostics
// rather than silently losing the ability to undo past the cap.
type History struct {
	buf       []Delta
	start     int
	size      int
	discarded int
}

// NewHistory creates a history with the given capacity (minimum 1).
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Delta, capacity)}
}

// Push appends a delta, discarding the oldest entry when full.
func (h *History) Push(d Delta) {
	if h.size == len(h.buf) {
		h.start = (h.start + 1) % len(h.buf)
		h.size--
		h.discarded++
	}
	h.buf[(h.start+h.size)%len(h.buf)] = d
	h.size++
}

// Pop removes and returns the most recent delta.
func (h *History) Pop() (Delta, bool) {
	if h.size == 0 {
		return Delta{}, false
	}
	h.size--
	return h.buf[(h.start+h.size)%len(h.buf)], true
}

// Len returns the number of stored deltas.
func (h *History) Len() int {
	return h.size
}

// Discarded returns how many deltas were dropped past the cap.
func (h *History) Discarded() int {
	return h.discarded
}

// Clear empties the history and resets the discard counter. Called whenever
// a level (re)loads.
func (h *History) Clear() {
	h.start = 0
	h.size = 0
	h.discarded = 0
}
