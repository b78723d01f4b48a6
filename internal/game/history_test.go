package game

import (
	"testing"

	"github.com/vovakirdan/tui-serpent/internal/core"
)

func TestHistoryPushPopOrder(t *testing.T) {
	h := NewHistory(5)
	for i := 0; i < 3; i++ {
		h.Push(Delta{MoveCount: i})
	}
	for want := 2; want >= 0; want-- {
		d, ok := h.Pop()
		if !ok || d.MoveCount != want {
			t.Fatalf("pop = (%d,%v), want (%d,true)", d.MoveCount, ok, want)
		}
	}
	if _, ok := h.Pop(); ok {
		t.Error("pop on empty history succeeded")
	}
}

func TestHistoryDiscardsOldestPastCap(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(Delta{MoveCount: i})
	}
	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	if h.Discarded() != 2 {
		t.Fatalf("discarded = %d, want 2", h.Discarded())
	}
	// Newest three survive: 4, 3, 2.
	for want := 4; want >= 2; want-- {
		d, _ := h.Pop()
		if d.MoveCount != want {
			t.Errorf("pop = %d, want %d", d.MoveCount, want)
		}
	}
}

func TestHistoryClearResetsDiscardCounter(t *testing.T) {
	h := NewHistory(2)
	for i := 0; i < 4; i++ {
		h.Push(Delta{TailBefore: core.Point{X: i}})
	}
	h.Clear()
	if h.Len() != 0 || h.Discarded() != 0 {
		t.Errorf("after clear: len=%d discarded=%d, want 0/0", h.Len(), h.Discarded())
	}
}

func TestHistoryMinimumCapacity(t *testing.T) {
	h := NewHistory(0)
	h.Push(Delta{MoveCount: 1})
	h.Push(Delta{MoveCount: 2})
	if h.Len() != 1 || h.Discarded() != 1 {
		t.Errorf("len=%d discarded=%d, want 1/1", h.Len(), h.Discarded())
	}
}
