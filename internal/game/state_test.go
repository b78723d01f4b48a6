package game

import "testing"

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		from, to State
		ok       bool
	}{
		{StateTitle, StateLevelSelect, true},
		{StateTitle, StatePlaying, true},
		{StateTitle, StatePaused, false},
		{StateLevelSelect, StatePlaying, true},
		{StateLevelSelect, StatePaused, false},
		{StatePlaying, StatePaused, true},
		{StatePlaying, StateLevelComplete, true},
		{StatePlaying, StateGameComplete, true},
		{StatePlaying, StateTitle, true},
		{StatePaused, StatePlaying, true},
		{StatePaused, StateLevelComplete, false},
		{StateLevelComplete, StatePlaying, true},
		{StateLevelComplete, StateGameComplete, false},
		{StateGameComplete, StateTitle, true},
		{StateGameComplete, StatePlaying, false},
		{StatePlaying, StatePlaying, true}, // self-transition always allowed
	}
	for _, c := range cases {
		if got := canTransition(c.from, c.to); got != c.ok {
			t.Errorf("canTransition(%v, %v) = %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestStateStrings(t *testing.T) {
	if StatePlaying.String() != "playing" || StateLevelComplete.String() != "level_complete" {
		t.Error("unexpected state names")
	}
	if State(99).String() != "unknown" {
		t.Error("unknown state not labeled")
	}
}
