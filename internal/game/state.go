package game

// State is the engine's top-level game state.
type State int

const (
	StateTitle State = iota
	StateLevelSelect
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameComplete
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateLevelSelect:
		return "level_select"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level_complete"
	case StateGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// transitions lists, per state, the states it may move to. A no-op
// self-transition is always allowed; anything else is rejected.
var transitions = map[State][]State{
	StateTitle:         {StateLevelSelect, StatePlaying},
	StateLevelSelect:   {StateTitle, StatePlaying},
	StatePlaying:       {StatePaused, StateLevelComplete, StateGameComplete, StateLevelSelect, StateTitle},
	StatePaused:        {StatePlaying, StateLevelSelect, StateTitle},
	StateLevelComplete: {StatePlaying, StateLevelSelect, StateTitle},
	StateGameComplete:  {StateTitle, StateLevelSelect},
}

// canTransition reports whether from may move to to.
func canTransition(from, to State) bool {
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
