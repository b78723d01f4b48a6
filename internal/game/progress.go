package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-serpent/internal/core"
)

// Progress is the persisted campaign state. Encoding is the storage layer's
// concern; the engine only cares about these logical fields.
type Progress struct {
	Unlocked    int         // Highest unlocked level index (0-based)
	Best        map[int]int // Level ID -> best (lowest) move count
	TotalMoves  int
	TotalClears int
	TotalItems  int
}

// NewProgress returns a fresh campaign with only the first level unlocked.
func NewProgress() Progress {
	return Progress{Best: make(map[int]int)}
}

// Clone returns an independent copy of the progress.
func (p Progress) Clone() Progress {
	best := make(map[int]int, len(p.Best))
	for k, v := range p.Best {
		best[k] = v
	}
	return Progress{
		Unlocked:    p.Unlocked,
		Best:        best,
		TotalMoves:  p.TotalMoves,
		TotalClears: p.TotalClears,
		TotalItems:  p.TotalItems,
	}
}

// ProgressStore persists campaign progress. The engine degrades gracefully
// when the store fails: it keeps playing in memory and surfaces a non-fatal
// storage-error event.
type ProgressStore interface {
	LoadProgress() (Progress, error)
	SaveProgress(Progress) error
}

// SettingSaver is the optional store extension for archiving the replay of
// the most recent clear. A store without it simply skips the archive.
type SettingSaver interface {
	SetSetting(key, value string) error
}

// LastReplayKey is the settings key holding the archived replay.
const LastReplayKey = "last_replay"

// ReplayEntry is one recorded move of the current play-through.
type ReplayEntry struct {
	Dir       core.Direction
	ElapsedMs int64 // Milliseconds since the level was loaded
	Move      int   // 0-based move index
}

// replay direction letters, indexed by core.Direction
var dirLetters = [4]string{"u", "d", "l", "r"}

// EncodeReplay packs a cleared level's move log into a settings value:
// the level ID, a colon, then one "letter@elapsedMs" token per move.
func EncodeReplay(levelID int, entries []ReplayEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:", levelID)
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		letter := "?"
		if e.Dir.Valid() {
			letter = dirLetters[e.Dir]
		}
		fmt.Fprintf(&sb, "%s@%d", letter, e.ElapsedMs)
	}
	return sb.String()
}

// DecodeReplay inverts EncodeReplay. Move indices are positional.
func DecodeReplay(s string) (levelID int, entries []ReplayEntry, err error) {
	head, rest, ok := strings.Cut(s, ":")
	if !ok {
		return 0, nil, fmt.Errorf("replay: missing level prefix in %q", s)
	}
	levelID, err = strconv.Atoi(head)
	if err != nil {
		return 0, nil, fmt.Errorf("replay: bad level id %q: %w", head, err)
	}
	if rest == "" {
		return levelID, nil, nil
	}
	for i, token := range strings.Split(rest, ",") {
		letter, ms, ok := strings.Cut(token, "@")
		if !ok {
			return 0, nil, fmt.Errorf("replay: bad token %q", token)
		}
		dir := core.Direction(-1)
		for d, l := range dirLetters {
			if l == letter {
				dir = core.Direction(d)
			}
		}
		if !dir.Valid() {
			return 0, nil, fmt.Errorf("replay: bad direction %q", letter)
		}
		elapsed, err := strconv.ParseInt(ms, 10, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("replay: bad elapsed %q: %w", ms, err)
		}
		entries = append(entries, ReplayEntry{Dir: dir, ElapsedMs: elapsed, Move: i})
	}
	return levelID, entries, nil
}

// LevelInfo is the level-select metadata exposed to the UI.
type LevelInfo struct {
	ID         int
	World      int
	Stage      int
	Title      string
	Character  string
	Locked     bool
	Best       int // 0 when the level has never been cleared
	Difficulty int // 1..10 display score
	Rows       []string
}
