package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/level"
)

// Default pacing and hint timings, in milliseconds.
const (
	DefaultMoveAnimMs     = 140
	DefaultDeadlockHintMs = 4000
)

// Config tunes the engine. Zero values fall back to the defaults.
type Config struct {
	HistoryCap     int
	StarPowerMoves int
	MoveAnimMs     int
	DeadlockHintMs int
}

// DefaultEngineConfig returns the stock engine tuning.
func DefaultEngineConfig() Config {
	return Config{
		HistoryCap:     DefaultHistoryCap,
		StarPowerMoves: DefaultStarPowerMoves,
		MoveAnimMs:     DefaultMoveAnimMs,
		DeadlockHintMs: DefaultDeadlockHintMs,
	}
}

func (c Config) normalized() Config {
	if c.HistoryCap < 1 {
		c.HistoryCap = DefaultHistoryCap
	}
	if c.StarPowerMoves < 1 {
		c.StarPowerMoves = DefaultStarPowerMoves
	}
	if c.MoveAnimMs < 1 {
		c.MoveAnimMs = DefaultMoveAnimMs
	}
	if c.DeadlockHintMs < 1 {
		c.DeadlockHintMs = DefaultDeadlockHintMs
	}
	return c
}

// Engine drives one play session across the campaign: the state machine,
// move resolution and commit, the undo log, progress persistence, and the
// event queue the UI drains. All methods are single-goroutine; the caller
// serializes access the way a Bubble Tea update loop naturally does.
type Engine struct {
	cfg      Config
	rules    Rules
	levels   []*level.Level
	store    ProgressStore
	progress Progress

	state State

	levelIndex int
	lvl        *level.Level
	grid       *board.Board
	links      board.PortalLinks
	exit       core.Point
	actor      *Actor
	history    *History
	events     eventQueue

	moveCount  int
	star       int
	itemsGot   int
	itemsTotal int

	loadedAt   time.Time
	lastMoveAt time.Time
	animFrom   []core.Point
	hintUntil  time.Time

	replay   []ReplayEntry
	archived []ReplayEntry
}

// NewEngine creates an engine over a campaign. A nil store disables
// persistence; a failing store downgrades to fresh progress and queues a
// storage-error event instead of refusing to play.
func NewEngine(levels []*level.Level, cfg Config, store ProgressStore) *Engine {
	cfg = cfg.normalized()
	e := &Engine{
		cfg:      cfg,
		rules:    Rules{StarMoves: cfg.StarPowerMoves},
		levels:   levels,
		store:    store,
		progress: NewProgress(),
		state:    StateTitle,
		history:  NewHistory(cfg.HistoryCap),
	}
	if store != nil {
		p, err := store.LoadProgress()
		if err != nil {
			e.events.push(Event{Kind: EventStorageError, Err: err.Error()})
		} else {
			if p.Best == nil {
				p.Best = make(map[int]int)
			}
			e.progress = p
		}
	}
	return e
}

// State returns the current top-level state.
func (e *Engine) State() State {
	return e.state
}

// setState performs a checked transition and queues the change event.
func (e *Engine) setState(to State) bool {
	if !canTransition(e.state, to) {
		return false
	}
	if e.state != to {
		e.events.push(Event{Kind: EventStateChanged, From: e.state, To: to})
	}
	e.state = to
	return true
}

// Start moves from the title screen to level select.
func (e *Engine) Start() bool {
	if e.state != StateTitle {
		return false
	}
	return e.setState(StateLevelSelect)
}

// SelectLevel loads an unlocked level and starts playing it.
func (e *Engine) SelectLevel(index int, now time.Time) bool {
	if index < 0 || index >= len(e.levels) || index > e.progress.Unlocked {
		return false
	}
	if !canTransition(e.state, StatePlaying) {
		return false
	}
	e.loadLevel(index, now)
	return e.setState(StatePlaying)
}

// AdvanceLevel loads the next level after a clear. From the game-complete
// screen there is nothing further to advance to.
func (e *Engine) AdvanceLevel(now time.Time) bool {
	if e.state != StateLevelComplete {
		return false
	}
	return e.SelectLevel(e.levelIndex+1, now)
}

// RetreatLevel replays the previous level from the clear screen.
func (e *Engine) RetreatLevel(now time.Time) bool {
	if e.state != StateLevelComplete {
		return false
	}
	return e.SelectLevel(e.levelIndex-1, now)
}

// Restart reloads the current level from scratch. Allowed while playing,
// paused, or on the clear screen.
func (e *Engine) Restart(now time.Time) bool {
	switch e.state {
	case StatePlaying, StatePaused, StateLevelComplete:
	default:
		return false
	}
	if e.lvl == nil {
		return false
	}
	e.loadLevel(e.levelIndex, now)
	e.events.push(Event{Kind: EventRestart})
	return e.setState(StatePlaying)
}

// Pause suspends play.
func (e *Engine) Pause() bool {
	if e.state != StatePlaying {
		return false
	}
	return e.setState(StatePaused)
}

// Resume returns from pause to play.
func (e *Engine) Resume() bool {
	if e.state != StatePaused {
		return false
	}
	return e.setState(StatePlaying)
}

// ExitToLevelSelect abandons the current session and returns to the list.
func (e *Engine) ExitToLevelSelect() bool {
	return e.setState(StateLevelSelect)
}

// ExitToTitle abandons the current session and returns to the title screen.
func (e *Engine) ExitToTitle() bool {
	return e.setState(StateTitle)
}

// loadLevel installs a fresh play session for the level at index. The level's
// board is cloned because item collection rewrites tiles, and the actor is
// placed with the level's own seed so a restart reproduces the exact chain.
func (e *Engine) loadLevel(index int, now time.Time) {
	lvl := e.levels[index]
	e.levelIndex = index
	e.lvl = lvl
	e.grid = lvl.Board.Clone()
	e.links = e.grid.Links()
	e.exit, _ = e.grid.First(board.TileExit)
	e.actor = PlaceActor(e.grid, lvl.Spawn, lvl.StartLength, rand.New(rand.NewSource(lvl.Seed)))
	e.history.Clear()
	e.moveCount = 0
	e.star = 0
	e.itemsGot = 0
	e.itemsTotal = e.grid.Count(board.TileItem) + e.grid.Count(board.TileBigItem)
	e.loadedAt = now
	e.lastMoveAt = time.Time{}
	e.animFrom = e.actor.Segments()
	e.hintUntil = time.Time{}
	e.replay = nil
}

// moveGateOpen reports whether enough of the move animation window has
// elapsed for the next move to be accepted. The first move is always open.
func (e *Engine) moveGateOpen(now time.Time) bool {
	if e.lastMoveAt.IsZero() {
		return true
	}
	gate := time.Duration(e.cfg.MoveAnimMs) * time.Millisecond * 7 / 10
	return now.Sub(e.lastMoveAt) >= gate
}

// TryMove attempts one step. A rejected move (wrong state, pacing gate,
// wall, obstacle) leaves the session untouched; blocked moves still queue a
// notification so the UI can flash feedback.
func (e *Engine) TryMove(dir core.Direction, now time.Time) bool {
	if e.state != StatePlaying || e.actor == nil {
		return false
	}
	if !e.moveGateOpen(now) {
		return false
	}

	out := e.rules.Resolve(e.grid, e.links, e.actor.Snapshot(), e.star, dir)
	if !out.Moved {
		if out.Blocked != BlockNone {
			e.events.push(Event{Kind: EventBlocked, Dir: dir, Reason: out.Blocked})
		}
		return false
	}

	delta := Delta{
		MoveCount:   e.moveCount,
		PrevFacing:  e.actor.Facing(),
		TailBefore:  out.TailBefore,
		Consumed:    out.Pickup,
		ItemsBefore: e.itemsGot,
		StarBefore:  e.star,
		Portal:      out.Portal,
	}
	if out.Pickup != nil {
		delta.Growth = out.Pickup.Growth
	}

	// Commit.
	e.animFrom = e.actor.Segments()
	e.actor.Restore(out.State)
	e.star = out.Star
	if out.Pickup != nil {
		e.grid.Set(out.Pickup.Pos, board.TileEmpty)
		e.itemsGot++
		e.progress.TotalItems++
	}
	e.history.Push(delta)
	e.replay = append(e.replay, ReplayEntry{
		Dir:       dir,
		ElapsedMs: now.Sub(e.loadedAt).Milliseconds(),
		Move:      e.moveCount,
	})
	e.moveCount++
	e.progress.TotalMoves++
	e.lastMoveAt = now
	e.hintUntil = time.Time{}

	e.events.push(Event{Kind: EventMove, Dir: dir})
	if out.Pickup != nil {
		e.events.push(Event{
			Kind:           EventItemCollected,
			Tile:           out.Pickup.Tile,
			Growth:         out.Pickup.Growth,
			Pos:            out.Pickup.Pos,
			ItemsCollected: e.itemsGot,
			ItemsTotal:     e.itemsTotal,
		})
	}
	if out.StarActivated {
		e.events.push(Event{Kind: EventPowerStart})
	}
	if out.StarEnded {
		e.events.push(Event{Kind: EventPowerEnd})
	}
	if out.Portal != nil {
		e.events.push(Event{Kind: EventPortalUsed, PortalFrom: out.Portal.From, PortalTo: out.Portal.To})
	}

	if e.actor.Head() == e.exit {
		e.completeLevel()
	} else {
		e.checkDeadlock(now)
		e.persist()
	}
	return true
}

// completeLevel records the clear, archives the replay, unlocks the next
// level, and transitions to the clear (or campaign-complete) screen.
func (e *Engine) completeLevel() {
	best := e.progress.Best[e.lvl.ID]
	if best == 0 || e.moveCount < best {
		best = e.moveCount
		e.progress.Best[e.lvl.ID] = best
	}
	e.progress.TotalClears++
	if next := e.levelIndex + 1; next < len(e.levels) && next > e.progress.Unlocked {
		e.progress.Unlocked = next
	}
	e.archived = make([]ReplayEntry, len(e.replay))
	copy(e.archived, e.replay)
	e.persist()
	if ss, ok := e.store.(SettingSaver); ok {
		if err := ss.SetSetting(LastReplayKey, EncodeReplay(e.lvl.ID, e.archived)); err != nil {
			e.events.push(Event{Kind: EventStorageError, Err: err.Error()})
		}
	}

	e.events.push(Event{Kind: EventLevelClear, Moves: e.moveCount, Best: best})
	if e.levelIndex == len(e.levels)-1 {
		e.events.push(Event{Kind: EventGameComplete})
		e.setState(StateGameComplete)
		return
	}
	e.setState(StateLevelComplete)
}

// checkDeadlock arms the time-boxed undo hint when the head has no legal
// move left. Deadlock is advisory: undo and restart always remain available.
func (e *Engine) checkDeadlock(now time.Time) {
	head := e.actor.Head()
	for _, d := range core.Directions {
		if Enterable(e.grid, head.Add(d.Delta()), e.star) {
			return
		}
	}
	e.hintUntil = now.Add(time.Duration(e.cfg.DeadlockHintMs) * time.Millisecond)
	e.events.push(Event{Kind: EventDeadlock})
}

// HintActive reports whether the deadlock hint should currently be shown.
func (e *Engine) HintActive(now time.Time) bool {
	return !e.hintUntil.IsZero() && now.Before(e.hintUntil)
}

// Undo exactly inverts the most recent move. The inverse runs in reverse
// commit order: portal rollback first, then growth trim, then the reverse
// shift, then tile and counter restoration.
func (e *Engine) Undo() bool {
	if e.state != StatePlaying || e.actor == nil {
		return false
	}
	d, ok := e.history.Pop()
	if !ok {
		return false
	}

	segs := e.actor.Segments()

	// A warped head came from the portal entry tile, not from the adjacent
	// cell; rewrite it before reversing the shift.
	if d.Portal != nil {
		segs[0] = d.Portal.From
	}

	// Trim the segments growth appended, never below one segment.
	for i := 0; i < d.Growth && len(segs) > 1; i++ {
		segs = segs[:len(segs)-1]
	}

	// Reverse shift: every segment slides back toward the tail, and the old
	// tail cell is reoccupied.
	segs = append(segs[1:], d.TailBefore)

	e.actor.Restore(ActorState{Segments: segs, Facing: d.PrevFacing})

	if d.Consumed != nil {
		e.grid.Set(d.Consumed.Pos, d.Consumed.Tile)
	}
	e.itemsGot = d.ItemsBefore
	e.star = d.StarBefore
	e.moveCount = d.MoveCount
	if n := len(e.replay); n > 0 {
		e.replay = e.replay[:n-1]
	}
	e.animFrom = e.actor.Segments()
	e.lastMoveAt = time.Time{}
	e.hintUntil = time.Time{}
	e.events.push(Event{Kind: EventUndo})
	return true
}

// persist saves progress, downgrading store failures to an event.
func (e *Engine) persist() {
	if e.store == nil {
		return
	}
	if err := e.store.SaveProgress(e.progress.Clone()); err != nil {
		e.events.push(Event{Kind: EventStorageError, Err: err.Error()})
	}
}

// DrainEvents returns all queued events and clears the queue.
func (e *Engine) DrainEvents() []Event {
	return e.events.drain()
}

// Level returns the currently loaded level, nil before the first load.
func (e *Engine) Level() *level.Level {
	return e.lvl
}

// LevelIndex returns the index of the currently loaded level.
func (e *Engine) LevelIndex() int {
	return e.levelIndex
}

// TileAt reads the live play grid (items disappear as they are collected).
func (e *Engine) TileAt(p core.Point) board.Tile {
	if e.grid == nil {
		return board.TileWall
	}
	return e.grid.At(p)
}

// Segments returns a copy of the serpent's segment chain, head first.
func (e *Engine) Segments() []core.Point {
	if e.actor == nil {
		return nil
	}
	return e.actor.Segments()
}

// Facing returns the serpent's facing direction.
func (e *Engine) Facing() core.Direction {
	if e.actor == nil {
		return core.DirRight
	}
	return e.actor.Facing()
}

// InterpolatedSegments returns per-segment render positions blended between
// the pre-move and post-move chains. Portal warps snap rather than sweep
// across the board.
func (e *Engine) InterpolatedSegments(now time.Time) []core.Vec {
	if e.actor == nil {
		return nil
	}
	segs := e.actor.Segments()
	out := make([]core.Vec, len(segs))
	t := 1.0
	if !e.lastMoveAt.IsZero() {
		window := time.Duration(e.cfg.MoveAnimMs) * time.Millisecond
		t = float64(now.Sub(e.lastMoveAt)) / float64(window)
	}
	for i, to := range segs {
		from := to
		if i < len(e.animFrom) {
			from = e.animFrom[i]
		} else if len(e.animFrom) > 0 {
			from = e.animFrom[len(e.animFrom)-1]
		}
		if core.Manhattan(from, to) > 1 {
			from = to
		}
		out[i] = core.Lerp(from, to, t)
	}
	return out
}

// MoveCount returns moves taken in the current session.
func (e *Engine) MoveCount() int {
	return e.moveCount
}

// BestMoves returns the recorded best for the current level, 0 if uncleared.
func (e *Engine) BestMoves() int {
	if e.lvl == nil {
		return 0
	}
	return e.progress.Best[e.lvl.ID]
}

// ItemProgress returns collected and total item counts for the session.
func (e *Engine) ItemProgress() (got, total int) {
	return e.itemsGot, e.itemsTotal
}

// StarRemaining returns how many obstacle-passing moves remain.
func (e *Engine) StarRemaining() int {
	return e.star
}

// HistoryDiscarded returns how many undo records were dropped past the cap.
func (e *Engine) HistoryDiscarded() int {
	return e.history.Discarded()
}

// UndoAvailable reports whether at least one move can be undone.
func (e *Engine) UndoAvailable() bool {
	return e.history.Len() > 0
}

// Replay returns a copy of the in-progress move log.
func (e *Engine) Replay() []ReplayEntry {
	out := make([]ReplayEntry, len(e.replay))
	copy(out, e.replay)
	return out
}

// ArchivedReplay returns the move log of the most recent clear.
func (e *Engine) ArchivedReplay() []ReplayEntry {
	out := make([]ReplayEntry, len(e.archived))
	copy(out, e.archived)
	return out
}

// ProgressSummary returns a copy of the campaign progress.
func (e *Engine) ProgressSummary() Progress {
	return e.progress.Clone()
}

// LevelInfos returns level-select metadata for the whole campaign.
func (e *Engine) LevelInfos() []LevelInfo {
	infos := make([]LevelInfo, len(e.levels))
	for i, lvl := range e.levels {
		infos[i] = LevelInfo{
			ID:         lvl.ID,
			World:      lvl.World,
			Stage:      lvl.Stage,
			Title:      lvl.Title,
			Character:  lvl.Character,
			Locked:     i > e.progress.Unlocked,
			Best:       e.progress.Best[lvl.ID],
			Difficulty: lvl.Metrics.Score,
			Rows:       lvl.Board.Rows(),
		}
	}
	return infos
}
