package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/game"
)

// flashDuration is how long transient HUD notifications stay visible.
const flashDuration = 2 * time.Second

// Model is the Bubble Tea model driving the whole game flow. All game state
// lives in the engine; the model only holds presentation state.
type Model struct {
	engine    *game.Engine
	keys      KeyMap
	help      help.Model
	theme     Theme
	showHints bool
	fps       int

	infos      []game.LevelInfo
	levelTable table.Model

	width      int
	height     int
	flash      string
	flashUntil time.Time
	quitting   bool
}

// NewModel creates the top-level model around a prepared engine.
func NewModel(engine *game.Engine, display config.DisplayConfig, keys KeyMap) Model {
	h := help.New()
	h.ShowAll = false

	fps := display.FPS
	if fps <= 0 {
		fps = frameRate
	}

	infos := engine.LevelInfos()
	return Model{
		engine:     engine,
		keys:       keys,
		help:       h,
		theme:      ThemeByName(display.Theme),
		showHints:  display.ShowHints,
		fps:        fps,
		infos:      infos,
		levelTable: newLevelTable(infos, levelTableHeight),
	}
}

// Init starts the render loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.consumeEvents(time.Time(msg))
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// handleKey dispatches keyboard input by engine state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	now := time.Now()
	switch m.engine.State() {
	case game.StateTitle:
		if key.Matches(msg, m.keys.Confirm) {
			m.engine.Start()
		}

	case game.StateLevelSelect:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			if !m.engine.SelectLevel(m.levelTable.Cursor(), now) {
				m.setFlash("that level is still locked", now)
			}
		case key.Matches(msg, m.keys.Back):
			m.engine.ExitToTitle()
		default:
			var cmd tea.Cmd
			m.levelTable, cmd = m.levelTable.Update(msg)
			return m, cmd
		}

	case game.StatePlaying:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.engine.TryMove(core.DirUp, now)
		case key.Matches(msg, m.keys.Down):
			m.engine.TryMove(core.DirDown, now)
		case key.Matches(msg, m.keys.Left):
			m.engine.TryMove(core.DirLeft, now)
		case key.Matches(msg, m.keys.Right):
			m.engine.TryMove(core.DirRight, now)
		case key.Matches(msg, m.keys.Undo):
			if !m.engine.Undo() {
				m.setFlash("nothing to undo", now)
			}
		case key.Matches(msg, m.keys.Restart):
			m.engine.Restart(now)
		case key.Matches(msg, m.keys.Pause), key.Matches(msg, m.keys.Back):
			m.engine.Pause()
		}

	case game.StatePaused:
		switch {
		case key.Matches(msg, m.keys.Pause), key.Matches(msg, m.keys.Confirm):
			m.engine.Resume()
		case key.Matches(msg, m.keys.Restart):
			m.engine.Restart(now)
		case key.Matches(msg, m.keys.Back):
			m.engine.ExitToLevelSelect()
			m.refreshLevels()
		}

	case game.StateLevelComplete:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.engine.AdvanceLevel(now)
		case key.Matches(msg, m.keys.Restart):
			m.engine.Restart(now)
		case key.Matches(msg, m.keys.Back):
			m.engine.ExitToLevelSelect()
			m.refreshLevels()
		}

	case game.StateGameComplete:
		if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Back) {
			m.engine.ExitToTitle()
		}
	}

	return m, nil
}

// refreshLevels rebuilds the level table after bests or unlocks changed.
func (m *Model) refreshLevels() {
	cursor := m.levelTable.Cursor()
	m.infos = m.engine.LevelInfos()
	m.levelTable.SetRows(levelRows(m.infos))
	m.levelTable.SetCursor(cursor)
}

func (m *Model) setFlash(text string, now time.Time) {
	m.flash = text
	m.flashUntil = now.Add(flashDuration)
}

// consumeEvents drains the engine queue into HUD notifications.
func (m *Model) consumeEvents(now time.Time) {
	for _, ev := range m.engine.DrainEvents() {
		switch ev.Kind {
		case game.EventBlocked:
			m.setFlash(fmt.Sprintf("blocked by %s", ev.Reason), now)
		case game.EventItemCollected:
			m.setFlash(fmt.Sprintf("item collected (%d/%d)", ev.ItemsCollected, ev.ItemsTotal), now)
		case game.EventPowerStart:
			m.setFlash("star power!", now)
		case game.EventPowerEnd:
			m.setFlash("star power faded", now)
		case game.EventPortalUsed:
			m.setFlash("warped", now)
		case game.EventDeadlock:
			if m.showHints {
				m.setFlash("no moves left: undo or restart", now)
			}
		case game.EventStorageError:
			m.setFlash("progress not saved: "+ev.Err, now)
		case game.EventStateChanged:
			if ev.To == game.StateLevelSelect {
				m.refreshLevels()
			}
		}
	}
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.engine.State() {
	case game.StateTitle:
		return m.viewTitle()
	case game.StateLevelSelect:
		return m.viewLevelSelect()
	case game.StatePlaying, game.StatePaused:
		return m.viewPlaying()
	case game.StateLevelComplete:
		return m.viewLevelComplete()
	case game.StateGameComplete:
		return m.viewGameComplete()
	}
	return ""
}

func (m Model) viewTitle() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Title.Render("S E R P E N T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Dim.Render("a maze puzzle in ten worlds"), m.width))
	b.WriteString("\n\n")

	p := m.engine.ProgressSummary()
	if p.TotalClears > 0 {
		stats := fmt.Sprintf("cleared %d · moves %d · items %d", p.TotalClears, p.TotalMoves, p.TotalItems)
		b.WriteString(centerText(m.theme.HUD.Render(stats), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(m.theme.Dim.Render("enter: start · q: quit"), m.width))
	return b.String()
}

func (m Model) viewLevelSelect() string {
	var b strings.Builder
	b.WriteString(centerText(m.theme.Title.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	tableView := m.levelTable.View()
	if m.width >= minWidthForPreview {
		cursor := m.levelTable.Cursor()
		if cursor >= 0 && cursor < len(m.infos) {
			info := m.infos[cursor]
			preview := renderThumbnail(info.Rows, info.Locked, m.theme)
			tableView = joinColumns(tableView, preview)
		}
	}
	b.WriteString(centerBlock(tableView, m.width))

	if m.flashActive() {
		b.WriteString("\n")
		b.WriteString(m.theme.Flash.Render(m.flash))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render("enter: play · esc: title · q: quit"))
	return b.String()
}

func (m Model) viewPlaying() string {
	lvl := m.engine.Level()
	if lvl == nil {
		return ""
	}
	now := time.Now()

	var b strings.Builder
	header := fmt.Sprintf("%s · %s", lvl.Title, lvl.Character)
	b.WriteString(m.theme.Title.Render(header))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m.engine, now, m.theme))
	b.WriteString("\n\n")

	got, total := m.engine.ItemProgress()
	hud := fmt.Sprintf("moves %d", m.engine.MoveCount())
	if best := m.engine.BestMoves(); best > 0 {
		hud += fmt.Sprintf(" · best %d", best)
	}
	hud += fmt.Sprintf(" · items %d/%d", got, total)
	b.WriteString(m.theme.HUD.Render(hud))

	if bar := starBar(m.engine.StarRemaining(), game.DefaultStarPowerMoves, m.theme); bar != "" {
		b.WriteString("  ")
		b.WriteString(bar)
	}
	b.WriteString("\n")

	if m.engine.State() == game.StatePaused {
		b.WriteString(m.theme.Flash.Render("PAUSED · p: resume · esc: level select"))
	} else if m.showHints && m.engine.HintActive(now) {
		b.WriteString(m.theme.Hint.Render("stuck? undo with u or restart with r"))
	} else if m.flashActive() {
		b.WriteString(m.theme.Flash.Render(m.flash))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewLevelComplete() string {
	lvl := m.engine.Level()
	got, total := m.engine.ItemProgress()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Title.Render("LEVEL CLEAR"), m.width))
	b.WriteString("\n\n")
	if lvl != nil {
		b.WriteString(centerText(m.theme.HUD.Render(lvl.Title), m.width))
		b.WriteString("\n")
	}
	stats := fmt.Sprintf("moves %d · best %d · items %d/%d",
		m.engine.MoveCount(), m.engine.BestMoves(), got, total)
	b.WriteString(centerText(m.theme.HUD.Render(stats), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Dim.Render("enter: next level · r: retry · esc: level select"), m.width))
	return b.String()
}

func (m Model) viewGameComplete() string {
	p := m.engine.ProgressSummary()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Title.Render("CAMPAIGN COMPLETE"), m.width))
	b.WriteString("\n\n")
	stats := fmt.Sprintf("levels %d · moves %d · items %d", p.TotalClears, p.TotalMoves, p.TotalItems)
	b.WriteString(centerText(m.theme.HUD.Render(stats), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Dim.Render("enter: title · q: quit"), m.width))
	return b.String()
}

func (m Model) flashActive() bool {
	return m.flash != "" && time.Now().Before(m.flashUntil)
}

// joinColumns places two blocks side by side with a small gap.
func joinColumns(left, right string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

// Run starts the Bubble Tea program around a prepared engine.
func Run(engine *game.Engine, display config.DisplayConfig, keys KeyMap) error {
	model := NewModel(engine, display, keys)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
