package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-serpent/internal/game"
)

// Level-select layout constants
const (
	levelTableHeight   = 12
	minWidthForPreview = 64 // Minimum width to show the maze preview pane
)

// newLevelTable builds the campaign table for level select.
func newLevelTable(infos []game.LevelInfo, height int) table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Character", Width: 18},
		{Title: "Best", Width: 5},
		{Title: "Diff", Width: 6},
	}

	if height < 4 {
		height = levelTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	t.SetRows(levelRows(infos))
	return t
}

// levelRows converts level metadata to table rows. Locked levels keep their
// slot visible but hide everything except the world/stage label.
func levelRows(infos []game.LevelInfo) []table.Row {
	rows := make([]table.Row, len(infos))
	for i, info := range infos {
		label := fmt.Sprintf("%d-%d", info.World, info.Stage)
		if info.Locked {
			rows[i] = table.Row{label, "· locked ·", "", "", ""}
			continue
		}
		best := "-"
		if info.Best > 0 {
			best = fmt.Sprintf("%d", info.Best)
		}
		rows[i] = table.Row{
			label,
			info.Title,
			info.Character,
			best,
			strings.Repeat("•", info.Difficulty),
		}
	}
	return rows
}
