package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/game"
)

// Each grid cell renders as two terminal columns to keep the maze roughly
// square on common fonts.
const cellWidth = 2

// Theme bundles the lipgloss styles for one color scheme.
type Theme struct {
	Wall     lipgloss.Style
	Floor    lipgloss.Style
	Exit     lipgloss.Style
	Obstacle lipgloss.Style
	Item     lipgloss.Style
	BigItem  lipgloss.Style
	Star     lipgloss.Style
	PortalA  lipgloss.Style
	PortalB  lipgloss.Style

	Head     lipgloss.Style
	Body     lipgloss.Style
	HeadStar lipgloss.Style
	BodyStar lipgloss.Style

	Title  lipgloss.Style
	HUD    lipgloss.Style
	Flash  lipgloss.Style
	Hint   lipgloss.Style
	Dim    lipgloss.Style
	Locked lipgloss.Style
}

// DarkTheme returns the default dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Wall:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Floor:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Exit:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Obstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("131")),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		BigItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Star:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		PortalA:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		PortalB:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		Head:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Body:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		HeadStar: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		BodyStar: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),

		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		HUD:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Flash:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Hint:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Locked: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// LightTheme returns a scheme for light terminal backgrounds.
func LightTheme() Theme {
	th := DarkTheme()
	th.Wall = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	th.Floor = lipgloss.NewStyle().Foreground(lipgloss.Color("253"))
	th.HUD = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	th.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	th.Locked = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return th
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// renderBoard draws the play grid with the serpent overlaid. Segment render
// positions come from the engine's move interpolation, rounded to cells.
func renderBoard(e *game.Engine, now time.Time, th Theme) string {
	lvl := e.Level()
	if lvl == nil {
		return ""
	}

	// Head wins any overlap, so paint tail-first.
	occupied := make(map[core.Point]bool)
	var head core.Point
	segs := e.InterpolatedSegments(now)
	for i := len(segs) - 1; i >= 0; i-- {
		p := core.Point{
			X: int(math.Round(segs[i].X)),
			Y: int(math.Round(segs[i].Y)),
		}
		occupied[p] = true
		if i == 0 {
			head = p
		}
	}

	headStyle, bodyStyle := th.Head, th.Body
	if e.StarRemaining() > 0 {
		headStyle, bodyStyle = th.HeadStar, th.BodyStar
	}

	var sb strings.Builder
	for y := 0; y < lvl.Board.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < lvl.Board.W; x++ {
			p := core.Point{X: x, Y: y}
			if occupied[p] {
				if p == head {
					sb.WriteString(headStyle.Render("██"))
				} else {
					sb.WriteString(bodyStyle.Render("▓▓"))
				}
				continue
			}
			sb.WriteString(renderTile(e.TileAt(p), th))
		}
	}
	return sb.String()
}

// renderTile draws one cell of the grid.
func renderTile(t board.Tile, th Theme) string {
	switch t {
	case board.TileWall:
		return th.Wall.Render("██")
	case board.TileExit:
		return th.Exit.Render("[]")
	case board.TileObstacle:
		return th.Obstacle.Render("░░")
	case board.TileItem:
		return th.Item.Render("• ")
	case board.TileBigItem:
		return th.BigItem.Render("◎ ")
	case board.TileStarItem:
		return th.Star.Render("★ ")
	case board.TilePortalA:
		return th.PortalA.Render("()")
	case board.TilePortalB:
		return th.PortalB.Render("()")
	default:
		return th.Floor.Render("· ")
	}
}

// renderThumbnail draws a small unstyled maze preview from symbol rows.
// Locked levels render dimmed.
func renderThumbnail(rows []string, locked bool, th Theme) string {
	style := th.Dim
	if locked {
		style = th.Locked
	}
	return style.Render(strings.Join(rows, "\n"))
}

// centerText centers a single line within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if width <= w {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = centerText(line, width)
	}
	return strings.Join(lines, "\n")
}

// starBar renders the star-power countdown as a shrinking bar.
func starBar(remaining, max int, th Theme) string {
	if remaining <= 0 {
		return ""
	}
	max = core.Max(max, remaining)
	return th.Star.Render("★ " + strings.Repeat("■", remaining) + strings.Repeat(" ", max-remaining))
}
