package level

import (
	"fmt"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
)

// ParseError describes a structural defect in a level template. These are
// fatal configuration errors: a malformed level must never reach play.
type ParseError struct {
	Code    string
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ParseRows converts template rows into a board and the spawn coordinate.
// The spawn tile is resolved to Empty after its coordinate is recorded.
// Checks:
//   - row and column counts match the fixed dimensions
//   - every symbol is a known tile
//   - exactly one spawn
//   - at least one exit
func ParseRows(rows []string) (*board.Board, core.Point, error) {
	if len(rows) != board.Height {
		return nil, core.Point{}, ParseError{
			Code:    "BAD_DIMENSIONS",
			Message: fmt.Sprintf("expected %d rows, got %d", board.Height, len(rows)),
		}
	}

	b := board.New(board.Width, board.Height)
	var spawn core.Point
	spawns := 0
	exits := 0

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != board.Width {
			return nil, core.Point{}, ParseError{
				Code:    "BAD_DIMENSIONS",
				Message: fmt.Sprintf("row %d: expected %d columns, got %d", y, board.Width, len(runes)),
			}
		}
		for x, r := range runes {
			t, ok := board.TileFromRune(r)
			if !ok {
				return nil, core.Point{}, ParseError{
					Code:    "UNKNOWN_SYMBOL",
					Message: fmt.Sprintf("row %d col %d: unknown symbol %q", y, x, r),
				}
			}
			p := core.Point{X: x, Y: y}
			switch t {
			case board.TileSpawn:
				spawns++
				spawn = p
				b.Set(p, board.TileEmpty)
			case board.TileExit:
				exits++
				b.Set(p, t)
			default:
				b.Set(p, t)
			}
		}
	}

	if spawns != 1 {
		return nil, core.Point{}, ParseError{
			Code:    "BAD_SPAWN",
			Message: fmt.Sprintf("expected exactly one spawn, got %d", spawns),
		}
	}
	if exits == 0 {
		return nil, core.Point{}, ParseError{
			Code:    "NO_EXIT",
			Message: "level has no exit tile",
		}
	}

	return b, spawn, nil
}
