package level

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-serpent/internal/board"
	"github.com/vovakirdan/tui-serpent/internal/core"
)

func validRows() []string {
	rows := make([]string, len(Templates[0].Rows))
	copy(rows, Templates[0].Rows)
	return rows
}

func TestParseRowsResolvesSpawn(t *testing.T) {
	b, spawn, err := ParseRows(validRows())
	if err != nil {
		t.Fatalf("ParseRows() failed: %v", err)
	}

	if spawn != (core.Point{X: 1, Y: 1}) {
		t.Errorf("spawn = %v, want {1 1}", spawn)
	}
	if b.At(spawn) != board.TileEmpty {
		t.Errorf("spawn tile should resolve to empty, got %v", b.At(spawn))
	}
	if b.Count(board.TileSpawn) != 0 {
		t.Error("no spawn tiles should remain on the board")
	}
	if b.Count(board.TileExit) == 0 {
		t.Error("board lost its exit tile")
	}
}

func TestParseRowsRowCountMismatch(t *testing.T) {
	rows := validRows()[:board.Height-1]

	_, _, err := ParseRows(rows)
	var perr ParseError
	if !errors.As(err, &perr) || perr.Code != "BAD_DIMENSIONS" {
		t.Fatalf("expected BAD_DIMENSIONS, got %v", err)
	}
}

func TestParseRowsColumnMismatch(t *testing.T) {
	rows := validRows()
	rows[3] = rows[3][:board.Width-1]

	_, _, err := ParseRows(rows)
	var perr ParseError
	if !errors.As(err, &perr) || perr.Code != "BAD_DIMENSIONS" {
		t.Fatalf("expected BAD_DIMENSIONS, got %v", err)
	}
}

func TestParseRowsUnknownSymbol(t *testing.T) {
	rows := validRows()
	rows[2] = "#......?......#"

	_, _, err := ParseRows(rows)
	var perr ParseError
	if !errors.As(err, &perr) || perr.Code != "UNKNOWN_SYMBOL" {
		t.Fatalf("expected UNKNOWN_SYMBOL, got %v", err)
	}
}

func TestParseRowsSpawnCount(t *testing.T) {
	// No spawn at all
	rows := validRows()
	rows[1] = "#.............#"
	_, _, err := ParseRows(rows)
	var perr ParseError
	if !errors.As(err, &perr) || perr.Code != "BAD_SPAWN" {
		t.Fatalf("expected BAD_SPAWN for missing spawn, got %v", err)
	}

	// Two spawns
	rows = validRows()
	rows[2] = "#S............#"
	_, _, err = ParseRows(rows)
	if !errors.As(err, &perr) || perr.Code != "BAD_SPAWN" {
		t.Fatalf("expected BAD_SPAWN for duplicate spawn, got %v", err)
	}
}

func TestParseRowsMissingExit(t *testing.T) {
	rows := validRows()
	rows[9] = "#.............#"

	_, _, err := ParseRows(rows)
	var perr ParseError
	if !errors.As(err, &perr) || perr.Code != "NO_EXIT" {
		t.Fatalf("expected NO_EXIT, got %v", err)
	}
}

func TestTemplatesAllParse(t *testing.T) {
	for i, tmpl := range Templates {
		b, spawn, err := ParseRows(tmpl.Rows)
		if err != nil {
			t.Fatalf("template %d (%s) does not parse: %v", i+1, tmpl.Name, err)
		}

		exit, ok := b.First(board.TileExit)
		if !ok {
			t.Fatalf("template %d (%s) has no exit", i+1, tmpl.Name)
		}
		if SafePath(b, spawn, exit) == nil {
			t.Errorf("template %d (%s) has no spawn-to-exit path", i+1, tmpl.Name)
		}
	}
}
