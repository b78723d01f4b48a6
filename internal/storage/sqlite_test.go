package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-serpent/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	version, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if version != schemaVersion {
		t.Errorf("Expected schema version %d, got %d", schemaVersion, version)
	}
}

func TestStoreFreshProgress(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p.Unlocked != 0 || p.TotalMoves != 0 || len(p.Best) != 0 {
		t.Errorf("Fresh progress not empty: %+v", p)
	}
	if p.Best == nil {
		t.Error("Best map should be initialized, not nil")
	}
}

func TestStoreSaveAndLoadProgress(t *testing.T) {
	store := openTestStore(t)

	p := game.NewProgress()
	p.Unlocked = 12
	p.TotalMoves = 340
	p.TotalClears = 12
	p.TotalItems = 27
	p.Best[0] = 14
	p.Best[5] = 31

	if err := store.SaveProgress(p); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	got, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if got.Unlocked != 12 || got.TotalMoves != 340 || got.TotalClears != 12 || got.TotalItems != 27 {
		t.Errorf("Progress mismatch: %+v", got)
	}
	if got.Best[0] != 14 || got.Best[5] != 31 {
		t.Errorf("Best mismatch: %v", got.Best)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	p := game.NewProgress()
	p.Unlocked = 3
	p.Best[2] = 40
	if err := store.SaveProgress(p); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	p.Unlocked = 4
	p.Best[2] = 25
	if err := store.SaveProgress(p); err != nil {
		t.Fatalf("Second SaveProgress() failed: %v", err)
	}

	got, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if got.Unlocked != 4 {
		t.Errorf("Expected unlocked 4, got %d", got.Unlocked)
	}
	if got.Best[2] != 25 {
		t.Errorf("Expected best 25, got %d", got.Best[2])
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTestStore(t)

	// No record yet
	moves, err := store.BestMoves(7)
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if moves != 0 {
		t.Errorf("Expected 0 for uncleared level, got %d", moves)
	}

	p := game.NewProgress()
	p.Best[7] = 19
	p.Best[8] = 22
	if err := store.SaveProgress(p); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	moves, err = store.BestMoves(7)
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if moves != 19 {
		t.Errorf("Expected 19, got %d", moves)
	}

	entries, err := store.AllBest()
	if err != nil {
		t.Fatalf("AllBest() failed: %v", err)
	}
	if len(entries) != 2 || entries[0].LevelID != 7 || entries[1].LevelID != 8 {
		t.Errorf("AllBest() = %+v", entries)
	}
}

func TestStoreClearProgress(t *testing.T) {
	store := openTestStore(t)

	p := game.NewProgress()
	p.Unlocked = 5
	p.Best[1] = 10
	if err := store.SaveProgress(p); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	if err := store.SetSetting("theme", "dark"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}

	if err := store.ClearProgress(); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}

	got, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if got.Unlocked != 0 || len(got.Best) != 0 {
		t.Errorf("Progress survived clear: %+v", got)
	}

	// Settings survive a progress wipe
	theme, err := store.Setting("theme")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if theme != "dark" {
		t.Errorf("Expected setting to survive, got %q", theme)
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	value, err := store.Setting("missing")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if value != "" {
		t.Errorf("Expected empty value for missing key, got %q", value)
	}

	if err := store.SetSetting("key_up", "k"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := store.SetSetting("key_up", "w"); err != nil {
		t.Fatalf("SetSetting() overwrite failed: %v", err)
	}

	value, err = store.Setting("key_up")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if value != "w" {
		t.Errorf("Expected overwritten value, got %q", value)
	}
}

func TestStoreLegacyBestScoresMigration(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "legacy.db")

	// Build a version-1 database by hand, then reopen it.
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	_, err = store.db.Exec(`
		CREATE TABLE best_scores (level_id INTEGER PRIMARY KEY, score INTEGER NOT NULL);
		INSERT INTO best_scores (level_id, score) VALUES (0, 12), (3, 45);
	`)
	if err != nil {
		t.Fatalf("Cannot seed legacy table: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p.Best[0] != 12 || p.Best[3] != 45 {
		t.Errorf("Legacy bests not migrated: %v", p.Best)
	}

	// Legacy table is gone
	var count int
	err = store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'best_scores'",
	).Scan(&count)
	if err != nil {
		t.Fatalf("Cannot inspect schema: %v", err)
	}
	if count != 0 {
		t.Error("Legacy best_scores table was not dropped")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
