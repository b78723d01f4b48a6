package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/game"
	"github.com/vovakirdan/tui-serpent/internal/level"
	"github.com/vovakirdan/tui-serpent/internal/storage"
)

var (
	flagScoresReset  bool
	flagScoresReplay bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "View campaign progress and per-level bests",
	Long: `Show the saved campaign progress: which levels are unlocked, the
best move count per cleared level, and the lifetime totals.

Examples:
  serpent scores
  serpent scores --db ./progress.db
  serpent scores --replay
  serpent scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all saved progress and bests")
	scoresCmd.Flags().BoolVar(&flagScoresReplay, "replay", false, "Print the archived replay of the last clear")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearProgress(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing progress: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Progress cleared.")
		return
	}

	if flagScoresReplay {
		printLastReplay(store)
		return
	}

	progress, err := store.LoadProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading progress: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	levels, err := buildCampaign(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	total := len(levels)
	unlocked := core.Min(progress.Unlocked+1, total)

	fmt.Println("=== Campaign ===")
	fmt.Printf("Unlocked:  %d/%d\n", unlocked, total)
	fmt.Printf("Cleared:   %d\n", progress.TotalClears)
	fmt.Printf("Moves:     %d\n", progress.TotalMoves)
	fmt.Printf("Items:     %d\n", progress.TotalItems)
	fmt.Println()

	entries, err := store.AllBest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bests: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No levels cleared yet. Play with: serpent play")
		return
	}

	fmt.Println("=== Best Moves ===")
	fmt.Printf("%-6s %-22s %6s  %s\n", "Level", "Title", "Best", "Cleared")
	fmt.Println("------------------------------------------------------------")
	for _, entry := range entries {
		title := ""
		if entry.LevelID >= 0 && entry.LevelID < len(levels) {
			title = levels[entry.LevelID].Title
		}
		fmt.Printf("%-6s %-22s %6d  %s\n",
			levelLabel(entry.LevelID),
			title,
			entry.Moves,
			entry.ClearedAt.Format("2006-01-02 15:04"),
		)
	}
}

// printLastReplay prints the archived move log of the most recent clear.
func printLastReplay(store *storage.Store) {
	raw, err := store.Setting(game.LastReplayKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading replay: %v\n", err)
		os.Exit(1)
	}
	if raw == "" {
		fmt.Println("No replay archived yet. Clear a level with: serpent play")
		return
	}
	id, entries, err := game.DecodeReplay(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding replay: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Last clear: level %s, %d moves\n", levelLabel(id), len(entries))
	for _, entry := range entries {
		fmt.Printf("  %3d  %-5s  +%dms\n", entry.Move+1, entry.Dir, entry.ElapsedMs)
	}
}

// levelLabel formats a campaign index as its world-stage pair.
func levelLabel(id int) string {
	return fmt.Sprintf("%d-%d", id/level.StageCount+1, id%level.StageCount+1)
}
