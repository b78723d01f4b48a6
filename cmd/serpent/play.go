package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-serpent/internal/game"
	"github.com/vovakirdan/tui-serpent/internal/level"
	"github.com/vovakirdan/tui-serpent/internal/platform/tui"
	"github.com/vovakirdan/tui-serpent/internal/storage"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the campaign in your terminal.

Controls:
  Arrow keys / WASD - move one step
  u / z             - undo the last move
  r                 - restart the level
  p                 - pause
  q                 - quit

Examples:
  serpent play
  serpent play --difficulty easy
  serpent play --level 2-5
  serpent play --config ./my-serpent.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Jump straight to an unlocked level, e.g. 2-5")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The board needs room for two columns per cell plus the HUD.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < 40 || h < 18) {
		fmt.Fprintf(os.Stderr, "Terminal too small (%dx%d), need at least 40x18\n", w, h)
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Progress will not be saved.")
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var progressStore game.ProgressStore
	if store != nil {
		progressStore = store
	}
	engine := game.NewEngine(levels, engineConfig(cfg.Engine), progressStore)

	if flagLevel != "" {
		if err := jumpToLevel(engine, flagLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := tui.Run(engine, cfg.Display, tui.KeyMapFromConfig(cfg.Keys)); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// jumpToLevel skips the title screen and opens a level given as "world-stage".
// Locked levels are refused the same way the level select would refuse them.
func jumpToLevel(engine *game.Engine, spec string) error {
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid level %q, expected world-stage like 2-5", spec)
	}
	var world, stage int
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &world, &stage); err != nil {
		return fmt.Errorf("invalid level %q, expected world-stage like 2-5", spec)
	}
	if world < 1 || world > level.WorldCount || stage < 1 || stage > level.StageCount {
		return fmt.Errorf("level %d-%d is out of range (worlds 1-%d, stages 1-%d)",
			world, stage, level.WorldCount, level.StageCount)
	}

	index := (world-1)*level.StageCount + (stage - 1)
	engine.Start()
	if !engine.SelectLevel(index, time.Now()) {
		return fmt.Errorf("level %d-%d is still locked", world, stage)
	}
	return nil
}
