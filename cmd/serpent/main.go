// serpent is a terminal maze-puzzle game: steer a growing serpent through
// one hundred procedurally generated mazes, one deliberate move at a time.
//
// Usage:
//
//	serpent play             - Play the campaign
//	serpent levels           - List the generated campaign levels
//	serpent scores           - Show campaign progress and per-level bests
//	serpent verify           - Check that every generated level is solvable
//	serpent serve            - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>          - Set database path (default: ~/.serpent/progress.db)
//	--config <path>      - Path to custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--fps <n>            - Render frames per second
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/game"
	"github.com/vovakirdan/tui-serpent/internal/level"
)

var (
	// Global flags
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagFPS        int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serpent",
	Short: "Serpent - a maze puzzle in your terminal",
	Long: `Serpent is a terminal puzzle game. Guide a growing serpent through
walled mazes to the exit: every keypress is one deliberate step, every
step can be undone, and every level is guaranteed solvable.

Available commands:
  play     - Play the campaign
  levels   - List the generated campaign levels
  scores   - View campaign progress and per-level bests
  verify   - Check that every generated level is solvable
  serve    - Start SSH server for remote play

Examples:
  serpent play
  serpent play --difficulty hard
  serpent levels --world 3
  serpent scores
  serpent verify
  serpent serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.serpent/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render frames per second (0 uses the config value)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.SerpentConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	return cfg, nil
}

// genParams maps the generator config onto the level generator tuning.
func genParams(cfg config.GeneratorConfig) level.GenParams {
	return level.GenParams{
		BranchBase:        cfg.BranchBase,
		BranchPerWorld:    cfg.BranchPerWorld,
		BranchLenBase:     cfg.BranchLenBase,
		ItemWeight:        cfg.ItemWeight,
		BigItemWeight:     cfg.BigItemWeight,
		StarWeight:        cfg.StarWeight,
		ObstacleWeight:    cfg.ObstacleWeight,
		PortalMinSpacing:  cfg.PortalMinSpacing,
		PortalMinEndDist:  cfg.PortalMinEndDist,
		PortalSampleLimit: cfg.PortalSampleLimit,
	}
}

// engineConfig maps the engine config onto the play engine tuning.
func engineConfig(cfg config.EngineConfig) game.Config {
	return game.Config{
		HistoryCap:     cfg.HistoryCap,
		StarPowerMoves: cfg.StarPowerMoves,
		MoveAnimMs:     cfg.MoveAnimMs,
		DeadlockHintMs: cfg.DeadlockHintMs,
	}
}

// buildCampaign generates all hundred levels from the loaded config.
func buildCampaign(cfg config.SerpentConfig) ([]*level.Level, error) {
	levels, err := level.GenerateAll(genParams(cfg.Generator))
	if err != nil {
		return nil, fmt.Errorf("generating campaign: %w", err)
	}
	return levels, nil
}
