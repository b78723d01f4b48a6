package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-serpent/internal/game"
	"github.com/vovakirdan/tui-serpent/internal/solver"
)

var (
	flagVerifyBudget  int
	flagVerifyVerbose bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every generated level is solvable",
	Long: `Run the offline solver over the whole generated campaign and report
any level without a path to the exit. A release should never ship while
this command fails.

The solver uses the same move resolution as play, so a pass here means
a player can always reach the exit from the initial placement.

Examples:
  serpent verify
  serpent verify --verbose
  serpent verify --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&flagVerifyBudget, "budget", solver.DefaultBudget, "State budget per level")
	verifyCmd.Flags().BoolVar(&flagVerifyVerbose, "verbose", false, "Log every level, not just failures")
}

func runVerify(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "verify",
	})

	cfg, err := loadGameConfig()
	if err != nil {
		logger.Fatal("loading config", "error", err)
	}
	levels, err := buildCampaign(cfg)
	if err != nil {
		logger.Fatal("generating campaign", "error", err)
	}

	rules := game.DefaultRules()
	if cfg.Engine.StarPowerMoves > 0 {
		rules.StarMoves = cfg.Engine.StarPowerMoves
	}
	s := solver.New(rules, flagVerifyBudget)

	start := time.Now()
	failed := 0
	maxSteps := 0
	for i, lvl := range levels {
		res := s.Solve(lvl)
		switch {
		case res.TimedOut:
			failed++
			logger.Error("budget exhausted",
				"level", levelLabel(i), "title", lvl.Title, "visited", res.Visited)
		case !res.Solved:
			failed++
			logger.Error("no path to exit",
				"level", levelLabel(i), "title", lvl.Title, "visited", res.Visited)
		default:
			if res.Steps > maxSteps {
				maxSteps = res.Steps
			}
			if flagVerifyVerbose {
				logger.Info("solvable",
					"level", levelLabel(i), "steps", res.Steps, "visited", res.Visited)
			}
		}
	}

	if failed > 0 {
		logger.Error("campaign verification failed",
			"levels", len(levels), "failed", failed, "elapsed", time.Since(start).Round(time.Millisecond))
		os.Exit(1)
	}
	logger.Info("campaign verified",
		"levels", len(levels), "longest_solution", maxSteps, "elapsed", time.Since(start).Round(time.Millisecond))
}
