package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-serpent/internal/level"
)

var (
	flagLevelsWorld  int
	flagLevelsBoards bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the generated campaign levels",
	Long: `List every level of the campaign with its generated metadata:
title, character, difficulty score and maze statistics.

The campaign is deterministic, so the listing always matches what
'serpent play' will serve.

Examples:
  serpent levels
  serpent levels --world 3
  serpent levels --world 3 --boards`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelsWorld, "world", 0, "Show only this world (1-10, 0 for all)")
	levelsCmd.Flags().BoolVar(&flagLevelsBoards, "boards", false, "Print each maze layout")
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagLevelsWorld < 0 || flagLevelsWorld > level.WorldCount {
		fmt.Fprintf(os.Stderr, "Error: world must be between 1 and %d\n", level.WorldCount)
		os.Exit(1)
	}

	levels, err := buildCampaign(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-6s %-22s %-20s %4s %5s %5s %4s %4s\n",
		"Level", "Title", "Character", "Diff", "Cells", "Items", "Obst", "Port")
	fmt.Println("--------------------------------------------------------------------------")

	for _, lvl := range levels {
		if flagLevelsWorld != 0 && lvl.World != flagLevelsWorld {
			continue
		}
		m := lvl.Metrics
		fmt.Printf("%-6s %-22s %-20s %4d %5d %5d %4d %4d\n",
			fmt.Sprintf("%d-%d", lvl.World, lvl.Stage),
			lvl.Title,
			lvl.Character,
			m.Score,
			m.WalkableCells,
			m.Pickups,
			m.Obstacles,
			m.Portals,
		)
		if flagLevelsBoards {
			fmt.Println()
			for _, row := range lvl.Board.Rows() {
				fmt.Println("  " + row)
			}
			fmt.Println()
		}
	}
}
