package config

import (
	_ "embed"
)

//go:embed defaults/serpent.yaml
var defaultSerpentYAML []byte

// DefaultSerpentConfig returns the default configuration.
func DefaultSerpentConfig() SerpentConfig {
	return SerpentConfig{
		Engine: EngineConfig{
			HistoryCap:     300,
			StarPowerMoves: 10,
			MoveAnimMs:     140,
			DeadlockHintMs: 4000,
		},
		Generator: GeneratorConfig{
			BranchBase:        2,
			BranchPerWorld:    1,
			BranchLenBase:     2,
			ItemWeight:        1.0,
			BigItemWeight:     1.0,
			StarWeight:        1.0,
			ObstacleWeight:    1.0,
			PortalMinSpacing:  8,
			PortalMinEndDist:  6,
			PortalSampleLimit: 10,
		},
		Display: DisplayConfig{
			Theme:     "dark",
			ShowHints: true,
			FPS:       30,
		},
	}
}
