// Package config provides YAML-based configuration loading and difficulty
// presets for the serpent campaign.
package config

// SerpentConfig contains all tunable configuration for the game.
type SerpentConfig struct {
	Engine    EngineConfig    `yaml:"engine"`
	Generator GeneratorConfig `yaml:"generator"`
	Display   DisplayConfig   `yaml:"display"`
	Keys      KeysConfig      `yaml:"keys"`
}

// EngineConfig defines the play-session parameters.
type EngineConfig struct {
	HistoryCap     int `yaml:"history_cap"`      // Undo log depth
	StarPowerMoves int `yaml:"star_power_moves"` // Obstacle-pass moves per star
	MoveAnimMs     int `yaml:"move_anim_ms"`     // Move animation window
	DeadlockHintMs int `yaml:"deadlock_hint_ms"` // How long the undo hint shows
}

// GeneratorConfig defines the procedural level augmentation parameters.
type GeneratorConfig struct {
	BranchBase        int     `yaml:"branch_base"`
	BranchPerWorld    int     `yaml:"branch_per_world"`
	BranchLenBase     int     `yaml:"branch_len_base"`
	ItemWeight        float64 `yaml:"item_weight"`
	BigItemWeight     float64 `yaml:"big_item_weight"`
	StarWeight        float64 `yaml:"star_weight"`
	ObstacleWeight    float64 `yaml:"obstacle_weight"`
	PortalMinSpacing  int     `yaml:"portal_min_spacing"`
	PortalMinEndDist  int     `yaml:"portal_min_end_dist"`
	PortalSampleLimit int     `yaml:"portal_sample_limit"`
}

// DisplayConfig defines rendering preferences.
type DisplayConfig struct {
	Theme     string `yaml:"theme"`      // "dark" or "light"
	ShowHints bool   `yaml:"show_hints"` // Deadlock/undo hints in the HUD
	FPS       int    `yaml:"fps"`        // Render frames per second
}

// KeysConfig defines key binding overrides. Empty fields keep the defaults.
type KeysConfig struct {
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Undo    string `yaml:"undo"`
	Restart string `yaml:"restart"`
	Pause   string `yaml:"pause"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset adjusts engine and generator tuning for a difficulty preset.
// Normal leaves the loaded configuration untouched.
func ApplyPreset(cfg *SerpentConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Engine.StarPowerMoves = 14
		cfg.Generator.ObstacleWeight *= 0.6
		cfg.Generator.StarWeight *= 1.5
		cfg.Generator.ItemWeight *= 1.2
	case DifficultyHard:
		cfg.Engine.StarPowerMoves = 7
		cfg.Engine.HistoryCap = 150
		cfg.Generator.ObstacleWeight *= 1.4
		cfg.Generator.StarWeight *= 0.7
	}
}
