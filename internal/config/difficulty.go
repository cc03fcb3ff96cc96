package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *MeteorsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.InitialDelayMs = 1200
		cfg.Timing.DelayDecreaseMs = 5
	case DifficultyHard:
		cfg.Timing.InitialDelayMs = 700
		cfg.Timing.DelayDecreaseMs = 20
		if cfg.Timing.MinDelayMs > 700 {
			cfg.Timing.MinDelayMs = 700
		}
	case DifficultyFixed:
		cfg.Timing.DelayDecreaseMs = 0
	}
}
