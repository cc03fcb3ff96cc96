package config

import (
	_ "embed"
)

//go:embed defaults/meteors.yaml
var defaultMeteorsYAML []byte

// DefaultMeteorsConfig returns the default Meteors configuration.
// Values match the classic board: 1s start, -10ms every half second,
// 250ms floor, 15s color cycle, 2 to 5 meteors.
func DefaultMeteorsConfig() MeteorsConfig {
	return MeteorsConfig{
		Timing: TimingConfig{
			InitialDelayMs:  1000,
			DelayDecreaseMs: 10,
			MinDelayMs:      250,
			RampPeriodMs:    500,
			CyclePeriodMs:   15000,
			FlashMs:         1000,
		},
		Spawn: SpawnConfig{
			InitialCap: 2,
			MaxCap:     5,
		},
		Palette: []string{"blue", "purple", "violet", "red"},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMeteorsYAML
}
