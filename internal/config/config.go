// Package config provides YAML-based game configuration loading and
// difficulty presets for the meteors game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// MeteorsConfig contains all configuration for the Meteors game.
type MeteorsConfig struct {
	Timing  TimingConfig `yaml:"timing"`
	Spawn   SpawnConfig  `yaml:"spawn"`
	Palette []string     `yaml:"palette"`
}

// TimingConfig defines the scheduling of the three periodic activities.
// All values are milliseconds.
type TimingConfig struct {
	InitialDelayMs  int `yaml:"initial_delay_ms"`
	DelayDecreaseMs int `yaml:"delay_decrease_ms"`
	MinDelayMs      int `yaml:"min_delay_ms"`
	RampPeriodMs    int `yaml:"ramp_period_ms"`
	CyclePeriodMs   int `yaml:"cycle_period_ms"`
	FlashMs         int `yaml:"flash_ms"`
}

// SpawnConfig defines the spawn cap progression.
type SpawnConfig struct {
	InitialCap int `yaml:"initial_cap"`
	MaxCap     int `yaml:"max_cap"`
}

// InitialDelay returns the starting pause between ticks.
func (t TimingConfig) InitialDelay() time.Duration { return ms(t.InitialDelayMs) }

// DelayDecrease returns the amount the pause shrinks per ramp period.
func (t TimingConfig) DelayDecrease() time.Duration { return ms(t.DelayDecreaseMs) }

// MinDelay returns the floor of the tick pause.
func (t TimingConfig) MinDelay() time.Duration { return ms(t.MinDelayMs) }

// RampPeriod returns the period of the speed ramp.
func (t TimingConfig) RampPeriod() time.Duration { return ms(t.RampPeriodMs) }

// CyclePeriod returns the period of the ambient color cycle.
func (t TimingConfig) CyclePeriod() time.Duration { return ms(t.CyclePeriodMs) }

// Flash returns how long the ambient color is shown each cycle.
func (t TimingConfig) Flash() time.Duration { return ms(t.FlashMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Colors resolves the palette names.
func (c MeteorsConfig) Colors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("config: palette: %w", err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Validate reports the first invalid setting.
func (c MeteorsConfig) Validate() error {
	t := c.Timing
	switch {
	case t.InitialDelayMs <= 0:
		return fmt.Errorf("config: initial_delay_ms must be positive, got %d", t.InitialDelayMs)
	case t.MinDelayMs <= 0:
		return fmt.Errorf("config: min_delay_ms must be positive, got %d", t.MinDelayMs)
	case t.MinDelayMs > t.InitialDelayMs:
		return fmt.Errorf("config: min_delay_ms (%d) exceeds initial_delay_ms (%d)", t.MinDelayMs, t.InitialDelayMs)
	case t.DelayDecreaseMs < 0:
		return fmt.Errorf("config: delay_decrease_ms must not be negative, got %d", t.DelayDecreaseMs)
	case t.RampPeriodMs <= 0:
		return fmt.Errorf("config: ramp_period_ms must be positive, got %d", t.RampPeriodMs)
	case t.FlashMs <= 0:
		return fmt.Errorf("config: flash_ms must be positive, got %d", t.FlashMs)
	case t.CyclePeriodMs <= t.FlashMs:
		return fmt.Errorf("config: cycle_period_ms (%d) must exceed flash_ms (%d)", t.CyclePeriodMs, t.FlashMs)
	}

	if c.Spawn.InitialCap < 1 {
		return fmt.Errorf("config: initial_cap must be at least 1, got %d", c.Spawn.InitialCap)
	}
	if c.Spawn.MaxCap < c.Spawn.InitialCap {
		return fmt.Errorf("config: max_cap (%d) is below initial_cap (%d)", c.Spawn.MaxCap, c.Spawn.InitialCap)
	}

	if len(c.Palette) == 0 {
		return fmt.Errorf("config: palette is empty")
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Scaled returns a copy with every duration divided by factor.
// Used by the headless simulation to run a game faster than real time.
func (c MeteorsConfig) Scaled(factor int) MeteorsConfig {
	if factor <= 1 {
		return c
	}
	div := func(v int) int {
		return max(v/factor, 1)
	}
	t := c.Timing
	decrease := 0
	if t.DelayDecreaseMs > 0 {
		decrease = div(t.DelayDecreaseMs)
	}
	c.Timing = TimingConfig{
		InitialDelayMs:  div(t.InitialDelayMs),
		DelayDecreaseMs: decrease,
		MinDelayMs:      div(t.MinDelayMs),
		RampPeriodMs:    div(t.RampPeriodMs),
		CyclePeriodMs:   max(div(t.CyclePeriodMs), div(t.FlashMs)+1),
		FlashMs:         div(t.FlashMs),
	}
	return c
}
