package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads Meteors configuration.
// Search order: customPath -> ~/.arcade/configs/meteors.yaml -> ./configs/meteors.yaml -> embedded default
func Load(customPath string) (MeteorsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MeteorsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MeteorsConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("meteors.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "meteors.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMeteorsYAML)
	if err != nil {
		return DefaultMeteorsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadWithPreset loads the config, applies a preset and validates the result.
func LoadWithPreset(customPath string, preset DifficultyPreset) (MeteorsConfig, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults so partial files work.
func parse(data []byte) (MeteorsConfig, error) {
	cfg := DefaultMeteorsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
