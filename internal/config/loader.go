package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWilly loads the gameplay configuration.
// Search order: customPath -> ~/.willy/configs/willy.yaml -> ./configs/willy.yaml -> embedded default.
// Missing keys keep their default values.
func LoadWilly(customPath string) (WillyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultWillyConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseWilly(data)
		if err != nil {
			return DefaultWillyConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("willy.yaml"), filepath.Join("configs", "willy.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseWilly(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseWilly(defaultWillyYAML)
	if err != nil {
		return DefaultWillyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseWilly(data []byte) (WillyConfig, error) {
	cfg := DefaultWillyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
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
	return filepath.Join(home, ".willy", "configs", filename)
}

// ApplyWillyPreset adjusts lives and bonus drain for a difficulty preset.
func ApplyWillyPreset(cfg *WillyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.BonusStep = max(1, cfg.Gameplay.BonusStep/2)
	case DifficultyHard:
		cfg.Gameplay.Lives = 1
		cfg.Gameplay.BonusStep *= 2
	case DifficultyNormal:
	}
}
