// Package config provides YAML-based gameplay configuration loading and
// difficulty presets.
package config

import (
	"fmt"
	"time"
)

// Hazard policies accepted in gameplay.hazard_policy.
const (
	HazardLoseLife = "lose_life"
	HazardIgnore   = "ignore"
)

// WillyConfig contains all configuration for Willy the Worm.
type WillyConfig struct {
	Gameplay WillyGameplay `yaml:"gameplay"`
}

// WillyGameplay defines the rules of a run.
type WillyGameplay struct {
	Lives           int    `yaml:"lives"`
	InitialBonus    int    `yaml:"initial_bonus"`
	BonusStep       int    `yaml:"bonus_step"`
	BonusIntervalMS int    `yaml:"bonus_interval_ms"`
	HazardPolicy    string `yaml:"hazard_policy"`
}

// BonusInterval returns the bonus timer period.
func (c WillyConfig) BonusInterval() time.Duration {
	return time.Duration(c.Gameplay.BonusIntervalMS) * time.Millisecond
}

// Validate checks that every gameplay value is usable.
func (c WillyConfig) Validate() error {
	g := c.Gameplay
	switch {
	case g.Lives <= 0:
		return fmt.Errorf("gameplay.lives must be positive, got %d", g.Lives)
	case g.InitialBonus <= 0:
		return fmt.Errorf("gameplay.initial_bonus must be positive, got %d", g.InitialBonus)
	case g.BonusStep <= 0:
		return fmt.Errorf("gameplay.bonus_step must be positive, got %d", g.BonusStep)
	case g.BonusIntervalMS <= 0:
		return fmt.Errorf("gameplay.bonus_interval_ms must be positive, got %d", g.BonusIntervalMS)
	}

	switch g.HazardPolicy {
	case HazardLoseLife, HazardIgnore:
		return nil
	default:
		return fmt.Errorf("gameplay.hazard_policy must be %q or %q, got %q", HazardLoseLife, HazardIgnore, g.HazardPolicy)
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a flag value to a preset. Empty means none.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard)", s)
	}
}
