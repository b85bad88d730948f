package config

import (
	_ "embed"
)

//go:embed defaults/willy.yaml
var defaultWillyYAML []byte

// DefaultWillyConfig returns the default Willy the Worm configuration.
func DefaultWillyConfig() WillyConfig {
	return WillyConfig{
		Gameplay: WillyGameplay{
			Lives:           3,
			InitialBonus:    1000,
			BonusStep:       10,
			BonusIntervalMS: 100,
			HazardPolicy:    HazardLoseLife,
		},
	}
}
