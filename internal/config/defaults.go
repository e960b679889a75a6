package config

import (
	_ "embed"
)

//go:embed defaults/fruit.yaml
var defaultFruitYAML []byte

// DefaultFruitConfig returns the default fruit slicing configuration.
// Matches the embedded defaults/fruit.yaml.
func DefaultFruitConfig() FruitConfig {
	return FruitConfig{
		Viewport: FruitViewport{
			Width:      800,
			Height:     600,
			Background: "#87CEEB",
		},
		Physics: FruitPhysics{
			Gravity: 300,
		},
		Spawn: FruitSpawn{
			IntervalMs: 1000,
			MinX:       100,
			MaxX:       700,
			BombChance: 0.1,
			Textures:   []string{"fruit1", "fruit2", "fruit3", "fruit4"},
			Size:       100,
			Scale:      0.3,
		},
		Launch: FruitLaunch{
			SpeedY:        -500,
			SpeedX:        100,
			EscalateEvery: 5,
			SpeedYStep:    50,
			SpeedXStep:    20,
		},
		Slice: FruitSlice{
			HitSize:          5,
			FragmentOffset:   10,
			FragmentRotation: 0.5,
			FragmentSpeedX:   100,
			FragmentSpeedY:   200,
			FragmentTTLMs:    1000,
		},
		Scoring: FruitScoring{
			FruitPoints: 10,
			BombPenalty: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			LevelSpeedY:  150,
			LevelSpeedX:  60,
		},
	}
}

// DefaultFruitYAML returns a copy of the embedded default config file.
func DefaultFruitYAML() []byte {
	return append([]byte(nil), defaultFruitYAML...)
}
