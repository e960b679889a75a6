// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// FruitConfig contains all configuration for the fruit slicing game.
// Distances are in world units (the 800x600 play field), times in milliseconds.
type FruitConfig struct {
	Viewport   FruitViewport    `yaml:"viewport"`
	Physics    FruitPhysics     `yaml:"physics"`
	Spawn      FruitSpawn       `yaml:"spawn"`
	Launch     FruitLaunch      `yaml:"launch"`
	Slice      FruitSlice       `yaml:"slice"`
	Scoring    FruitScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FruitViewport defines the world size and background.
type FruitViewport struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"` // #RRGGBB
}

// FruitPhysics defines the arcade physics stand-in.
type FruitPhysics struct {
	Gravity float64 `yaml:"gravity"` // Downward acceleration, units/s^2
}

// FruitSpawn defines where and how often objects appear.
type FruitSpawn struct {
	IntervalMs int      `yaml:"interval_ms"`
	MinX       int      `yaml:"min_x"`
	MaxX       int      `yaml:"max_x"`
	BombChance float64  `yaml:"bomb_chance"`
	Textures   []string `yaml:"textures"` // Fruit variants, drawn uniformly
	Size       float64  `yaml:"size"`     // Displayed width and height
	Scale      float64  `yaml:"scale"`    // Texture scale inherited by fragments
}

// FruitLaunch defines the starting launch velocity and its escalation ramp.
type FruitLaunch struct {
	SpeedY        float64 `yaml:"speed_y"` // Negative = upward
	SpeedX        int     `yaml:"speed_x"` // Horizontal speed range is [-speed_x, speed_x]
	EscalateEvery int     `yaml:"escalate_every"`
	SpeedYStep    float64 `yaml:"speed_y_step"` // Added to |speed_y| per escalation
	SpeedXStep    int     `yaml:"speed_x_step"`
}

// FruitSlice defines the blade hit region and the split effect.
type FruitSlice struct {
	HitSize          float64 `yaml:"hit_size"`
	FragmentOffset   float64 `yaml:"fragment_offset"`
	FragmentRotation float64 `yaml:"fragment_rotation"` // Radians
	FragmentSpeedX   float64 `yaml:"fragment_speed_x"`
	FragmentSpeedY   float64 `yaml:"fragment_speed_y"`
	FragmentTTLMs    int     `yaml:"fragment_ttl_ms"`
}

// FruitScoring defines score deltas per slice outcome.
type FruitScoring struct {
	FruitPoints int `yaml:"fruit_points"`
	BombPenalty int `yaml:"bomb_penalty"` // Subtracted from the score
}

// Validate reports configuration values the game cannot run with.
func (c FruitConfig) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Spawn.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn.interval_ms must be positive, got %d", c.Spawn.IntervalMs))
	}
	if c.Spawn.MinX > c.Spawn.MaxX {
		errs = append(errs, fmt.Errorf("spawn.min_x (%d) exceeds spawn.max_x (%d)", c.Spawn.MinX, c.Spawn.MaxX))
	}
	if c.Spawn.BombChance < 0 || c.Spawn.BombChance > 1 {
		errs = append(errs, fmt.Errorf("spawn.bomb_chance must be within [0, 1], got %g", c.Spawn.BombChance))
	}
	if len(c.Spawn.Textures) == 0 {
		errs = append(errs, errors.New("spawn.textures must list at least one fruit"))
	}
	if c.Launch.EscalateEvery <= 0 {
		errs = append(errs, fmt.Errorf("launch.escalate_every must be positive, got %d", c.Launch.EscalateEvery))
	}
	if c.Launch.SpeedX < 0 {
		errs = append(errs, fmt.Errorf("launch.speed_x must not be negative, got %d", c.Launch.SpeedX))
	}
	if c.Launch.SpeedYStep < 0 || c.Launch.SpeedXStep < 0 {
		errs = append(errs, errors.New("launch speed steps must not be negative"))
	}
	if c.Slice.HitSize <= 0 {
		errs = append(errs, fmt.Errorf("slice.hit_size must be positive, got %g", c.Slice.HitSize))
	}
	if c.Slice.FragmentTTLMs <= 0 {
		errs = append(errs, fmt.Errorf("slice.fragment_ttl_ms must be positive, got %d", c.Slice.FragmentTTLMs))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid fruit config: %w", errors.Join(errs...))
	}
	return nil
}
