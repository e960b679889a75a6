package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a frontend tells a game about where it runs: the
// cell grid it draws into, how often Step is called and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns an 80x24 grid at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// FrameDuration is the simulated time covered by one Step.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the status a game reports to the platform after each Step.
type GameState struct {
	Score    int  // May be negative
	GameOver bool // Fruit Slice never ends on its own; kept for the registry contract
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
