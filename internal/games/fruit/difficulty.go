package fruit

import "github.com/vovakirdan/fruitslice/internal/config"

// Difficulty is the launch-speed ramp. It only ever gets harder during a
// session; a restart builds a new one.
type Difficulty struct {
	LaunchSpeed  float64 // Vertical launch velocity, negative = upward
	HSpeed       int     // Horizontal velocity is drawn from [-HSpeed, HSpeed]
	SpawnCounter int     // Spawns since the last escalation
	Escalations  int

	enabled bool
	every   int
	stepY   float64
	stepX   int
}

// NewDifficulty creates the ramp at the configured starting speeds.
func NewDifficulty(cfg config.FruitConfig) *Difficulty {
	speedY, speedX := cfg.StartSpeeds()
	every := cfg.Launch.EscalateEvery
	if every <= 0 {
		every = 5
	}
	return &Difficulty{
		LaunchSpeed: speedY,
		HSpeed:      speedX,
		enabled:     cfg.Difficulty.Enabled,
		every:       every,
		stepY:       cfg.Launch.SpeedYStep,
		stepX:       cfg.Launch.SpeedXStep,
	}
}

// RecordSpawn counts one spawn. When the counter reaches the escalation
// period it resets to zero and the ramp steps up; the return value reports
// whether that happened.
func (d *Difficulty) RecordSpawn() bool {
	d.SpawnCounter++
	if d.SpawnCounter%d.every != 0 || d.SpawnCounter == 0 {
		return false
	}
	d.SpawnCounter = 0
	if !d.enabled {
		return false
	}
	d.Escalate()
	return true
}

// Escalate steps the launch speed magnitude and horizontal range up.
func (d *Difficulty) Escalate() {
	if d.LaunchSpeed <= 0 {
		d.LaunchSpeed -= d.stepY
	} else {
		d.LaunchSpeed += d.stepY
	}
	d.HSpeed += d.stepX
	d.Escalations++
}
