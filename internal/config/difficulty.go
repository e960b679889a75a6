package config

// DifficultyConfig defines the linear escalation ramp.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`       // false freezes launch speeds at their start values
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	// LevelSpeedY is the extra upward launch speed added at initial_level 1.0.
	LevelSpeedY float64 `yaml:"level_speed_y"`
	// LevelSpeedX is the extra horizontal range added at initial_level 1.0.
	LevelSpeedX int `yaml:"level_speed_x"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// StartSpeeds returns the launch parameters a session begins with: the
// configured base speeds pushed toward harder values by the initial level.
func (c FruitConfig) StartSpeeds() (speedY float64, speedX int) {
	level := clampF(c.Difficulty.InitialLevel, 0.0, 1.0)
	speedY = c.Launch.SpeedY
	if speedY <= 0 {
		speedY -= level * c.Difficulty.LevelSpeedY
	} else {
		speedY += level * c.Difficulty.LevelSpeedY
	}
	speedX = c.Launch.SpeedX + int(level*float64(c.Difficulty.LevelSpeedX))
	return speedY, speedX
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
