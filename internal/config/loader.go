package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadFruit.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadFruit loads the fruit game configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/fruit.yaml -> ./configs/fruit.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadFruit(customPath string) (FruitConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FruitConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFruit(data)
		if err != nil {
			return FruitConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return FruitConfig{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{UserConfigPath("fruit.yaml"), filepath.Join("configs", "fruit.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseFruit(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseFruit(defaultFruitYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultFruitConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseFruit decodes YAML over the built-in defaults.
func parseFruit(data []byte) (FruitConfig, error) {
	cfg := DefaultFruitConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FruitConfig{}, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// WriteDefaultFruit writes the embedded default config to path, creating
// parent directories. An existing file is kept unless overwrite is set.
func WriteDefaultFruit(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultFruitYAML, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// ApplyFruitPreset modifies the config based on a difficulty preset.
func ApplyFruitPreset(cfg *FruitConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Bombs get a little more common on hard
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.BombChance = 0.05
	case DifficultyHard:
		cfg.Spawn.BombChance = 0.15
	}
}
