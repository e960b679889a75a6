// Package fruit implements an arcade fruit slicing game.
// Fruit and bombs are launched from the bottom of the field, arc up and fall
// under gravity; the player slices them with the pointer. Fruit scores,
// bombs cost points, and the launches get faster every few spawns.
package fruit

import (
	"time"

	"github.com/vovakirdan/fruitslice/internal/config"
	"github.com/vovakirdan/fruitslice/internal/core"
	"github.com/vovakirdan/fruitslice/internal/registry"
)

// GameID is the registry identifier and score table key.
const GameID = "fruit"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the game config the same way Reset does: CLI path or
// search order, then the CLI difficulty preset. It also returns the source.
func LoadConfig() (config.FruitConfig, string, error) {
	cfg, source, err := config.LoadFruit(configPath)
	if err != nil {
		return config.FruitConfig{}, "", err
	}
	config.ApplyFruitPreset(&cfg, difficultyPreset)
	return cfg, source, nil
}

// Game adapts a Session to the platform's fixed-tick game interface.
type Game struct {
	session   *Session
	fixed     *config.FruitConfig // Set by NewWithConfig; skips file loading
	cfg       config.FruitConfig
	source    string
	runtime   core.RuntimeConfig
	view      Viewport
	frame     time.Duration
	paused    bool
	tickCount int
}

// New creates a game that loads its config on every Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game pinned to the given config.
func NewWithConfig(cfg config.FruitConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fruit Slice"
}

// Reset starts a fresh session: score, difficulty and objects all go back
// to their starting values.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	switch {
	case g.fixed != nil:
		g.cfg, g.source = *g.fixed, "inline"
	default:
		cfg, source, err := LoadConfig()
		if err != nil {
			cfg, source = config.DefaultFruitConfig(), config.SourceBuiltin
			config.ApplyFruitPreset(&cfg, difficultyPreset)
		}
		g.cfg, g.source = cfg, source
	}

	g.frame = runtime.FrameDuration()

	g.session = NewSession(g.cfg, runtime.Seed)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.paused = false
	g.tickCount = 0
}

// Resize changes the cell grid without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.view = Viewport{
		WorldW: g.cfg.Viewport.Width,
		WorldH: g.cfg.Viewport.Height,
		Cols:   w,
		Rows:   h,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	for _, mv := range in.Pointer {
		g.session.PointerMove(g.view.ToWorld(mv.X, mv.Y))
	}
	g.session.Advance(g.frame)

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The game has no end; the session
// lasts until the player quits.
func (g *Game) State() core.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Score().Value()
	}
	return core.GameState{
		Score:  score,
		Paused: g.paused,
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// ConfigSource reports where the active config was loaded from.
func (g *Game) ConfigSource() string {
	return g.source
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Report summarizes the session for score storage.
func (g *Game) Report() registry.Report {
	if g.session == nil {
		return registry.Report{}
	}
	st := g.session.Stats()
	return registry.Report{
		Score:       g.session.Score().Value(),
		Spawned:     st.Spawned,
		Sliced:      st.FruitsSliced,
		Penalties:   st.BombsHit,
		Missed:      st.Missed,
		Escalations: st.Escalations,
		Duration:    st.Elapsed,
	}
}
