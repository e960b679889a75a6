// Package registry lets games announce themselves from init() so the
// frontends can list and create them by ID.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/fruitslice/internal/core"
)

// Game is what every frontend drives: a fixed-tick simulation that draws
// into a character screen. Implementations must not depend on any UI
// library; input arrives already translated into core actions and
// pointer moves.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score table key, e.g. "fruit".
	ID() string

	// Title is the display name, e.g. "Fruit Slice".
	Title() string

	// Reset starts a fresh session sized for cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can follow a screen resize without
// restarting. The platform falls back to Reset for games that can't.
type Resizer interface {
	Resize(w, h int)
}

// Report is an end-of-session summary.
type Report struct {
	Score       int
	Spawned     int
	Sliced      int
	Penalties   int
	Missed      int
	Escalations int
	Duration    time.Duration
}

// Reporter is implemented by games that keep per-session counters.
type Reporter interface {
	Report() Report
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics on an empty ID, a nil factory or
// a duplicate ID, all of which are programming errors in an init().
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(games, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return games
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
