package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruitslice/internal/core"
	"github.com/vovakirdan/fruitslice/internal/logging"
	"github.com/vovakirdan/fruitslice/internal/platform"
	"github.com/vovakirdan/fruitslice/internal/registry"
	"github.com/vovakirdan/fruitslice/internal/storage"
)

// Options carries the optional collaborators of a Model.
type Options struct {
	Logger     *log.Logger
	Frontend   string // Recorded with the session; defaults to "tui"
	Background string // Field color, e.g. "#87CEEB"
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	renderer   *Renderer
	logger     *log.Logger
	frontend   string
	started    bool
	quitting   bool
	saved      bool // Whether the session has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Frontend == "" {
		opts.Frontend = platform.FrontendTUI
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		renderer:   NewRenderer(opts.Background),
		logger:     opts.Logger,
		frontend:   opts.Frontend,
	}
}

// Init starts the tick loop. The game itself is reset here so the first
// View already has a session to draw.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize follows the terminal size. Games that can resize keep their
// session; others restart.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.started {
		m.started = true
		m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	}

	// A restart ends the current session; store it before it's gone.
	if m.inputFrame.Has(core.ActionRestart) {
		m.finish()
		m.saved = false
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.finish()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// finish stores the session once.
func (m *Model) finish() {
	if m.saved {
		return
	}
	m.saved = true

	res, err := platform.SaveResult(m.store, m.game, m.frontend)
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
		return
	}
	m.logger.Info("session ended",
		"game", m.game.ID(),
		"frontend", m.frontend,
		"score", res.Score,
		"score_saved", res.ScoreSaved,
	)
}

// saveScreenshot writes the current frame as plain text to
// ~/.arcade/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// Score returns the latest score seen by the model.
func (m Model) Score() int {
	return m.gameState.Score
}

// Saved reports whether the session has been stored.
func (m Model) Saved() bool {
	return m.saved
}

// ProgramOptions are the Bubble Tea options every game program runs with.
// All-motion mouse tracking reports the pointer without a button held.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run starts the Bubble Tea program with the given game and returns the
// final score.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (int, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(model, ProgramOptions()...)

	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Score(), nil
	}
	return 0, nil
}
