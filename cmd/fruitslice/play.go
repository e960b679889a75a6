package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruitslice/internal/core"
	"github.com/vovakirdan/fruitslice/internal/games/fruit"
	"github.com/vovakirdan/fruitslice/internal/platform/tui"
)

var flagNoBackground bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The terminal must report mouse motion;
most modern terminals do.

Controls:
  Mouse      - Move the blade
  P/Esc      - Pause
  R          - Restart
  Ctrl+S     - Save a text screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit (the score is saved)

Difficulty options:
  easy   - Start at the slowest launch speed, fewer bombs
  normal - Start a little faster
  hard   - Start much faster, more bombs
  fixed  - Launch speed never increases

Examples:
  fruitslice play
  fruitslice play --difficulty easy
  fruitslice play --config ./my-fruit.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoBackground, "no-background", false, "Keep the terminal's own background color")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal belongs to Bubble Tea; logs go to --log-file or nowhere.
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}
	background := gameCfg.Viewport.Background
	if flagNoBackground {
		background = ""
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	score, err := tui.Run(fruit.New(), store, cfg, tui.Options{
		Logger:     logger,
		Background: background,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Final score: %d\n", score)
	return nil
}
