package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruitslice/internal/platform/window"
)

var (
	flagAssets string
	flagScale  float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with the mouse.

Images are loaded from --assets when given: background.png, blade.png,
bomb.png and one PNG per fruit texture (fruit1.png ... fruit4.png).
Anything missing is drawn as a plain shape.

Controls:
  Mouse      - Move the blade
  P/Esc      - Pause
  R          - Restart
  Q          - Quit (closing the window also saves the score)

Examples:
  fruitslice window
  fruitslice window --assets ./assets --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with PNG images")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return window.Run(window.Options{
		Config:    gameCfg,
		Seed:      seedOrNow(),
		TickRate:  flagFPS,
		Scale:     flagScale,
		AssetsDir: flagAssets,
		Store:     store,
		Logger:    logger,
	})
}
