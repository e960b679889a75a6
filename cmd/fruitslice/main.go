// fruitslice is an arcade fruit slicing game for the terminal and the desktop.
//
// Usage:
//
//	fruitslice play          - Play in the terminal (mouse required)
//	fruitslice window        - Play in a desktop window
//	fruitslice serve         - Start SSH server for remote play
//	fruitslice scores        - Show high scores and recent sessions
//	fruitslice stats         - Show lifetime statistics
//	fruitslice list          - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruitslice/internal/config"
	"github.com/vovakirdan/fruitslice/internal/games/fruit"
	"github.com/vovakirdan/fruitslice/internal/logging"
	"github.com/vovakirdan/fruitslice/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitslice",
	Short: "Fruit Slice - slice fruit, dodge bombs",
	Long: `Fruit Slice launches fruit and bombs from the bottom of the field.
Move the pointer through fruit to slice it (+10) and keep away from
bombs (-30). Launches get faster every few spawns.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores and recent sessions
  stats    - View lifetime statistics
  list     - Show available games

Examples:
  fruitslice play
  fruitslice play --difficulty hard
  fruitslice window --scale 1.5
  fruitslice serve --ssh :2222
  fruitslice scores --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		fruit.SetConfigPath(flagConfig)
		fruit.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}

// newLogger builds the command logger. --log-file wins; otherwise logs go
// to out, which may be nil to discard them.
func newLogger(out io.Writer) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		File:   flagLogFile,
		Output: out,
		Prefix: "fruitslice",
		Level:  flagLogLevel,
	})
}

// openStore opens the score database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadGameConfig resolves the game config the way the game itself does and
// logs where it came from.
func loadGameConfig(logger *log.Logger) (config.FruitConfig, error) {
	cfg, source, err := fruit.LoadConfig()
	if err != nil {
		return config.FruitConfig{}, err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)
	return cfg, nil
}

// seedOrNow returns --seed, or a time-based seed when it is unset.
func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
