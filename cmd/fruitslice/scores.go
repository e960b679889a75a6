package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruitslice/internal/games/fruit"
	"github.com/vovakirdan/fruitslice/internal/platform/tui"
	"github.com/vovakirdan/fruitslice/internal/storage"
)

var (
	flagPlain    bool
	flagLimit    int
	flagSessions bool
	flagClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores and recent sessions.

In a terminal the scoreboard is interactive (Tab switches between top
scores and recent sessions). When output is piped, or with --plain, a
plain table is printed instead.

Examples:
  fruitslice scores
  fruitslice scores --plain --limit 5
  fruitslice scores --plain --sessions
  fruitslice scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	Long: `Summarize every recorded session: games played, best and average
score, fruit sliced, bombs hit and total play time.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to print")
	scoresCmd.Flags().BoolVar(&flagSessions, "sessions", false, "Print recent sessions instead of top scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and sessions")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(fruit.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	title := fruit.New().Title()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, fruit.GameID, title, width, height)
	}

	if flagSessions {
		return printSessions(store, title)
	}
	return printTopScores(store, title)
}

func printTopScores(store *storage.Store, title string) error {
	scores, err := store.TopScores(fruit.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fruitslice play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(fruit.GameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}

func printSessions(store *storage.Store, title string) error {
	sessions, err := store.RecentSessions(fruit.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	fmt.Printf("Recent Sessions - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %6s  %6s  %5s  %6s  %5s  %s\n",
		"Date", "Via", "Score", "Sliced", "Bombs", "Missed", "Speed", "Time")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-6s  %6d  %6d  %5d  %6d  %5d  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.Frontend,
			s.Score,
			s.Sliced,
			s.BombsHit,
			s.Missed,
			s.Escalations+1,
			s.Duration.Round(time.Second),
		)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	stats, err := store.GetGameStats(fruit.GameID)
	if err != nil {
		return err
	}

	fmt.Printf("Statistics - %s\n", fruit.New().Title())
	fmt.Println()

	if stats.Sessions == 0 && stats.GamesCount == 0 {
		fmt.Println("Nothing recorded yet.")
		return nil
	}

	fmt.Printf("  %-14s %d\n", "Sessions", stats.Sessions)
	fmt.Printf("  %-14s %d\n", "Scores saved", stats.GamesCount)
	fmt.Printf("  %-14s %d\n", "Best score", stats.HighScore)
	fmt.Printf("  %-14s %.1f\n", "Average score", stats.AvgScore)
	fmt.Printf("  %-14s %d\n", "Fruit sliced", stats.TotalSliced)
	fmt.Printf("  %-14s %d\n", "Bombs hit", stats.TotalBombsHit)
	fmt.Printf("  %-14s %d\n", "Missed", stats.TotalMissed)
	fmt.Printf("  %-14s %d\n", "Top speed", stats.BestEscalations+1)
	fmt.Printf("  %-14s %s\n", "Play time", stats.TotalPlayTime.Round(time.Second))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  %-14s %s\n", "Last played", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
