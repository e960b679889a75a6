package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("fruit", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("fruit", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("fruit", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("other", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for fruit
	scores, err := store.TopScores("fruit", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for other
	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(otherScores) != 1 {
		t.Errorf("Expected 1 other score, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("fruit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("fruit", 100)
	store.SaveScore("fruit", 300)
	store.SaveScore("fruit", 200)

	high, err = store.HighScore("fruit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("fruit", 100)
	store.SaveScore("fruit", 200)
	store.SaveScore("other", 300)
	store.SaveSession(SessionRecord{GameID: "fruit", Frontend: "tui", Score: 100})

	// Clear only fruit scores
	err = store.ClearScores("fruit")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Fruit should be empty
	fruitScores, _ := store.TopScores("fruit", 10)
	if len(fruitScores) != 0 {
		t.Errorf("Expected 0 fruit scores after clear, got %d", len(fruitScores))
	}

	sessions, _ := store.RecentSessions("fruit", 10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 fruit sessions after clear, got %d", len(sessions))
	}

	// Other should still have scores
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing fruit")
	}
}

func TestStoreSessions(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	records := []SessionRecord{
		{GameID: "fruit", Frontend: "tui", Score: 40, Spawned: 12, Sliced: 7, BombsHit: 1, Missed: 4, Escalations: 2, Duration: 12 * time.Second},
		{GameID: "fruit", Frontend: "window", Score: -30, Spawned: 3, BombsHit: 1, Missed: 2, Duration: 3500 * time.Millisecond},
		{GameID: "other", Frontend: "ssh", Score: 10, Sliced: 1},
	}
	for _, rec := range records {
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions("fruit", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 fruit sessions, got %d", len(recent))
	}

	// Newest first
	if recent[0].Frontend != "window" || recent[0].Score != -30 {
		t.Errorf("Unexpected newest session: %+v", recent[0])
	}
	if recent[1].Duration != 12*time.Second || recent[1].Escalations != 2 {
		t.Errorf("Session fields not round-tripped: %+v", recent[1])
	}
	if recent[1].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty game
	stats, err := store.GetGameStats("fruit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.Sessions != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("fruit", 100)
	store.SaveScore("fruit", 50)
	store.SaveSession(SessionRecord{GameID: "fruit", Frontend: "tui", Score: 100, Sliced: 12, BombsHit: 2, Missed: 5, Escalations: 3, Duration: time.Minute})
	store.SaveSession(SessionRecord{GameID: "fruit", Frontend: "tui", Score: 50, Sliced: 8, Missed: 1, Escalations: 1, Duration: 30 * time.Second})

	stats, err = store.GetGameStats("fruit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 100 || stats.TotalScore != 150 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.AvgScore != 75 {
		t.Errorf("Expected avg 75, got %v", stats.AvgScore)
	}
	if stats.Sessions != 2 || stats.TotalSliced != 20 || stats.TotalBombsHit != 2 || stats.TotalMissed != 6 {
		t.Errorf("Unexpected session totals: %+v", stats)
	}
	if stats.BestEscalations != 3 {
		t.Errorf("Expected best escalations 3, got %d", stats.BestEscalations)
	}
	if stats.TotalPlayTime != 90*time.Second {
		t.Errorf("Expected 90s play time, got %v", stats.TotalPlayTime)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/dir/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "nested", "dir", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSchemaVersion(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	v, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() error: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("schema version = %d, want %d", v, len(migrations))
	}
}

func TestStoreUpgradesScoresOnlyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	// A database from before sessions were recorded: scores only, version 0.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(migrations[0]); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO scores (game_id, score) VALUES ('fruit', 70)"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old database failed: %v", err)
	}
	defer store.Close()

	if best, _ := store.HighScore("fruit"); best != 70 {
		t.Errorf("existing score lost, HighScore = %d", best)
	}
	if _, err := store.SaveSession(SessionRecord{GameID: "fruit", Frontend: "tui", Score: 10}); err != nil {
		t.Errorf("sessions table missing after upgrade: %v", err)
	}

	// Reopening must not rerun anything.
	store.Close()
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	sessions, _ := store.RecentSessions("fruit", 10)
	if len(sessions) != 1 {
		t.Errorf("expected 1 session after reopen, got %d", len(sessions))
	}
}
