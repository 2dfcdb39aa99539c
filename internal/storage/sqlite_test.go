package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/zone-arcade/internal/core"
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
	_, err = store.SaveScore("zones", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("zones", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("zones", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("zones_ranged", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for zones
	scores, err := store.TopScores("zones", 10)
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

	// Retrieve top scores for zones_ranged
	rangedScores, err := store.TopScores("zones_ranged", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(rangedScores) != 1 {
		t.Errorf("Expected 1 ranged score, got %d", len(rangedScores))
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
	high, err := store.HighScore("zones")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("zones", 100)
	store.SaveScore("zones", 300)
	store.SaveScore("zones", 200)

	high, err = store.HighScore("zones")
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

	store.SaveScore("zones", 100)
	store.SaveScore("zones", 200)
	store.SaveScore("zones_ranged", 300)

	// Clear only zones scores
	err = store.ClearScores("zones")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Zones should be empty
	zonesScores, _ := store.TopScores("zones", 10)
	if len(zonesScores) != 0 {
		t.Errorf("Expected 0 zones scores after clear, got %d", len(zonesScores))
	}

	// Ranged should still have scores
	rangedScores, _ := store.TopScores("zones_ranged", 10)
	if len(rangedScores) != 1 {
		t.Errorf("Ranged scores should not be affected by clearing zones")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	sum := core.RunSummary{Score: 1234, Level: 3, Zone: 2, Runes: 17, Frames: 4000, Outcome: core.OutcomeGameOver}
	id, err := store.SaveRun("zones", "session-1", sum)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("SaveRun() returned a nil run ID")
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() found nothing")
	}
	if got.RunID != id || got.SessionID != "session-1" || got.GameID != "zones" {
		t.Errorf("unexpected identity: %+v", got)
	}
	if got.Score != 1234 || got.Level != 3 || got.Zone != 2 || got.Runes != 17 || got.Frames != 4000 {
		t.Errorf("unexpected totals: %+v", got)
	}
	if got.Outcome != core.OutcomeGameOver {
		t.Errorf("Outcome = %q, want %q", got.Outcome, core.OutcomeGameOver)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(uuid.New())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown run, got %+v", got)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		if _, err := store.SaveRun("zones", "s", core.RunSummary{Score: i * 100, Outcome: core.OutcomeGameOver}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun("zones_ranged", "s", core.RunSummary{Score: 999, Outcome: core.OutcomeWon}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("zones", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Score != 400 || runs[2].Score != 200 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs across games, got %d", len(all))
	}
	if all[0].GameID != "zones_ranged" {
		t.Errorf("Expected newest run to be zones_ranged, got %s", all[0].GameID)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("zones", 100)
	store.SaveScore("zones", 300)
	store.SaveRun("zones", "s", core.RunSummary{Score: 100, Zone: 1, Outcome: core.OutcomeGameOver})
	store.SaveRun("zones", "s", core.RunSummary{Score: 300, Zone: 3, Outcome: core.OutcomeWon})

	stats, err := store.GetGameStats("zones")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected score stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.Wins != 1 || stats.BestZone != 3 {
		t.Errorf("unexpected run stats: wins=%d bestZone=%d", stats.Wins, stats.BestZone)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Wins != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("expected zero stats, got %+v", empty)
	}
}

func TestStoreClearScoresRemovesRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("zones", "s", core.RunSummary{Outcome: core.OutcomeGameOver})
	store.SaveRun("zones_ranged", "s", core.RunSummary{Outcome: core.OutcomeGameOver})

	if err := store.ClearScores("zones"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	runs, _ := store.RecentRuns("", 10)
	if len(runs) != 1 || runs[0].GameID != "zones_ranged" {
		t.Errorf("expected only zones_ranged run to remain, got %+v", runs)
	}
}
