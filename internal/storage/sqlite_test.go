package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("castle", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if err := store.RecordScore("shadowlands", 500); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}

	scores, err := store.TopScores("castle", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	other, err := store.TopScores("shadowlands", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 shadowlands score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("castle", (i+1)*100)
	}

	scores, err := store.TopScores("castle", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("castle")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("castle", 100)
	store.SaveScore("castle", 300)
	store.SaveScore("castle", 200)

	high, err = store.HighScore("castle")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("castle", 100)
	store.SaveScore("castle", 200)
	store.SaveScore("shadowlands", 300)

	if err := store.ClearScores("castle"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	castleScores, _ := store.TopScores("castle", 10)
	if len(castleScores) != 0 {
		t.Errorf("Expected 0 castle scores after clear, got %d", len(castleScores))
	}

	other, _ := store.TopScores("shadowlands", 10)
	if len(other) != 1 {
		t.Errorf("Shadowlands scores should not be affected by clearing castle")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("castle", i*10)
	}

	scores, err := store.AllScores("castle")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestProgressMissing(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadProgress("shadowlands")
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p != nil {
		t.Errorf("Expected no progress, got %+v", *p)
	}
}

func TestProgressKeepsBest(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		level, score int
	}{
		{2, 300},
		{4, 200},
		{3, 900},
	}
	for _, s := range steps {
		if err := store.SaveProgress("shadowlands", s.level, s.score); err != nil {
			t.Fatalf("SaveProgress(%d, %d) failed: %v", s.level, s.score, err)
		}
	}

	p, err := store.LoadProgress("shadowlands")
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p == nil {
		t.Fatal("Expected saved progress")
	}
	if p.MaxLevel != 4 {
		t.Errorf("Expected max level 4, got %d", p.MaxLevel)
	}
	if p.HighScore != 900 {
		t.Errorf("Expected high score 900, got %d", p.HighScore)
	}
}

func TestProgressPerGame(t *testing.T) {
	store := openTestStore(t)

	store.SaveProgress("shadowlands", 3, 500)
	store.SaveProgress("castle", 2, 1200)

	all, err := store.AllProgress()
	if err != nil {
		t.Fatalf("AllProgress() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 progress rows, got %d", len(all))
	}
	if all[0].GameID != "castle" || all[1].GameID != "shadowlands" {
		t.Errorf("Expected rows ordered by game, got %v", all)
	}

	if err := store.ClearProgress("castle"); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}
	p, _ := store.LoadProgress("castle")
	if p != nil {
		t.Error("Expected castle progress to be cleared")
	}
	p, _ = store.LoadProgress("shadowlands")
	if p == nil || p.MaxLevel != 3 {
		t.Error("Shadowlands progress should survive clearing castle")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("castle", 100)
	store.SaveScore("castle", 300)

	stats, err := store.GetGameStats("castle")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}

	empty, err := store.GetGameStats("shadowlands")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["castle"]; !ok || len(all) != 1 {
		t.Errorf("Expected stats for castle only, got %v", all)
	}
}
