package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreEntry{SetID: "classic", Score: 700}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("HighScore() = %d after reopen, want 700", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	entries := []ScoreEntry{
		{SetID: "classic", Score: 100, Deaths: 3},
		{SetID: "classic", Score: 500, Deaths: 9, Finished: true},
		{SetID: "classic", Score: 500, Deaths: 2, Player: "alice"},
		{SetID: "custom", Score: 9000},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}

	// Highest first, fewer deaths break ties
	if scores[0].Score != 500 || scores[0].Deaths != 2 || scores[0].Player != "alice" {
		t.Errorf("scores[0] = %+v, want alice 500/2", scores[0])
	}
	if scores[1].Score != 500 || !scores[1].Finished {
		t.Errorf("scores[1] = %+v, want finished 500", scores[1])
	}
	if scores[2].Score != 100 {
		t.Errorf("scores[2].Score = %d, want 100", scores[2].Score)
	}
	if scores[1].Player != LocalPlayer {
		t.Errorf("blank player stored as %q, want %q", scores[1].Player, LocalPlayer)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore(ScoreEntry{SetID: "classic", Score: i * 10}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("got %d scores, want 5", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("top score = %d, want 190", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("classic", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("got %d scores with limit 0, want 10", len(scores))
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, want 0", high)
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	completions := []CompletionEntry{
		{SetID: "classic", Level: 0, Time: 4200 * time.Millisecond, Tokens: 0},
		{SetID: "classic", Level: 0, Time: 3100 * time.Millisecond, Tokens: 0, Player: "bob"},
		{SetID: "classic", Level: 2, Time: 9 * time.Second, Tokens: 1},
		{SetID: "classic", Level: 0, Time: 5 * time.Second},
		{SetID: "custom", Level: 0, Time: time.Second},
	}
	for _, c := range completions {
		if _, err := store.SaveCompletion(c); err != nil {
			t.Fatalf("SaveCompletion() failed: %v", err)
		}
	}

	bests, err := store.BestTimes("classic")
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(bests) != 2 {
		t.Fatalf("got %d bests, want 2", len(bests))
	}

	if bests[0].Level != 0 || bests[0].Time != 3100*time.Millisecond {
		t.Errorf("bests[0] = %+v, want level 0 at 3.1s", bests[0])
	}
	if bests[0].Player != "bob" || bests[0].Count != 3 {
		t.Errorf("bests[0] = %+v, want bob with 3 completions", bests[0])
	}
	if bests[1].Level != 2 || bests[1].Tokens != 1 {
		t.Errorf("bests[1] = %+v, want level 2 with 1 token", bests[1])
	}
}

func TestStoreFastestRuns(t *testing.T) {
	store := openTestStore(t)

	for _, ms := range []int64{90000, 61000, 75500} {
		run := RunEntry{SetID: "classic", Time: time.Duration(ms) * time.Millisecond, Score: 1200}
		if _, err := store.SaveFullRun(run); err != nil {
			t.Fatalf("SaveFullRun() failed: %v", err)
		}
	}

	runs, err := store.FastestRuns("classic", 2)
	if err != nil {
		t.Fatalf("FastestRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Time != 61*time.Second || runs[1].Time != 75500*time.Millisecond {
		t.Errorf("runs = %v, %v; want 1:01.00 then 1:15.50", runs[0].Time, runs[1].Time)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestStoreSetStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	_, _ = store.SaveScore(ScoreEntry{SetID: "classic", Score: 300, Deaths: 4})
	_, _ = store.SaveScore(ScoreEntry{SetID: "classic", Score: 100, Deaths: 1, Finished: true})
	_, _ = store.SaveCompletion(CompletionEntry{SetID: "classic", Level: 0, Time: time.Second})
	_, _ = store.SaveFullRun(RunEntry{SetID: "classic", Time: time.Minute})

	stats, err := store.GetSetStats("classic")
	if err != nil {
		t.Fatalf("GetSetStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Finished != 1 {
		t.Errorf("Runs/Finished = %d/%d, want 2/1", stats.Runs, stats.Finished)
	}
	if stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("HighScore/AvgScore = %d/%v, want 300/200", stats.HighScore, stats.AvgScore)
	}
	if stats.TotalDeaths != 5 {
		t.Errorf("TotalDeaths = %d, want 5", stats.TotalDeaths)
	}
	if stats.Completions != 1 || stats.FullRuns != 1 {
		t.Errorf("Completions/FullRuns = %d/%d, want 1/1", stats.Completions, stats.FullRuns)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}

	if err := store.ClearSet("classic"); err != nil {
		t.Fatalf("ClearSet() failed: %v", err)
	}
	stats, err = store.GetSetStats("classic")
	if err != nil {
		t.Fatalf("GetSetStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.Completions != 0 || stats.FullRuns != 0 {
		t.Errorf("after clear: %+v", stats)
	}
	if !stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be zero for an empty set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.starhopper/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".starhopper", "test.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
